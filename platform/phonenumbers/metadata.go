package phonenumbers

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// NumberDesc describes one number type within a region: a validation
// pattern plus the set of valid lengths. An empty length list means the
// general descriptor's lengths apply; the single entry -1 means the type
// does not exist in the region at all.
type NumberDesc struct {
	NationalNumberPattern    string `yaml:"nationalNumberPattern"`
	ExampleNumber            string `yaml:"exampleNumber"`
	PossibleLengths          []int  `yaml:"possibleLengths"`
	PossibleLengthsLocalOnly []int  `yaml:"possibleLengthsLocalOnly"`
}

// NumberFormat is one formatting rule: a pattern over the national
// significant number and a $1..$n substitution template, with optional
// national-prefix and carrier-code templates. IntlFormat is consumed at
// load time to build the separate international rule list; the special
// value "NA" suppresses the international entry entirely.
type NumberFormat struct {
	Pattern                              string   `yaml:"pattern"`
	Format                               string   `yaml:"format"`
	IntlFormat                           string   `yaml:"intlFormat"`
	LeadingDigits                        []string `yaml:"leadingDigits"`
	NationalPrefixFormattingRule         string   `yaml:"nationalPrefixFormattingRule"`
	NationalPrefixOptionalWhenFormatting bool     `yaml:"nationalPrefixOptionalWhenFormatting"`
	DomesticCarrierCodeFormattingRule    string   `yaml:"carrierCodeFormattingRule"`
}

// RegionRules is the full rule record for one region. Records are built
// once at load time and never mutated afterwards; every parse shares them.
type RegionRules struct {
	ID                            string          `yaml:"-"`
	CountryCode                   int             `yaml:"countryCode"`
	InternationalPrefix           string          `yaml:"internationalPrefix"`
	PreferredInternationalPrefix  string          `yaml:"preferredInternationalPrefix"`
	NationalPrefix                string          `yaml:"nationalPrefix"`
	PreferredExtnPrefix           string          `yaml:"preferredExtnPrefix"`
	NationalPrefixForParsing      string          `yaml:"nationalPrefixForParsing"`
	NationalPrefixTransformRule   string          `yaml:"nationalPrefixTransformRule"`
	SameMobileAndFixedLinePattern bool            `yaml:"sameMobileAndFixedLinePattern"`
	MainCountryForCode            bool            `yaml:"mainCountryForCode"`
	MobileNumberPortableRegion    bool            `yaml:"mobileNumberPortableRegion"`
	LeadingDigits                 string          `yaml:"leadingDigits"`
	GeneralDesc                   *NumberDesc     `yaml:"generalDesc"`
	FixedLine                     *NumberDesc     `yaml:"fixedLine"`
	Mobile                        *NumberDesc     `yaml:"mobile"`
	TollFree                      *NumberDesc     `yaml:"tollFree"`
	PremiumRate                   *NumberDesc     `yaml:"premiumRate"`
	SharedCost                    *NumberDesc     `yaml:"sharedCost"`
	PersonalNumber                *NumberDesc     `yaml:"personalNumber"`
	VoIP                          *NumberDesc     `yaml:"voip"`
	Pager                         *NumberDesc     `yaml:"pager"`
	UAN                           *NumberDesc     `yaml:"uan"`
	Voicemail                     *NumberDesc     `yaml:"voicemail"`
	NoInternationalDialling       *NumberDesc     `yaml:"noInternationalDialling"`
	NumberFormats                 []*NumberFormat `yaml:"numberFormats"`
	IntlNumberFormats             []*NumberFormat `yaml:"-"`
}

// DescForType resolves the descriptor for a number type. The pseudo type
// FixedLineOrMobile resolves to fixed line, matching the reference
// behavior where callers merge in mobile separately.
func (r *RegionRules) DescForType(t NumberType) *NumberDesc {
	switch t {
	case FixedLine, FixedLineOrMobile:
		return r.FixedLine
	case Mobile:
		return r.Mobile
	case TollFree:
		return r.TollFree
	case PremiumRate:
		return r.PremiumRate
	case SharedCost:
		return r.SharedCost
	case PersonalNumber:
		return r.PersonalNumber
	case VoIP:
		return r.VoIP
	case Pager:
		return r.Pager
	case UAN:
		return r.UAN
	case Voicemail:
		return r.Voicemail
	case Unknown:
		return r.GeneralDesc
	default:
		return r.GeneralDesc
	}
}

// MetadataProvider supplies region rules to the engine. The concrete
// *Metadata store implements it; tests may substitute their own.
type MetadataProvider interface {
	// RegionRules returns the rules for a two-letter region code, nil if unknown.
	RegionRules(region string) *RegionRules
	// RulesForNonGeoEntity returns the rules for a non-geographical
	// calling code such as 800, nil if unknown.
	RulesForNonGeoEntity(countryCallingCode int) *RegionRules
	// RegionsForCallingCode returns the regions sharing a calling code,
	// main region first. Empty when the code is not assigned.
	RegionsForCallingCode(countryCallingCode int) []string
	// HasCallingCode reports whether the calling code is assigned.
	HasCallingCode(countryCallingCode int) bool
	// SupportedRegions lists all geographical region codes, sorted.
	SupportedRegions() []string
	// SupportedCallingCodes lists all calling codes, sorted.
	SupportedCallingCodes() []int
}

// Metadata is the immutable in-memory rule table.
type Metadata struct {
	regions     map[string]*RegionRules
	nonGeo      map[int]*RegionRules
	byCode      map[int][]string
	regionCodes []string
	codes       []int
}

type metadataDocument struct {
	Regions       map[string]*RegionRules `yaml:"regions"`
	NonGeoRegions map[int]*RegionRules    `yaml:"nonGeoEntities"`
}

//go:embed metadata.yaml
var embeddedMetadata []byte

// EmbeddedMetadata returns the rule table compiled into the binary.
func EmbeddedMetadata() []byte {
	return embeddedMetadata
}

// LoadMetadata builds the rule table from a YAML document.
func LoadMetadata(raw []byte) (*Metadata, error) {
	return LoadMetadataWithFilter(raw, EmptyFilter())
}

// LoadMetadataWithFilter builds the rule table, applying a field filter
// to every region before validation and index construction.
func LoadMetadataWithFilter(raw []byte, filter *MetadataFilter) (*Metadata, error) {
	var doc metadataDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal metadata: %w", err)
	}
	md := &Metadata{
		regions: make(map[string]*RegionRules, len(doc.Regions)),
		nonGeo:  make(map[int]*RegionRules, len(doc.NonGeoRegions)),
		byCode:  make(map[int][]string),
	}
	for id, rules := range doc.Regions {
		rules.ID = id
		filter.apply(rules)
		if err := finalizeRegion(rules); err != nil {
			return nil, fmt.Errorf("region %s: %w", id, err)
		}
		md.regions[id] = rules
	}
	for code, rules := range doc.NonGeoRegions {
		rules.ID = NonGeoEntityRegionCode
		if rules.CountryCode == 0 {
			rules.CountryCode = code
		}
		filter.apply(rules)
		if err := finalizeRegion(rules); err != nil {
			return nil, fmt.Errorf("non-geo entity %d: %w", code, err)
		}
		md.nonGeo[code] = rules
	}
	md.buildIndexes()
	return md, nil
}

// finalizeRegion validates one region record and derives the
// international format list from per-format IntlFormat values.
func finalizeRegion(r *RegionRules) error {
	if r.CountryCode <= 0 {
		return fmt.Errorf("missing country code")
	}
	if r.GeneralDesc == nil {
		return fmt.Errorf("missing general descriptor")
	}
	descs := []*NumberDesc{
		r.GeneralDesc, r.FixedLine, r.Mobile, r.TollFree, r.PremiumRate,
		r.SharedCost, r.PersonalNumber, r.VoIP, r.Pager, r.UAN,
		r.Voicemail, r.NoInternationalDialling,
	}
	for _, desc := range descs {
		if desc == nil {
			continue
		}
		if desc.NationalNumberPattern != "" {
			if _, err := regexp.Compile(desc.NationalNumberPattern); err != nil {
				return fmt.Errorf("national number pattern %q: %w", desc.NationalNumberPattern, err)
			}
		}
		sort.Ints(desc.PossibleLengths)
		sort.Ints(desc.PossibleLengthsLocalOnly)
		for _, local := range desc.PossibleLengthsLocalOnly {
			if containsInt(desc.PossibleLengths, local) {
				return fmt.Errorf("length %d is both local-only and general", local)
			}
		}
	}
	if r.NationalPrefixForParsing == "" && r.NationalPrefix != "" {
		r.NationalPrefixForParsing = r.NationalPrefix
	}
	if r.NationalPrefixForParsing != "" {
		if _, err := regexp.Compile(r.NationalPrefixForParsing); err != nil {
			return fmt.Errorf("national prefix for parsing %q: %w", r.NationalPrefixForParsing, err)
		}
	}
	if r.InternationalPrefix != "" {
		if _, err := regexp.Compile(r.InternationalPrefix); err != nil {
			return fmt.Errorf("international prefix %q: %w", r.InternationalPrefix, err)
		}
	}
	if r.LeadingDigits != "" {
		if _, err := regexp.Compile(r.LeadingDigits); err != nil {
			return fmt.Errorf("leading digits %q: %w", r.LeadingDigits, err)
		}
	}
	hasExplicitIntl := false
	var intl []*NumberFormat
	for _, nf := range r.NumberFormats {
		if _, err := regexp.Compile(nf.Pattern); err != nil {
			return fmt.Errorf("format pattern %q: %w", nf.Pattern, err)
		}
		for _, ld := range nf.LeadingDigits {
			if _, err := regexp.Compile(ld); err != nil {
				return fmt.Errorf("leading digits pattern %q: %w", ld, err)
			}
		}
		// Expand the $NP and $FG placeholders once, the way the metadata
		// build pipeline does, so formatting never re-substitutes them.
		if nf.NationalPrefixFormattingRule != "" {
			rule := strings.Replace(nf.NationalPrefixFormattingRule, "$NP", r.NationalPrefix, 1)
			nf.NationalPrefixFormattingRule = strings.Replace(rule, "$FG", "$1", 1)
		}
		if nf.DomesticCarrierCodeFormattingRule != "" {
			rule := strings.Replace(nf.DomesticCarrierCodeFormattingRule, "$NP", r.NationalPrefix, 1)
			nf.DomesticCarrierCodeFormattingRule = strings.Replace(rule, "$FG", "$1", 1)
		}
		switch nf.IntlFormat {
		case "":
			copied := *nf
			intl = append(intl, &copied)
		case "NA":
			hasExplicitIntl = true
		default:
			hasExplicitIntl = true
			copied := *nf
			copied.Format = nf.IntlFormat
			copied.NationalPrefixFormattingRule = ""
			copied.DomesticCarrierCodeFormattingRule = ""
			intl = append(intl, &copied)
		}
	}
	if hasExplicitIntl {
		r.IntlNumberFormats = intl
	}
	return nil
}

func (m *Metadata) buildIndexes() {
	for id, rules := range m.regions {
		m.byCode[rules.CountryCode] = append(m.byCode[rules.CountryCode], id)
		m.regionCodes = append(m.regionCodes, id)
	}
	for code, list := range m.byCode {
		sort.Strings(list)
		// Main region first; the rest stay alphabetical.
		for i, id := range list {
			if m.regions[id].MainCountryForCode && i > 0 {
				copy(list[1:i+1], list[:i])
				list[0] = id
				break
			}
		}
		m.byCode[code] = list
	}
	sort.Strings(m.regionCodes)
	for code := range m.byCode {
		m.codes = append(m.codes, code)
	}
	for code := range m.nonGeo {
		if _, ok := m.byCode[code]; !ok {
			m.codes = append(m.codes, code)
		}
	}
	sort.Ints(m.codes)
}

// RegionRules returns the rules for a region code, nil if unknown.
func (m *Metadata) RegionRules(region string) *RegionRules {
	return m.regions[region]
}

// RulesForNonGeoEntity returns the rules for a non-geographical calling code.
func (m *Metadata) RulesForNonGeoEntity(countryCallingCode int) *RegionRules {
	return m.nonGeo[countryCallingCode]
}

// RegionsForCallingCode returns the regions for a calling code, main
// region first. Non-geographical codes map to the "001" pseudo region.
func (m *Metadata) RegionsForCallingCode(countryCallingCode int) []string {
	if list, ok := m.byCode[countryCallingCode]; ok {
		return list
	}
	if _, ok := m.nonGeo[countryCallingCode]; ok {
		return []string{NonGeoEntityRegionCode}
	}
	return nil
}

// HasCallingCode reports whether the calling code is assigned.
func (m *Metadata) HasCallingCode(countryCallingCode int) bool {
	if _, ok := m.byCode[countryCallingCode]; ok {
		return true
	}
	_, ok := m.nonGeo[countryCallingCode]
	return ok
}

// SupportedRegions lists all geographical region codes, sorted.
func (m *Metadata) SupportedRegions() []string {
	return m.regionCodes
}

// SupportedCallingCodes lists all calling codes, sorted.
func (m *Metadata) SupportedCallingCodes() []int {
	return m.codes
}

var _ MetadataProvider = (*Metadata)(nil)

var (
	defaultOnce sync.Once
	defaultUtil *Util
)

// Default returns a process-wide engine backed by the embedded metadata.
// Applications that need a filtered table should build their own with
// LoadMetadataWithFilter and NewUtil.
func Default() *Util {
	defaultOnce.Do(func() {
		md, err := LoadMetadata(embeddedMetadata)
		if err != nil {
			panic("phonenumbers: embedded metadata is invalid: " + err.Error())
		}
		defaultUtil = NewUtil(md)
	})
	return defaultUtil
}

func containsInt(values []int, v int) bool {
	for _, item := range values {
		if item == v {
			return true
		}
	}
	return false
}
