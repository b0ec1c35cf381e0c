// Package phonenumbers parses, validates, classifies and formats
// international telephone numbers against a per-region rule table.
// This is part of the platform layer and contains no transport logic.
package phonenumbers

import (
	"strconv"
	"strings"
)

// PhoneNumber is the parsed representation of a telephone number.
// It is a value object: the parse pipeline builds it once and callers
// should treat it as immutable afterwards.
type PhoneNumber struct {
	// CountryCode is the ITU country calling code (1 for NANPA, 44 for GB).
	CountryCode int
	// NationalNumber is the national significant number as an integer.
	// Leading zeros are never part of this value; they are carried by
	// ItalianLeadingZero and NumberOfLeadingZeros instead.
	NationalNumber uint64
	// Extension is the raw extension string, empty when absent.
	Extension string
	// ItalianLeadingZero is set when the national significant number
	// starts with a semantically meaningful zero.
	ItalianLeadingZero bool
	// NumberOfLeadingZeros is only meaningful when ItalianLeadingZero is
	// set. Zero means the default of one leading zero.
	NumberOfLeadingZeros int
	// RawInput is the verbatim input, populated only by ParseAndKeepRawInput.
	RawInput string
	// CountryCodeSource records how the country code was derived,
	// populated only by ParseAndKeepRawInput.
	CountryCodeSource CountryCodeSource
	// PreferredDomesticCarrierCode is the carrier selection code seen in
	// the input, populated only by ParseAndKeepRawInput.
	PreferredDomesticCarrierCode string
}

// LeadingZeros returns the effective number of leading zeros. The field
// is only stored when it differs from the default of one.
func (p *PhoneNumber) LeadingZeros() int {
	if p.NumberOfLeadingZeros > 0 {
		return p.NumberOfLeadingZeros
	}
	return 1
}

// NationalSignificantNumber renders the national significant number as a
// digit string, reinstating any leading zeros.
func (p *PhoneNumber) NationalSignificantNumber() string {
	var b strings.Builder
	if p.ItalianLeadingZero {
		for i := 0; i < p.LeadingZeros(); i++ {
			b.WriteByte('0')
		}
	}
	b.WriteString(strconv.FormatUint(p.NationalNumber, 10))
	return b.String()
}

// CountryCodeSource records how the country calling code of a parsed
// number was determined.
type CountryCodeSource int

const (
	// SourceUnspecified means the source was not recorded.
	SourceUnspecified CountryCodeSource = iota
	// SourceNumberWithPlusSign means the input carried a leading plus.
	SourceNumberWithPlusSign
	// SourceNumberWithIDD means the input carried an international dialing prefix.
	SourceNumberWithIDD
	// SourceNumberWithoutPlusSign means the country code was present as bare digits.
	SourceNumberWithoutPlusSign
	// SourceDefaultCountry means the country code came from the default region.
	SourceDefaultCountry
)

func (s CountryCodeSource) String() string {
	switch s {
	case SourceNumberWithPlusSign:
		return "FROM_NUMBER_WITH_PLUS_SIGN"
	case SourceNumberWithIDD:
		return "FROM_NUMBER_WITH_IDD"
	case SourceNumberWithoutPlusSign:
		return "FROM_NUMBER_WITHOUT_PLUS_SIGN"
	case SourceDefaultCountry:
		return "FROM_DEFAULT_COUNTRY"
	case SourceUnspecified:
		return "UNSPECIFIED"
	default:
		return "UNSPECIFIED"
	}
}

// NumberType classifies a number within its region.
type NumberType int

const (
	FixedLine NumberType = iota
	Mobile
	// FixedLineOrMobile covers regions where fixed-line and mobile
	// ranges cannot be told apart, NANPA in particular.
	FixedLineOrMobile
	TollFree
	PremiumRate
	SharedCost
	VoIP
	PersonalNumber
	Pager
	UAN
	Voicemail
	Unknown
)

func (t NumberType) String() string {
	switch t {
	case FixedLine:
		return "FIXED_LINE"
	case Mobile:
		return "MOBILE"
	case FixedLineOrMobile:
		return "FIXED_LINE_OR_MOBILE"
	case TollFree:
		return "TOLL_FREE"
	case PremiumRate:
		return "PREMIUM_RATE"
	case SharedCost:
		return "SHARED_COST"
	case VoIP:
		return "VOIP"
	case PersonalNumber:
		return "PERSONAL_NUMBER"
	case Pager:
		return "PAGER"
	case UAN:
		return "UAN"
	case Voicemail:
		return "VOICEMAIL"
	case Unknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// Format selects an output rendering for a parsed number.
type Format int

const (
	FormatE164 Format = iota
	FormatInternational
	FormatNational
	FormatRFC3966
)

func (f Format) String() string {
	switch f {
	case FormatE164:
		return "E164"
	case FormatInternational:
		return "INTERNATIONAL"
	case FormatNational:
		return "NATIONAL"
	case FormatRFC3966:
		return "RFC3966"
	default:
		return "E164"
	}
}

// ValidationResult is the outcome of a possible-number length check.
type ValidationResult int

const (
	// IsPossible means the length matches a known length for the region.
	IsPossible ValidationResult = iota
	// IsPossibleLocalOnly means the number is only diallable within its area.
	IsPossibleLocalOnly
	// InvalidCountryCode means the country code is not recognised.
	InvalidCountryCode
	// TooShort means the number is shorter than any valid length.
	TooShort
	// InvalidLength means the length falls in a gap between valid lengths.
	InvalidLength
	// TooLong means the number is longer than any valid length.
	TooLong
)

func (r ValidationResult) String() string {
	switch r {
	case IsPossible:
		return "IS_POSSIBLE"
	case IsPossibleLocalOnly:
		return "IS_POSSIBLE_LOCAL_ONLY"
	case InvalidCountryCode:
		return "INVALID_COUNTRY_CODE"
	case TooShort:
		return "TOO_SHORT"
	case InvalidLength:
		return "INVALID_LENGTH"
	case TooLong:
		return "TOO_LONG"
	default:
		return "INVALID_LENGTH"
	}
}

// MatchType is the outcome of comparing two numbers.
type MatchType int

const (
	NotANumberMatch MatchType = iota
	NoMatch
	ShortNSNMatch
	NSNMatch
	ExactMatch
)

func (m MatchType) String() string {
	switch m {
	case NotANumberMatch:
		return "NOT_A_NUMBER"
	case NoMatch:
		return "NO_MATCH"
	case ShortNSNMatch:
		return "SHORT_NSN_MATCH"
	case NSNMatch:
		return "NSN_MATCH"
	case ExactMatch:
		return "EXACT_MATCH"
	default:
		return "NOT_A_NUMBER"
	}
}
