package phonenumbers

import (
	"regexp"
	"strconv"
	"strings"
)

// firstGroupPattern finds the first group reference in a format rule,
// where a national prefix or carrier rule gets spliced in.
var firstGroupPattern = regexp.MustCompile(`(\$\d)`)

// uniqueInternationalPrefixPattern matches international prefixes that
// are a single dialable sequence, possibly with a wait-for-tone in the
// middle, as opposed to a choice between carriers.
var uniqueInternationalPrefixPattern = regexp.MustCompile(`^(?:[\d]+(?:[~\x{2053}\x{223C}\x{FF5E}][\d]+)?)$`)

// Format renders a parsed number in the requested format. Numbers with
// no usable country code come back as their bare national number.
func (u *Util) Format(number *PhoneNumber, format Format) string {
	if number.NationalNumber == 0 && number.RawInput != "" {
		// An unparseable raw input that was kept verbatim.
		return number.RawInput
	}
	countryCallingCode := number.CountryCode
	nationalSignificantNumber := number.NationalSignificantNumber()
	if format == FormatE164 {
		// E164 needs no formatting rules and carries no extension.
		return u.prefixNumberWithCountryCallingCode(countryCallingCode, FormatE164, nationalSignificantNumber)
	}
	if !u.metadata.HasCallingCode(countryCallingCode) {
		return nationalSignificantNumber
	}
	regionCode := u.GetRegionCodeForCountryCode(countryCallingCode)
	metadata := u.metadataForRegionOrCallingCode(countryCallingCode, regionCode)
	formatted := u.formatNsn(nationalSignificantNumber, metadata, format, "")
	formatted = u.maybeAppendFormattedExtension(number, metadata, format, formatted)
	return u.prefixNumberWithCountryCallingCode(countryCallingCode, format, formatted)
}

// FormatByPattern renders the number using caller-supplied formatting
// rules instead of the region's own. Rules may carry raw $NP and $FG
// placeholders, substituted here against the region's national prefix.
func (u *Util) FormatByPattern(number *PhoneNumber, format Format, userDefinedFormats []*NumberFormat) string {
	countryCallingCode := number.CountryCode
	nationalSignificantNumber := number.NationalSignificantNumber()
	if !u.metadata.HasCallingCode(countryCallingCode) {
		return nationalSignificantNumber
	}
	regionCode := u.GetRegionCodeForCountryCode(countryCallingCode)
	metadata := u.metadataForRegionOrCallingCode(countryCallingCode, regionCode)
	formatted := nationalSignificantNumber
	if formattingPattern := u.chooseFormattingPatternForNumber(userDefinedFormats, nationalSignificantNumber); formattingPattern != nil {
		patternCopy := *formattingPattern
		if rule := patternCopy.NationalPrefixFormattingRule; rule != "" {
			if nationalPrefix := metadata.NationalPrefix; nationalPrefix != "" {
				rule = strings.Replace(rule, "$NP", nationalPrefix, 1)
				rule = strings.Replace(rule, "$FG", "$1", 1)
				patternCopy.NationalPrefixFormattingRule = rule
			} else {
				patternCopy.NationalPrefixFormattingRule = ""
			}
		}
		formatted = u.formatNsnUsingPattern(nationalSignificantNumber, &patternCopy, format, "")
	}
	formatted = u.maybeAppendFormattedExtension(number, metadata, format, formatted)
	return u.prefixNumberWithCountryCallingCode(countryCallingCode, format, formatted)
}

// FormatNationalNumberWithCarrierCode renders the number nationally
// with a carrier selection code spliced into the carrier rule of the
// chosen format, as dialled with an explicit carrier in regions like BR.
func (u *Util) FormatNationalNumberWithCarrierCode(number *PhoneNumber, carrierCode string) string {
	countryCallingCode := number.CountryCode
	nationalSignificantNumber := number.NationalSignificantNumber()
	if !u.metadata.HasCallingCode(countryCallingCode) {
		return nationalSignificantNumber
	}
	regionCode := u.GetRegionCodeForCountryCode(countryCallingCode)
	metadata := u.metadataForRegionOrCallingCode(countryCallingCode, regionCode)
	formatted := u.formatNsn(nationalSignificantNumber, metadata, FormatNational, carrierCode)
	formatted = u.maybeAppendFormattedExtension(number, metadata, FormatNational, formatted)
	return u.prefixNumberWithCountryCallingCode(countryCallingCode, FormatNational, formatted)
}

// FormatNationalNumberWithPreferredCarrierCode uses the carrier code
// remembered from parsing when one exists, the fallback otherwise.
func (u *Util) FormatNationalNumberWithPreferredCarrierCode(number *PhoneNumber, fallbackCarrierCode string) string {
	carrierCode := number.PreferredDomesticCarrierCode
	if carrierCode == "" {
		carrierCode = fallbackCarrierCode
	}
	return u.FormatNationalNumberWithCarrierCode(number, carrierCode)
}

// FormatOutOfCountryCallingNumber renders the number as dialled from
// the given region: the region's international prefix, then country
// code and number. Calls within a shared plan collapse to national form.
func (u *Util) FormatOutOfCountryCallingNumber(number *PhoneNumber, regionCallingFrom string) string {
	if !u.isValidRegionCode(regionCallingFrom) {
		return u.Format(number, FormatInternational)
	}
	countryCallingCode := number.CountryCode
	nationalSignificantNumber := number.NationalSignificantNumber()
	if !u.metadata.HasCallingCode(countryCallingCode) {
		return nationalSignificantNumber
	}
	if countryCallingCode == nanpaCountryCode {
		if u.IsNANPACountry(regionCallingFrom) {
			// Within NANPA the country code is dialled in front of the
			// national format.
			return strconv.Itoa(countryCallingCode) + " " + u.Format(number, FormatNational)
		}
	} else if countryCallingCode == u.GetCountryCodeForRegion(regionCallingFrom) {
		// Sharing a calling code means no international dialling at all.
		return u.Format(number, FormatNational)
	}
	metadataForRegionCallingFrom := u.metadataForRegion(regionCallingFrom)
	internationalPrefix := metadataForRegionCallingFrom.InternationalPrefix
	internationalPrefixForFormatting := ""
	if uniqueInternationalPrefixPattern.MatchString(internationalPrefix) {
		internationalPrefixForFormatting = internationalPrefix
	} else if metadataForRegionCallingFrom.PreferredInternationalPrefix != "" {
		internationalPrefixForFormatting = metadataForRegionCallingFrom.PreferredInternationalPrefix
	}
	regionCode := u.GetRegionCodeForCountryCode(countryCallingCode)
	metadataForRegion := u.metadataForRegionOrCallingCode(countryCallingCode, regionCode)
	formatted := u.formatNsn(nationalSignificantNumber, metadataForRegion, FormatInternational, "")
	formatted = u.maybeAppendFormattedExtension(number, metadataForRegion, FormatInternational, formatted)
	if internationalPrefixForFormatting != "" {
		return internationalPrefixForFormatting + " " + strconv.Itoa(countryCallingCode) + " " + formatted
	}
	return u.prefixNumberWithCountryCallingCode(countryCallingCode, FormatInternational, formatted)
}

// formatNsn formats the national significant number with the region's
// own rules. International renderings use the dedicated international
// rule list when the region defines one.
func (u *Util) formatNsn(nationalNumber string, metadata *RegionRules, format Format, carrierCode string) string {
	availableFormats := metadata.NumberFormats
	if len(metadata.IntlNumberFormats) > 0 && format != FormatNational {
		availableFormats = metadata.IntlNumberFormats
	}
	formattingPattern := u.chooseFormattingPatternForNumber(availableFormats, nationalNumber)
	if formattingPattern == nil {
		return nationalNumber
	}
	return u.formatNsnUsingPattern(nationalNumber, formattingPattern, format, carrierCode)
}

// chooseFormattingPatternForNumber picks the first rule whose leading
// digits and full pattern both match. Only the last leading-digits
// entry counts; earlier entries exist for as-you-type use.
func (u *Util) chooseFormattingPatternForNumber(availableFormats []*NumberFormat, nationalNumber string) *NumberFormat {
	for _, numberFormat := range availableFormats {
		size := len(numberFormat.LeadingDigits)
		if size > 0 && !u.cache.matchStart(numberFormat.LeadingDigits[size-1], nationalNumber) {
			continue
		}
		if u.cache.matchEntire(numberFormat.Pattern, nationalNumber) {
			return numberFormat
		}
	}
	return nil
}

// formatNsnUsingPattern applies one formatting rule. National
// renderings splice the national prefix or carrier rule into the first
// group of the format; RFC 3966 collapses separators to hyphens.
func (u *Util) formatNsnUsingPattern(nationalNumber string, formattingPattern *NumberFormat, format Format, carrierCode string) string {
	re := u.cache.get(formattingPattern.Pattern)
	if re == nil {
		return nationalNumber
	}
	numberFormatRule := formattingPattern.Format
	switch {
	case format == FormatNational && carrierCode != "" && formattingPattern.DomesticCarrierCodeFormattingRule != "":
		carrierRule := strings.Replace(formattingPattern.DomesticCarrierCodeFormattingRule, "$CC", carrierCode, 1)
		numberFormatRule = replaceFirstGroup(numberFormatRule, carrierRule)
	case format == FormatNational && formattingPattern.NationalPrefixFormattingRule != "":
		numberFormatRule = replaceFirstGroup(numberFormatRule, formattingPattern.NationalPrefixFormattingRule)
	}
	formatted := re.ReplaceAllString(nationalNumber, numberFormatRule)
	if format == FormatRFC3966 {
		if loc := separatorPattern.FindStringIndex(formatted); loc != nil && loc[0] == 0 {
			formatted = formatted[loc[1]:]
		}
		formatted = separatorPattern.ReplaceAllString(formatted, "-")
	}
	return formatted
}

// replaceFirstGroup splices replacement in place of the first $n
// reference of the format rule.
func replaceFirstGroup(formatRule, replacement string) string {
	loc := firstGroupPattern.FindStringIndex(formatRule)
	if loc == nil {
		return formatRule
	}
	return formatRule[:loc[0]] + replacement + formatRule[loc[1]:]
}

// maybeAppendFormattedExtension adds the extension in the convention of
// the output format, preferring the region's own extension prefix.
func (u *Util) maybeAppendFormattedExtension(number *PhoneNumber, metadata *RegionRules, format Format, formatted string) string {
	if number.Extension == "" {
		return formatted
	}
	if format == FormatRFC3966 {
		return formatted + rfc3966ExtnPrefix + number.Extension
	}
	if metadata != nil && metadata.PreferredExtnPrefix != "" {
		return formatted + metadata.PreferredExtnPrefix + number.Extension
	}
	return formatted + defaultExtnPrefix + number.Extension
}

// prefixNumberWithCountryCallingCode puts the country code in front of
// the formatted national number, in the convention of the format.
func (u *Util) prefixNumberWithCountryCallingCode(countryCallingCode int, format Format, formatted string) string {
	switch format {
	case FormatE164:
		return "+" + strconv.Itoa(countryCallingCode) + formatted
	case FormatInternational:
		return "+" + strconv.Itoa(countryCallingCode) + " " + formatted
	case FormatRFC3966:
		return rfc3966Prefix + "+" + strconv.Itoa(countryCallingCode) + "-" + formatted
	default:
		return formatted
	}
}

// GetLengthOfNationalDestinationCode returns the length of the NDC, the
// area code plus any mobile token, derived from the international
// format's grouping. Zero when the number has no NDC.
func (u *Util) GetLengthOfNationalDestinationCode(number *PhoneNumber) int {
	numberNoExt := number
	if number.Extension != "" {
		copied := *number
		copied.Extension = ""
		numberNoExt = &copied
	}
	formatted := u.Format(numberNoExt, FormatInternational)
	numberGroups := nonDigitsPattern.Split(formatted, -1)
	// The international format starts with "+CC ", so the first split
	// element is empty and the second is the country code. The third is
	// the NDC, provided it is not already the subscriber number.
	if len(numberGroups) <= 3 {
		return 0
	}
	if u.GetNumberType(number) == Mobile {
		if mobileToken := u.GetCountryMobileToken(number.CountryCode); mobileToken != "" {
			return len(numberGroups[2]) + len(numberGroups[3])
		}
	}
	return len(numberGroups[2])
}

// GetLengthOfGeographicalAreaCode returns the length of the area code
// proper, zero for regions without national prefixes or for numbers
// that are not geographical.
func (u *Util) GetLengthOfGeographicalAreaCode(number *PhoneNumber) int {
	regionCode := u.GetRegionCodeForNumber(number)
	metadata := u.metadataForRegion(regionCode)
	if metadata == nil {
		return 0
	}
	if metadata.NationalPrefix == "" && !number.ItalianLeadingZero {
		return 0
	}
	if !u.IsNumberGeographical(number) {
		return 0
	}
	return u.GetLengthOfNationalDestinationCode(number)
}
