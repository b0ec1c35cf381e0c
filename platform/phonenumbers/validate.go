package phonenumbers

import (
	"sort"
	"strconv"
	"strings"
)

// geoMobileCountries are calling codes whose mobile numbers carry
// geographical area codes.
var geoMobileCountries = []int{52, 54, 55, 62, 86}

// mobileTokenMappings maps calling codes to the token dialled in front
// of the area code when calling a mobile number from abroad.
var mobileTokenMappings = map[int]string{
	52: "1",
	54: "9",
}

// descHasPossibleNumberData reports whether the descriptor carries real
// length data. The single entry -1 marks a type that does not exist in
// the region.
func descHasPossibleNumberData(desc *NumberDesc) bool {
	if desc == nil {
		return false
	}
	return len(desc.PossibleLengths) != 1 || desc.PossibleLengths[0] != -1
}

// possibleLengthsForDesc resolves the length set of a descriptor,
// deferring to the general descriptor when the type has none of its own.
func possibleLengthsForDesc(desc *NumberDesc, metadata *RegionRules) []int {
	if desc == nil {
		return []int{-1}
	}
	if len(desc.PossibleLengths) > 0 {
		return desc.PossibleLengths
	}
	if len(metadata.GeneralDesc.PossibleLengths) > 0 {
		return metadata.GeneralDesc.PossibleLengths
	}
	return []int{-1}
}

func mergeLengths(a, b []int) []int {
	merged := make([]int, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	sort.Ints(merged)
	return merged
}

// testNumberLength checks the length of the number against the possible
// lengths of the given type, falling back to the general descriptor.
// The pseudo type FixedLineOrMobile merges the fixed-line and mobile
// length sets, since either could apply.
func (u *Util) testNumberLength(number string, metadata *RegionRules, numberType NumberType) ValidationResult {
	desc := metadata.DescForType(numberType)
	possibleLengths := possibleLengthsForDesc(desc, metadata)
	var localLengths []int
	if desc != nil {
		localLengths = desc.PossibleLengthsLocalOnly
	}
	if numberType == FixedLineOrMobile {
		if !descHasPossibleNumberData(metadata.FixedLine) {
			// No fixed-line data at all, so only mobile rules can apply.
			return u.testNumberLength(number, metadata, Mobile)
		}
		if descHasPossibleNumberData(metadata.Mobile) {
			possibleLengths = mergeLengths(possibleLengths, possibleLengthsForDesc(metadata.Mobile, metadata))
			if len(localLengths) == 0 {
				localLengths = metadata.Mobile.PossibleLengthsLocalOnly
			} else {
				localLengths = mergeLengths(localLengths, metadata.Mobile.PossibleLengthsLocalOnly)
			}
		}
	}
	if possibleLengths[0] == -1 {
		return InvalidLength
	}
	actualLength := len(number)
	if containsInt(localLengths, actualLength) {
		return IsPossibleLocalOnly
	}
	minimumLength := possibleLengths[0]
	switch {
	case minimumLength == actualLength:
		return IsPossible
	case minimumLength > actualLength:
		return TooShort
	case possibleLengths[len(possibleLengths)-1] < actualLength:
		return TooLong
	}
	if containsInt(possibleLengths[1:], actualLength) {
		return IsPossible
	}
	return InvalidLength
}

// IsPossibleNumber performs a quick length-based plausibility check.
// Local-only numbers count as possible.
func (u *Util) IsPossibleNumber(number *PhoneNumber) bool {
	result := u.IsPossibleNumberWithReason(number)
	return result == IsPossible || result == IsPossibleLocalOnly
}

// IsPossibleNumberWithReason reports why a number is or is not possible,
// considering all number types of the region.
func (u *Util) IsPossibleNumberWithReason(number *PhoneNumber) ValidationResult {
	return u.IsPossibleNumberForTypeWithReason(number, Unknown)
}

// IsPossibleNumberForType checks plausibility against one number type only.
func (u *Util) IsPossibleNumberForType(number *PhoneNumber, numberType NumberType) bool {
	result := u.IsPossibleNumberForTypeWithReason(number, numberType)
	return result == IsPossible || result == IsPossibleLocalOnly
}

// IsPossibleNumberForTypeWithReason reports why a number is or is not a
// possible number of the given type.
func (u *Util) IsPossibleNumberForTypeWithReason(number *PhoneNumber, numberType NumberType) ValidationResult {
	nationalNumber := number.NationalSignificantNumber()
	countryCode := number.CountryCode
	if !u.metadata.HasCallingCode(countryCode) {
		return InvalidCountryCode
	}
	regionCode := u.GetRegionCodeForCountryCode(countryCode)
	metadata := u.metadataForRegionOrCallingCode(countryCode, regionCode)
	return u.testNumberLength(nationalNumber, metadata, numberType)
}

// IsPossibleNumberString parses the input and checks plausibility in one
// step. Unparseable input is simply not possible.
func (u *Util) IsPossibleNumberString(number, regionDialingFrom string) bool {
	parsed, err := u.Parse(number, regionDialingFrom)
	if err != nil {
		return false
	}
	return u.IsPossibleNumber(parsed)
}

// IsValidNumber reports whether the number matches a known numbering
// plan range, not merely a plausible length.
func (u *Util) IsValidNumber(number *PhoneNumber) bool {
	regionCode := u.GetRegionCodeForNumber(number)
	return u.IsValidNumberForRegion(number, regionCode)
}

// IsValidNumberForRegion is like IsValidNumber but additionally demands
// that the number belong to the given region.
func (u *Util) IsValidNumberForRegion(number *PhoneNumber, regionCode string) bool {
	countryCode := number.CountryCode
	metadata := u.metadataForRegionOrCallingCode(countryCode, regionCode)
	if metadata == nil {
		return false
	}
	if regionCode != NonGeoEntityRegionCode && metadata.CountryCode != countryCode {
		return false
	}
	nationalSignificantNumber := number.NationalSignificantNumber()
	return u.getNumberTypeHelper(nationalSignificantNumber, metadata) != Unknown
}

// isNumberMatchingDesc checks a national significant number against one
// descriptor: length first, then the full pattern.
func (u *Util) isNumberMatchingDesc(nationalNumber string, desc *NumberDesc) bool {
	if desc == nil {
		return false
	}
	if len(desc.PossibleLengths) > 0 && !containsInt(desc.PossibleLengths, len(nationalNumber)) {
		return false
	}
	return desc.NationalNumberPattern != "" &&
		u.cache.matchEntire(desc.NationalNumberPattern, nationalNumber)
}

// GetNumberType classifies a parsed number within its region.
func (u *Util) GetNumberType(number *PhoneNumber) NumberType {
	regionCode := u.GetRegionCodeForNumber(number)
	metadata := u.metadataForRegionOrCallingCode(number.CountryCode, regionCode)
	if metadata == nil {
		return Unknown
	}
	return u.getNumberTypeHelper(number.NationalSignificantNumber(), metadata)
}

// getNumberTypeHelper classifies a national significant number. Special
// rate types win over fixed line and mobile; regions whose fixed-line
// and mobile ranges overlap yield the combined type.
func (u *Util) getNumberTypeHelper(nationalNumber string, metadata *RegionRules) NumberType {
	if !u.isNumberMatchingDesc(nationalNumber, metadata.GeneralDesc) {
		return Unknown
	}
	if u.isNumberMatchingDesc(nationalNumber, metadata.PremiumRate) {
		return PremiumRate
	}
	if u.isNumberMatchingDesc(nationalNumber, metadata.TollFree) {
		return TollFree
	}
	if u.isNumberMatchingDesc(nationalNumber, metadata.SharedCost) {
		return SharedCost
	}
	if u.isNumberMatchingDesc(nationalNumber, metadata.VoIP) {
		return VoIP
	}
	if u.isNumberMatchingDesc(nationalNumber, metadata.PersonalNumber) {
		return PersonalNumber
	}
	if u.isNumberMatchingDesc(nationalNumber, metadata.Pager) {
		return Pager
	}
	if u.isNumberMatchingDesc(nationalNumber, metadata.UAN) {
		return UAN
	}
	if u.isNumberMatchingDesc(nationalNumber, metadata.Voicemail) {
		return Voicemail
	}
	if u.isNumberMatchingDesc(nationalNumber, metadata.FixedLine) {
		if metadata.SameMobileAndFixedLinePattern {
			return FixedLineOrMobile
		}
		if u.isNumberMatchingDesc(nationalNumber, metadata.Mobile) {
			return FixedLineOrMobile
		}
		return FixedLine
	}
	if !metadata.SameMobileAndFixedLinePattern &&
		u.isNumberMatchingDesc(nationalNumber, metadata.Mobile) {
		return Mobile
	}
	return Unknown
}

// GetRegionCodeForNumber returns the region the number belongs to, or
// empty when it cannot be determined.
func (u *Util) GetRegionCodeForNumber(number *PhoneNumber) string {
	regions := u.metadata.RegionsForCallingCode(number.CountryCode)
	if len(regions) == 0 {
		return ""
	}
	if len(regions) == 1 {
		return regions[0]
	}
	return u.regionCodeForNumberFromRegionList(number, regions)
}

// regionCodeForNumberFromRegionList disambiguates shared calling codes,
// NANPA in particular, by leading digits or by actually matching the
// number against each region's plan, main region first.
func (u *Util) regionCodeForNumberFromRegionList(number *PhoneNumber, regionCodes []string) string {
	nationalNumber := number.NationalSignificantNumber()
	for _, regionCode := range regionCodes {
		metadata := u.metadata.RegionRules(regionCode)
		if metadata == nil {
			continue
		}
		if metadata.LeadingDigits != "" {
			if u.cache.matchStart(metadata.LeadingDigits, nationalNumber) {
				return regionCode
			}
		} else if u.getNumberTypeHelper(nationalNumber, metadata) != Unknown {
			return regionCode
		}
	}
	return ""
}

// GetRegionCodeForCountryCode returns the main region of a calling
// code, or "ZZ" when the code is not assigned.
func (u *Util) GetRegionCodeForCountryCode(countryCallingCode int) string {
	regions := u.metadata.RegionsForCallingCode(countryCallingCode)
	if len(regions) == 0 {
		return UnknownRegion
	}
	return regions[0]
}

// GetRegionCodesForCountryCode returns all regions sharing a calling
// code, main region first.
func (u *Util) GetRegionCodesForCountryCode(countryCallingCode int) []string {
	return u.metadata.RegionsForCallingCode(countryCallingCode)
}

// GetCountryCodeForRegion returns the calling code of a region, zero
// when the region is unknown.
func (u *Util) GetCountryCodeForRegion(regionCode string) int {
	metadata := u.metadataForRegion(regionCode)
	if metadata == nil {
		return 0
	}
	return metadata.CountryCode
}

// GetSupportedRegions lists all geographical regions in the rule table.
func (u *Util) GetSupportedRegions() []string {
	return u.metadata.SupportedRegions()
}

// GetSupportedCallingCodes lists all calling codes in the rule table,
// non-geographical entities included.
func (u *Util) GetSupportedCallingCodes() []int {
	return u.metadata.SupportedCallingCodes()
}

// IsNANPACountry reports whether the region participates in the North
// American Numbering Plan.
func (u *Util) IsNANPACountry(regionCode string) bool {
	for _, r := range u.metadata.RegionsForCallingCode(nanpaCountryCode) {
		if r == regionCode {
			return true
		}
	}
	return false
}

// GetCountryMobileToken returns the token dialled in front of the area
// code when calling a mobile number in the country from abroad, empty
// for countries that have none.
func (u *Util) GetCountryMobileToken(countryCallingCode int) string {
	return mobileTokenMappings[countryCallingCode]
}

// GetNationalSignificantNumber renders the national significant number
// of a parsed number as a digit string.
func (u *Util) GetNationalSignificantNumber(number *PhoneNumber) string {
	return number.NationalSignificantNumber()
}

// GetExampleNumber returns a valid fixed-line example for the region,
// nil when the region is unknown or carries no example data.
func (u *Util) GetExampleNumber(regionCode string) *PhoneNumber {
	return u.GetExampleNumberForType(regionCode, FixedLine)
}

// GetExampleNumberForType returns a valid example of the given type for
// the region, nil when none is available.
func (u *Util) GetExampleNumberForType(regionCode string, numberType NumberType) *PhoneNumber {
	metadata := u.metadataForRegion(regionCode)
	if metadata == nil {
		return nil
	}
	desc := metadata.DescForType(numberType)
	if desc == nil || desc.ExampleNumber == "" {
		return nil
	}
	parsed, err := u.Parse(desc.ExampleNumber, regionCode)
	if err != nil {
		return nil
	}
	return parsed
}

// GetExampleNumberForNonGeoEntity returns a valid example for a
// non-geographical calling code such as 800, nil when none exists.
func (u *Util) GetExampleNumberForNonGeoEntity(countryCallingCode int) *PhoneNumber {
	metadata := u.metadata.RulesForNonGeoEntity(countryCallingCode)
	if metadata == nil {
		return nil
	}
	descs := []*NumberDesc{
		metadata.Mobile, metadata.TollFree, metadata.SharedCost,
		metadata.VoIP, metadata.Voicemail, metadata.UAN, metadata.PremiumRate,
	}
	for _, desc := range descs {
		if desc == nil || desc.ExampleNumber == "" {
			continue
		}
		parsed, err := u.Parse("+"+strconv.Itoa(countryCallingCode)+desc.ExampleNumber, UnknownRegion)
		if err == nil {
			return parsed
		}
	}
	return nil
}

// TruncateTooLongNumber strips trailing digits until the number becomes
// valid, returning the truncated copy. The second return is false when
// no truncation yields a valid number; the input is never modified.
func (u *Util) TruncateTooLongNumber(number *PhoneNumber) (*PhoneNumber, bool) {
	if u.IsValidNumber(number) {
		copied := *number
		return &copied, true
	}
	copied := *number
	nationalNumber := number.NationalNumber
	for {
		nationalNumber /= 10
		copied.NationalNumber = nationalNumber
		if nationalNumber == 0 || u.IsPossibleNumberWithReason(&copied) == TooShort {
			return nil, false
		}
		if u.IsValidNumber(&copied) {
			return &copied, true
		}
	}
}

// IsNumberGeographical reports whether the number is tied to a
// geographical area. Mobile numbers count only in countries where
// mobiles carry area codes.
func (u *Util) IsNumberGeographical(number *PhoneNumber) bool {
	numberType := u.GetNumberType(number)
	if numberType == FixedLine || numberType == FixedLineOrMobile {
		return true
	}
	return numberType == Mobile && containsInt(geoMobileCountries, number.CountryCode)
}

// CanBeInternationallyDialled reports whether the number is reachable
// from abroad. Without region data the answer defaults to yes.
func (u *Util) CanBeInternationallyDialled(number *PhoneNumber) bool {
	metadata := u.metadataForRegion(u.GetRegionCodeForNumber(number))
	if metadata == nil {
		return true
	}
	nationalSignificantNumber := number.NationalSignificantNumber()
	return !u.isNumberMatchingDesc(nationalSignificantNumber, metadata.NoInternationalDialling)
}

// GetNddPrefixForRegion returns the national dialling prefix of the
// region. Some prefixes contain a "~" marking a wait-for-tone; pass
// stripNonDigits to remove it.
func (u *Util) GetNddPrefixForRegion(regionCode string, stripNonDigits bool) string {
	metadata := u.metadataForRegion(regionCode)
	if metadata == nil {
		return ""
	}
	nationalPrefix := metadata.NationalPrefix
	if nationalPrefix == "" {
		return ""
	}
	if stripNonDigits {
		nationalPrefix = strings.ReplaceAll(nationalPrefix, "~", "")
	}
	return nationalPrefix
}

// IsAlphaNumber reports whether the input is a viable vanity number,
// one with at least three keypad letters after any extension is removed.
func (u *Util) IsAlphaNumber(number string) bool {
	if !isViablePhoneNumber(number) {
		return false
	}
	_, stripped := u.maybeStripExtension(number)
	return validAlphaPhonePattern.MatchString(stripped)
}
