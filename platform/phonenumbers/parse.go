package phonenumbers

import (
	"strconv"
	"strings"
)

// Util is the phone number engine. It is safe for concurrent use; all
// state is the immutable rule table plus a grow-only regex cache.
type Util struct {
	metadata MetadataProvider
	cache    *regexCache
}

// NewUtil builds an engine on top of a rule table.
func NewUtil(metadata MetadataProvider) *Util {
	return &Util{
		metadata: metadata,
		cache:    newRegexCache(),
	}
}

// Parse parses a number string into its canonical representation. The
// default region is used when the input carries no international
// marker; it may be empty or "ZZ" only for inputs starting with "+".
func (u *Util) Parse(numberToParse, defaultRegion string) (*PhoneNumber, error) {
	return u.parseHelper(numberToParse, defaultRegion, false, true)
}

// ParseAndKeepRawInput parses like Parse but additionally records the
// raw input, how the country code was derived and any carrier
// selection code, for callers that need to reproduce the original.
func (u *Util) ParseAndKeepRawInput(numberToParse, defaultRegion string) (*PhoneNumber, error) {
	return u.parseHelper(numberToParse, defaultRegion, true, true)
}

func (u *Util) parseHelper(numberToParse, defaultRegion string, keepRawInput, checkRegion bool) (*PhoneNumber, error) {
	if len(numberToParse) > maxInputStringLength {
		return nil, errTooLong("The string supplied was too long to parse.")
	}
	nationalNumber := buildNationalNumberForParsing(numberToParse)
	if !isViablePhoneNumber(nationalNumber) {
		return nil, errNotANumber("The string supplied did not seem to be a phone number.")
	}
	if checkRegion && !u.checkRegionForParsing(nationalNumber, defaultRegion) {
		return nil, errInvalidCountryCode("Missing or invalid default region.")
	}

	phoneNumber := &PhoneNumber{}
	if keepRawInput {
		phoneNumber.RawInput = numberToParse
	}
	extension, nationalNumber := u.maybeStripExtension(nationalNumber)
	if extension != "" {
		phoneNumber.Extension = extension
	}

	regionMetadata := u.metadataForRegion(defaultRegion)
	countryCode, normalizedNationalNumber, err := u.maybeExtractCountryCode(nationalNumber, regionMetadata, keepRawInput, phoneNumber)
	if err != nil {
		// A leading plus promised a country code that was not found.
		// Retry without the plus characters in case they were spurious.
		m := plusCharsAtStartPattern.FindStringIndex(nationalNumber)
		if !IsKind(err, KindInvalidCountryCode) || m == nil {
			return nil, err
		}
		countryCode, normalizedNationalNumber, err = u.maybeExtractCountryCode(nationalNumber[m[1]:], regionMetadata, keepRawInput, phoneNumber)
		if err != nil {
			return nil, err
		}
		if countryCode == 0 {
			return nil, errInvalidCountryCode("Could not interpret numbers after plus-sign.")
		}
	}

	if countryCode != 0 {
		phoneNumberRegion := u.GetRegionCodeForCountryCode(countryCode)
		if phoneNumberRegion != defaultRegion {
			regionMetadata = u.metadataForRegionOrCallingCode(countryCode, phoneNumberRegion)
		}
	} else {
		// No country code in the input, fall back to the default region.
		normalizedNationalNumber = Normalize(nationalNumber)
		if regionMetadata != nil {
			countryCode = regionMetadata.CountryCode
			phoneNumber.CountryCode = countryCode
		} else if keepRawInput {
			phoneNumber.CountryCodeSource = SourceUnspecified
		}
	}

	if len(normalizedNationalNumber) < minLengthNSN {
		return nil, errTooShortNSN("The string supplied is too short to be a phone number.")
	}
	if regionMetadata != nil {
		potentialNationalNumber, carrierCode, _ := u.maybeStripNationalPrefixAndCarrierCode(normalizedNationalNumber, regionMetadata)
		// Only keep the stripped version when what remains is still a
		// sensible length, otherwise the prefix digits were part of the
		// subscriber number all along.
		validationResult := u.testNumberLength(potentialNationalNumber, regionMetadata, Unknown)
		if validationResult != TooShort && validationResult != IsPossibleLocalOnly && validationResult != InvalidLength {
			normalizedNationalNumber = potentialNationalNumber
			if keepRawInput && carrierCode != "" {
				phoneNumber.PreferredDomesticCarrierCode = carrierCode
			}
		}
	}
	if len(normalizedNationalNumber) < minLengthNSN {
		return nil, errTooShortNSN("The string supplied is too short to be a phone number.")
	}
	if len(normalizedNationalNumber) > maxLengthNSN {
		return nil, errTooLong("The string supplied is too long to be a phone number.")
	}
	setItalianLeadingZeros(normalizedNationalNumber, phoneNumber)
	value, err := strconv.ParseUint(normalizedNationalNumber, 10, 64)
	if err != nil {
		return nil, errNotANumber("The string supplied did not seem to be a phone number.")
	}
	phoneNumber.NationalNumber = value
	return phoneNumber, nil
}

// buildNationalNumberForParsing isolates the number portion of the
// input. RFC 3966 inputs are unpacked from their tel: wrapper and
// phone-context; anything else is mined for the first number-looking
// substring.
func buildNationalNumberForParsing(numberToParse string) string {
	var b strings.Builder
	indexOfPhoneContext := strings.Index(numberToParse, rfc3966PhoneContext)
	if indexOfPhoneContext >= 0 {
		contextStart := indexOfPhoneContext + len(rfc3966PhoneContext)
		// A phone-context that is itself a number prefix, such as
		// ";phone-context=+64", goes in front of the local part.
		if contextStart < len(numberToParse) && numberToParse[contextStart] == '+' {
			if contextEnd := strings.Index(numberToParse[contextStart:], ";"); contextEnd >= 0 {
				b.WriteString(numberToParse[contextStart : contextStart+contextEnd])
			} else {
				b.WriteString(numberToParse[contextStart:])
			}
		}
		numberStart := 0
		if prefixIndex := strings.Index(numberToParse, rfc3966Prefix); prefixIndex >= 0 {
			numberStart = prefixIndex + len(rfc3966Prefix)
		}
		b.WriteString(numberToParse[numberStart:indexOfPhoneContext])
	} else {
		b.WriteString(extractPossibleNumber(numberToParse))
	}
	nationalNumber := b.String()
	// An ISDN subaddress and everything after it is not part of the number.
	if isubIndex := strings.Index(nationalNumber, rfc3966ISDNSubaddress); isubIndex >= 0 {
		nationalNumber = nationalNumber[:isubIndex]
	}
	return nationalNumber
}

// checkRegionForParsing verifies that parsing can proceed: either the
// default region is known, or the input starts with a plus sign and so
// carries its own country code.
func (u *Util) checkRegionForParsing(numberToParse, defaultRegion string) bool {
	if !u.isValidRegionCode(defaultRegion) {
		if numberToParse == "" || !plusCharsAtStartPattern.MatchString(numberToParse) {
			return false
		}
	}
	return true
}

func (u *Util) isValidRegionCode(regionCode string) bool {
	return regionCode != "" && u.metadata.RegionRules(regionCode) != nil
}

func (u *Util) metadataForRegion(regionCode string) *RegionRules {
	if !u.isValidRegionCode(regionCode) {
		return nil
	}
	return u.metadata.RegionRules(regionCode)
}

func (u *Util) metadataForRegionOrCallingCode(countryCallingCode int, regionCode string) *RegionRules {
	if regionCode == NonGeoEntityRegionCode {
		return u.metadata.RulesForNonGeoEntity(countryCallingCode)
	}
	return u.metadataForRegion(regionCode)
}

// maybeStripExtension splits a trailing extension off the number,
// returning the extension digits and the remaining number. The number
// ahead of the extension must itself be viable, otherwise short inputs
// like "x26" would lose everything to the extension.
func (u *Util) maybeStripExtension(number string) (extension, remainder string) {
	m := extnPattern.FindStringSubmatchIndex(number)
	if m == nil || !isViablePhoneNumber(number[:m[0]]) {
		return "", number
	}
	groups := len(m)/2 - 1
	for i := 1; i <= groups; i++ {
		if m[2*i] >= 0 && m[2*i] < m[2*i+1] {
			return number[m[2*i]:m[2*i+1]], number[:m[0]]
		}
	}
	return "", number
}

// maybeExtractCountryCode finds the country calling code of the input,
// if one is present, and returns it together with the national number
// remainder. A return of zero with no error means the input carried no
// country code and the caller should fall back to the default region.
func (u *Util) maybeExtractCountryCode(number string, defaultRegionMetadata *RegionRules, keepRawInput bool, phoneNumber *PhoneNumber) (int, string, error) {
	if number == "" {
		return 0, "", nil
	}
	possibleCountryIddPrefix := "NonMatch"
	if defaultRegionMetadata != nil {
		possibleCountryIddPrefix = defaultRegionMetadata.InternationalPrefix
	}
	fullNumber, countryCodeSource := u.maybeStripInternationalPrefixAndNormalize(number, possibleCountryIddPrefix)
	if keepRawInput {
		phoneNumber.CountryCodeSource = countryCodeSource
	}
	if countryCodeSource != SourceDefaultCountry {
		if len(fullNumber) <= minLengthNSN {
			return 0, "", errTooShortAfterIDD("Phone number had an IDD, but after this was not long enough to be a viable phone number.")
		}
		potentialCountryCode, rest := u.extractCountryCode(fullNumber)
		if potentialCountryCode != 0 {
			phoneNumber.CountryCode = potentialCountryCode
			return potentialCountryCode, rest, nil
		}
		// The input looked international but no known calling code
		// matched its leading digits.
		return 0, "", errInvalidCountryCode("Country calling code supplied was not recognised.")
	}
	if defaultRegionMetadata != nil {
		// The input may still start with the country code written out in
		// full, as people often do even without a plus sign.
		countryCode := defaultRegionMetadata.CountryCode
		countryCodeString := strconv.Itoa(countryCode)
		if strings.HasPrefix(fullNumber, countryCodeString) {
			potentialNationalNumber := fullNumber[len(countryCodeString):]
			generalPattern := defaultRegionMetadata.GeneralDesc.NationalNumberPattern
			strippedNationalNumber, _, _ := u.maybeStripNationalPrefixAndCarrierCode(potentialNationalNumber, defaultRegionMetadata)
			// Treat the leading digits as a country code only if doing so
			// turns an invalid number into a valid one, or the number is
			// otherwise too long.
			if (!u.cache.matchEntire(generalPattern, fullNumber) &&
				u.cache.matchEntire(generalPattern, strippedNationalNumber)) ||
				u.testNumberLength(fullNumber, defaultRegionMetadata, Unknown) == TooLong {
				if keepRawInput {
					phoneNumber.CountryCodeSource = SourceNumberWithoutPlusSign
				}
				phoneNumber.CountryCode = countryCode
				return countryCode, strippedNationalNumber, nil
			}
		}
	}
	phoneNumber.CountryCode = 0
	return 0, "", nil
}

// maybeStripInternationalPrefixAndNormalize removes a leading plus sign
// or international dialing prefix and normalizes what remains,
// reporting how the number turned out to be international.
func (u *Util) maybeStripInternationalPrefixAndNormalize(number, possibleIddPrefix string) (string, CountryCodeSource) {
	if number == "" {
		return number, SourceDefaultCountry
	}
	if m := plusCharsAtStartPattern.FindStringIndex(number); m != nil {
		return Normalize(number[m[1]:]), SourceNumberWithPlusSign
	}
	normalized := Normalize(number)
	if stripped, ok := u.parsePrefixAsIdd(possibleIddPrefix, normalized); ok {
		return stripped, SourceNumberWithIDD
	}
	return normalized, SourceDefaultCountry
}

// parsePrefixAsIdd strips the IDD prefix if it matches at the start.
// A match is rejected when the first digit group after the prefix is a
// zero, since no country code starts with zero and the zero is then
// more plausibly a national prefix.
func (u *Util) parsePrefixAsIdd(iddPattern, number string) (string, bool) {
	re := u.cache.atStart(iddPattern)
	if re == nil {
		return number, false
	}
	m := re.FindStringIndex(number)
	if m == nil {
		return number, false
	}
	rest := number[m[1]:]
	if digits := capturingDigitPattern.FindStringSubmatch(rest); digits != nil {
		if NormalizeDigitsOnly(digits[1]) == "0" {
			return number, false
		}
	}
	return rest, true
}

// extractCountryCode tries country codes of increasing length against
// the known calling codes. Country codes never start with zero.
func (u *Util) extractCountryCode(fullNumber string) (int, string) {
	if fullNumber == "" || fullNumber[0] == '0' {
		return 0, ""
	}
	limit := maxLengthCountryCode
	if len(fullNumber) < limit {
		limit = len(fullNumber)
	}
	for i := 1; i <= limit; i++ {
		potentialCountryCode, err := strconv.Atoi(fullNumber[:i])
		if err != nil {
			return 0, ""
		}
		if u.metadata.HasCallingCode(potentialCountryCode) {
			return potentialCountryCode, fullNumber[i:]
		}
	}
	return 0, ""
}

// maybeStripNationalPrefixAndCarrierCode removes a national prefix or
// carrier selection code from the start of the number, applying the
// region's transform rule when one is defined. The strip is rejected
// when it would turn a valid number into an invalid one.
func (u *Util) maybeStripNationalPrefixAndCarrierCode(number string, metadata *RegionRules) (remainder, carrierCode string, stripped bool) {
	possibleNationalPrefix := metadata.NationalPrefixForParsing
	if number == "" || possibleNationalPrefix == "" {
		return number, "", false
	}
	prefixRe := u.cache.atStart(possibleNationalPrefix)
	if prefixRe == nil {
		return number, "", false
	}
	m := prefixRe.FindStringSubmatchIndex(number)
	if m == nil {
		return number, "", false
	}
	generalPattern := metadata.GeneralDesc.NationalNumberPattern
	isViableOriginal := u.cache.matchEntire(generalPattern, number)
	numGroups := len(m)/2 - 1
	transformRule := metadata.NationalPrefixTransformRule
	if transformRule == "" || numGroups == 0 || m[2*numGroups] < 0 {
		// Nothing was captured for the transform, so the prefix is
		// simply removed.
		rest := number[m[1]:]
		if isViableOriginal && !u.cache.matchEntire(generalPattern, rest) {
			return number, "", false
		}
		if numGroups > 0 && m[2] >= 0 {
			carrierCode = number[m[2]:m[3]]
		}
		return rest, carrierCode, true
	}
	transformed := string(prefixRe.ExpandString(nil, transformRule, number, m)) + number[m[1]:]
	if isViableOriginal && !u.cache.matchEntire(generalPattern, transformed) {
		return number, "", false
	}
	if numGroups > 1 && m[2] >= 0 {
		carrierCode = number[m[2]:m[3]]
	}
	return transformed, carrierCode, true
}

// setItalianLeadingZeros records leading zeros of the national number,
// which the integer representation cannot carry. A trailing zero-only
// number keeps its last zero as the number itself.
func setItalianLeadingZeros(nationalNumber string, phoneNumber *PhoneNumber) {
	if len(nationalNumber) < 2 || nationalNumber[0] != '0' {
		return
	}
	phoneNumber.ItalianLeadingZero = true
	zeros := 1
	for zeros < len(nationalNumber)-1 && nationalNumber[zeros] == '0' {
		zeros++
	}
	if zeros != 1 {
		phoneNumber.NumberOfLeadingZeros = zeros
	}
}
