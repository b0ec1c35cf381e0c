package phonenumbers

import (
	"strconv"
	"strings"
)

// copyCoreFieldsOnly reduces a number to the fields that matter for
// equality: country code, national number, extension and leading
// zeros. The leading zero count is normalized to its effective value so
// the stored-default distinction cannot break comparisons.
func copyCoreFieldsOnly(number *PhoneNumber) PhoneNumber {
	copied := PhoneNumber{
		CountryCode:    number.CountryCode,
		NationalNumber: number.NationalNumber,
	}
	if number.Extension != "" {
		copied.Extension = number.Extension
	}
	if number.ItalianLeadingZero {
		copied.ItalianLeadingZero = true
		copied.NumberOfLeadingZeros = number.LeadingZeros()
	}
	return copied
}

// IsNumberMatch compares two parsed numbers. An exact match needs equal
// country codes; when one side lacks a country code only the national
// numbers are compared, and a suffix relation still counts as a short
// match for numbers quoted without their area code.
func (u *Util) IsNumberMatch(firstNumberIn, secondNumberIn *PhoneNumber) MatchType {
	firstNumber := copyCoreFieldsOnly(firstNumberIn)
	secondNumber := copyCoreFieldsOnly(secondNumberIn)
	if firstNumber.Extension != "" && secondNumber.Extension != "" &&
		firstNumber.Extension != secondNumber.Extension {
		return NoMatch
	}
	firstNumberCountryCode := firstNumber.CountryCode
	secondNumberCountryCode := secondNumber.CountryCode
	if firstNumberCountryCode != 0 && secondNumberCountryCode != 0 {
		if firstNumber == secondNumber {
			return ExactMatch
		}
		if firstNumberCountryCode == secondNumberCountryCode &&
			isNationalNumberSuffixOfTheOther(&firstNumber, &secondNumber) {
			return ShortNSNMatch
		}
		return NoMatch
	}
	// One side has no country code; pretend they agree and compare the rest.
	firstNumber.CountryCode = secondNumberCountryCode
	if firstNumber == secondNumber {
		return NSNMatch
	}
	if isNationalNumberSuffixOfTheOther(&firstNumber, &secondNumber) {
		return ShortNSNMatch
	}
	return NoMatch
}

func isNationalNumberSuffixOfTheOther(firstNumber, secondNumber *PhoneNumber) bool {
	firstNumberNationalNumber := strconv.FormatUint(firstNumber.NationalNumber, 10)
	secondNumberNationalNumber := strconv.FormatUint(secondNumber.NationalNumber, 10)
	return strings.HasSuffix(firstNumberNationalNumber, secondNumberNationalNumber) ||
		strings.HasSuffix(secondNumberNationalNumber, firstNumberNationalNumber)
}

// IsNumberMatchStrings compares two number strings. Inputs without
// country codes are compared by national number only; unparseable
// input yields NotANumberMatch.
func (u *Util) IsNumberMatchStrings(firstNumber, secondNumber string) MatchType {
	firstNumberAsProto, err := u.Parse(firstNumber, UnknownRegion)
	if err == nil {
		return u.IsNumberMatchWithString(firstNumberAsProto, secondNumber)
	}
	if !IsKind(err, KindInvalidCountryCode) {
		return NotANumberMatch
	}
	secondNumberAsProto, err := u.Parse(secondNumber, UnknownRegion)
	if err == nil {
		return u.IsNumberMatchWithString(secondNumberAsProto, firstNumber)
	}
	if !IsKind(err, KindInvalidCountryCode) {
		return NotANumberMatch
	}
	// Neither side carries a country code. Compare without region checks.
	firstParsed, err1 := u.parseHelper(firstNumber, "", false, false)
	secondParsed, err2 := u.parseHelper(secondNumber, "", false, false)
	if err1 != nil || err2 != nil {
		return NotANumberMatch
	}
	return u.IsNumberMatch(firstParsed, secondParsed)
}

// IsNumberMatchWithString compares a parsed number against a string.
// When the string lacks a country code it is reparsed with the parsed
// number's region, and an exact match is downgraded to an NSN match
// since the country code was assumed rather than supplied.
func (u *Util) IsNumberMatchWithString(firstNumber *PhoneNumber, secondNumber string) MatchType {
	secondNumberAsProto, err := u.Parse(secondNumber, UnknownRegion)
	if err == nil {
		return u.IsNumberMatch(firstNumber, secondNumberAsProto)
	}
	if !IsKind(err, KindInvalidCountryCode) {
		return NotANumberMatch
	}
	firstNumberRegion := u.GetRegionCodeForCountryCode(firstNumber.CountryCode)
	if firstNumberRegion != UnknownRegion {
		secondNumberWithFirstNumberRegion, err := u.Parse(secondNumber, firstNumberRegion)
		if err != nil {
			return NotANumberMatch
		}
		match := u.IsNumberMatch(firstNumber, secondNumberWithFirstNumberRegion)
		if match == ExactMatch {
			return NSNMatch
		}
		return match
	}
	secondParsed, err := u.parseHelper(secondNumber, "", false, false)
	if err != nil {
		return NotANumberMatch
	}
	return u.IsNumberMatch(firstNumber, secondParsed)
}
