package phonenumbers

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// minLengthNSN is the shortest national significant number anywhere.
	minLengthNSN = 2
	// maxLengthNSN is the longest national significant number anywhere.
	maxLengthNSN = 17
	// maxLengthCountryCode bounds the greedy calling-code search.
	maxLengthCountryCode = 3
	// maxInputStringLength caps parse input before any regex work runs.
	maxInputStringLength = 250

	// UnknownRegion is the region code used when none can be determined.
	UnknownRegion = "ZZ"
	// NonGeoEntityRegionCode is the pseudo region for country codes that
	// belong to no single country, such as universal toll-free 800.
	NonGeoEntityRegionCode = "001"

	nanpaCountryCode = 1

	defaultExtnPrefix     = " ext. "
	rfc3966Prefix         = "tel:"
	rfc3966ExtnPrefix     = ";ext="
	rfc3966PhoneContext   = ";phone-context="
	rfc3966ISDNSubaddress = ";isub="

	plusChars = `+\x{FF0B}`
	starSign  = `\*`

	// validPunctuation covers separators accepted inside a number,
	// including full-width forms and assorted dash code points.
	validPunctuation = `-x\x{2010}-\x{2015}\x{2212}\x{30FC}\x{FF0D}-\x{FF0F} ` +
		`\x{00A0}\x{00AD}\x{200B}\x{2060}\x{3000}()\x{FF08}\x{FF09}\x{FF3B}\x{FF3D}.\[\]/~\x{2053}\x{223C}\x{FF5E}`

	digitsClass = `\p{Nd}`
	validAlpha  = `A-Za-z`

	capturingExtnDigits = `(\p{Nd}{1,7})`
)

// validPhoneNumber accepts at least three digit groups with optional
// punctuation, optionally led by plus signs and trailed by alpha chars.
// A bare two-digit string is handled separately as the absolute minimum.
var validPhoneNumber = `[` + plusChars + `]*(?:[` + validPunctuation + starSign + `]*` + digitsClass + `){3,}` +
	`[` + validPunctuation + starSign + validAlpha + digitsClass + `]*`

// extnPatternsForParsing recognises extension suffixes: the RFC 3966
// ";ext=" form, spelled-out keywords in several languages, and a bare
// "- 1234#" trailer.
var extnPatternsForParsing = rfc3966ExtnPrefix + capturingExtnDigits + `|` +
	`[ \x{00A0}\t,]*(?:e?xt(?:ensi(?:o\x{0301}?|\x{00F3}))?n?|\x{FF45}?\x{FF58}\x{FF54}\x{FF4E}?|` +
	`[,x\x{FF58}#\x{FF03}~\x{FF5E}]|int|anexo|\x{FF49}\x{FF4E}\x{FF54})` +
	`[:\.\x{FF0E}]?[ \x{00A0}\t,-]*` + capturingExtnDigits + `#?|` +
	`[- ]+(\p{Nd}{1,5})#`

var (
	plusCharsAtStartPattern  = regexp.MustCompile(`^[` + plusChars + `]+`)
	validStartCharPattern    = regexp.MustCompile(`[` + plusChars + `]|` + digitsClass)
	unwantedEndCharPattern   = regexp.MustCompile(`[^\p{N}\p{L}#]+$`)
	secondNumberStartPattern = regexp.MustCompile(`[\\/] *x`)
	capturingDigitPattern    = regexp.MustCompile(`(` + digitsClass + `)`)
	validAlphaPhonePattern   = regexp.MustCompile(`^(?:(?:.*?[A-Za-z]){3}.*)$`)
	nonDigitsPattern         = regexp.MustCompile(`\D+`)
	extnPattern              = regexp.MustCompile(`(?i)(?:` + extnPatternsForParsing + `)$`)
	separatorPattern         = regexp.MustCompile(`[` + validPunctuation + `]+`)
	validPhoneNumberPattern  = regexp.MustCompile(
		`(?i)^(?:` + digitsClass + `{2})$|^(?:` + validPhoneNumber + `(?:` + extnPatternsForParsing + `)?)$`)
)

// alphaMappings maps keypad letters to digits per ITU E.161.
var alphaMappings = map[rune]rune{
	'A': '2', 'B': '2', 'C': '2',
	'D': '3', 'E': '3', 'F': '3',
	'G': '4', 'H': '4', 'I': '4',
	'J': '5', 'K': '5', 'L': '5',
	'M': '6', 'N': '6', 'O': '6',
	'P': '7', 'Q': '7', 'R': '7', 'S': '7',
	'T': '8', 'U': '8', 'V': '8',
	'W': '9', 'X': '9', 'Y': '9', 'Z': '9',
}

// digitValue returns the decimal value of any Unicode Nd rune. Nd ranges
// are laid out in aligned runs of ten, so the offset within the range
// modulo ten is the digit value.
func digitValue(r rune) (byte, bool) {
	if r >= '0' && r <= '9' {
		return byte(r), true
	}
	if !unicode.Is(unicode.Nd, r) {
		return 0, false
	}
	for _, r16 := range unicode.Nd.R16 {
		if uint32(r) >= uint32(r16.Lo) && uint32(r) <= uint32(r16.Hi) {
			return byte('0' + (uint32(r)-uint32(r16.Lo))%10), true
		}
	}
	for _, r32 := range unicode.Nd.R32 {
		if uint32(r) >= r32.Lo && uint32(r) <= r32.Hi {
			return byte('0' + (uint32(r)-r32.Lo)%10), true
		}
	}
	return 0, false
}

// normalizeDigits keeps digits, converting non-ASCII decimal digits to
// their value. Non-digits are kept verbatim or dropped per keepNonDigits.
func normalizeDigits(number string, keepNonDigits bool) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range number {
		if d, ok := digitValue(r); ok {
			b.WriteByte(d)
		} else if keepNonDigits {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeDigitsOnly strips everything except digits, converting
// Unicode decimal digits to their ASCII value in place.
func NormalizeDigitsOnly(number string) string {
	return normalizeDigits(number, false)
}

// normalizeHelper maps each uppercased rune through mappings, keeping or
// dropping unmapped runes per removeNonMatches.
func normalizeHelper(number string, mappings map[rune]rune, removeNonMatches bool) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range number {
		if mapped, ok := mappings[unicode.ToUpper(r)]; ok {
			b.WriteRune(mapped)
		} else if !removeNonMatches {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// alphaPhoneMappings accepts ASCII digits as well as keypad letters.
var alphaPhoneMappings = buildAlphaPhoneMappings()

func buildAlphaPhoneMappings() map[rune]rune {
	m := make(map[rune]rune, len(alphaMappings)+10)
	for k, v := range alphaMappings {
		m[k] = v
	}
	for d := '0'; d <= '9'; d++ {
		m[d] = d
	}
	return m
}

// Normalize converts a number candidate to pure digits. Inputs with
// three or more letters are treated as vanity numbers and mapped through
// the keypad; everything else goes through plain digit normalization.
func Normalize(number string) string {
	if validAlphaPhonePattern.MatchString(number) {
		return normalizeHelper(number, alphaPhoneMappings, true)
	}
	return normalizeDigits(number, false)
}

// ConvertAlphaCharactersInNumber replaces keypad letters with digits,
// retaining all other characters.
func ConvertAlphaCharactersInNumber(number string) string {
	return normalizeHelper(number, alphaPhoneMappings, false)
}

// isViablePhoneNumber is a cheap grammar check applied before the full
// parse pipeline runs: enough digits, optionally punctuation, plus signs
// and an extension suffix.
func isViablePhoneNumber(number string) bool {
	if len(number) < minLengthNSN {
		return false
	}
	return validPhoneNumberPattern.MatchString(number)
}

// extractPossibleNumber pulls the first phone-number-looking substring
// out of noisy text: starts at the first digit or plus sign, drops
// trailing junk, and truncates at a second-number marker such as "/x300".
func extractPossibleNumber(number string) string {
	start := validStartCharPattern.FindStringIndex(number)
	if start == nil {
		return ""
	}
	number = number[start[0]:]
	if trailing := unwantedEndCharPattern.FindStringIndex(number); trailing != nil {
		number = number[:trailing[0]]
	}
	if second := secondNumberStartPattern.FindStringIndex(number); second != nil {
		number = number[:second[0]]
	}
	return number
}
