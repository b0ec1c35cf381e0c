package phonenumbers

import (
	"reflect"
	"testing"
)

func TestIsValidNumber(t *testing.T) {
	u := Default()
	valid := []struct {
		in     string
		region string
	}{
		{"+1 650-253-0000", "US"},
		{"020 7031 3000", "GB"},
		{"044 668 18 00", "CH"},
		{"02 3661 8300", "IT"},
		{"+800 1234 5678", "ZZ"},
	}
	for _, c := range valid {
		n, err := u.Parse(c.in, c.region)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if !u.IsValidNumber(n) {
			t.Errorf("IsValidNumber(%q) = false, want true", c.in)
		}
	}

	// Possible length but no plan range.
	n, err := u.Parse("358 253 0000", "GB")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if u.IsValidNumber(n) {
		t.Error("GB number outside all plan ranges reported valid")
	}
}

func TestIsValidNumberForRegion(t *testing.T) {
	u := Default()
	usNumber, err := u.Parse("+1 650-253-0000", "US")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	bsNumber, err := u.Parse("+1 242-365-6123", "US")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !u.IsValidNumberForRegion(usNumber, "US") {
		t.Error("US number not valid for US")
	}
	if u.IsValidNumberForRegion(usNumber, "BS") {
		t.Error("US number valid for BS")
	}
	if !u.IsValidNumberForRegion(bsNumber, "BS") {
		t.Error("BS number not valid for BS")
	}
	if u.IsValidNumberForRegion(bsNumber, "US") {
		t.Error("BS number valid for US")
	}
}

func TestGetRegionCodeForNumber(t *testing.T) {
	u := Default()
	cases := []struct {
		in     string
		region string
	}{
		{"+1 650-253-0000", "US"},
		{"+1 242-365-6123", "BS"},
		{"+44 7912 345 678", "GB"},
		{"+800 1234 5678", "001"},
	}
	for _, c := range cases {
		n, err := u.Parse(c.in, "ZZ")
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if got := u.GetRegionCodeForNumber(n); got != c.region {
			t.Errorf("GetRegionCodeForNumber(%q) = %q, want %q", c.in, got, c.region)
		}
	}
}

func TestGetNumberType(t *testing.T) {
	u := Default()
	cases := []struct {
		in     string
		region string
		want   NumberType
	}{
		{"650 253 0000", "US", FixedLineOrMobile},
		{"800 234 5678", "US", TollFree},
		{"900 234 5678", "US", PremiumRate},
		{"500 234 5678", "US", PersonalNumber},
		{"7912 345 678", "GB", Mobile},
		{"7640 123 456", "GB", Pager},
		{"020 7031 3000", "GB", FixedLine},
		{"02 3661 8300", "IT", FixedLine},
		{"312 345 6789", "IT", Mobile},
		{"3123 4567", "SG", VoIP},
	}
	for _, c := range cases {
		n, err := u.Parse(c.in, c.region)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if got := u.GetNumberType(n); got != c.want {
			t.Errorf("GetNumberType(%q, %s) = %v, want %v", c.in, c.region, got, c.want)
		}
	}
}

func TestIsPossibleNumberWithReason(t *testing.T) {
	u := Default()
	cases := []struct {
		number PhoneNumber
		want   ValidationResult
	}{
		{PhoneNumber{CountryCode: 1, NationalNumber: 6502530000}, IsPossible},
		{PhoneNumber{CountryCode: 1, NationalNumber: 2530000}, IsPossibleLocalOnly},
		{PhoneNumber{CountryCode: 1, NationalNumber: 650253000}, TooShort},
		{PhoneNumber{CountryCode: 1, NationalNumber: 65025300000}, TooLong},
		{PhoneNumber{CountryCode: 3, NationalNumber: 6502530000}, InvalidCountryCode},
	}
	for _, c := range cases {
		if got := u.IsPossibleNumberWithReason(&c.number); got != c.want {
			t.Errorf("IsPossibleNumberWithReason(+%d %d) = %v, want %v",
				c.number.CountryCode, c.number.NationalNumber, got, c.want)
		}
	}
}

func TestIsPossibleNumberString(t *testing.T) {
	u := Default()
	if !u.IsPossibleNumberString("+1 650 253 0000", "US") {
		t.Error("possible number reported impossible")
	}
	if u.IsPossibleNumberString("not a number", "US") {
		t.Error("garbage reported possible")
	}
}

// fixedLineOrMobileTestRules builds a region where fixed-line and
// mobile lengths differ, to exercise the merged length check.
func fixedLineOrMobileTestRules(fixedLengths, mobileLengths []int) *RegionRules {
	return &RegionRules{
		ID:          "XX",
		CountryCode: 999,
		GeneralDesc: &NumberDesc{
			NationalNumberPattern: `\d{8,10}`,
			PossibleLengths:       []int{8, 9, 10},
		},
		FixedLine: &NumberDesc{
			NationalNumberPattern: `\d{8,10}`,
			PossibleLengths:       fixedLengths,
		},
		Mobile: &NumberDesc{
			NationalNumberPattern: `\d{8,10}`,
			PossibleLengths:       mobileLengths,
		},
	}
}

func TestTestNumberLengthMergesFixedLineAndMobile(t *testing.T) {
	u := Default()
	rules := fixedLineOrMobileTestRules([]int{8}, []int{9})
	cases := []struct {
		number string
		want   ValidationResult
	}{
		{"12345678", IsPossible},
		{"123456789", IsPossible},
		{"1234567890", TooLong},
		{"1234567", TooShort},
	}
	for _, c := range cases {
		if got := u.testNumberLength(c.number, rules, FixedLineOrMobile); got != c.want {
			t.Errorf("testNumberLength(%q) = %v, want %v", c.number, got, c.want)
		}
	}

	// A gap between the merged lengths is invalid, not short or long.
	rules = fixedLineOrMobileTestRules([]int{8}, []int{10})
	if got := u.testNumberLength("123456789", rules, FixedLineOrMobile); got != InvalidLength {
		t.Errorf("testNumberLength in gap = %v, want %v", got, InvalidLength)
	}
}

func TestTestNumberLengthMissingFixedLineFallsBackToMobile(t *testing.T) {
	u := Default()
	rules := &RegionRules{
		ID:          "XX",
		CountryCode: 999,
		GeneralDesc: &NumberDesc{
			NationalNumberPattern: `\d{9}`,
			PossibleLengths:       []int{9},
		},
		Mobile: &NumberDesc{
			NationalNumberPattern: `\d{9}`,
			PossibleLengths:       []int{9},
		},
	}
	if got := u.testNumberLength("123456789", rules, FixedLineOrMobile); got != IsPossible {
		t.Errorf("testNumberLength = %v, want %v", got, IsPossible)
	}
}

func TestTruncateTooLongNumber(t *testing.T) {
	u := Default()
	tooLong := &PhoneNumber{CountryCode: 1, NationalNumber: 65025300001}
	truncated, ok := u.TruncateTooLongNumber(tooLong)
	if !ok {
		t.Fatal("TruncateTooLongNumber failed")
	}
	if truncated.NationalNumber != 6502530000 {
		t.Errorf("truncated to %d, want 6502530000", truncated.NationalNumber)
	}
	if tooLong.NationalNumber != 65025300001 {
		t.Error("input number was modified")
	}

	alreadyValid := &PhoneNumber{CountryCode: 1, NationalNumber: 6502530000}
	truncated, ok = u.TruncateTooLongNumber(alreadyValid)
	if !ok || truncated.NationalNumber != 6502530000 {
		t.Errorf("valid number changed by truncation: %v %v", truncated, ok)
	}

	hopeless := &PhoneNumber{CountryCode: 1, NationalNumber: 9991234}
	if _, ok := u.TruncateTooLongNumber(hopeless); ok {
		t.Error("truncation succeeded on a number with no valid prefix")
	}
}

func TestExampleNumbers(t *testing.T) {
	u := Default()
	for _, region := range u.GetSupportedRegions() {
		n := u.GetExampleNumber(region)
		if n == nil {
			t.Errorf("no example number for %s", region)
			continue
		}
		if !u.IsValidNumber(n) {
			t.Errorf("example number for %s is invalid", region)
		}
	}

	mobile := u.GetExampleNumberForType("GB", Mobile)
	if mobile == nil {
		t.Fatal("no GB mobile example")
	}
	if got := u.GetNumberType(mobile); got != Mobile {
		t.Errorf("GB mobile example classified as %v", got)
	}

	if n := u.GetExampleNumberForNonGeoEntity(800); n == nil || !u.IsValidNumber(n) {
		t.Error("no valid example for the universal toll-free entity")
	}

	if n := u.GetExampleNumber("XX"); n != nil {
		t.Error("example number for unknown region")
	}
}

func TestIsNumberGeographical(t *testing.T) {
	u := Default()
	cases := []struct {
		in     string
		region string
		want   bool
	}{
		{"650 253 0000", "US", true},
		{"020 7031 3000", "GB", true},
		{"7912 345 678", "GB", false},
		{"0343 15 555 1212", "AR", true},
	}
	for _, c := range cases {
		n, err := u.Parse(c.in, c.region)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if got := u.IsNumberGeographical(n); got != c.want {
			t.Errorf("IsNumberGeographical(%q, %s) = %v, want %v", c.in, c.region, got, c.want)
		}
	}
}

func TestRegionAndCallingCodeLookups(t *testing.T) {
	u := Default()
	if got := u.GetCountryCodeForRegion("GB"); got != 44 {
		t.Errorf("GetCountryCodeForRegion(GB) = %d, want 44", got)
	}
	if got := u.GetCountryCodeForRegion("XX"); got != 0 {
		t.Errorf("GetCountryCodeForRegion(XX) = %d, want 0", got)
	}
	if got := u.GetRegionCodeForCountryCode(44); got != "GB" {
		t.Errorf("GetRegionCodeForCountryCode(44) = %q, want GB", got)
	}
	if got := u.GetRegionCodeForCountryCode(999); got != UnknownRegion {
		t.Errorf("GetRegionCodeForCountryCode(999) = %q, want %q", got, UnknownRegion)
	}
	if got := u.GetRegionCodesForCountryCode(1); !reflect.DeepEqual(got, []string{"US", "BS"}) {
		t.Errorf("GetRegionCodesForCountryCode(1) = %v, want [US BS]", got)
	}
	if !u.IsNANPACountry("US") || !u.IsNANPACountry("BS") {
		t.Error("NANPA members not recognised")
	}
	if u.IsNANPACountry("GB") {
		t.Error("GB reported as NANPA")
	}
}

func TestGetNddPrefixForRegion(t *testing.T) {
	u := Default()
	if got := u.GetNddPrefixForRegion("GB", false); got != "0" {
		t.Errorf("GB ndd = %q, want 0", got)
	}
	if got := u.GetNddPrefixForRegion("US", false); got != "1" {
		t.Errorf("US ndd = %q, want 1", got)
	}
	if got := u.GetNddPrefixForRegion("IT", false); got != "" {
		t.Errorf("IT ndd = %q, want empty", got)
	}
}

func TestGetCountryMobileToken(t *testing.T) {
	u := Default()
	if got := u.GetCountryMobileToken(54); got != "9" {
		t.Errorf("AR mobile token = %q, want 9", got)
	}
	if got := u.GetCountryMobileToken(44); got != "" {
		t.Errorf("GB mobile token = %q, want empty", got)
	}
}

func TestIsAlphaNumber(t *testing.T) {
	u := Default()
	if !u.IsAlphaNumber("1800 FLOWERS") {
		t.Error("vanity number not recognised")
	}
	if u.IsAlphaNumber("650 253 0000") {
		t.Error("plain number reported as vanity")
	}
	if u.IsAlphaNumber("FLOWERS") {
		t.Error("letters without digits reported as vanity")
	}
}

func TestCanBeInternationallyDialled(t *testing.T) {
	u := Default()
	n, err := u.Parse("650 253 0000", "US")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !u.CanBeInternationallyDialled(n) {
		t.Error("ordinary number reported undiallable")
	}
}
