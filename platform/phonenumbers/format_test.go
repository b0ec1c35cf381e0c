package phonenumbers

import "testing"

func TestFormatUS(t *testing.T) {
	u := Default()
	n, err := u.Parse("+1 650-253-0000", "US")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cases := []struct {
		format Format
		want   string
	}{
		{FormatE164, "+16502530000"},
		{FormatNational, "(650) 253-0000"},
		{FormatInternational, "+1 650-253-0000"},
		{FormatRFC3966, "tel:+1-650-253-0000"},
	}
	for _, c := range cases {
		if got := u.Format(n, c.format); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.format, got, c.want)
		}
	}
}

func TestFormatNationalReinsertsPrefix(t *testing.T) {
	u := Default()
	n, err := u.Parse("033316005", "CH")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := u.Format(n, FormatNational); got != "033 316 005" {
		t.Errorf("national format = %q, want %q", got, "033 316 005")
	}
	if got := u.Format(n, FormatInternational); got != "+41 33 316 005" {
		t.Errorf("international format = %q, want %q", got, "+41 33 316 005")
	}
}

func TestFormatItalianLeadingZero(t *testing.T) {
	u := Default()
	n, err := u.Parse("+39 02 3661 8300", "ZZ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := u.Format(n, FormatNational); got != "02 3661 8300" {
		t.Errorf("national format = %q, want %q", got, "02 3661 8300")
	}
	if got := u.Format(n, FormatE164); got != "+390236618300" {
		t.Errorf("E164 format = %q, want %q", got, "+390236618300")
	}
}

func TestFormatGB(t *testing.T) {
	u := Default()
	n, err := u.Parse("020 7031 3000", "GB")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := u.Format(n, FormatNational); got != "020 7031 3000" {
		t.Errorf("national format = %q, want %q", got, "020 7031 3000")
	}
	if got := u.Format(n, FormatInternational); got != "+44 20 7031 3000" {
		t.Errorf("international format = %q, want %q", got, "+44 20 7031 3000")
	}
}

func TestFormatWithExtension(t *testing.T) {
	u := Default()
	n, err := u.Parse("+1 650-253-0000 ext. 4567", "US")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := u.Format(n, FormatNational); got != "(650) 253-0000 ext. 4567" {
		t.Errorf("national format = %q, want %q", got, "(650) 253-0000 ext. 4567")
	}
	if got := u.Format(n, FormatRFC3966); got != "tel:+1-650-253-0000;ext=4567" {
		t.Errorf("rfc3966 format = %q, want %q", got, "tel:+1-650-253-0000;ext=4567")
	}
	// E164 never carries the extension.
	if got := u.Format(n, FormatE164); got != "+16502530000" {
		t.Errorf("e164 format = %q, want %q", got, "+16502530000")
	}

	// GB declares its own extension prefix.
	gb, err := u.Parse("020 7031 3000 x42", "GB")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := u.Format(gb, FormatNational); got != "020 7031 3000 x42" {
		t.Errorf("GB national format = %q, want %q", got, "020 7031 3000 x42")
	}
}

func TestSuppressedInternationalFormat(t *testing.T) {
	u := Default()
	// The seven-digit local format is marked unusable internationally,
	// so the international rendering falls back to the plain digits
	// instead of a hyphenated local form.
	n, err := u.Parse("650-2530", "US")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := u.Format(n, FormatNational); got != "650-2530" {
		t.Errorf("national format = %q, want %q", got, "650-2530")
	}
	if got := u.Format(n, FormatInternational); got != "+1 6502530" {
		t.Errorf("international format = %q, want %q", got, "+1 6502530")
	}
}

func TestFormatByPattern(t *testing.T) {
	u := Default()
	n, err := u.Parse("+1 650-253-0000", "ZZ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	userFormats := []*NumberFormat{{
		Pattern:                      `(\d{3})(\d{3})(\d{4})`,
		Format:                       "$1-$2-$3",
		NationalPrefixFormattingRule: "($NP$FG)",
	}}
	if got := u.FormatByPattern(n, FormatNational, userFormats); got != "(1650)-253-0000" {
		t.Errorf("FormatByPattern national = %q, want %q", got, "(1650)-253-0000")
	}
	if got := u.FormatByPattern(n, FormatInternational, userFormats); got != "+1 650-253-0000" {
		t.Errorf("FormatByPattern international = %q, want %q", got, "+1 650-253-0000")
	}

	// An unusable user pattern degrades to the bare digits.
	broken := []*NumberFormat{{Pattern: `(\d{20})`, Format: "$1"}}
	if got := u.FormatByPattern(n, FormatInternational, broken); got != "+1 6502530000" {
		t.Errorf("FormatByPattern with no matching pattern = %q, want %q", got, "+1 6502530000")
	}
}

func TestFormatNationalNumberWithCarrierCode(t *testing.T) {
	u := Default()
	n, err := u.Parse("11 5551 2345", "BR")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := u.FormatNationalNumberWithCarrierCode(n, "15"); got != "0 15 (11) 5551-2345" {
		t.Errorf("carrier format = %q, want %q", got, "0 15 (11) 5551-2345")
	}
	// Without a carrier code the national prefix rule applies instead.
	if got := u.Format(n, FormatNational); got != "(11) 5551-2345" {
		t.Errorf("national format = %q, want %q", got, "(11) 5551-2345")
	}
}

func TestFormatNationalNumberWithPreferredCarrierCode(t *testing.T) {
	u := Default()
	n, err := u.ParseAndKeepRawInput("0 15 11 5551 2345", "BR")
	if err != nil {
		t.Fatalf("ParseAndKeepRawInput: %v", err)
	}
	if got := u.FormatNationalNumberWithPreferredCarrierCode(n, "14"); got != "0 15 (11) 5551-2345" {
		t.Errorf("preferred carrier format = %q, want %q", got, "0 15 (11) 5551-2345")
	}
	// The fallback applies when no carrier was seen at parse time.
	plain, err := u.Parse("11 5551 2345", "BR")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := u.FormatNationalNumberWithPreferredCarrierCode(plain, "14"); got != "0 14 (11) 5551-2345" {
		t.Errorf("fallback carrier format = %q, want %q", got, "0 14 (11) 5551-2345")
	}
}

func TestFormatOutOfCountryCallingNumber(t *testing.T) {
	u := Default()
	us, err := u.Parse("+1 650-253-0000", "ZZ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// Simple international prefix.
	if got := u.FormatOutOfCountryCallingNumber(us, "CH"); got != "00 1 650-253-0000" {
		t.Errorf("from CH = %q, want %q", got, "00 1 650-253-0000")
	}
	// AU's prefix is a choice, so the preferred one is used.
	if got := u.FormatOutOfCountryCallingNumber(us, "AU"); got != "0011 1 650-253-0000" {
		t.Errorf("from AU = %q, want %q", got, "0011 1 650-253-0000")
	}
	// SG has neither a unique nor a preferred prefix.
	if got := u.FormatOutOfCountryCallingNumber(us, "SG"); got != "+1 650-253-0000" {
		t.Errorf("from SG = %q, want %q", got, "+1 650-253-0000")
	}
	// Within NANPA the country code is dialled before the national format.
	if got := u.FormatOutOfCountryCallingNumber(us, "BS"); got != "1 (650) 253-0000" {
		t.Errorf("from BS = %q, want %q", got, "1 (650) 253-0000")
	}
	// Same region collapses to the national format.
	if got := u.FormatOutOfCountryCallingNumber(us, "US"); got != "1 (650) 253-0000" {
		t.Errorf("from US = %q, want %q", got, "1 (650) 253-0000")
	}
	gb, err := u.Parse("+44 20 7031 3000", "ZZ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := u.FormatOutOfCountryCallingNumber(gb, "GB"); got != "020 7031 3000" {
		t.Errorf("GB from GB = %q, want %q", got, "020 7031 3000")
	}
	// Unknown origin falls back to plain international.
	if got := u.FormatOutOfCountryCallingNumber(gb, "ZZ"); got != "+44 20 7031 3000" {
		t.Errorf("from ZZ = %q, want %q", got, "+44 20 7031 3000")
	}
}

func TestGetLengthOfNationalDestinationCode(t *testing.T) {
	u := Default()
	cases := []struct {
		in   string
		want int
	}{
		{"+44 20 7031 3000", 2},
		{"+1 650 253 0000", 3},
		{"+54 9 11 2345 6789", 3},
		{"+65 6123 4567", 4},
	}
	for _, c := range cases {
		n, err := u.Parse(c.in, "ZZ")
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if got := u.GetLengthOfNationalDestinationCode(n); got != c.want {
			t.Errorf("GetLengthOfNationalDestinationCode(%q) = %d, want %d", c.in, got, c.want)
		}
	}

	// A number too short for any grouping has no destination code.
	short, err := u.Parse("650-2530", "US")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := u.GetLengthOfNationalDestinationCode(short); got != 0 {
		t.Errorf("GetLengthOfNationalDestinationCode(local number) = %d, want 0", got)
	}
}

func TestGetLengthOfGeographicalAreaCode(t *testing.T) {
	u := Default()
	cases := []struct {
		in   string
		want int
	}{
		{"+44 20 7031 3000", 2},
		{"+44 7912 345 678", 0},
		{"+65 6123 4567", 0},
	}
	for _, c := range cases {
		n, err := u.Parse(c.in, "ZZ")
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if got := u.GetLengthOfGeographicalAreaCode(n); got != c.want {
			t.Errorf("GetLengthOfGeographicalAreaCode(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFormatUnknownCountryCode(t *testing.T) {
	u := Default()
	n := &PhoneNumber{CountryCode: 999, NationalNumber: 12345678}
	if got := u.Format(n, FormatNational); got != "12345678" {
		t.Errorf("format with unknown calling code = %q, want bare digits", got)
	}
	if got := u.Format(n, FormatE164); got != "+99912345678" {
		t.Errorf("e164 with unknown calling code = %q, want %q", got, "+99912345678")
	}
}
