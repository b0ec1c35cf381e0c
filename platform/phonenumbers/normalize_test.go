package phonenumbers

import "testing"

func TestNormalizeDigitsOnly(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"034-56&+a#234", "03456234"},
		{"６５０-253", "650253"},
		{"١٢٣", "123"},
	}
	for _, c := range cases {
		if got := NormalizeDigitsOnly(c.in); got != c.want {
			t.Errorf("NormalizeDigitsOnly(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeVanityNumber(t *testing.T) {
	if got := Normalize("1800 FLOWERS"); got != "18003569377" {
		t.Errorf("Normalize = %q, want %q", got, "18003569377")
	}
	// Fewer than three letters is not a vanity number; letters drop out.
	if got := Normalize("1800-65x0253"); got != "1800650253" {
		t.Errorf("Normalize = %q, want %q", got, "1800650253")
	}
}

func TestConvertAlphaCharactersInNumber(t *testing.T) {
	if got := ConvertAlphaCharactersInNumber("1800-ABC-DEF"); got != "1800-222-333" {
		t.Errorf("ConvertAlphaCharactersInNumber = %q, want %q", got, "1800-222-333")
	}
}

func TestIsViablePhoneNumber(t *testing.T) {
	viable := []string{"12", "650 253 0000", "+1 (650) 253-0000", "0800-FLOWERS"}
	for _, in := range viable {
		if !isViablePhoneNumber(in) {
			t.Errorf("isViablePhoneNumber(%q) = false, want true", in)
		}
	}
	notViable := []string{"", "1", "alpha", "--"}
	for _, in := range notViable {
		if isViablePhoneNumber(in) {
			t.Errorf("isViablePhoneNumber(%q) = true, want false", in)
		}
	}
}

func TestExtractPossibleNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Tel: +1 650 253 0000;", "+1 650 253 0000"},
		{"no digits here", ""},
		{"555-1234/x300", "555-1234"},
		{"(650) 253-0000..", "650) 253-0000"},
	}
	for _, c := range cases {
		if got := extractPossibleNumber(c.in); got != c.want {
			t.Errorf("extractPossibleNumber(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDigitValue(t *testing.T) {
	cases := []struct {
		in   rune
		want byte
	}{
		{'7', '7'},
		{'７', '7'},
		{'٧', '7'},
	}
	for _, c := range cases {
		got, ok := digitValue(c.in)
		if !ok || got != c.want {
			t.Errorf("digitValue(%q) = %q %v, want %q", c.in, got, ok, c.want)
		}
	}
	if _, ok := digitValue('x'); ok {
		t.Error("digitValue('x') reported a digit")
	}
}
