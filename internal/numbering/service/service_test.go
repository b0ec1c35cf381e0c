package service

import (
	"testing"

	"phonenumber_backend/internal/numbering/transport"
	"phonenumber_backend/platform/apperr"
	"phonenumber_backend/platform/logger"
	"phonenumber_backend/platform/phonenumbers"
	"phonenumber_backend/platform/phonenumbers/prefixmap"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return New(phonenumbers.Default(), prefixmap.DefaultCarriers(), "US", logger.New("development"))
}

func TestParse(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Parse(transport.ParseRequest{Number: "+1 650-253-0000"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if resp.Number.CountryCode != 1 || resp.Number.NationalNumber != "6502530000" {
		t.Errorf("number = +%d %s", resp.Number.CountryCode, resp.Number.NationalNumber)
	}
	if !resp.Valid {
		t.Error("expected valid number")
	}
	if resp.Region != "US" {
		t.Errorf("region = %q, want US", resp.Region)
	}
	if resp.E164 != "+16502530000" {
		t.Errorf("e164 = %q", resp.E164)
	}
	if !resp.Geographical {
		t.Error("expected geographical number")
	}
}

func TestParseUsesDefaultRegion(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Parse(transport.ParseRequest{Number: "650-253-0000"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if resp.E164 != "+16502530000" {
		t.Errorf("e164 = %q, want +16502530000", resp.E164)
	}
}

func TestParseCarrierLookup(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Parse(transport.ParseRequest{Number: "+44 7911 123456"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if resp.Type != "MOBILE" {
		t.Errorf("type = %q, want MOBILE", resp.Type)
	}
	if resp.Carrier != "O2" {
		t.Errorf("carrier = %q, want O2", resp.Carrier)
	}
}

func TestParseKeepRawInput(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Parse(transport.ParseRequest{Number: "+44 20 7031 3000", KeepRawInput: true})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if resp.Number.RawInput != "+44 20 7031 3000" {
		t.Errorf("rawInput = %q", resp.Number.RawInput)
	}
	if resp.Number.CountryCodeSource != "FROM_NUMBER_WITH_PLUS_SIGN" {
		t.Errorf("countryCodeSource = %q", resp.Number.CountryCodeSource)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Parse(transport.ParseRequest{Number: "this is not a phone number"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !apperr.Is(err, apperr.KindUnprocessable) {
		t.Errorf("kind = %v, want unprocessable", apperr.GetKind(err))
	}
}

func TestValidate(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Validate(transport.ValidateRequest{Number: "+1 650-253-0000", ForRegion: "BS"})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !resp.Possible || resp.PossibleReason != "IS_POSSIBLE" {
		t.Errorf("possible = %v (%s)", resp.Possible, resp.PossibleReason)
	}
	if !resp.Valid {
		t.Error("expected valid number")
	}
	if resp.ValidForRegion == nil || *resp.ValidForRegion {
		t.Error("expected number to be invalid for BS")
	}
}

func TestValidateAnswersImpossibleNumbers(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name   string
		number string
		reason string
	}{
		{"too long", "65025300001234567890", "TOO_LONG"},
		{"unknown country code", "+999 1234567", "INVALID_COUNTRY_CODE"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resp, err := svc.Validate(transport.ValidateRequest{Number: c.number})
			if err != nil {
				t.Fatalf("Validate(%q): %v", c.number, err)
			}
			if resp.Possible {
				t.Error("expected impossible number")
			}
			if resp.PossibleReason != c.reason {
				t.Errorf("reason = %q, want %q", resp.PossibleReason, c.reason)
			}
			if resp.Valid {
				t.Error("expected invalid number")
			}
		})
	}
}

func TestValidateRejectsNonNumbers(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Validate(transport.ValidateRequest{Number: "hello"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !apperr.Is(err, apperr.KindUnprocessable) {
		t.Errorf("kind = %v, want unprocessable", apperr.GetKind(err))
	}
}

func TestFormat(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name string
		req  transport.FormatRequest
		want string
	}{
		{"national", transport.FormatRequest{Number: "+16502530000", Format: "NATIONAL"}, "(650) 253-0000"},
		{"international", transport.FormatRequest{Number: "+16502530000", Format: "INTERNATIONAL"}, "+1 650-253-0000"},
		{"rfc3966", transport.FormatRequest{Number: "+16502530000", Format: "RFC3966"}, "tel:+1-650-253-0000"},
		{"out of country", transport.FormatRequest{Number: "+16502530000", Format: "INTERNATIONAL", RegionCallingFrom: "CH"}, "00 1 650-253-0000"},
		{"carrier code", transport.FormatRequest{Number: "11 5551 2345", Region: "BR", Format: "NATIONAL", CarrierCode: "15"}, "0 15 (11) 5551-2345"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resp, err := svc.Format(c.req)
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			if resp.Formatted != c.want {
				t.Errorf("formatted = %q, want %q", resp.Formatted, c.want)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		first, second, want string
	}{
		{"+1 650-253-0000", "+16502530000", "EXACT_MATCH"},
		{"+1 650-253-0000", "650 253 0000", "NSN_MATCH"},
		{"+1 650-253-0000", "+44 20 7031 3000", "NO_MATCH"},
		{"abc", "+16502530000", "NOT_A_NUMBER"},
	}
	for _, c := range cases {
		resp, err := svc.Match(transport.MatchRequest{First: c.first, Second: c.second})
		if err != nil {
			t.Fatalf("Match(%q, %q): %v", c.first, c.second, err)
		}
		if resp.Match != c.want {
			t.Errorf("Match(%q, %q) = %q, want %q", c.first, c.second, resp.Match, c.want)
		}
	}
}

func TestExample(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Example(transport.ExampleRequest{Region: "GB"})
	if err != nil {
		t.Fatalf("Example: %v", err)
	}
	if resp.E164 != "+442070313000" {
		t.Errorf("e164 = %q, want +442070313000", resp.E164)
	}
	if resp.National == "" || resp.International == "" {
		t.Error("expected formatted example renderings")
	}
}

func TestExampleByType(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Example(transport.ExampleRequest{Region: "AR", Type: "MOBILE"})
	if err != nil {
		t.Fatalf("Example: %v", err)
	}
	if resp.Number.NationalNumber != "91123456789" {
		t.Errorf("nationalNumber = %q", resp.Number.NationalNumber)
	}
}

func TestExampleNonGeoEntity(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Example(transport.ExampleRequest{Region: "001"})
	if err != nil {
		t.Fatalf("Example: %v", err)
	}
	if resp.E164 != "+80012345678" {
		t.Errorf("e164 = %q, want +80012345678", resp.E164)
	}
}

func TestExampleUnknownRegion(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Example(transport.ExampleRequest{Region: "XX"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("kind = %v, want not found", apperr.GetKind(err))
	}
}

func TestAudit(t *testing.T) {
	svc := newTestService(t)

	resp := svc.Audit()
	if len(resp.Entries) == 0 {
		t.Fatal("expected audit entries")
	}
	for _, entry := range resp.Entries {
		if entry.Example == "" {
			t.Errorf("region %s has no example number", entry.Region)
			continue
		}
		if !entry.Valid {
			t.Errorf("region %s example %s does not validate", entry.Region, entry.Example)
		}
	}
}

func TestRegions(t *testing.T) {
	svc := newTestService(t)

	resp := svc.Regions()
	if len(resp.Regions) == 0 || len(resp.CallingCodes) == 0 {
		t.Fatal("expected supported regions and calling codes")
	}
	found := false
	for _, region := range resp.Regions {
		if region == "US" {
			found = true
		}
	}
	if !found {
		t.Error("expected US in supported regions")
	}
}
