// Package transport defines request and response types for the numbering module.
package transport

// ParseRequest asks the engine to parse a single phone number.
type ParseRequest struct {
	Number       string `json:"number" validate:"required,max=250"`
	Region       string `json:"region" validate:"omitempty,region"`
	KeepRawInput bool   `json:"keepRawInput"`
}

// Number is the wire representation of a parsed phone number. The
// national number travels as a string so leading zeros survive the trip.
type Number struct {
	CountryCode                  int    `json:"countryCode"`
	NationalNumber               string `json:"nationalNumber"`
	Extension                    string `json:"extension,omitempty"`
	ItalianLeadingZero           bool   `json:"italianLeadingZero,omitempty"`
	NumberOfLeadingZeros         int    `json:"numberOfLeadingZeros,omitempty"`
	RawInput                     string `json:"rawInput,omitempty"`
	CountryCodeSource            string `json:"countryCodeSource,omitempty"`
	PreferredDomesticCarrierCode string `json:"preferredDomesticCarrierCode,omitempty"`
}

// ParseResponse carries the parsed number plus its classification.
type ParseResponse struct {
	Number       Number `json:"number"`
	Valid        bool   `json:"valid"`
	Type         string `json:"type"`
	Region       string `json:"region,omitempty"`
	E164         string `json:"e164"`
	Geographical bool   `json:"geographical"`
	Carrier      string `json:"carrier,omitempty"`
}

// ValidateRequest asks whether a number is possible and valid.
type ValidateRequest struct {
	Number string `json:"number" validate:"required,max=250"`
	Region string `json:"region" validate:"omitempty,region"`
	// ForRegion restricts validity to one region instead of the whole
	// calling code.
	ForRegion string `json:"forRegion" validate:"omitempty,region"`
}

// ValidateResponse reports possibility and validity of a number.
type ValidateResponse struct {
	Possible       bool   `json:"possible"`
	PossibleReason string `json:"possibleReason"`
	Valid          bool   `json:"valid"`
	ValidForRegion *bool  `json:"validForRegion,omitempty"`
	Type           string `json:"type"`
	Region         string `json:"region,omitempty"`
}

// FormatRequest asks for a number rendered in a given output format.
type FormatRequest struct {
	Number string `json:"number" validate:"required,max=250"`
	Region string `json:"region" validate:"omitempty,region"`
	Format string `json:"format" validate:"required,oneof=E164 INTERNATIONAL NATIONAL RFC3966"`
	// RegionCallingFrom switches to out-of-country formatting.
	RegionCallingFrom string `json:"regionCallingFrom" validate:"omitempty,region"`
	// CarrierCode selects carrier-code national formatting.
	CarrierCode string `json:"carrierCode" validate:"omitempty,max=16,numeric"`
}

// FormatResponse carries the rendered number.
type FormatResponse struct {
	Formatted string `json:"formatted"`
	Format    string `json:"format"`
}

// MatchRequest asks whether two numbers refer to the same line.
type MatchRequest struct {
	First  string `json:"first" validate:"required,max=250"`
	Second string `json:"second" validate:"required,max=250"`
}

// MatchResponse reports the match confidence level.
type MatchResponse struct {
	Match string `json:"match"`
}

// ExampleRequest selects an example number by region and optional type.
type ExampleRequest struct {
	Region string `form:"region" validate:"required,region"`
	Type   string `form:"type" validate:"omitempty,oneof=FIXED_LINE MOBILE FIXED_LINE_OR_MOBILE TOLL_FREE PREMIUM_RATE SHARED_COST VOIP PERSONAL_NUMBER PAGER UAN VOICEMAIL"`
}

// ExampleResponse carries an example number for a region.
type ExampleResponse struct {
	Number        Number `json:"number"`
	National      string `json:"national"`
	International string `json:"international"`
	E164          string `json:"e164"`
}

// AuditEntry is one region's row in the rule table audit.
type AuditEntry struct {
	Region      string `json:"region"`
	CountryCode int    `json:"countryCode"`
	Example     string `json:"example,omitempty"`
	Valid       bool   `json:"valid"`
}

// AuditResponse lists an example number per region so operators can
// eyeball the rule table after a metadata change.
type AuditResponse struct {
	Entries []AuditEntry `json:"entries"`
}

// RegionsResponse lists the regions and calling codes the rule table covers.
type RegionsResponse struct {
	Regions      []string `json:"regions"`
	CallingCodes []int    `json:"callingCodes"`
}
