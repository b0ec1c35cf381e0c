// Package service contains the numbering module's business logic.
package service

import (
	"fmt"
	"strings"

	"phonenumber_backend/internal/numbering/transport"
	"phonenumber_backend/platform/apperr"
	"phonenumber_backend/platform/logger"
	"phonenumber_backend/platform/phonenumbers"
	"phonenumber_backend/platform/phonenumbers/prefixmap"
)

// Service exposes parse, validate, format, match and lookup operations
// on top of the phone number engine.
type Service struct {
	util          *phonenumbers.Util
	carriers      *prefixmap.Map
	defaultRegion string
	log           *logger.Logger
}

// New creates a numbering service. defaultRegion is used when a request
// does not name a region of its own.
func New(util *phonenumbers.Util, carriers *prefixmap.Map, defaultRegion string, log *logger.Logger) *Service {
	return &Service{
		util:          util,
		carriers:      carriers,
		defaultRegion: defaultRegion,
		log:           log,
	}
}

// Parse parses a phone number and classifies it.
func (s *Service) Parse(req transport.ParseRequest) (*transport.ParseResponse, error) {
	region := s.regionOrDefault(req.Region)

	var parsed *phonenumbers.PhoneNumber
	var err error
	if req.KeepRawInput {
		parsed, err = s.util.ParseAndKeepRawInput(req.Number, region)
	} else {
		parsed, err = s.util.Parse(req.Number, region)
	}
	if err != nil {
		return nil, s.parseFailure(region, err)
	}

	resp := &transport.ParseResponse{
		Number:       toWireNumber(parsed),
		Valid:        s.util.IsValidNumber(parsed),
		Type:         s.util.GetNumberType(parsed).String(),
		Region:       s.util.GetRegionCodeForNumber(parsed),
		E164:         s.util.Format(parsed, phonenumbers.FormatE164),
		Geographical: s.util.IsNumberGeographical(parsed),
	}
	if carrier, ok := s.carriers.LookupNumber(parsed); ok {
		resp.Carrier = carrier
	}
	return resp, nil
}

// Validate reports whether a number is possible and valid.
func (s *Service) Validate(req transport.ValidateRequest) (*transport.ValidateResponse, error) {
	region := s.regionOrDefault(req.Region)

	parsed, err := s.util.Parse(req.Number, region)
	if err != nil {
		// A number that fails the possibility checks during parsing is
		// still an answerable validation question. Input that is not a
		// number at all stays an error.
		if kind, ok := phonenumbers.KindOf(err); ok && kind != phonenumbers.KindNotANumber {
			return &transport.ValidateResponse{
				Possible:       false,
				PossibleReason: possibleReasonForParseKind(kind),
				Valid:          false,
				Type:           phonenumbers.Unknown.String(),
			}, nil
		}
		return nil, s.parseFailure(region, err)
	}

	resp := &transport.ValidateResponse{
		Possible:       s.util.IsPossibleNumber(parsed),
		PossibleReason: s.util.IsPossibleNumberWithReason(parsed).String(),
		Valid:          s.util.IsValidNumber(parsed),
		Type:           s.util.GetNumberType(parsed).String(),
		Region:         s.util.GetRegionCodeForNumber(parsed),
	}
	if req.ForRegion != "" {
		forRegion := s.util.IsValidNumberForRegion(parsed, req.ForRegion)
		resp.ValidForRegion = &forRegion
	}
	return resp, nil
}

// Format renders a number in the requested output format.
func (s *Service) Format(req transport.FormatRequest) (*transport.FormatResponse, error) {
	region := s.regionOrDefault(req.Region)

	parsed, err := s.util.Parse(req.Number, region)
	if err != nil {
		return nil, s.parseFailure(region, err)
	}

	format, err := formatFromString(req.Format)
	if err != nil {
		return nil, err
	}

	var formatted string
	switch {
	case req.RegionCallingFrom != "":
		formatted = s.util.FormatOutOfCountryCallingNumber(parsed, req.RegionCallingFrom)
	case req.CarrierCode != "":
		formatted = s.util.FormatNationalNumberWithCarrierCode(parsed, req.CarrierCode)
	default:
		formatted = s.util.Format(parsed, format)
	}

	return &transport.FormatResponse{
		Formatted: formatted,
		Format:    format.String(),
	}, nil
}

// Match compares two numbers and reports the confidence level.
func (s *Service) Match(req transport.MatchRequest) (*transport.MatchResponse, error) {
	match := s.util.IsNumberMatchStrings(req.First, req.Second)
	return &transport.MatchResponse{Match: match.String()}, nil
}

// Example returns an example number for a region, optionally of a
// specific type. The pseudo region 001 selects non-geographical ranges.
func (s *Service) Example(req transport.ExampleRequest) (*transport.ExampleResponse, error) {
	var example *phonenumbers.PhoneNumber
	if req.Region == "001" {
		for _, code := range s.util.GetSupportedCallingCodes() {
			if s.util.GetRegionCodeForCountryCode(code) == "001" {
				if example = s.util.GetExampleNumberForNonGeoEntity(code); example != nil {
					break
				}
			}
		}
	} else if req.Type != "" {
		numberType, err := numberTypeFromString(req.Type)
		if err != nil {
			return nil, err
		}
		example = s.util.GetExampleNumberForType(req.Region, numberType)
	} else {
		example = s.util.GetExampleNumber(req.Region)
	}

	if example == nil {
		return nil, apperr.NotFound(fmt.Sprintf("no example number for region %s", req.Region))
	}

	return &transport.ExampleResponse{
		Number:        toWireNumber(example),
		National:      s.util.Format(example, phonenumbers.FormatNational),
		International: s.util.Format(example, phonenumbers.FormatInternational),
		E164:          s.util.Format(example, phonenumbers.FormatE164),
	}, nil
}

// Audit renders each supported region's example number, flagging any
// region whose example no longer validates against its own rules.
func (s *Service) Audit() *transport.AuditResponse {
	regions := s.util.GetSupportedRegions()
	entries := make([]transport.AuditEntry, 0, len(regions))
	for _, region := range regions {
		entry := transport.AuditEntry{
			Region:      region,
			CountryCode: s.util.GetCountryCodeForRegion(region),
		}
		if example := s.util.GetExampleNumber(region); example != nil {
			entry.Example = s.util.Format(example, phonenumbers.FormatE164)
			entry.Valid = s.util.IsValidNumber(example)
		}
		entries = append(entries, entry)
	}
	return &transport.AuditResponse{Entries: entries}
}

// Regions lists the supported regions and calling codes.
func (s *Service) Regions() *transport.RegionsResponse {
	return &transport.RegionsResponse{
		Regions:      s.util.GetSupportedRegions(),
		CallingCodes: s.util.GetSupportedCallingCodes(),
	}
}

func (s *Service) regionOrDefault(region string) string {
	if region != "" {
		return region
	}
	return s.defaultRegion
}

func (s *Service) parseFailure(region string, err error) error {
	if kind, ok := phonenumbers.KindOf(err); ok {
		s.log.ParseRejected(region, kind.String())
		return apperr.Wrap(apperr.KindUnprocessable, err.Error(), err)
	}
	return apperr.Wrap(apperr.KindInternal, "could not parse number", err)
}

func toWireNumber(number *phonenumbers.PhoneNumber) transport.Number {
	wire := transport.Number{
		CountryCode:                  number.CountryCode,
		NationalNumber:               number.NationalSignificantNumber(),
		Extension:                    number.Extension,
		ItalianLeadingZero:           number.ItalianLeadingZero,
		NumberOfLeadingZeros:         number.NumberOfLeadingZeros,
		RawInput:                     number.RawInput,
		PreferredDomesticCarrierCode: number.PreferredDomesticCarrierCode,
	}
	if number.RawInput != "" || number.CountryCodeSource != phonenumbers.SourceUnspecified {
		wire.CountryCodeSource = number.CountryCodeSource.String()
	}
	return wire
}

func possibleReasonForParseKind(kind phonenumbers.ErrorKind) string {
	switch kind {
	case phonenumbers.KindInvalidCountryCode:
		return phonenumbers.InvalidCountryCode.String()
	case phonenumbers.KindTooShortAfterIDD, phonenumbers.KindTooShortNSN:
		return phonenumbers.TooShort.String()
	case phonenumbers.KindTooLong:
		return phonenumbers.TooLong.String()
	default:
		return phonenumbers.InvalidLength.String()
	}
}

func formatFromString(value string) (phonenumbers.Format, error) {
	switch strings.ToUpper(value) {
	case "E164":
		return phonenumbers.FormatE164, nil
	case "INTERNATIONAL":
		return phonenumbers.FormatInternational, nil
	case "NATIONAL":
		return phonenumbers.FormatNational, nil
	case "RFC3966":
		return phonenumbers.FormatRFC3966, nil
	default:
		return phonenumbers.FormatE164, apperr.Validation("unknown format " + value)
	}
}

func numberTypeFromString(value string) (phonenumbers.NumberType, error) {
	switch strings.ToUpper(value) {
	case "FIXED_LINE":
		return phonenumbers.FixedLine, nil
	case "MOBILE":
		return phonenumbers.Mobile, nil
	case "FIXED_LINE_OR_MOBILE":
		return phonenumbers.FixedLineOrMobile, nil
	case "TOLL_FREE":
		return phonenumbers.TollFree, nil
	case "PREMIUM_RATE":
		return phonenumbers.PremiumRate, nil
	case "SHARED_COST":
		return phonenumbers.SharedCost, nil
	case "VOIP":
		return phonenumbers.VoIP, nil
	case "PERSONAL_NUMBER":
		return phonenumbers.PersonalNumber, nil
	case "PAGER":
		return phonenumbers.Pager, nil
	case "UAN":
		return phonenumbers.UAN, nil
	case "VOICEMAIL":
		return phonenumbers.Voicemail, nil
	default:
		return phonenumbers.Unknown, apperr.Validation("unknown number type " + value)
	}
}
