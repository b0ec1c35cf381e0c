// Package prefixmap maps E.164 digit prefixes to descriptions, for
// carrier and geography lookups on parsed numbers.
package prefixmap

import (
	"strconv"

	"phonenumber_backend/platform/phonenumbers"
)

// Map answers longest-prefix lookups over full E.164 digit sequences,
// country code included. It is immutable after construction.
type Map struct {
	entries map[uint64]string
}

// New builds a prefix map. Keys are digit prefixes read as integers,
// such as 44791 for British O2 mobiles.
func New(entries map[uint64]string) *Map {
	copied := make(map[uint64]string, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &Map{entries: copied}
}

// Lookup finds the description of the longest prefix of key, dropping
// one trailing digit at a time until a prefix matches.
func (m *Map) Lookup(key uint64) (string, bool) {
	for key > 0 {
		if description, ok := m.entries[key]; ok {
			return description, true
		}
		key /= 10
	}
	return "", false
}

// LookupNumber looks up a parsed number by its country code and
// national significant number.
func (m *Map) LookupNumber(number *phonenumbers.PhoneNumber) (string, bool) {
	digits := strconv.Itoa(number.CountryCode) + number.NationalSignificantNumber()
	key, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return "", false
	}
	return m.Lookup(key)
}

// DefaultCarriers is a starter carrier dataset covering the mobile
// ranges of a few large operators. Deployments replace it with their
// own data through New.
func DefaultCarriers() *Map {
	return New(map[uint64]string{
		447:    "UK Mobile",
		4479:   "O2",
		4474:   "Vodafone",
		49151:  "Deutsche Telekom",
		49152:  "Vodafone",
		49176:  "Telefonica",
		417:    "CH Mobile",
		4179:   "Swisscom",
		393:    "IT Mobile",
		39339:  "TIM",
		336:    "FR Mobile",
		337:    "FR Mobile",
		642:    "NZ Mobile",
		614:    "AU Mobile",
		658:    "SG Mobile",
		659:    "SG Mobile",
		5519:   "BR Mobile",
		549:    "AR Mobile",
		521:    "MX Mobile",
		8170:   "JP Mobile",
		8180:   "JP Mobile",
		8190:   "JP Mobile",
		124245: "BaTelCo Mobile",
	})
}
