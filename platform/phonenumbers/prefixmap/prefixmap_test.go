package prefixmap

import (
	"testing"

	"phonenumber_backend/platform/phonenumbers"
)

func TestLookupLongestPrefix(t *testing.T) {
	m := New(map[uint64]string{
		44:   "United Kingdom",
		4479: "O2",
	})
	if got, ok := m.Lookup(447912345678); !ok || got != "O2" {
		t.Errorf("Lookup = %q %v, want O2", got, ok)
	}
	if got, ok := m.Lookup(442070313000); !ok || got != "United Kingdom" {
		t.Errorf("Lookup = %q %v, want United Kingdom", got, ok)
	}
	if _, ok := m.Lookup(12345); ok {
		t.Error("Lookup matched with no prefix present")
	}
}

func TestLookupNumber(t *testing.T) {
	u := phonenumbers.Default()
	n, err := u.Parse("+44 7912 345 678", "ZZ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	carrier, ok := DefaultCarriers().LookupNumber(n)
	if !ok || carrier != "O2" {
		t.Errorf("LookupNumber = %q %v, want O2", carrier, ok)
	}
}

func TestNewCopiesInput(t *testing.T) {
	entries := map[uint64]string{44: "United Kingdom"}
	m := New(entries)
	entries[44] = "changed"
	if got, _ := m.Lookup(44); got != "United Kingdom" {
		t.Errorf("Lookup = %q, map not copied", got)
	}
}
