package jurisdiction_test

import (
	"testing"

	"gstsort/internal/jurisdiction"
)

func TestLookupKnownNames(t *testing.T) {
	cases := map[string]string{
		"Maharashtra":                         "MH",
		"maharashtra":                         "MH",
		"  Tamil Nadu  ":                      "TN",
		"ORISSA":                              "OD",
		"Odisha":                              "OD",
		"Pondicherry":                         "PY",
		"Puducherry":                          "PY",
		"National Capital Territory of Delhi": "DL",
		"Delhi":                               "DL",
	}
	for name, want := range cases {
		code, known := jurisdiction.Lookup(name)
		if !known {
			t.Fatalf("%q should be a known jurisdiction", name)
		}
		if code != want {
			t.Fatalf("Lookup(%q) = %q, want %q", name, code, want)
		}
	}
}

func TestLookupFallbackSingleWord(t *testing.T) {
	code, known := jurisdiction.Lookup("Timbuktu")
	if known {
		t.Fatal("Timbuktu must not be a known jurisdiction")
	}
	if code != "TIM" {
		t.Fatalf("fallback = %q, want TIM", code)
	}
}

func TestLookupFallbackMultiWord(t *testing.T) {
	code, known := jurisdiction.Lookup("New Atlantis Province")
	if known {
		t.Fatal("unexpected table hit")
	}
	if code != "NA" {
		t.Fatalf("fallback = %q, want NA", code)
	}
}

func TestNormalizeDeterministicUnderCaseAndSpace(t *testing.T) {
	variants := []string{"Timbuktu", "timbuktu", "  TIMBUKTU  ", "TiMbUkTu"}
	want := jurisdiction.Normalize(variants[0])
	for _, v := range variants[1:] {
		if got := jurisdiction.Normalize(v); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", v, got, want)
		}
	}
}

func TestLookupShortAndEmptyInput(t *testing.T) {
	if code, _ := jurisdiction.Lookup("Io"); code != "IO" {
		t.Fatalf("short fallback = %q, want IO", code)
	}
	if code, known := jurisdiction.Lookup("   "); code != "" || known {
		t.Fatalf("blank input should yield empty code, got %q known=%v", code, known)
	}
}
