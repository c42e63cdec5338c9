// Package jurisdiction maps free-text Indian state and union territory
// names to their short GST codes.
//
// Lookup is exact after case folding and whitespace trimming. Unknown names
// fall back to a deterministic abbreviation so two spellings that differ
// only in case or surrounding space always produce the same code. Callers
// that care about fallback use should go through Lookup and log the miss.
package jurisdiction

import (
	"strings"

	"golang.org/x/text/cases"
)

// codes maps folded jurisdiction names to their two-letter codes, including
// the historical synonyms still seen in filings.
var codes = map[string]string{
	"andhra pradesh":    "AP",
	"arunachal pradesh": "AR",
	"assam":             "AS",
	"bihar":             "BR",
	"chhattisgarh":      "CG",
	"goa":               "GA",
	"gujarat":           "GJ",
	"haryana":           "HR",
	"himachal pradesh":  "HP",
	"jharkhand":         "JH",
	"karnataka":         "KA",
	"kerala":            "KL",
	"madhya pradesh":    "MP",
	"maharashtra":       "MH",
	"manipur":           "MN",
	"meghalaya":         "ML",
	"mizoram":           "MZ",
	"nagaland":          "NL",
	"odisha":            "OD",
	"orissa":            "OD",
	"punjab":            "PB",
	"rajasthan":         "RJ",
	"sikkim":            "SK",
	"tamil nadu":        "TN",
	"telangana":         "TS",
	"tripura":           "TR",
	"uttar pradesh":     "UP",
	"uttarakhand":       "UK",
	"west bengal":       "WB",

	"andaman and nicobar islands":              "AN",
	"chandigarh":                               "CH",
	"dadra and nagar haveli and daman and diu": "DD",
	"delhi":                                    "DL",
	"national capital territory of delhi":      "DL",
	"jammu and kashmir":                        "JK",
	"ladakh":                                   "LA",
	"lakshadweep":                              "LD",
	"puducherry":                               "PY",
	"pondicherry":                              "PY",
}

var fold = cases.Fold()

// Normalize returns the canonical code for name, using the deterministic
// fallback when the name is unknown.
func Normalize(name string) string {
	code, _ := Lookup(name)
	return code
}

// Lookup returns the code for name and whether it came from the known
// table. An unknown multi-word name abbreviates to the uppercase initials
// of its first two words; a single word abbreviates to its first three
// characters uppercased.
func Lookup(name string) (string, bool) {
	folded := fold.String(strings.TrimSpace(name))
	if folded == "" {
		return "", false
	}
	if code, ok := codes[folded]; ok {
		return code, true
	}

	words := strings.Fields(folded)
	if len(words) >= 2 {
		return strings.ToUpper(initial(words[0]) + initial(words[1])), false
	}

	runes := []rune(words[0])
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes)), false
}

func initial(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return ""
	}
	return string(runes[0])
}
