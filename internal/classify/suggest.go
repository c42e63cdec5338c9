package classify

import "strings"

// suggestPattern sniffs keywords to guess which naming convention an
// unmatched filename was aiming for. Order matters: the more specific
// combinations are checked before their prefixes.
func suggestPattern(filename string) string {
	lowered := strings.ToLower(filename)
	contains := func(substr string) bool { return strings.Contains(lowered, substr) }

	switch {
	case contains("gstr") && contains("2b"):
		return "GSTR-2B-Reco-ClientName-State-Period.xlsx"
	case contains("ims"):
		return "ImsReco-ClientName-State-DDMMYYYY.xlsx"
	case contains("gstr") && contains("3b"):
		return "GSTR3B-ClientName-State-Month.xlsx"
	case contains("sales") && contains("reco"):
		return "SalesReco-ClientName-State-Period.xlsx"
	case contains("sales"):
		return "Sales-ClientName-State-StartMonth-EndMonth.xlsx"
	case contains("annual"):
		return "AnnualReport-ClientName-State-Year.xlsx"
	default:
		return "Check file naming convention"
	}
}
