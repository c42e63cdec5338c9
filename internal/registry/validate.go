package registry

import (
	"strings"

	"gstsort/internal/classify"
)

// Issue describes a problem found while sweeping the registry after
// analysis.
type Issue struct {
	Type     string
	Client   string
	Severity string
	Detail   string
}

// criticalCategories must be present before the downstream reports are
// worth generating.
var criticalCategories = []string{
	classify.CategoryAnnualReport,
	classify.CategoryGSTR3BExport,
}

// Validate sweeps analyzed records for empty names and missing critical
// categories. Run AnalyzeCompleteness first.
func (r *Registry) Validate() []Issue {
	var issues []Issue

	for _, client := range r.Clients() {
		if strings.TrimSpace(client.Client) == "" {
			issues = append(issues, Issue{
				Type:     "Empty Client Name",
				Client:   client.Key,
				Severity: "Error",
			})
		}
		if strings.TrimSpace(client.Jurisdiction) == "" {
			issues = append(issues, Issue{
				Type:     "Empty Jurisdiction Name",
				Client:   client.Key,
				Severity: "Error",
			})
		}

		var missingCritical []string
		for _, critical := range criticalCategories {
			for _, missing := range client.Missing {
				if missing == critical {
					missingCritical = append(missingCritical, critical)
				}
			}
		}
		if len(missingCritical) > 0 {
			issues = append(issues, Issue{
				Type:     "Missing Critical Files",
				Client:   client.Key,
				Severity: "Warning",
				Detail:   strings.Join(missingCritical, ", "),
			})
		}
	}

	return issues
}
