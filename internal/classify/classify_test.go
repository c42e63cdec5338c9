package classify_test

import (
	"strings"
	"testing"

	"gstsort/internal/classify"
)

func TestClassifyKnownPatterns(t *testing.T) {
	cases := []struct {
		filename     string
		rule         string
		category     string
		folderKey    string
		client       string
		jurisdiction string
		metadata     map[string]string
	}{
		{
			filename:     "GSTR-2B-Reco-Acme-Maharashtra-Q1 2024.xlsx",
			rule:         "GSTR-2B-Reco",
			category:     classify.CategoryGSTR2BReco,
			folderKey:    classify.FolderKeyITC,
			client:       "Acme",
			jurisdiction: "Maharashtra",
			metadata:     map[string]string{"period": "Q1 2024"},
		},
		{
			filename:     "ImsReco-Acme-Maharashtra-01042024.xlsx",
			rule:         "ImsReco",
			category:     classify.CategoryIMSReco,
			folderKey:    classify.FolderKeyITC,
			client:       "Acme",
			jurisdiction: "Maharashtra",
			metadata:     map[string]string{"date": "01042024"},
		},
		{
			filename:     "GSTR3B-Acme-Maharashtra-April.xlsx",
			rule:         "GSTR3B",
			category:     classify.CategoryGSTR3BExport,
			folderKey:    classify.FolderKeyGSTR3B,
			client:       "Acme",
			jurisdiction: "Maharashtra",
			metadata:     map[string]string{"month": "April"},
		},
		{
			filename:     "Sales-Acme-Maharashtra-April-June.xls",
			rule:         "Sales",
			category:     classify.CategorySales,
			folderKey:    classify.FolderKeySales,
			client:       "Acme",
			jurisdiction: "Maharashtra",
			metadata:     map[string]string{"start_month": "April", "end_month": "June"},
		},
		{
			filename:     "salesreco-acme-kerala-FY24.xlsx",
			rule:         "SalesReco",
			category:     classify.CategorySalesReco,
			folderKey:    classify.FolderKeySales,
			client:       "acme",
			jurisdiction: "kerala",
			metadata:     map[string]string{"period": "FY24"},
		},
		{
			filename:     "AnnualReport-Acme-Maharashtra-2024.xlsx",
			rule:         "AnnualReport",
			category:     classify.CategoryAnnualReport,
			folderKey:    classify.FolderKeyVersion,
			client:       "Acme",
			jurisdiction: "Maharashtra",
			metadata:     map[string]string{"year": "2024"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			result := classify.Classify(tc.filename)
			if !result.Classified {
				t.Fatalf("expected classification, got suggestion %q", result.Suggestion)
			}
			if result.Rule != tc.rule {
				t.Fatalf("rule = %q, want %q", result.Rule, tc.rule)
			}
			if result.Category != tc.category || result.FolderKey != tc.folderKey {
				t.Fatalf("category/folder = %q/%q, want %q/%q", result.Category, result.FolderKey, tc.category, tc.folderKey)
			}
			if result.Client != tc.client || result.Jurisdiction != tc.jurisdiction {
				t.Fatalf("client/jurisdiction = %q/%q, want %q/%q", result.Client, result.Jurisdiction, tc.client, tc.jurisdiction)
			}
			if result.Client == "" || result.Jurisdiction == "" {
				t.Fatal("classified result must carry client and jurisdiction")
			}
			for key, want := range tc.metadata {
				if got := result.Metadata[key]; got != want {
					t.Fatalf("metadata[%s] = %q, want %q", key, got, want)
				}
			}
		})
	}
}

func TestClassifyToleratesCounterPrefix(t *testing.T) {
	result := classify.Classify("(2) GSTR3B-Acme-Maharashtra-May.xlsx")
	if !result.Classified || result.Rule != "GSTR3B" {
		t.Fatalf("counter prefix broke matching: %+v", result)
	}
	if result.Metadata["month"] != "May" {
		t.Fatalf("metadata month = %q", result.Metadata["month"])
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// "SalesReco-..." must reach the SalesReco rule, not be swallowed by the
	// four-segment Sales rule earlier in the bank.
	result := classify.Classify("SalesReco-Acme-Maharashtra-H1.xlsx")
	if result.Rule != "SalesReco" {
		t.Fatalf("rule = %q, want SalesReco", result.Rule)
	}
}

func TestClassifySoftValidationWarns(t *testing.T) {
	result := classify.Classify("GSTR3B-A-Maharashtra-April.xlsx")
	if !result.Classified {
		t.Fatal("soft validation must not block classification")
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected a warning for single-character client name")
	}
	if !strings.Contains(result.Warnings[0], "client name issue") {
		t.Fatalf("warning = %q", result.Warnings[0])
	}
}

func TestClassifyMissSuggestsPattern(t *testing.T) {
	cases := map[string]string{
		"gstr2b_acme.xlsx":          "GSTR-2B-Reco-ClientName-State-Period.xlsx",
		"ims_dump.xlsx":             "ImsReco-ClientName-State-DDMMYYYY.xlsx",
		"gstr 3b april.xlsx":        "GSTR3B-ClientName-State-Month.xlsx",
		"sales reco draft.xlsx":     "SalesReco-ClientName-State-Period.xlsx",
		"sales figures.xlsx":        "Sales-ClientName-State-StartMonth-EndMonth.xlsx",
		"annual statement.xlsx":     "AnnualReport-ClientName-State-Year.xlsx",
		"quarterly-notes-2024.xlsx": "Check file naming convention",
	}
	for filename, want := range cases {
		result := classify.Classify(filename)
		if result.Classified {
			t.Fatalf("%s unexpectedly classified as %s", filename, result.Rule)
		}
		if result.Suggestion != want {
			t.Fatalf("%s suggestion = %q, want %q", filename, result.Suggestion, want)
		}
	}
}

func TestCategoriesOrderIsStable(t *testing.T) {
	names := make([]string, 0, 6)
	for _, c := range classify.Categories() {
		names = append(names, c.Name)
	}
	want := []string{
		classify.CategoryGSTR2BReco,
		classify.CategoryIMSReco,
		classify.CategoryGSTR3BExport,
		classify.CategorySales,
		classify.CategorySalesReco,
		classify.CategoryAnnualReport,
	}
	if strings.Join(names, "|") != strings.Join(want, "|") {
		t.Fatalf("category order changed: %v", names)
	}
	repeatable, ok := classify.CategoryByName(classify.CategoryGSTR3BExport)
	if !ok || !repeatable.Repeatable {
		t.Fatal("GSTR-3B Export must be the repeatable category")
	}
}
