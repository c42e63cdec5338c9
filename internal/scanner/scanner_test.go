package scanner_test

import (
	"context"
	"path/filepath"
	"testing"

	"gstsort/internal/logging"
	"gstsort/internal/scanner"
	"gstsort/internal/testsupport"
)

func TestScanClassifiesAndGroups(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteSpreadsheet(t, filepath.Join(dir, "GSTR3B-Acme-Maharashtra-April.xlsx"), testsupport.DefaultSpreadsheetSize)
	testsupport.WriteSpreadsheet(t, filepath.Join(dir, "AnnualReport-Acme-Maharashtra-2024.xlsx"), testsupport.DefaultSpreadsheetSize)
	testsupport.WriteLegacySpreadsheet(t, filepath.Join(dir, "Sales-Zen-Kerala-April-June.xls"), testsupport.DefaultSpreadsheetSize)

	result, err := scanner.Scan(context.Background(), dir, logging.NewNop())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(result.Files) != 3 {
		t.Fatalf("files = %d, want 3", len(result.Files))
	}
	if len(result.Clients) != 2 {
		t.Fatalf("clients = %d, want 2", len(result.Clients))
	}

	acme, ok := result.Client("Acme-MH")
	if !ok {
		t.Fatal("missing Acme-MH")
	}
	if acme.Status != "Missing 4 files" {
		t.Fatalf("Acme status = %q", acme.Status)
	}
	if acme.Completeness != 33.3 {
		t.Fatalf("Acme completeness = %v", acme.Completeness)
	}

	if result.Stats.ClassifiedFiles != 3 || result.Stats.UnclassifiedFiles != 0 {
		t.Fatalf("stats = %+v", result.Stats)
	}
}

func TestScanRoutesUnmatchedToVariations(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteSpreadsheet(t, filepath.Join(dir, "ims summary 2024.xlsx"), testsupport.DefaultSpreadsheetSize)

	result, err := scanner.Scan(context.Background(), dir, logging.NewNop())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(result.Clients) != 0 {
		t.Fatal("unmatched file must not create a client")
	}
	if len(result.Variations) != 1 {
		t.Fatalf("variations = %+v", result.Variations)
	}
	v := result.Variations[0]
	if v.Issue != "No matching pattern found" {
		t.Fatalf("issue = %q", v.Issue)
	}
	if v.Suggestion != "ImsReco-ClientName-State-DDMMYYYY.xlsx" {
		t.Fatalf("suggestion = %q", v.Suggestion)
	}
}

func TestScanRejectsBadSignatureAndTinyFiles(t *testing.T) {
	dir := t.TempDir()
	// Correct name, wrong content signature.
	testsupport.WriteFile(t, filepath.Join(dir, "GSTR3B-Acme-Maharashtra-April.xlsx"), testsupport.DefaultSpreadsheetSize)
	// Correct signature, too small to be a workbook.
	testsupport.WriteSpreadsheet(t, filepath.Join(dir, "GSTR3B-Zen-Kerala-May.xlsx"), 100)

	result, err := scanner.Scan(context.Background(), dir, logging.NewNop())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(result.Variations) != 2 {
		t.Fatalf("variations = %+v", result.Variations)
	}
	for _, v := range result.Variations {
		if v.Issue != "Invalid or corrupted spreadsheet file" {
			t.Fatalf("issue = %q", v.Issue)
		}
	}
	if len(result.Files) != 0 || len(result.Clients) != 0 {
		t.Fatal("invalid files must not be recorded or grouped")
	}
}

func TestScanIgnoresForeignExtensions(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "notes.txt"), 2048)
	testsupport.WriteSpreadsheet(t, filepath.Join(dir, "GSTR3B-Acme-Maharashtra-April.xlsx"), testsupport.DefaultSpreadsheetSize)

	result, err := scanner.Scan(context.Background(), dir, logging.NewNop())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(result.Files) != 1 || len(result.Variations) != 0 {
		t.Fatalf("files = %d variations = %d", len(result.Files), len(result.Variations))
	}
}

func TestScanMissingFolderFails(t *testing.T) {
	_, err := scanner.Scan(context.Background(), filepath.Join(t.TempDir(), "nope"), logging.NewNop())
	if err == nil {
		t.Fatal("expected error for missing folder")
	}
}

func TestScanIsPureAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteSpreadsheet(t, filepath.Join(dir, "GSTR3B-Acme-Maharashtra-April.xlsx"), testsupport.DefaultSpreadsheetSize)

	first, err := scanner.Scan(context.Background(), dir, logging.NewNop())
	if err != nil {
		t.Fatalf("first scan: %v", err)
	}
	second, err := scanner.Scan(context.Background(), dir, logging.NewNop())
	if err != nil {
		t.Fatalf("second scan: %v", err)
	}
	if first.Stats != second.Stats {
		t.Fatalf("scan results drifted: %+v vs %+v", first.Stats, second.Stats)
	}
}
