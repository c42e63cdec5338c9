package materialize

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gstsort/internal/classify"
	"gstsort/internal/logging"
	"gstsort/internal/record"
	"gstsort/internal/registry"
	"gstsort/internal/testsupport"
	"gstsort/internal/topology"
)

var fixedTime = time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

func buildFolders(t *testing.T, mode string) *topology.FolderMap {
	t.Helper()
	cfg := testsupport.NewConfig(t, testsupport.WithMode(mode))
	builder, err := topology.NewBuilder(cfg, fixedTime, logging.NewNop())
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}
	folders, err := builder.BuildClient(&registry.ClientRecord{
		Key:    "Acme-MH",
		Client: "Acme",
		Code:   "MH",
	})
	if err != nil {
		t.Fatalf("BuildClient failed: %v", err)
	}
	return folders
}

func newFileRecord(t *testing.T, dir, name, category, folderKey string) *record.FileRecord {
	t.Helper()
	path := filepath.Join(dir, name)
	testsupport.WriteSpreadsheet(t, path, testsupport.DefaultSpreadsheetSize)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat fixture: %v", err)
	}
	return &record.FileRecord{
		Filename:  name,
		Path:      path,
		Size:      info.Size(),
		Extension: filepath.Ext(name),
		Category:  category,
		FolderKey: folderKey,
	}
}

func newClientRecord(files map[string]*record.FileRecord) *registry.ClientRecord {
	grouped := make(map[string][]*record.FileRecord, len(files))
	for category, file := range files {
		grouped[category] = append(grouped[category], file)
	}
	return &registry.ClientRecord{
		Key:    "Acme-MH",
		Client: "Acme",
		Code:   "MH",
		Files:  grouped,
	}
}

func TestPlaceClientCopiesIntoCategoryFolders(t *testing.T) {
	source := t.TempDir()
	folders := buildFolders(t, "fresh")

	reco := newFileRecord(t, source, "GSTR-2B-Reco-Acme-MH-FY24.xlsx", classify.CategoryGSTR2BReco, classify.FolderKeyITC)
	annual := newFileRecord(t, source, "AnnualReport-Acme-MH-FY24.xlsx", classify.CategoryAnnualReport, classify.FolderKeyVersion)
	client := newClientRecord(map[string]*record.FileRecord{
		classify.CategoryGSTR2BReco:   reco,
		classify.CategoryAnnualReport: annual,
	})

	m := New(topology.ModeFresh, fixedTime, logging.NewNop())
	results := m.PlaceClient(client, folders)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, result := range results {
		if result.Status != StatusSuccess {
			t.Fatalf("result %s: status %s, err %v", result.Filename, result.Status, result.Err)
		}
		if _, err := os.Stat(result.Destination); err != nil {
			t.Fatalf("destination missing: %v", err)
		}
	}

	itcDir, _ := folders.CategoryPath(classify.FolderKeyITC)
	if _, err := os.Stat(filepath.Join(itcDir, "GSTR-2B-Reco-Acme-MH-FY24.xlsx")); err != nil {
		t.Fatalf("reco not in ITC folder: %v", err)
	}
	if _, err := os.Stat(filepath.Join(folders.Version, "AnnualReport-Acme-MH-FY24.xlsx")); err != nil {
		t.Fatalf("annual report should land in version folder: %v", err)
	}
	if reco.SanitizedName() == "" || annual.SanitizedName() == "" {
		t.Fatal("sanitized names not recorded after successful copy")
	}
}

func TestFreshBacksUpExistingDestination(t *testing.T) {
	source := t.TempDir()
	folders := buildFolders(t, "fresh")

	file := newFileRecord(t, source, "Sales-Acme-MH-FY24.xlsx", classify.CategorySales, classify.FolderKeySales)
	salesDir, _ := folders.CategoryPath(classify.FolderKeySales)
	existing := filepath.Join(salesDir, "Sales-Acme-MH-FY24.xlsx")
	if err := os.WriteFile(existing, []byte("old contents"), 0o644); err != nil {
		t.Fatalf("seed existing file: %v", err)
	}

	m := New(topology.ModeFresh, fixedTime, logging.NewNop())
	results := m.PlaceClient(newClientRecord(map[string]*record.FileRecord{
		classify.CategorySales: file,
	}), folders)

	result := results[0]
	if result.Status != StatusSuccess {
		t.Fatalf("status = %s, err %v", result.Status, result.Err)
	}
	if result.Backup == "" {
		t.Fatal("expected a backup path")
	}
	if !strings.Contains(filepath.Base(result.Backup), "_backup_150325_1430") {
		t.Fatalf("backup name = %q", filepath.Base(result.Backup))
	}
	old, err := os.ReadFile(result.Backup)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(old) != "old contents" {
		t.Fatal("backup does not preserve original bytes")
	}
	info, err := os.Stat(existing)
	if err != nil {
		t.Fatalf("destination missing after copy: %v", err)
	}
	if info.Size() != testsupport.DefaultSpreadsheetSize {
		t.Fatalf("destination size = %d, want %d", info.Size(), int64(testsupport.DefaultSpreadsheetSize))
	}
}

func TestResumeSkipsExistingDestination(t *testing.T) {
	source := t.TempDir()
	folders := buildFolders(t, "fresh")

	file := newFileRecord(t, source, "Sales-Acme-MH-FY24.xlsx", classify.CategorySales, classify.FolderKeySales)
	salesDir, _ := folders.CategoryPath(classify.FolderKeySales)
	existing := filepath.Join(salesDir, "Sales-Acme-MH-FY24.xlsx")
	if err := os.WriteFile(existing, []byte("already organized"), 0o644); err != nil {
		t.Fatalf("seed existing file: %v", err)
	}

	m := New(topology.ModeResume, fixedTime, logging.NewNop())
	results := m.PlaceClient(newClientRecord(map[string]*record.FileRecord{
		classify.CategorySales: file,
	}), folders)

	result := results[0]
	if result.Status != StatusSkipped {
		t.Fatalf("status = %s, want skipped", result.Status)
	}
	kept, err := os.ReadFile(existing)
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}
	if string(kept) != "already organized" {
		t.Fatal("resume must never overwrite an existing destination")
	}
}

func TestMissingSourceFailsSoft(t *testing.T) {
	source := t.TempDir()
	folders := buildFolders(t, "fresh")

	good := newFileRecord(t, source, "Sales-Acme-MH-FY24.xlsx", classify.CategorySales, classify.FolderKeySales)
	gone := newFileRecord(t, source, "GSTR-2B-Reco-Acme-MH-FY24.xlsx", classify.CategoryGSTR2BReco, classify.FolderKeyITC)
	if err := os.Remove(gone.Path); err != nil {
		t.Fatalf("remove fixture: %v", err)
	}

	m := New(topology.ModeFresh, fixedTime, logging.NewNop())
	results := m.PlaceClient(newClientRecord(map[string]*record.FileRecord{
		classify.CategorySales:      good,
		classify.CategoryGSTR2BReco: gone,
	}), folders)

	var succeeded, failed int
	for _, result := range results {
		switch result.Status {
		case StatusSuccess:
			succeeded++
		case StatusFailed:
			failed++
			if result.Err == nil {
				t.Fatal("failed result carries no error")
			}
		}
	}
	if succeeded != 1 || failed != 1 {
		t.Fatalf("succeeded=%d failed=%d, want 1 and 1", succeeded, failed)
	}
}

func TestFilenamesAreSanitizedOnCopy(t *testing.T) {
	source := t.TempDir()
	folders := buildFolders(t, "fresh")

	file := newFileRecord(t, source, "Sales-Acme Private-MH-FY24.xlsx", classify.CategorySales, classify.FolderKeySales)

	m := New(topology.ModeFresh, fixedTime, logging.NewNop())
	results := m.PlaceClient(newClientRecord(map[string]*record.FileRecord{
		classify.CategorySales: file,
	}), folders)

	result := results[0]
	if result.Status != StatusSuccess {
		t.Fatalf("status = %s, err %v", result.Status, result.Err)
	}
	if result.SanitizedName != "Sales-Acme_Pvt-MH-FY24.xlsx" {
		t.Fatalf("sanitized name = %q", result.SanitizedName)
	}
	if filepath.Base(result.Destination) != result.SanitizedName {
		t.Fatalf("destination %q does not use sanitized name", result.Destination)
	}
}
