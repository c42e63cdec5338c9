package scanner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gstsort/internal/classify"
	"gstsort/internal/faults"
	"gstsort/internal/logging"
	"gstsort/internal/record"
	"gstsort/internal/registry"
)

// minSpreadsheetSize rejects files too small to be a real workbook.
const minSpreadsheetSize = 1024

var (
	zipSignature = []byte{0x50, 0x4b, 0x03, 0x04}
	oleSignature = []byte{0xd0, 0xcf, 0x11, 0xe0}
)

var spreadsheetExtensions = map[string]struct{}{
	".xlsx": {},
	".xls":  {},
	".xlsm": {},
}

// ScanResult aggregates everything one scan produced. It is built once and
// never mutated afterward; organization reads it.
type ScanResult struct {
	SourceDir  string
	Files      []*record.FileRecord
	Clients    []*registry.ClientRecord
	Issues     []registry.Issue
	Variations []record.Variation
	Errors     []string
	Stats      Stats
}

// Client returns the record for key, if present.
func (r *ScanResult) Client(key string) (*registry.ClientRecord, bool) {
	for _, c := range r.Clients {
		if c.Key == key {
			return c, true
		}
	}
	return nil, false
}

// Stats summarizes a scan for display.
type Stats struct {
	TotalFiles         int
	ClassifiedFiles    int
	UnclassifiedFiles  int
	TotalClients       int
	CompleteClients    int
	TotalSize          int64
	ClassificationRate float64
	CompletionRate     float64
}

// Scan reads dir and returns a fresh ScanResult. Per-file problems are
// recorded as variations or errors; only an unreadable source folder fails
// the call.
func Scan(ctx context.Context, dir string, logger *slog.Logger) (*ScanResult, error) {
	log := logging.NewComponentLogger(logger, "scanner")

	info, err := os.Stat(dir)
	if err != nil {
		return nil, faults.Wrap(faults.ErrNotFound, "scanning", "open source folder", dir, err)
	}
	if !info.IsDir() {
		return nil, faults.Wrap(faults.ErrValidation, "scanning", "open source folder", fmt.Sprintf("%s is not a directory", dir), nil)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, faults.Wrap(faults.ErrScanIO, "scanning", "list source folder", dir, err)
	}

	result := &ScanResult{SourceDir: dir}
	reg := registry.New(logger)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := spreadsheetExtensions[ext]; !ok {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		scanFile(path, ext, reg, result, log)
	}

	reg.AnalyzeCompleteness()
	result.Clients = reg.Clients()
	result.Issues = reg.Validate()
	result.Stats = buildStats(result)

	log.Info("scan complete",
		logging.Int("files", result.Stats.TotalFiles),
		logging.Int("clients", result.Stats.TotalClients),
		logging.Int("variations", len(result.Variations)))

	return result, nil
}

func scanFile(path, ext string, reg *registry.Registry, result *ScanResult, log *slog.Logger) {
	info, err := os.Stat(path)
	if err != nil {
		result.Variations = append(result.Variations, record.Variation{
			Filename: filepath.Base(path),
			Path:     path,
			Issue:    fmt.Sprintf("stat failed: %v", err),
		})
		result.Errors = append(result.Errors, fmt.Sprintf("stat %s: %v", filepath.Base(path), err))
		return
	}

	if ok, err := hasSpreadsheetSignature(path, info.Size()); err != nil {
		result.Variations = append(result.Variations, record.Variation{
			Filename: filepath.Base(path),
			Path:     path,
			Issue:    fmt.Sprintf("signature read failed: %v", err),
			Size:     info.Size(),
		})
		result.Errors = append(result.Errors, fmt.Sprintf("read %s: %v", filepath.Base(path), err))
		return
	} else if !ok {
		result.Variations = append(result.Variations, record.Variation{
			Filename: filepath.Base(path),
			Path:     path,
			Issue:    "Invalid or corrupted spreadsheet file",
			Size:     info.Size(),
		})
		return
	}

	classified := classify.Classify(info.Name())
	rec := &record.FileRecord{
		Filename:     info.Name(),
		Path:         path,
		Size:         info.Size(),
		Modified:     info.ModTime(),
		Created:      info.ModTime(), // birth time is not portably available
		Extension:    ext,
		Classified:   classified.Classified,
		Rule:         classified.Rule,
		Category:     classified.Category,
		FolderKey:    classified.FolderKey,
		Client:       classified.Client,
		Jurisdiction: classified.Jurisdiction,
		Metadata:     classified.Metadata,
		Warnings:     classified.Warnings,
	}
	result.Files = append(result.Files, rec)

	for _, warning := range classified.Warnings {
		log.Warn("classification warning",
			logging.String("file", rec.Filename),
			logging.String("warning", warning))
	}

	if !classified.Classified || classified.Client == "" || classified.Jurisdiction == "" {
		issue := "No matching pattern found"
		if classified.Classified {
			issue = "Pattern matched but client or jurisdiction missing"
		}
		result.Variations = append(result.Variations, record.Variation{
			Filename:   rec.Filename,
			Path:       path,
			Issue:      issue,
			Size:       rec.Size,
			Suggestion: classified.Suggestion,
		})
		return
	}

	if err := reg.AddFile(rec); err != nil {
		result.Errors = append(result.Errors, err.Error())
	}
}

// hasSpreadsheetSignature reads the first bytes of path and checks for the
// ZIP (xlsx/xlsm) or OLE (xls) magic. Small files fail outright.
func hasSpreadsheetSignature(path string, size int64) (bool, error) {
	if size < minSpreadsheetSize {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	header := make([]byte, 8)
	if _, err := io.ReadFull(f, header); err != nil {
		return false, err
	}
	return bytes.HasPrefix(header, zipSignature) || bytes.HasPrefix(header, oleSignature), nil
}

func buildStats(result *ScanResult) Stats {
	stats := Stats{
		TotalFiles:   len(result.Files),
		TotalClients: len(result.Clients),
	}
	for _, f := range result.Files {
		stats.TotalSize += f.Size
		if f.Classified {
			stats.ClassifiedFiles++
		}
	}
	stats.UnclassifiedFiles = stats.TotalFiles - stats.ClassifiedFiles
	for _, c := range result.Clients {
		if c.Status == "Complete" {
			stats.CompleteClients++
		}
	}
	if stats.TotalFiles > 0 {
		stats.ClassificationRate = round1(float64(stats.ClassifiedFiles) / float64(stats.TotalFiles) * 100)
	}
	if stats.TotalClients > 0 {
		stats.CompletionRate = round1(float64(stats.CompleteClients) / float64(stats.TotalClients) * 100)
	}
	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
