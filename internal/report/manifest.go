package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"gstsort/internal/classify"
	"gstsort/internal/faults"
	"gstsort/internal/materialize"
	"gstsort/internal/registry"
	"gstsort/internal/topology"
)

const manifestRule = "=================================================="

// ManifestName returns the manifest filename for a client. The leading
// underscore keeps it sorted ahead of the spreadsheets it describes.
func ManifestName(client *registry.ClientRecord) string {
	return fmt.Sprintf("_Organization_Report_%s_%s.txt", client.Client, client.Jurisdiction)
}

// WriteManifest writes the per-client organization manifest into the version
// folder and returns its path. Folder paths inside the manifest are relative
// to the run folder so the file stays meaningful if the tree is moved.
func WriteManifest(client *registry.ClientRecord, folders *topology.FolderMap,
	results []materialize.Result, mode topology.Mode, now time.Time) (string, error) {

	path := filepath.Join(folders.Version, ManifestName(client))

	var b strings.Builder
	fmt.Fprintf(&b, "GST FILE ORGANIZATION REPORT\n%s\n", manifestRule)
	fmt.Fprintf(&b, "Generated: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Client: %s\n", client.Client)
	fmt.Fprintf(&b, "Jurisdiction: %s (%s)\n", client.Jurisdiction, client.Code)
	fmt.Fprintf(&b, "Processing Mode: %s\n", mode)

	fmt.Fprintf(&b, "\nFOLDER STRUCTURE:\n%s\n", manifestRule)
	for _, row := range folderRows(folders) {
		rel, err := filepath.Rel(folders.Run, row.path)
		if err != nil {
			rel = row.path
		}
		fmt.Fprintf(&b, "%s: %s\n", row.label, rel)
	}

	fmt.Fprintf(&b, "\n\nFILES ORGANIZED:\n%s\n", manifestRule)
	for _, category := range classify.Categories() {
		files := client.CategoryFiles(category.Name)
		if len(files) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s (%d files):\n", category.Name, len(files))
		for _, file := range files {
			fmt.Fprintf(&b, "  - %s\n", file.DisplayName())
		}
	}

	var copied, skipped, failed int
	for _, result := range results {
		switch result.Status {
		case materialize.StatusSuccess:
			copied++
		case materialize.StatusSkipped:
			skipped++
		case materialize.StatusFailed:
			failed++
		}
	}
	fmt.Fprintf(&b, "\n\nSTATISTICS:\n%s\n", manifestRule)
	fmt.Fprintf(&b, "Total Files: %d\n", client.FileCount)
	fmt.Fprintf(&b, "Successfully Copied: %d\n", copied)
	fmt.Fprintf(&b, "Skipped: %d\n", skipped)
	fmt.Fprintf(&b, "Failed: %d\n", failed)
	fmt.Fprintf(&b, "Total Size: %s\n", humanize.Bytes(uint64(client.TotalSize)))
	fmt.Fprintf(&b, "Completeness: %.1f%%\n", client.Completeness)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", faults.Wrap(faults.ErrScanIO, "report", "write-manifest",
			fmt.Sprintf("cannot write manifest for %s", client.Key), err)
	}
	return path, nil
}

type folderRow struct {
	label string
	path  string
}

func folderRows(folders *topology.FolderMap) []folderRow {
	rows := []folderRow{{"VERSION", folders.Version}}
	for _, key := range []string{classify.FolderKeyGSTR3B, classify.FolderKeyITC, classify.FolderKeySales} {
		if path, ok := folders.CategoryPath(key); ok {
			rows = append(rows, folderRow{strings.ToUpper(key), path})
		}
	}
	return rows
}
