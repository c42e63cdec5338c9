package materialize

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gstsort/internal/faults"
	"gstsort/internal/fileutil"
	"gstsort/internal/logging"
	"gstsort/internal/record"
	"gstsort/internal/registry"
	"gstsort/internal/textutil"
	"gstsort/internal/topology"
)

// Status reports the outcome of one file placement.
type Status string

const (
	StatusSuccess Status = "success"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Result records where one file ended up, or why it did not.
type Result struct {
	Filename      string
	SanitizedName string
	Category      string
	Source        string
	Destination   string
	// Backup holds the path an existing destination file was moved to, or
	// "" when no collision occurred.
	Backup string
	Status Status
	Err    error
}

// Materializer places a client's classified files into a resolved folder map.
type Materializer struct {
	mode   topology.Mode
	now    time.Time
	logger *slog.Logger
}

// New returns a Materializer bound to one run mode and timestamp.
func New(mode topology.Mode, now time.Time, logger *slog.Logger) *Materializer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Materializer{
		mode:   mode,
		now:    now,
		logger: logging.NewComponentLogger(logger, "materialize"),
	}
}

// PlaceClient copies every file of the client into its category folder.
// Individual failures are recorded and the remaining files still go through.
func (m *Materializer) PlaceClient(client *registry.ClientRecord, folders *topology.FolderMap) []Result {
	ordered := client.OrderedFiles()
	results := make([]Result, 0, len(ordered))
	for _, cf := range ordered {
		results = append(results, m.placeFile(cf.File, cf.Category, folders))
	}
	return results
}

func (m *Materializer) placeFile(file *record.FileRecord, category string, folders *topology.FolderMap) Result {
	result := Result{
		Filename: file.Filename,
		Category: category,
		Source:   file.Path,
	}

	destDir, ok := folders.CategoryPath(file.FolderKey)
	if !ok {
		result.Status = StatusFailed
		result.Err = faults.Wrap(faults.ErrValidation, "materialize", "resolve-destination",
			fmt.Sprintf("no folder for key %q", file.FolderKey), nil)
		m.logger.Error("cannot resolve destination folder",
			logging.String("file", file.Filename),
			logging.String("folder_key", file.FolderKey))
		return result
	}

	sanitized := textutil.SanitizeFilename(file.Filename)
	destination := filepath.Join(destDir, sanitized)
	result.SanitizedName = sanitized
	result.Destination = destination

	if _, err := os.Stat(destination); err == nil {
		switch m.mode {
		case topology.ModeResume:
			file.SetSanitizedName(sanitized)
			result.Status = StatusSkipped
			m.logger.Debug("destination exists, skipping",
				logging.String("file", file.Filename),
				logging.String("destination", destination))
			return result
		default:
			backup, err := fileutil.BackupAside(destination, m.now)
			if err != nil {
				result.Status = StatusFailed
				result.Err = faults.Wrap(faults.ErrCopyVerification, "materialize", "backup",
					fmt.Sprintf("cannot back up existing file %s", destination), err)
				m.logger.Error("backup failed", logging.Error(result.Err))
				return result
			}
			result.Backup = backup
			m.logger.Info("existing file backed up",
				logging.String("destination", destination),
				logging.String("backup", backup))
		}
	}

	if err := fileutil.CopyFileVerified(file.Path, destination); err != nil {
		result.Status = StatusFailed
		result.Err = faults.Wrap(faults.ErrCopyVerification, "materialize", "copy",
			fmt.Sprintf("copy %s failed", file.Filename), err)
		m.logger.Error("copy failed", logging.Error(result.Err))
		return result
	}

	file.SetSanitizedName(sanitized)
	result.Status = StatusSuccess
	m.logger.Debug("file placed",
		logging.String("file", file.Filename),
		logging.String("category", category),
		logging.String("destination", destination))
	return result
}
