package topology

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gstsort/internal/classify"
	"gstsort/internal/config"
	"gstsort/internal/faults"
	"gstsort/internal/logging"
	"gstsort/internal/registry"
	"gstsort/internal/textutil"
)

// Mode selects how the run folder is chosen.
type Mode string

const (
	ModeFresh  Mode = "fresh"
	ModeRerun  Mode = "rerun"
	ModeResume Mode = "resume"
)

// ParseMode converts a configuration string into a Mode.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeFresh:
		return ModeFresh, nil
	case ModeRerun:
		return ModeRerun, nil
	case ModeResume:
		return ModeResume, nil
	default:
		return "", faults.Wrap(faults.ErrConfiguration, "topology", "parse-mode",
			fmt.Sprintf("unknown mode %q (expected fresh, rerun, or resume)", value), nil)
	}
}

const (
	// RunFolderPrefix identifies run folders under the target root.
	RunFolderPrefix = "Annual Statement-"

	runTimestampFormat = "020106 1504"

	versionFolderPrefix = "Version-"

	// minClientChars is the smallest client portion worth keeping when a
	// folder name is truncated; below this the whole key is cut instead.
	minClientChars = 6
)

// categoryDirs lists the category subfolders created under every version
// folder, in creation order. FolderKeyVersion has no subfolder; its files
// land in the version folder itself.
var categoryDirs = []struct {
	Key  string
	Name string
}{
	{classify.FolderKeyGSTR3B, "GSTR-3B Exports"},
	{classify.FolderKeyITC, "Other ITC related files"},
	{classify.FolderKeySales, "Sales related files"},
}

// FolderMap holds the resolved absolute paths for one client in one run.
type FolderMap struct {
	Run     string
	Client  string
	Version string
	// Categories maps classify folder keys to category subfolder paths.
	Categories map[string]string
}

// CategoryPath resolves a classify folder key to a destination directory.
// FolderKeyVersion resolves to the version folder.
func (f *FolderMap) CategoryPath(folderKey string) (string, bool) {
	if folderKey == classify.FolderKeyVersion {
		return f.Version, true
	}
	path, ok := f.Categories[folderKey]
	return path, ok
}

// Builder creates the output folder tree. A Builder is bound to one mode and
// one timestamp, so repeated BuildClient calls within a run are idempotent.
type Builder struct {
	targetRoot        string
	mode              Mode
	includeClientName bool
	clientOverrides   map[string]bool
	maxKeyLength      int
	timestamp         time.Time
	logger            *slog.Logger

	runFolder string
	// folderOwners detects two client keys truncating to the same folder
	// name, which would silently merge their output.
	folderOwners map[string]string
}

// NewBuilder validates the target root and mode up front so a run never
// fails halfway through for a reason known at startup.
func NewBuilder(cfg *config.Config, now time.Time, logger *slog.Logger) (*Builder, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	mode, err := ParseMode(cfg.Organize.Mode)
	if err != nil {
		return nil, err
	}

	root := cfg.Paths.TargetDir
	if strings.TrimSpace(root) == "" {
		return nil, faults.Wrap(faults.ErrConfiguration, "topology", "target-root",
			"target directory is not configured", nil)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, faults.Wrap(faults.ErrConfiguration, "topology", "target-root",
			fmt.Sprintf("cannot create target root %s", root), err)
	}
	probe, err := os.CreateTemp(root, ".gstsort-probe-*")
	if err != nil {
		return nil, faults.Wrap(faults.ErrConfiguration, "topology", "target-root",
			fmt.Sprintf("target root %s is not writable", root), err)
	}
	probe.Close()
	os.Remove(probe.Name())

	maxLength := cfg.Organize.ClientFolderMaxLength
	if maxLength <= 0 {
		maxLength = 35
	}

	return &Builder{
		targetRoot:        root,
		mode:              mode,
		includeClientName: cfg.Organize.IncludeClientName,
		clientOverrides:   cfg.Organize.ClientOverrides,
		maxKeyLength:      maxLength,
		timestamp:         now,
		logger:            logging.NewComponentLogger(logger, "topology"),
		folderOwners:      make(map[string]string),
	}, nil
}

// Mode reports the mode the builder was constructed with.
func (b *Builder) Mode() Mode { return b.mode }

// RunFolder resolves and creates the run folder for this builder's mode.
// The result is cached; every call within a run returns the same path.
func (b *Builder) RunFolder() (string, error) {
	if b.runFolder != "" {
		return b.runFolder, nil
	}

	path := filepath.Join(b.targetRoot, RunFolderPrefix+b.timestamp.Format(runTimestampFormat))

	if b.mode == ModeRerun || b.mode == ModeResume {
		existing, err := b.latestRunFolder()
		if err != nil {
			return "", err
		}
		if existing != "" {
			path = existing
		} else {
			b.logger.Warn("no existing run folder found, starting fresh",
				logging.String("mode", string(b.mode)),
				logging.String("target_root", b.targetRoot))
		}
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", faults.Wrap(faults.ErrFolderCreation, "topology", "run-folder",
			fmt.Sprintf("cannot create run folder %s", path), err)
	}
	b.runFolder = path
	return path, nil
}

// latestRunFolder returns the most recently modified run folder under the
// target root, or "" when none exists.
func (b *Builder) latestRunFolder() (string, error) {
	entries, err := os.ReadDir(b.targetRoot)
	if err != nil {
		return "", faults.Wrap(faults.ErrScanIO, "topology", "run-folder",
			fmt.Sprintf("cannot read target root %s", b.targetRoot), err)
	}

	var (
		latest     string
		latestTime time.Time
	)
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), RunFolderPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestTime) {
			latest = filepath.Join(b.targetRoot, entry.Name())
			latestTime = info.ModTime()
		}
	}
	return latest, nil
}

// BuildClient creates the client folder, a new version folder, and the
// category subfolders for one client, returning the resolved paths.
func (b *Builder) BuildClient(client *registry.ClientRecord) (*FolderMap, error) {
	runFolder, err := b.RunFolder()
	if err != nil {
		return nil, err
	}

	folderName := b.clientFolderName(client)
	clientFolder := filepath.Join(runFolder, folderName)
	if err := os.MkdirAll(clientFolder, 0o755); err != nil {
		return nil, faults.Wrap(faults.ErrFolderCreation, "topology", "client-folder",
			fmt.Sprintf("cannot create client folder %s", clientFolder), err)
	}

	versionFolder := filepath.Join(clientFolder, versionFolderPrefix+b.timestamp.Format(runTimestampFormat))
	if err := os.MkdirAll(versionFolder, 0o755); err != nil {
		return nil, faults.Wrap(faults.ErrFolderCreation, "topology", "version-folder",
			fmt.Sprintf("cannot create version folder %s", versionFolder), err)
	}

	categories := make(map[string]string, len(categoryDirs))
	suffix := ""
	if b.suffixEnabled(client.Key) {
		suffix = fmt.Sprintf(" (%s)", textutil.ApplyAbbreviations(client.Client))
	}
	for _, dir := range categoryDirs {
		path := filepath.Join(versionFolder, dir.Name+suffix)
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, faults.Wrap(faults.ErrFolderCreation, "topology", "category-folder",
				fmt.Sprintf("cannot create category folder %s", path), err)
		}
		categories[dir.Key] = path
	}

	return &FolderMap{
		Run:        runFolder,
		Client:     clientFolder,
		Version:    versionFolder,
		Categories: categories,
	}, nil
}

// suffixEnabled reports whether category folders for the given client key
// carry the " (<client>)" suffix. The global flag wins over per-client
// overrides.
func (b *Builder) suffixEnabled(clientKey string) bool {
	if b.includeClientName {
		return true
	}
	return b.clientOverrides[clientKey]
}

// clientFolderName derives the folder name from the client key, applying the
// length cap and warning when two keys collapse to the same name.
func (b *Builder) clientFolderName(client *registry.ClientRecord) string {
	name := ClientFolderName(client.Client, client.Code, b.maxKeyLength)

	if owner, ok := b.folderOwners[name]; ok && owner != client.Key {
		b.logger.Warn("client folder name collision after truncation",
			logging.String("folder", name),
			logging.String("client", client.Key),
			logging.String("existing", owner))
	} else {
		b.folderOwners[name] = client.Key
	}
	return name
}

// ClientFolderName builds "<client>-<code>" capped at maxLength runes. The
// client portion is abbreviated and trimmed first so the jurisdiction code
// survives; only when fewer than six client characters would remain is the
// whole key truncated instead.
func ClientFolderName(client, code string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = 35
	}

	abbreviated := strings.TrimSpace(textutil.ApplyAbbreviations(client))
	key := abbreviated + "-" + code
	runes := []rune(key)
	if len(runes) <= maxLength {
		return key
	}

	available := maxLength - len([]rune(code)) - 1
	if available >= minClientChars {
		trimmed := strings.TrimSpace(string([]rune(abbreviated)[:available]))
		return trimmed + "-" + code
	}
	return string(runes[:maxLength])
}
