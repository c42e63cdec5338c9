package registry

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"gstsort/internal/classify"
	"gstsort/internal/jurisdiction"
	"gstsort/internal/logging"
	"gstsort/internal/record"
)

// ClientRecord accumulates everything known about one client in one
// jurisdiction.
type ClientRecord struct {
	// Key is the canonical "<client>-<code>" identifier.
	Key string
	// Client and Jurisdiction keep their first-seen display spelling.
	Client       string
	Jurisdiction string
	Code         string
	// Files maps category name to the files found for it.
	Files map[string][]*record.FileRecord
	// Missing and Duplicates are filled by AnalyzeCompleteness.
	Missing    []string
	Duplicates []string
	TotalSize  int64
	FileCount  int
	// Completeness is found/expected x 100, rounded to one decimal.
	Completeness float64
	Status       string
}

// CategoryFiles returns the files for one category.
func (c *ClientRecord) CategoryFiles(category string) []*record.FileRecord {
	return c.Files[category]
}

// OrderedFiles returns (category, file) pairs in canonical category order so
// folder creation and reporting are reproducible.
func (c *ClientRecord) OrderedFiles() []CategoryFile {
	var out []CategoryFile
	for _, cat := range classify.Categories() {
		for _, f := range c.Files[cat.Name] {
			out = append(out, CategoryFile{Category: cat.Name, File: f})
		}
	}
	return out
}

// CategoryFile pairs a file with the category it was classified under.
type CategoryFile struct {
	Category string
	File     *record.FileRecord
}

// Registry is an explicit get-or-create map of client records.
type Registry struct {
	clients map[string]*ClientRecord
	logger  *slog.Logger
}

// New constructs an empty registry.
func New(logger *slog.Logger) *Registry {
	return &Registry{
		clients: make(map[string]*ClientRecord),
		logger:  logging.NewComponentLogger(logger, "registry"),
	}
}

// AddFile registers a classified file under its canonical client key. Files
// without both client and jurisdiction are rejected; the scanner routes
// those into variations instead.
func (r *Registry) AddFile(rec *record.FileRecord) error {
	if rec.Client == "" || rec.Jurisdiction == "" {
		return fmt.Errorf("file %s missing client or jurisdiction", rec.Filename)
	}

	code, known := jurisdiction.Lookup(rec.Jurisdiction)
	if !known {
		r.logger.Warn("unknown jurisdiction, using fallback code",
			logging.String("jurisdiction", rec.Jurisdiction),
			logging.String("code", code),
			logging.String("file", rec.Filename))
	}

	key := rec.Client + "-" + code
	client, ok := r.clients[key]
	if !ok {
		client = &ClientRecord{
			Key:          key,
			Client:       rec.Client,
			Jurisdiction: rec.Jurisdiction,
			Code:         code,
			Files:        make(map[string][]*record.FileRecord),
		}
		r.clients[key] = client
	}

	client.Files[rec.Category] = append(client.Files[rec.Category], rec)
	client.TotalSize += rec.Size
	client.FileCount++
	return nil
}

// Len returns the number of distinct clients.
func (r *Registry) Len() int { return len(r.clients) }

// Get returns the record for key, if present.
func (r *Registry) Get(key string) (*ClientRecord, bool) {
	client, ok := r.clients[key]
	return client, ok
}

// Clients returns all records sorted by key.
func (r *Registry) Clients() []*ClientRecord {
	keys := make([]string, 0, len(r.clients))
	for key := range r.clients {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]*ClientRecord, 0, len(keys))
	for _, key := range keys {
		out = append(out, r.clients[key])
	}
	return out
}

// AnalyzeCompleteness computes missing categories, duplicates, completeness
// and status for every client. Call it once after all files are added.
func (r *Registry) AnalyzeCompleteness() {
	expected := classify.Categories()

	for _, client := range r.clients {
		client.Missing = client.Missing[:0]
		client.Duplicates = client.Duplicates[:0]

		found := 0
		for _, cat := range expected {
			files := client.Files[cat.Name]
			if len(files) == 0 {
				client.Missing = append(client.Missing, cat.Name)
				continue
			}
			found++
			if len(files) > 1 && !cat.Repeatable {
				client.Duplicates = append(client.Duplicates,
					fmt.Sprintf("Multiple %s (%d files)", cat.Name, len(files)))
			}
		}

		client.Completeness = math.Round(float64(found)/float64(len(expected))*1000) / 10

		switch {
		case len(client.Missing) > 0:
			client.Status = fmt.Sprintf("Missing %d files", len(client.Missing))
		case len(client.Duplicates) > 0:
			client.Status = "Has duplicates"
		default:
			client.Status = "Complete"
		}
	}
}
