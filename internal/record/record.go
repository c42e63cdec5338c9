package record

import "time"

// FileRecord describes a single scanned spreadsheet file. Identity is the
// absolute source path; all fields except the sanitized name are fixed at
// scan time.
type FileRecord struct {
	Filename     string
	Path         string
	Size         int64
	Modified     time.Time
	Created      time.Time
	Extension    string
	Classified   bool
	Rule         string
	Category     string
	FolderKey    string
	Client       string
	Jurisdiction string
	Metadata     map[string]string
	Warnings     []string

	sanitizedName string
}

// SanitizedName returns the final on-disk name recorded after a successful
// copy, or "" if the file has not been materialized.
func (r *FileRecord) SanitizedName() string {
	return r.sanitizedName
}

// DisplayName returns the sanitized name when set, otherwise the original
// filename. Reports and the external renderer use this so names stay
// consistent after organization.
func (r *FileRecord) DisplayName() string {
	if r.sanitizedName != "" {
		return r.sanitizedName
	}
	return r.Filename
}

// SetSanitizedName records the final destination name. The first value wins;
// later calls are ignored so reruns cannot rewrite history.
func (r *FileRecord) SetSanitizedName(name string) {
	if r.sanitizedName == "" {
		r.sanitizedName = name
	}
}

// Variation describes a scanned file that failed classification or basic
// validity checks.
type Variation struct {
	Filename   string
	Path       string
	Issue      string
	Size       int64
	Suggestion string
}
