// Package textutil sanitizes filenames and path segments for safe
// filesystem use.
//
// Sanitization applies the business abbreviations first (Private -> Pvt,
// Limited -> Ltd), strips characters that are illegal or troublesome on
// common filesystems, collapses whitespace and underscore runs, and caps
// the result while always preserving the extension.
package textutil

import (
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultMaxFilename caps sanitized filenames, extension included.
const DefaultMaxFilename = 200

// illegalChars lists characters stripped from filenames. The hyphen is
// deliberately absent: it separates the name segments the classifier reads.
const illegalChars = "<>:\"/\\|?*[]{}+=!@#$%^,;'`~"

var runCollapse = regexp.MustCompile(`[\s_]+`)

var abbreviationPattern = regexp.MustCompile(`(?i)\b(Private|Limited)\b`)

// ApplyAbbreviations replaces whole-word business terms with their short
// forms, case-insensitively.
func ApplyAbbreviations(name string) string {
	return abbreviationPattern.ReplaceAllStringFunc(name, func(match string) string {
		if strings.EqualFold(match, "Private") {
			return "Pvt"
		}
		return "Ltd"
	})
}

// SanitizeFilename returns a filesystem-safe version of filename capped at
// DefaultMaxFilename characters.
func SanitizeFilename(filename string) string {
	return SanitizeFilenameMax(filename, DefaultMaxFilename)
}

// SanitizeFilenameMax sanitizes filename with an explicit length cap.
func SanitizeFilenameMax(filename string, maxLength int) string {
	if filename == "" {
		return "unnamed"
	}

	extension := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, extension)

	base = ApplyAbbreviations(base)

	var b strings.Builder
	b.Grow(len(base))
	for _, r := range base {
		switch {
		case r < 32 || (r >= 127 && r <= 159):
			b.WriteByte('_')
		case strings.ContainsRune(illegalChars, r):
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}

	safe := runCollapse.ReplaceAllString(b.String(), "_")
	safe = strings.Trim(safe, "_. ")
	if safe == "" {
		safe = "unnamed"
	}

	// Reserve headroom for the extension plus collision suffixes added later.
	limit := maxLength - len(extension) - 10
	if limit > 0 && len(safe) > limit {
		safe = safe[:limit]
	}

	return safe + extension
}
