package classify

import (
	"fmt"
	"regexp"
	"strings"
)

// counterPrefix matches a leading "(1) " style duplicate counter.
var counterPrefix = regexp.MustCompile(`^\(\d+\)\s*`)

// invalidNameChars flags characters that cannot appear in a usable client or
// jurisdiction name.
var invalidNameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// Result describes the outcome of classifying one filename.
type Result struct {
	Filename     string
	Classified   bool
	Rule         string
	Category     string
	FolderKey    string
	Client       string
	Jurisdiction string
	Metadata     map[string]string
	// Warnings carries soft validation findings; they never block
	// classification.
	Warnings []string
	// Suggestion holds a best-effort naming hint when nothing matched.
	Suggestion string
}

// Classify matches filename against the pattern bank in order and returns
// the first structural match. A leading parenthesized counter is ignored for
// matching purposes.
func Classify(filename string) Result {
	result := Result{Filename: filename}

	candidate := counterPrefix.ReplaceAllString(filename, "")
	for _, rule := range bank {
		groups := rule.pattern.FindStringSubmatch(candidate)
		if groups == nil {
			continue
		}

		result.Classified = true
		result.Rule = rule.Name
		result.Category = rule.Category
		result.FolderKey = rule.FolderKey

		for i, slot := range rule.Slots {
			if i+1 >= len(groups) {
				break
			}
			value := strings.TrimSpace(groups[i+1])
			if value == "" {
				continue
			}
			switch slot {
			case "client":
				result.Client = value
			case "jurisdiction":
				result.Jurisdiction = value
			default:
				if result.Metadata == nil {
					result.Metadata = make(map[string]string)
				}
				result.Metadata[slot] = value
			}
		}

		if result.Client != "" && result.Jurisdiction != "" {
			if msg, ok := checkNamePart(result.Client); !ok {
				result.Warnings = append(result.Warnings, fmt.Sprintf("client name issue: %s", msg))
			}
			if msg, ok := checkNamePart(result.Jurisdiction); !ok {
				result.Warnings = append(result.Warnings, fmt.Sprintf("jurisdiction name issue: %s", msg))
			}
		}
		return result
	}

	result.Suggestion = suggestPattern(filename)
	return result
}

// checkNamePart applies soft bounds and character checks to a captured name.
func checkNamePart(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "name is empty", false
	}
	if len(trimmed) < 2 {
		return "name too short", false
	}
	if len(trimmed) > 100 {
		return "name too long", false
	}
	if invalidNameChars.MatchString(trimmed) {
		return "name contains invalid characters", false
	}
	return "", true
}
