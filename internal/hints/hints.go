// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"strings"
)

// ForMarkerNotFound returns hints for a README missing its section markers.
func ForMarkerNotFound(startMarker, endMarker string) string {
	return format(fmt.Sprintf("add %s and %s on their own lines where the list belongs", startMarker, endMarker))
}

// ForDuplicateMarker returns hints for strict marker validation failures.
func ForDuplicateMarker() string {
	return format("keep exactly one START/END pair per section, or drop --strict")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-showcase/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), ".config/go-showcase") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForProjectsFile returns hints for unreadable or malformed project lists.
func ForProjectsFile() string {
	return format(`expected a JSON or YAML list of {name, description, website, repo}`)
}

// ForTemplateNotFound returns hints listing the embedded templates.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a file path")
}

// ForFetchFailures returns a hint after a run where some previews failed.
func ForFetchFailures(failed int) string {
	if failed <= 0 {
		return ""
	}
	return format(fmt.Sprintf("%d preview(s) failed; the logged URLs show which, slow sites may need a larger --timeout", failed))
}

// filepathSlash normalizes Windows separators so path checks work everywhere.
func filepathSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
