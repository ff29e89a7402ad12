package showcase

import (
	"fmt"
	"strings"
)

// MarkerStart returns the line that opens section.
func MarkerStart(section string) string {
	return "<!-- " + section + ":START -->"
}

// MarkerEnd returns the line that closes section.
func MarkerEnd(section string) string {
	return "<!-- " + section + ":END -->"
}

// ValidateSection rejects section names that cannot form a marker.
func ValidateSection(section string) error {
	switch {
	case strings.TrimSpace(section) == "":
		return fmt.Errorf("%w: empty", ErrInvalidSection)
	case strings.Contains(section, "-->"), strings.ContainsAny(section, "\r\n"):
		return fmt.Errorf("%w: %q", ErrInvalidSection, section)
	}
	return nil
}

// Splice replaces the lines strictly between the first start marker of
// section and the first end marker after it with content.
// The marker lines and everything outside them are kept byte for byte.
// On error the document is returned unchanged inside a *MarkerError.
func Splice(document, content, section string) (string, error) {
	lines := splitLines(document)
	start, end, err := findMarkers(lines, document, section)
	if err != nil {
		return document, err
	}

	var b strings.Builder
	b.Grow(len(document) + len(content))
	for _, line := range lines[:start+1] {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(content)
	for _, line := range lines[end:] {
		b.WriteByte('\n')
		b.WriteString(line)
	}
	return b.String(), nil
}

// findMarkers returns the indexes of the start line and of the first end line
// after it.
func findMarkers(lines []string, document, section string) (start, end int, err error) {
	startMarker, endMarker := MarkerStart(section), MarkerEnd(section)

	start = indexContaining(lines, startMarker, 0)
	if start < 0 {
		return 0, 0, &MarkerError{Section: section, Marker: startMarker, Document: document, Err: ErrMarkerNotFound}
	}
	end = indexContaining(lines, endMarker, start+1)
	if end < 0 {
		return 0, 0, &MarkerError{Section: section, Marker: endMarker, Document: document, Err: ErrMarkerNotFound}
	}
	return start, end, nil
}

func splitLines(document string) []string {
	return strings.Split(document, "\n")
}

func indexContaining(lines []string, marker string, from int) int {
	for i := from; i < len(lines); i++ {
		if strings.Contains(lines[i], marker) {
			return i
		}
	}
	return -1
}

// ValidateMarkers checks in one pass that document holds exactly one
// well-ordered marker pair for section.
func ValidateMarkers(document, section string) error {
	if err := ValidateSection(section); err != nil {
		return err
	}
	startMarker, endMarker := MarkerStart(section), MarkerEnd(section)

	startLine, endLine := 0, 0
	for i, line := range splitLines(document) {
		n := i + 1
		if strings.Contains(line, startMarker) {
			if startLine > 0 {
				return &MarkerError{Section: section, Marker: startMarker, Line: n, Document: document, Err: ErrDuplicateMarker}
			}
			startLine = n
		}
		if strings.Contains(line, endMarker) {
			switch {
			case startLine == 0:
				return &MarkerError{Section: section, Marker: endMarker, Line: n, Document: document, Err: ErrMarkerOrder}
			case endLine > 0:
				return &MarkerError{Section: section, Marker: endMarker, Line: n, Document: document, Err: ErrDuplicateMarker}
			case startLine == n:
				return &MarkerError{Section: section, Marker: endMarker, Line: n, Document: document, Err: ErrMarkerOrder}
			}
			endLine = n
		}
	}

	if startLine == 0 {
		return &MarkerError{Section: section, Marker: startMarker, Document: document, Err: ErrMarkerNotFound}
	}
	if endLine == 0 {
		return &MarkerError{Section: section, Marker: endMarker, Document: document, Err: ErrMarkerNotFound}
	}
	return nil
}
