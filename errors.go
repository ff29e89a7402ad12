package showcase

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	// Marker errors.
	ErrMarkerNotFound  = errors.New("marker not found")
	ErrDuplicateMarker = errors.New("duplicate marker")
	ErrMarkerOrder     = errors.New("end marker before start marker")
	ErrInvalidSection  = errors.New("invalid section name")

	// Project list errors.
	ErrNoProjects      = errors.New("no projects")
	ErrInvalidProject  = errors.New("invalid project")
	ErrReadProjects    = errors.New("failed to read projects")
	ErrInvalidTemplate = errors.New("invalid template")

	// Document I/O errors.
	ErrReadDocument  = errors.New("failed to read document")
	ErrWriteDocument = errors.New("failed to write document")

	// Option validation errors.
	ErrInvalidWorkers     = errors.New("invalid workers")
	ErrInvalidImageHeight = errors.New("invalid image height")

	ErrGeneratorClosed = errors.New("generator is closed")
)

// MarkerError reports a section whose marker could not be found or is
// malformed. It wraps one of ErrMarkerNotFound, ErrDuplicateMarker or
// ErrMarkerOrder.
type MarkerError struct {
	Section  string
	Marker   string // the literal marker line that was missing or misplaced
	Line     int    // 1-based line of the offending marker, 0 when missing
	Document string // full document text, for debugging
	Err      error
}

func (e *MarkerError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("section %q: %v: %s (line %d)", e.Section, e.Err, e.Marker, e.Line)
	}
	return fmt.Sprintf("section %q: %v: %s", e.Section, e.Err, e.Marker)
}

func (e *MarkerError) Unwrap() error { return e.Err }
