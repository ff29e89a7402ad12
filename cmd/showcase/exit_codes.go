package main

import (
	"errors"
	"os"

	showcase "github.com/alnah/go-showcase"
	"github.com/alnah/go-showcase/internal/assets"
	"github.com/alnah/go-showcase/internal/config"
)

// Exit codes for the showcase CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // README updated or already current
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, projects, or template
	ExitIO      = 3 // File not found, permission denied
	ExitMarker  = 4 // README markers missing or malformed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Marker errors (exit 4)
	if errors.Is(err, showcase.ErrMarkerNotFound) ||
		errors.Is(err, showcase.ErrDuplicateMarker) ||
		errors.Is(err, showcase.ErrMarkerOrder) {
		return ExitMarker
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, showcase.ErrReadDocument) ||
		errors.Is(err, showcase.ErrWriteDocument) ||
		errors.Is(err, showcase.ErrReadProjects) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidEnv) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, showcase.ErrNoProjects) ||
		errors.Is(err, showcase.ErrInvalidProject) ||
		errors.Is(err, showcase.ErrInvalidSection) ||
		errors.Is(err, showcase.ErrInvalidTemplate) ||
		errors.Is(err, showcase.ErrInvalidWorkers) ||
		errors.Is(err, showcase.ErrInvalidImageHeight) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) {
		return ExitUsage
	}

	return ExitGeneral
}
