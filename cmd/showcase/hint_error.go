package main

import (
	"errors"

	showcase "github.com/alnah/go-showcase"
	"github.com/alnah/go-showcase/internal/assets"
	"github.com/alnah/go-showcase/internal/config"
	"github.com/alnah/go-showcase/internal/hints"
)

// hintError appends an actionable hint to an error message.
// errors.Is still sees the wrapped error.
type hintError struct {
	err  error
	hint string
}

func (e *hintError) Error() string { return e.err.Error() + e.hint }
func (e *hintError) Unwrap() error { return e.err }

// withHint wraps err with the hint matching its cause, if any.
// configName is the --config value, used to list searched locations.
func withHint(err error, configName string) error {
	if err == nil {
		return nil
	}

	var hint string
	var markerErr *showcase.MarkerError
	switch {
	case errors.Is(err, showcase.ErrDuplicateMarker), errors.Is(err, showcase.ErrMarkerOrder):
		hint = hints.ForDuplicateMarker()
	case errors.Is(err, showcase.ErrMarkerNotFound) && errors.As(err, &markerErr):
		hint = hints.ForMarkerNotFound(showcase.MarkerStart(markerErr.Section), showcase.MarkerEnd(markerErr.Section))
	case errors.Is(err, config.ErrConfigNotFound):
		hint = hints.ForConfigNotFound(config.SearchPaths(configName))
	case errors.Is(err, showcase.ErrReadProjects), errors.Is(err, showcase.ErrInvalidProject), errors.Is(err, showcase.ErrNoProjects):
		hint = hints.ForProjectsFile()
	case errors.Is(err, assets.ErrTemplateNotFound):
		hint = hints.ForTemplateNotFound(assets.NewEmbeddedLoader().Names())
	}

	if hint == "" {
		return err
	}
	return &hintError{err: err, hint: hint}
}
