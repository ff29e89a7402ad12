package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	flag "github.com/spf13/pflag"

	showcase "github.com/alnah/go-showcase"
	"github.com/alnah/go-showcase/internal/config"
	"github.com/alnah/go-showcase/internal/fileutil"
	"github.com/alnah/go-showcase/internal/hints"
	"github.com/alnah/go-showcase/internal/logger"
	"github.com/alnah/go-showcase/internal/pipeline"
)

// ErrWriteHTML indicates the HTML preview could not be written.
var ErrWriteHTML = errors.New("failed to write HTML preview")

// runUpdate regenerates the project list inside the README.
func runUpdate(ctx context.Context, args []string, env *Environment) error {
	f, err := parseUpdateFlags("update", args)
	if errors.Is(err, flag.ErrHelp) {
		printUpdateUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(&f.common, env, func(cfg *config.Config) { mergeFlags(f, cfg) })
	if err != nil {
		return withHint(err, f.common.config)
	}
	log := logger.New(env.Stderr, cfg.Log.Level, cfg.Log.Format)

	projects, err := showcase.LoadProjects(cfg.Projects.Path)
	if err != nil {
		return withHint(err, f.common.config)
	}
	log.Debug("projects loaded", slog.String("path", cfg.Projects.Path), slog.Int("count", len(projects)))

	gen, err := newGenerator(cfg, env, log)
	if err != nil {
		return withHint(err, f.common.config)
	}
	defer func() { _ = gen.Close() }()

	store := showcase.NewFileDocument(cfg.Readme.Path)
	doc, report, err := gen.Generate(ctx, store, cfg.Readme.Section, projects)
	if err != nil {
		return withHint(err, f.common.config)
	}

	// The summary goes to stderr when stdout carries the document.
	summary := env.Stdout
	if f.output.dryRun {
		if _, err := io.WriteString(env.Stdout, doc); err != nil {
			return err
		}
		summary = env.Stderr
	} else if report.Changed {
		if err := store.WriteDocument(ctx, doc); err != nil {
			return err
		}
	}

	if f.output.html != "" {
		if err := writeHTMLPreview(ctx, f.output.html, cfg.Readme.Path, doc); err != nil {
			return err
		}
		log.Debug("html preview written", slog.String("path", f.output.html))
	}

	if !f.common.quiet {
		printSummary(summary, cfg.Readme.Path, report, f.output.dryRun)
	}
	return nil
}

// newGenerator builds a Generator from the effective configuration.
func newGenerator(cfg *config.Config, env *Environment, log *slog.Logger) (*showcase.Generator, error) {
	fetcher := env.Fetcher
	if fetcher == nil {
		fetcher = showcase.NewHTTPFetcher(showcase.HTTPOptions{
			Timeout:      cfg.Fetch.TimeoutDuration(),
			UserAgent:    cfg.Fetch.UserAgent,
			MaxBodyBytes: cfg.Fetch.MaxBodyBytes,
		})
	}

	opts := []showcase.Option{
		showcase.WithFetcher(fetcher),
		showcase.WithLogger(log),
		showcase.WithWorkers(cfg.Fetch.Workers),
		showcase.WithStrictMarkers(cfg.Readme.Strict),
		showcase.WithCache(cfg.Fetch.CacheSize),
	}
	if cfg.Render.ImageHeight != 0 {
		opts = append(opts, showcase.WithImageHeight(cfg.Render.ImageHeight))
	}
	if cfg.Render.Template != "" {
		opts = append(opts, showcase.WithTemplate(cfg.Render.Template))
	}
	return showcase.NewGenerator(opts...)
}

// writeHTMLPreview renders doc with GitHub-like styling to path.
func writeHTMLPreview(ctx context.Context, path, readmePath, doc string) error {
	title := filepath.Base(readmePath)
	out, err := pipeline.NewGoldmarkConverter().ToHTML(ctx, title, doc)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, []byte(out), fileutil.DefaultFilePerm); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteHTML, err)
	}
	return nil
}

// printSummary reports what a run did, with a hint when previews failed.
func printSummary(w io.Writer, readme string, r *showcase.Report, dryRun bool) {
	var verb string
	switch {
	case dryRun:
		verb = "rendered"
	case r.Changed:
		verb = "updated"
	default:
		verb = "unchanged"
	}
	fmt.Fprintf(w, "%s %s: %d projects, %d images, %d descriptions%s\n",
		verb, readme, r.Projects, r.Images, r.Descriptions, hints.ForFetchFailures(r.Failed))
}
