package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	showcase "github.com/alnah/go-showcase"
	"github.com/alnah/go-showcase/internal/config"
)

// runCheck validates the README markers and the project list without
// fetching anything. Markers are always checked strictly.
func runCheck(ctx context.Context, args []string, env *Environment) error {
	f, err := parseCheckFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printCheckUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(&f.common, env, func(cfg *config.Config) {
		mergeCommonFlags(f.fs, &f.common, cfg)
		mergeSourceFlags(f.fs, &f.source, cfg)
	})
	if err != nil {
		return withHint(err, f.common.config)
	}

	if err := showcase.ValidateSection(cfg.Readme.Section); err != nil {
		return err
	}
	doc, err := showcase.NewFileDocument(cfg.Readme.Path).ReadDocument(ctx)
	if err != nil {
		return err
	}
	if err := showcase.ValidateMarkers(doc, cfg.Readme.Section); err != nil {
		return withHint(err, f.common.config)
	}

	projects, err := showcase.LoadProjects(cfg.Projects.Path)
	if err != nil {
		return withHint(err, f.common.config)
	}

	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "ok %s: section %q, %d projects\n", cfg.Readme.Path, cfg.Readme.Section, len(projects))
	}
	return nil
}
