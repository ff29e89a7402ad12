package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-showcase/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logLevel  string
	logFormat string
}

// sourceFlags locate the README and the project list.
type sourceFlags struct {
	readme   string
	section  string
	projects string
	strict   bool
}

// fetchFlags control preview retrieval.
type fetchFlags struct {
	workers   int
	timeout   string
	userAgent string
}

// renderFlags control the generated markdown.
type renderFlags struct {
	imageHeight int
	template    string
}

// outputFlags control where the result goes.
type outputFlags struct {
	html   string // also write an HTML preview here
	dryRun bool   // print instead of writing the README
}

// updateFlags holds all flags for the update and config commands.
type updateFlags struct {
	common commonFlags
	source sourceFlags
	fetch  fetchFlags
	render renderFlags
	output outputFlags

	fs *flag.FlagSet // reports which flags were set explicitly
}

// checkFlags holds flags for the check command.
type checkFlags struct {
	common commonFlags
	source sourceFlags

	fs *flag.FlagSet
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	fs.StringVar(&f.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", config.DefaultLogFormat, "log format: text, json")
}

// addSourceFlags adds README and project list flags to a FlagSet.
func addSourceFlags(fs *flag.FlagSet, f *sourceFlags) {
	fs.StringVarP(&f.readme, "readme", "r", config.DefaultReadmePath, "README file to update")
	fs.StringVarP(&f.section, "section", "s", config.DefaultSection, "marker section name")
	fs.StringVarP(&f.projects, "projects", "p", config.DefaultProjectsPath, "projects file (JSON or YAML)")
	fs.BoolVar(&f.strict, "strict", false, "reject duplicate or misordered markers")
}

// addFetchFlags adds preview fetch flags to a FlagSet.
func addFetchFlags(fs *flag.FlagSet, f *fetchFlags) {
	fs.IntVarP(&f.workers, "workers", "w", 0, "concurrent previews (0 = one per project)")
	fs.StringVarP(&f.timeout, "timeout", "t", config.DefaultTimeout, "per-request timeout (e.g., 10s, 1m; 0 = none)")
	fs.StringVar(&f.userAgent, "user-agent", "", "HTTP User-Agent header")
}

// addRenderFlags adds rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.IntVar(&f.imageHeight, "image-height", config.DefaultImageHeight, "preview image height in pixels (1-2000)")
	fs.StringVar(&f.template, "template", config.DefaultTemplate, "template name (project, compact) or file path")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVar(&f.html, "html", "", "also write an HTML preview of the README to this path")
	fs.BoolVar(&f.dryRun, "dry-run", false, "print the updated README instead of writing it")
}

// newFlagSet returns a FlagSet that reports errors instead of printing them.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

// parseUpdateFlags parses update command flags.
// Positional arguments are rejected.
func parseUpdateFlags(name string, args []string) (*updateFlags, error) {
	fs := newFlagSet(name)
	f := &updateFlags{fs: fs}

	addCommonFlags(fs, &f.common)
	addSourceFlags(fs, &f.source)
	addFetchFlags(fs, &f.fetch)
	addRenderFlags(fs, &f.render)
	addOutputFlags(fs, &f.output)

	if err := parse(fs, args); err != nil {
		return nil, err
	}
	return f, nil
}

// parseCheckFlags parses check command flags.
func parseCheckFlags(args []string) (*checkFlags, error) {
	fs := newFlagSet("check")
	f := &checkFlags{fs: fs}

	addCommonFlags(fs, &f.common)
	addSourceFlags(fs, &f.source)

	if err := parse(fs, args); err != nil {
		return nil, err
	}
	return f, nil
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return nil
}

// mergeCommonFlags applies explicitly set common flags to cfg.
// --verbose and --quiet win over --log-level.
func mergeCommonFlags(fs *flag.FlagSet, f *commonFlags, cfg *config.Config) {
	if fs.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	switch {
	case f.verbose:
		cfg.Log.Level = "debug"
	case f.quiet:
		cfg.Log.Level = "error"
	}
}

// mergeSourceFlags applies explicitly set source flags to cfg.
func mergeSourceFlags(fs *flag.FlagSet, f *sourceFlags, cfg *config.Config) {
	if fs.Changed("readme") {
		cfg.Readme.Path = f.readme
	}
	if fs.Changed("section") {
		cfg.Readme.Section = f.section
	}
	if fs.Changed("projects") {
		cfg.Projects.Path = f.projects
	}
	if fs.Changed("strict") {
		cfg.Readme.Strict = f.strict
	}
}

// mergeFlags applies explicitly set update flags to cfg (CLI wins).
func mergeFlags(f *updateFlags, cfg *config.Config) {
	mergeCommonFlags(f.fs, &f.common, cfg)
	mergeSourceFlags(f.fs, &f.source, cfg)

	if f.fs.Changed("workers") {
		cfg.Fetch.Workers = f.fetch.workers
	}
	if f.fs.Changed("timeout") {
		cfg.Fetch.Timeout = f.fetch.timeout
	}
	if f.fs.Changed("user-agent") {
		cfg.Fetch.UserAgent = f.fetch.userAgent
	}
	if f.fs.Changed("image-height") {
		cfg.Render.ImageHeight = f.render.imageHeight
	}
	if f.fs.Changed("template") {
		cfg.Render.Template = f.render.template
	}
}
