package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-showcase/internal/fileutil"
	"github.com/alnah/go-showcase/internal/logger"
	"github.com/alnah/go-showcase/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength      = 4096
	MaxSectionLength   = 100
	MaxUserAgentLength = 256
	MaxTemplateLength  = 4096
)

// Defaults shared with the CLI flag definitions.
const (
	DefaultReadmePath   = "README.md"
	DefaultSection      = "INSERT-PROJECTS"
	DefaultProjectsPath = "projects.json"
	DefaultTimeout      = "30s"
	DefaultImageHeight  = 200
	MaxImageHeight      = 2000
	DefaultTemplate     = "project"
	DefaultCacheSize    = 1024
	DefaultLogLevel     = "info"
	DefaultLogFormat    = logger.FormatText
	appDirName          = "go-showcase"
)

// Config holds all settings for a showcase run.
type Config struct {
	Readme   ReadmeConfig   `yaml:"readme"`
	Projects ProjectsConfig `yaml:"projects"`
	Fetch    FetchConfig    `yaml:"fetch"`
	Render   RenderConfig   `yaml:"render"`
	Log      LogConfig      `yaml:"log"`
}

// ReadmeConfig locates the document and its marker section.
type ReadmeConfig struct {
	Path    string `yaml:"path"`
	Section string `yaml:"section"` // marker name, e.g. INSERT-PROJECTS
	Strict  bool   `yaml:"strict"`  // reject duplicate or misordered markers
}

// ProjectsConfig locates the project list.
type ProjectsConfig struct {
	Path string `yaml:"path"` // JSON or YAML list
}

// FetchConfig controls preview retrieval.
type FetchConfig struct {
	Timeout      string `yaml:"timeout"`      // Go duration, "0" disables
	UserAgent    string `yaml:"userAgent"`    // empty = library default
	Workers      int    `yaml:"workers"`      // 0 = one per project
	MaxBodyBytes int64  `yaml:"maxBodyBytes"` // 0 = library default
	CacheSize    int64  `yaml:"cacheSize"`    // 0 disables the per-run cache
}

// RenderConfig controls the generated markdown.
type RenderConfig struct {
	ImageHeight int    `yaml:"imageHeight"`
	Template    string `yaml:"template"` // embedded name or file path
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// TimeoutDuration returns the parsed fetch timeout.
// Call Validate first; an unparsable value yields 0.
func (f FetchConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(f.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Validate checks ranges and lengths.
// Called automatically by LoadConfig, and by the CLI after flags and
// environment variables are merged in.
func (c *Config) Validate() error {
	if err := validateFieldLength("readme.path", c.Readme.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("readme.section", c.Readme.Section, MaxSectionLength); err != nil {
		return err
	}
	if strings.Contains(c.Readme.Section, "-->") || strings.ContainsAny(c.Readme.Section, "\r\n") {
		return fmt.Errorf("%w: readme.section %q cannot contain \"-->\" or line breaks", ErrInvalidValue, c.Readme.Section)
	}
	if err := validateFieldLength("projects.path", c.Projects.Path, MaxPathLength); err != nil {
		return err
	}

	if c.Fetch.Timeout != "" {
		d, err := time.ParseDuration(c.Fetch.Timeout)
		if err != nil {
			return fmt.Errorf("%w: fetch.timeout %q is not a duration (e.g. 30s, 2m)", ErrInvalidValue, c.Fetch.Timeout)
		}
		if d < 0 {
			return fmt.Errorf("%w: fetch.timeout must not be negative, got %s", ErrInvalidValue, c.Fetch.Timeout)
		}
	}
	if err := validateFieldLength("fetch.userAgent", c.Fetch.UserAgent, MaxUserAgentLength); err != nil {
		return err
	}
	if c.Fetch.Workers < 0 {
		return fmt.Errorf("%w: fetch.workers must be >= 0, got %d", ErrInvalidValue, c.Fetch.Workers)
	}
	if c.Fetch.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: fetch.maxBodyBytes must be >= 0, got %d", ErrInvalidValue, c.Fetch.MaxBodyBytes)
	}
	if c.Fetch.CacheSize < 0 {
		return fmt.Errorf("%w: fetch.cacheSize must be >= 0, got %d", ErrInvalidValue, c.Fetch.CacheSize)
	}

	if c.Render.ImageHeight != 0 && (c.Render.ImageHeight < 1 || c.Render.ImageHeight > MaxImageHeight) {
		return fmt.Errorf("%w: render.imageHeight must be between 1 and %d, got %d", ErrInvalidValue, MaxImageHeight, c.Render.ImageHeight)
	}
	if err := validateFieldLength("render.template", c.Render.Template, MaxTemplateLength); err != nil {
		return err
	}

	if c.Log.Level != "" && !logger.ValidLevel(c.Log.Level) {
		return fmt.Errorf("%w: log.level %q (must be debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", logger.FormatText, logger.FormatJSON:
	default:
		return fmt.Errorf("%w: log.format %q (must be text or json)", ErrInvalidValue, c.Log.Format)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Readme:   ReadmeConfig{Path: DefaultReadmePath, Section: DefaultSection},
		Projects: ProjectsConfig{Path: DefaultProjectsPath},
		Fetch:    FetchConfig{Timeout: DefaultTimeout, CacheSize: DefaultCacheSize},
		Render:   RenderConfig{ImageHeight: DefaultImageHeight, Template: DefaultTemplate},
		Log:      LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Values absent from the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists where a config name is looked up, in order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing SearchPaths entry.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
