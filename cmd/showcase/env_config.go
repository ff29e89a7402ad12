package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-showcase/internal/config"
)

// ErrInvalidEnv indicates a SHOWCASE_* variable holds an unparsable value.
var ErrInvalidEnv = errors.New("invalid environment variable")

const envPrefix = "SHOWCASE_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // SHOWCASE_CONFIG: config file name or path
	Readme     string // SHOWCASE_README: README path
	Section    string // SHOWCASE_SECTION: marker section name
	Projects   string // SHOWCASE_PROJECTS: projects file path
	Timeout    string // SHOWCASE_TIMEOUT: per-request fetch timeout
	UserAgent  string // SHOWCASE_USER_AGENT: HTTP User-Agent
	Template   string // SHOWCASE_TEMPLATE: template name or path
	LogLevel   string // SHOWCASE_LOG_LEVEL: debug, info, warn, error
	LogFormat  string // SHOWCASE_LOG_FORMAT: text, json

	Workers     *int  // SHOWCASE_WORKERS: concurrent previews
	Strict      *bool // SHOWCASE_STRICT: strict marker validation
	ImageHeight *int  // SHOWCASE_IMAGE_HEIGHT: preview image height
}

// knownEnvVars lists valid SHOWCASE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SHOWCASE_CONFIG":       true,
	"SHOWCASE_README":       true,
	"SHOWCASE_SECTION":      true,
	"SHOWCASE_PROJECTS":     true,
	"SHOWCASE_TIMEOUT":      true,
	"SHOWCASE_USER_AGENT":   true,
	"SHOWCASE_TEMPLATE":     true,
	"SHOWCASE_LOG_LEVEL":    true,
	"SHOWCASE_LOG_FORMAT":   true,
	"SHOWCASE_WORKERS":      true,
	"SHOWCASE_STRICT":       true,
	"SHOWCASE_IMAGE_HEIGHT": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) (*envConfig, error) {
	cfg := &envConfig{
		ConfigPath: getenv("SHOWCASE_CONFIG"),
		Readme:     getenv("SHOWCASE_README"),
		Section:    getenv("SHOWCASE_SECTION"),
		Projects:   getenv("SHOWCASE_PROJECTS"),
		Timeout:    getenv("SHOWCASE_TIMEOUT"),
		UserAgent:  getenv("SHOWCASE_USER_AGENT"),
		Template:   getenv("SHOWCASE_TEMPLATE"),
		LogLevel:   getenv("SHOWCASE_LOG_LEVEL"),
		LogFormat:  getenv("SHOWCASE_LOG_FORMAT"),
	}

	if v := getenv("SHOWCASE_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: SHOWCASE_WORKERS=%q is not an integer", ErrInvalidEnv, v)
		}
		cfg.Workers = &n
	}
	if v := getenv("SHOWCASE_IMAGE_HEIGHT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: SHOWCASE_IMAGE_HEIGHT=%q is not an integer", ErrInvalidEnv, v)
		}
		cfg.ImageHeight = &n
	}
	if v := getenv("SHOWCASE_STRICT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: SHOWCASE_STRICT=%q is not a boolean", ErrInvalidEnv, v)
		}
		cfg.Strict = &b
	}

	return cfg, nil
}

// warnUnknownEnvVars prints warnings for unrecognized SHOWCASE_* variables.
// Helps catch typos like SHOWCASE_WORKER instead of SHOWCASE_WORKERS.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	var unknown []string
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are applied later via
// mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setString(&cfg.Readme.Path, env.Readme)
	setString(&cfg.Readme.Section, env.Section)
	setString(&cfg.Projects.Path, env.Projects)
	setString(&cfg.Fetch.Timeout, env.Timeout)
	setString(&cfg.Fetch.UserAgent, env.UserAgent)
	setString(&cfg.Render.Template, env.Template)
	setString(&cfg.Log.Level, env.LogLevel)
	setString(&cfg.Log.Format, env.LogFormat)

	if env.Workers != nil {
		cfg.Fetch.Workers = *env.Workers
	}
	if env.ImageHeight != nil {
		cfg.Render.ImageHeight = *env.ImageHeight
	}
	if env.Strict != nil {
		cfg.Readme.Strict = *env.Strict
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
