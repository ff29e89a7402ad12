package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-showcase/internal/config"
	"github.com/alnah/go-showcase/internal/yamlutil"
)

// resolveConfig builds the effective configuration.
// Precedence: CLI flags > SHOWCASE_* env vars > config file > defaults.
// merge applies the explicitly set flags of the running command.
func resolveConfig(common *commonFlags, env *Environment, merge func(*config.Config)) (*config.Config, error) {
	envCfg, err := loadEnvConfig(env.Getenv)
	if err != nil {
		return nil, err
	}
	if env.Environ != nil {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, err
		}
	}

	applyEnvConfig(envCfg, cfg)
	merge(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runConfig prints the effective configuration as YAML.
// It accepts the update flags so a command line can be previewed as-is.
func runConfig(args []string, env *Environment) error {
	f, err := parseUpdateFlags("config", args)
	if errors.Is(err, flag.ErrHelp) {
		printConfigUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(&f.common, env, func(cfg *config.Config) { mergeFlags(f, cfg) })
	if err != nil {
		return withHint(err, f.common.config)
	}

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}
