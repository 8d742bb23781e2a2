// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads tool configuration from an optional YAML file,
// with defaults suitable for running against the current directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/petar-djukic/go-refactor/pkg/types"
)

// Config represents the application configuration.
type Config struct {
	WorkDir string       `mapstructure:"workdir"`
	Access  AccessConfig `mapstructure:"access"`
	Scan    ScanConfig   `mapstructure:"scan"`
	Git     GitConfig    `mapstructure:"git"`
	Log     LogConfig    `mapstructure:"log"`
}

// AccessConfig controls how moved methods keep hold of a target instance.
type AccessConfig struct {
	Kind string `mapstructure:"kind"` // "field" or "property"
}

// ScanConfig holds candidate scan settings.
type ScanConfig struct {
	Concurrency    int      `mapstructure:"concurrency"`      // parser workers; 0 means NumCPU
	Exclude        []string `mapstructure:"exclude"`          // extra directory names to skip
	MinForeignRefs int      `mapstructure:"min_foreign_refs"` // envy threshold
}

// GitConfig holds git integration settings.
type GitConfig struct {
	Disabled    bool `mapstructure:"disabled"`
	AutoCommit  bool `mapstructure:"auto_commit"`
	DirtyCommit bool `mapstructure:"dirty_commit"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File    string `mapstructure:"file"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load reads the configuration from configPath, or from .go-refactor.yaml
// in the current directory when empty. A missing file yields defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Env vars: GO_REFACTOR_WORKDIR, GO_REFACTOR_SCAN_CONCURRENCY, etc.
	v.SetEnvPrefix("GO_REFACTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".go-refactor")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("workdir", ".")
	v.SetDefault("access.kind", "field")
	v.SetDefault("scan.concurrency", 0)
	v.SetDefault("scan.exclude", []string{})
	v.SetDefault("scan.min_foreign_refs", 2)
	v.SetDefault("git.disabled", false)
	v.SetDefault("git.auto_commit", true)
	v.SetDefault("git.dirty_commit", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.verbose", false)
}

// AccessKind parses the configured access member kind.
func (c *Config) AccessKind() (types.AccessMemberKind, error) {
	return types.ParseAccessMemberKind(c.Access.Kind)
}

// normalizePaths converts the work directory to an absolute path.
func (c *Config) normalizePaths() error {
	abs, err := filepath.Abs(c.WorkDir)
	if err != nil {
		return fmt.Errorf("resolving workdir: %w", err)
	}
	c.WorkDir = abs
	return nil
}

// Validate checks the configuration for values the tool cannot run with.
func (c *Config) Validate() error {
	if _, err := os.Stat(c.WorkDir); os.IsNotExist(err) {
		return fmt.Errorf("workdir does not exist: %s", c.WorkDir)
	}
	if _, err := c.AccessKind(); err != nil {
		return fmt.Errorf("access.kind: %w", err)
	}
	if c.Scan.Concurrency < 0 {
		return fmt.Errorf("scan.concurrency must be >= 0, got %d", c.Scan.Concurrency)
	}
	if c.Scan.MinForeignRefs < 1 {
		return fmt.Errorf("scan.min_foreign_refs must be >= 1, got %d", c.Scan.MinForeignRefs)
	}
	return nil
}
