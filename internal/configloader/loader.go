// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support, and validation.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/lint"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GOAGLINT_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.goaglint.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/goaglint/config.yaml)
//  6. System config (/etc/goaglint/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{
		Paths: &ConfigPaths{},
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.NewConfig()

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	result.Paths = paths

	if opts.ExplicitPath != "" {
		result.Paths.Explicit = opts.ExplicitPath
	}

	// Decode file layers in order (lowest to highest precedence). Each
	// layer is decoded directly into the accumulated config, so a file
	// only touches the keys it actually sets.

	if !opts.IgnoreSystemConfig && paths.System != "" {
		if err := decodeFileInto(cfg, paths.System); err != nil {
			return nil, fmt.Errorf("load system config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.System)
	}

	if !opts.IgnoreUserConfig && paths.User != "" {
		if err := decodeFileInto(cfg, paths.User); err != nil {
			return nil, fmt.Errorf("load user config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.User)
	}

	if !opts.IgnoreProjectConfig && paths.Project != "" {
		if err := decodeFileInto(cfg, paths.Project); err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.Project)
	}

	if opts.ExplicitPath != "" {
		if err := decodeFileInto(cfg, opts.ExplicitPath); err != nil {
			return nil, fmt.Errorf("load explicit config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	// CLI config (highest precedence).
	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}

	// Unknown rules were warned about above; drop them so the engine does
	// not reject the whole run over a setting for a rule it cannot load.
	dropUnknownRules(cfg)

	result.Config = cfg
	return result, nil
}

// dropUnknownRules removes settings for rules the default registry does not
// know about.
func dropUnknownRules(cfg *config.Config) {
	for name := range cfg.Rules {
		if _, ok := lint.DefaultRegistry.Get(name); !ok {
			delete(cfg.Rules, name)
		}
	}
}

// decodeFileInto decodes a config file into cfg, choosing the decoder by
// file extension. TOML is supported alongside YAML.
func decodeFileInto(cfg *config.Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	if IsTOMLConfig(path) {
		if err := toml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("parse TOML: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("parse YAML: %w", err)
		}
	}

	if cfg.Rules == nil {
		cfg.Rules = make(map[string]config.RuleSetting)
	}

	return nil
}
