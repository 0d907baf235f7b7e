// Package config defines core configuration types for goaglint.
// These types are pure data structures with no dependencies on config loaders.
package config

import "fmt"

// Severity represents the resolved severity level of a lint rule.
type Severity string

const (
	SeverityOff   Severity = "off"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// IsValid returns true for one of the recognized severity values.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityOff, SeverityWarn, SeverityError:
		return true
	default:
		return false
	}
}

// ParseSeverity converts a string to a Severity.
// Accepts the canonical names plus the numeric shorthands 0/1/2.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "off", "0":
		return SeverityOff, nil
	case "warn", "warning", "1":
		return SeverityWarn, nil
	case "error", "2":
		return SeverityError, nil
	default:
		return "", fmt.Errorf("invalid severity %q (want off, warn, or error)", s)
	}
}

// RuleSetting holds per-rule configuration: a severity and optional options.
// In YAML/TOML a rule entry is either a bare severity string or a two-element
// sequence of [severity, options-table].
type RuleSetting struct {
	Severity Severity
	Options  map[string]any
}

// BackupsConfig controls backup behavior when fixing files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Mode    string `yaml:"mode" toml:"mode"` // "sidecar", "none"
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// Config is the root configuration structure for goaglint.
type Config struct {
	// Rules contains per-rule configuration keyed by rule name.
	Rules map[string]RuleSetting `yaml:"rules" toml:"rules"`

	// AllowInlineConfig enables in-source "! aglint-*" directives.
	AllowInlineConfig bool `yaml:"allow_inline_config" toml:"allow_inline_config"`

	// ReportUnusedDisableDirectives reports disable directives that
	// suppressed nothing.
	ReportUnusedDisableDirectives bool `yaml:"report_unused_disable_directives" toml:"report_unused_disable_directives"`

	// UnusedDirectiveSeverity is the severity for unused-directive reports.
	UnusedDirectiveSeverity Severity `yaml:"unused_directive_severity" toml:"unused_directive_severity"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore" toml:"ignore"`

	// Backups configures backup behavior when fixing.
	Backups BackupsConfig `yaml:"backups" toml:"backups"`

	// CLI-level options (not persisted to config files).

	// Fix enables auto-fixing of issues.
	Fix bool `yaml:"-" toml:"-"`

	// DryRun shows what would be fixed without making changes.
	DryRun bool `yaml:"-" toml:"-"`

	// MaxFixRounds limits lint-then-fix iterations (0 = engine default).
	MaxFixRounds int `yaml:"-" toml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-" toml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-" toml:"-"`

	// FixRules limits auto-fixing to specific rule names.
	FixRules []string `yaml:"-" toml:"-"`

	// FixCategories limits auto-fixing to specific rule categories.
	FixCategories []string `yaml:"-" toml:"-"`

	// NoBackups disables backup creation when fixing.
	NoBackups bool `yaml:"-" toml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rules:                         make(map[string]RuleSetting),
		AllowInlineConfig:             true,
		ReportUnusedDisableDirectives: false,
		UnusedDirectiveSeverity:       SeverityWarn,
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Format: FormatText,
		Jobs:   0, // 0 means use GOMAXPROCS
	}
}
