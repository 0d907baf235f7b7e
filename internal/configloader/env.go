package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/goaglint/pkg/config"
)

// envVarPrefix is the prefix for all goaglint environment variables.
const envVarPrefix = "GOAGLINT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FIX":                       {field: "fix", typ: envTypeBool},
	"DRY_RUN":                   {field: "dry_run", typ: envTypeBool},
	"JOBS":                      {field: "jobs", typ: envTypeInt},
	"MAX_FIX_ROUNDS":            {field: "max_fix_rounds", typ: envTypeInt},
	"FORMAT":                    {field: "format", typ: envTypeString},
	"BACKUPS_ENABLED":           {field: "backups.enabled", typ: envTypeBool},
	"BACKUPS_MODE":              {field: "backups.mode", typ: envTypeString},
	"IGNORE":                    {field: "ignore", typ: envTypeSlice},
	"NO_BACKUPS":                {field: "no_backups", typ: envTypeBool},
	"FIX_RULES":                 {field: "fix_rules", typ: envTypeSlice},
	"FIX_CATEGORIES":            {field: "fix_categories", typ: envTypeSlice},
	"ALLOW_INLINE_CONFIG":       {field: "allow_inline_config", typ: envTypeBool},
	"UNUSED_DIRECTIVE_SEVERITY": {field: "unused_directive_severity", typ: envTypeString},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOAGLINT_ (e.g., GOAGLINT_FIX).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "backups.mode":
		cfg.Backups.Mode = value
	case "unused_directive_severity":
		sev, err := config.ParseSeverity(value)
		if err != nil {
			return err
		}
		cfg.UnusedDirectiveSeverity = sev
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "fix":
		cfg.Fix = value
	case "dry_run":
		cfg.DryRun = value
	case "backups.enabled":
		cfg.Backups.Enabled = value
	case "no_backups":
		cfg.NoBackups = value
	case "allow_inline_config":
		cfg.AllowInlineConfig = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	case "max_fix_rounds":
		cfg.MaxFixRounds = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "fix_rules":
		cfg.FixRules = value
	case "fix_categories":
		cfg.FixCategories = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOAGLINT_FIX":                       "Enable auto-fix: true or false",
		"GOAGLINT_DRY_RUN":                   "Dry-run mode: true or false",
		"GOAGLINT_JOBS":                      "Number of parallel workers (0 = auto)",
		"GOAGLINT_MAX_FIX_ROUNDS":            "Maximum lint-then-fix iterations (0 = default)",
		"GOAGLINT_FORMAT":                    "Output format: text, json, or summary",
		"GOAGLINT_BACKUPS_ENABLED":           "Enable backups when fixing: true or false",
		"GOAGLINT_BACKUPS_MODE":              "Backup mode: sidecar or none",
		"GOAGLINT_IGNORE":                    "Comma-separated list of ignore patterns",
		"GOAGLINT_NO_BACKUPS":                "Disable backups: true or false",
		"GOAGLINT_FIX_RULES":                 "Comma-separated rule ids eligible for fixing",
		"GOAGLINT_FIX_CATEGORIES":            "Comma-separated rule categories eligible for fixing",
		"GOAGLINT_ALLOW_INLINE_CONFIG":       "Honor inline aglint directives: true or false",
		"GOAGLINT_UNUSED_DIRECTIVE_SEVERITY": "Severity for unused disable directives: off, warn, or error",
	}
}
