package configloader

import "github.com/yaklabco/goaglint/pkg/config"

// merge combines two configurations, with override taking precedence over
// base. This is used for the CLI flag overlay, which is sparse: only the
// flags the user actually passed are set on the override.
//   - Scalar values: override overwrites base if override is non-zero
//   - Booleans: override wins only when true (flags can enable, not unset)
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.MaxFixRounds != 0 {
		result.MaxFixRounds = override.MaxFixRounds
	}
	if override.UnusedDirectiveSeverity != "" {
		result.UnusedDirectiveSeverity = override.UnusedDirectiveSeverity
	}

	if override.Fix {
		result.Fix = true
	}
	if override.DryRun {
		result.DryRun = true
	}
	if override.NoBackups {
		result.NoBackups = true
	}
	if override.ReportUnusedDisableDirectives {
		result.ReportUnusedDisableDirectives = true
	}

	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}
	if override.Backups.Enabled {
		result.Backups.Enabled = true
	}

	result.Rules = mergeRules(base.Rules, override.Rules)

	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.FixRules != nil {
		result.FixRules = override.FixRules
	}
	if override.FixCategories != nil {
		result.FixCategories = override.FixCategories
	}

	return &result
}

// mergeRules performs deep merge of rule settings.
// Override entries replace base entries wholesale; a rule entry is a unit.
func mergeRules(base, override map[string]config.RuleSetting) map[string]config.RuleSetting {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.RuleSetting, len(base)+len(override))
	for key, val := range base {
		result[key] = val
	}
	for key, val := range override {
		result[key] = val
	}
	return result
}

// MergeAll merges multiple configurations in order, with later configs
// taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
