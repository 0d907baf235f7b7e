package config

import "maps"

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := &Config{
		AllowInlineConfig:             c.AllowInlineConfig,
		ReportUnusedDisableDirectives: c.ReportUnusedDisableDirectives,
		UnusedDirectiveSeverity:       c.UnusedDirectiveSeverity,
		Backups:                       c.Backups,
		Fix:                           c.Fix,
		DryRun:                        c.DryRun,
		MaxFixRounds:                  c.MaxFixRounds,
		Format:                        c.Format,
		Jobs:                          c.Jobs,
		NoBackups:                     c.NoBackups,
	}

	if c.Ignore != nil {
		clone.Ignore = make([]string, len(c.Ignore))
		copy(clone.Ignore, c.Ignore)
	}
	if c.FixRules != nil {
		clone.FixRules = make([]string, len(c.FixRules))
		copy(clone.FixRules, c.FixRules)
	}
	if c.FixCategories != nil {
		clone.FixCategories = make([]string, len(c.FixCategories))
		copy(clone.FixCategories, c.FixCategories)
	}

	if c.Rules != nil {
		clone.Rules = make(map[string]RuleSetting, len(c.Rules))
		for name, setting := range c.Rules {
			clone.Rules[name] = setting.clone()
		}
	}

	return clone
}

// clone creates a deep copy of a RuleSetting.
// Note: nested maps/slices inside Options are not deep copied.
func (rs RuleSetting) clone() RuleSetting {
	out := RuleSetting{Severity: rs.Severity}
	if rs.Options != nil {
		out.Options = make(map[string]any, len(rs.Options))
		maps.Copy(out.Options, rs.Options)
	}
	return out
}
