package lint

import (
	"fmt"

	"github.com/yaklabco/goaglint/pkg/config"
)

// LoadRules instantiates one Instance per configured rule with non-off
// severity. Rule names are processed in sorted order so that visitor
// registration, and therefore diagnostic ordering, is deterministic
// regardless of configuration map iteration order.
//
// Loading failures are configuration errors, not per-file problems: an
// unknown rule name or an option rejected by the rule's schema aborts the
// run with a hard error.
func LoadRules(loader Loader, cfg *config.Config) ([]*Instance, error) {
	if cfg == nil {
		return nil, nil
	}

	instances := make([]*Instance, 0, len(cfg.Rules))
	for _, name := range sortedKeys(cfg.Rules) {
		setting := cfg.Rules[name]
		if setting.Severity == config.SeverityOff {
			continue
		}

		inst, err := loadRule(loader, name, setting)
		if err != nil {
			return nil, err
		}
		instances = append(instances, inst)
	}

	return instances, nil
}

// loadRule resolves one configured rule into an Instance.
func loadRule(loader Loader, name string, setting config.RuleSetting) (*Instance, error) {
	rule, err := loader.Load(name)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}

	desc := rule.Descriptor()

	severity := setting.Severity
	if severity == "" {
		severity = desc.DefaultSeverity
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("rule %q: invalid severity %q", name, setting.Severity)
	}

	options, err := desc.ValidateOptions(setting.Options)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}

	return &Instance{
		Rule:       rule,
		Descriptor: desc,
		Severity:   severity,
		Options:    options,
	}, nil
}
