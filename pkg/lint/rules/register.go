package rules

import (
	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/lint"
)

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Validity rules
	registry.Register(NewInvalidRulesRule())
	registry.Register(NewShortRulesRule())
	registry.Register(NewDuplicatedRulesRule())

	// Preprocessor rules
	registry.Register(NewIfClosedRule())
	registry.Register(NewUnknownDirectivesRule())

	// Network rules
	registry.Register(NewDuplicatedModifiersRule())

	// Cosmetic rules
	registry.Register(NewSingleSelectorRule())

	// Whitespace rules
	registry.Register(NewTrailingSpacesRule())
}

// DefaultSettings returns the configuration enabling every built-in rule at
// its default severity. Used when no config file names a rule set.
func DefaultSettings() map[string]config.RuleSetting {
	settings := make(map[string]config.RuleSetting)
	for _, rule := range lint.DefaultRegistry.Rules() {
		desc := rule.Descriptor()
		settings[desc.ID] = config.RuleSetting{Severity: desc.DefaultSeverity}
	}
	return settings
}

func init() {
	RegisterAll(lint.DefaultRegistry)
}
