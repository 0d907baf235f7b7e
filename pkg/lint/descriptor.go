package lint

import (
	"fmt"

	"github.com/yaklabco/goaglint/pkg/config"
)

// Category classifies what kind of concern a rule addresses.
type Category string

const (
	// CategoryProblem marks rules about things that are or will be broken.
	CategoryProblem Category = "problem"

	// CategorySuggestion marks rules about better ways to express a filter.
	CategorySuggestion Category = "suggestion"

	// CategoryLayout marks rules about whitespace and formatting.
	CategoryLayout Category = "layout"
)

// OptionType describes the expected type of a rule option value.
type OptionType string

const (
	OptionInt        OptionType = "int"
	OptionString     OptionType = "string"
	OptionBool       OptionType = "bool"
	OptionStringList OptionType = "string-list"
)

// OptionSpec declares one configurable option of a rule.
type OptionSpec struct {
	// Type is the expected value type.
	Type OptionType

	// Default is used when configuration does not set the option.
	Default any
}

// Descriptor is the static metadata for a rule. Rules expose exactly one
// descriptor; all capability checks (fixes, suggestions, options) are made
// against it, never against the rule implementation itself.
type Descriptor struct {
	// ID is the unique rule identifier (e.g., "no-trailing-spaces").
	ID string

	// Description explains what the rule checks.
	Description string

	// Category classifies the rule.
	Category Category

	// CanFix declares whether the rule may attach fixes to reports.
	CanFix bool

	// CanSuggest declares whether the rule may attach suggestions.
	CanSuggest bool

	// Messages maps message IDs to templates. Templates may contain
	// {{placeholder}} markers filled from report data.
	Messages map[string]string

	// Options is the schema for rule options, keyed by option name.
	Options map[string]OptionSpec

	// DefaultSeverity applies when configuration enables the rule
	// without naming a severity.
	DefaultSeverity config.Severity
}

// ValidateOptions checks configured options against the schema and returns
// the full option set with defaults filled in. Unknown option names and
// type mismatches are configuration errors.
func (d *Descriptor) ValidateOptions(configured map[string]any) (map[string]any, error) {
	resolved := make(map[string]any, len(d.Options))
	for name, spec := range d.Options {
		resolved[name] = spec.Default
	}

	for name, value := range configured {
		spec, ok := d.Options[name]
		if !ok {
			return nil, fmt.Errorf("rule %q has no option %q", d.ID, name)
		}
		coerced, err := coerceOption(spec.Type, value)
		if err != nil {
			return nil, fmt.Errorf("rule %q option %q: %w", d.ID, name, err)
		}
		resolved[name] = coerced
	}

	return resolved, nil
}

// coerceOption converts a raw configuration value (as decoded from YAML or
// TOML) into the declared option type.
func coerceOption(typ OptionType, value any) (any, error) {
	switch typ {
	case OptionInt:
		switch v := value.(type) {
		case int:
			return v, nil
		case int64:
			return int(v), nil
		case float64:
			return int(v), nil
		}
	case OptionString:
		if s, ok := value.(string); ok {
			return s, nil
		}
	case OptionBool:
		if b, ok := value.(bool); ok {
			return b, nil
		}
	case OptionStringList:
		switch v := value.(type) {
		case []string:
			return v, nil
		case []any:
			out := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("expected list of strings, got element %T", item)
				}
				out = append(out, s)
			}
			return out, nil
		}
	}
	return nil, fmt.Errorf("expected %s, got %T", typ, value)
}
