package lint

import (
	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/fltast"
)

// VisitFunc is a callback invoked for every node matching a selector.
// Returning a non-nil error aborts the run; it signals a broken rule, not a
// problem with the linted file.
type VisitFunc func(node NodeRef) error

// Visitors maps selector expressions to callbacks. Selector syntax is a
// path of node-type names joined by " > " with an optional ".attribute"
// suffix on the final step (e.g., "CosmeticRule > SelectorBody.body").
type Visitors map[string]VisitFunc

// Rule is the interface all lint rules implement.
type Rule interface {
	// Descriptor returns the rule's static metadata. It must return the
	// same descriptor on every call.
	Descriptor() *Descriptor

	// Visitors returns the callbacks to register for one lint run,
	// bound to the given instance. Implementations typically return
	// closures capturing inst for reporting and option access.
	Visitors(inst *Instance) Visitors
}

// Instance is one rule activated for one lint run: the rule bound to its
// resolved severity, validated options, and the run's reporter.
type Instance struct {
	// Rule is the underlying implementation.
	Rule Rule

	// Descriptor caches Rule.Descriptor().
	Descriptor *Descriptor

	// Severity is the resolved severity for diagnostics from this rule.
	Severity config.Severity

	// Options holds the validated option set with defaults filled in.
	Options map[string]any

	reporter *Reporter
	file     *fltast.FileSnapshot
}

// bind attaches the instance to one file run. Called by the engine before
// visitor registration.
func (inst *Instance) bind(rep *Reporter, file *fltast.FileSnapshot) {
	inst.reporter = rep
	inst.file = file
}

// File returns the snapshot being linted.
func (inst *Instance) File() *fltast.FileSnapshot {
	return inst.file
}

// Report emits one diagnostic through the run's reporter.
func (inst *Instance) Report(rep Report) error {
	return inst.reporter.Report(inst, rep)
}

// OptionInt returns an integer option value, or the default.
func (inst *Instance) OptionInt(key string, defaultValue int) int {
	switch v := inst.Options[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return defaultValue
	}
}

// OptionString returns a string option value, or the default.
func (inst *Instance) OptionString(key string, defaultValue string) string {
	if s, ok := inst.Options[key].(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a boolean option value, or the default.
func (inst *Instance) OptionBool(key string, defaultValue bool) bool {
	if b, ok := inst.Options[key].(bool); ok {
		return b
	}
	return defaultValue
}

// OptionStringSlice returns a string-list option value, or the default.
func (inst *Instance) OptionStringSlice(key string, defaultValue []string) []string {
	if slice, ok := inst.Options[key].([]string); ok {
		return slice
	}
	return defaultValue
}
