package lint

import "fmt"

// visitorEntry is one registered callback: a compiled selector plus the
// function to invoke when it matches.
type visitorEntry struct {
	selector *Selector
	fn       VisitFunc
}

// VisitorSet holds all callbacks registered for one lint run. Entries are
// kept in registration order; dispatch at a node runs every matching entry
// in that order, which makes diagnostic ordering deterministic for a given
// rule load order.
type VisitorSet struct {
	entries []visitorEntry
}

// NewVisitorSet creates an empty visitor set.
func NewVisitorSet() *VisitorSet {
	return &VisitorSet{}
}

// Register compiles the selector expression and appends the callback.
func (vs *VisitorSet) Register(expr string, fn VisitFunc) error {
	sel, err := CompileSelector(expr)
	if err != nil {
		return err
	}
	vs.entries = append(vs.entries, visitorEntry{selector: sel, fn: fn})
	return nil
}

// RegisterAll registers every visitor of a rule instance.
func (vs *VisitorSet) RegisterAll(inst *Instance, visitors Visitors) error {
	// Map iteration order is random; sort selector expressions so that
	// one rule's visitors always register in the same order.
	for _, expr := range sortedKeys(visitors) {
		if err := vs.Register(expr, visitors[expr]); err != nil {
			return fmt.Errorf("rule %q: %w", inst.Descriptor.ID, err)
		}
	}
	return nil
}

// Dispatch invokes every callback whose selector matches the walk path.
func (vs *VisitorSet) Dispatch(node NodeRef, path []PathStep) error {
	for _, entry := range vs.entries {
		if !entry.selector.Match(path) {
			continue
		}
		if err := entry.fn(node); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of registered callbacks.
func (vs *VisitorSet) Len() int {
	return len(vs.entries)
}
