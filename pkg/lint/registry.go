package lint

import (
	"fmt"
	"slices"
	"sync"
)

// Loader resolves rule names to implementations. Results should be cached
// by the implementation; the engine loads each active rule name once per
// file run.
type Loader interface {
	// Load returns the rule registered under name, or an error for an
	// unknown name.
	Load(name string) (Rule, error)
}

// Registry holds rule implementations keyed by descriptor ID. It satisfies
// Loader and is the default loader used by the engine.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		rules: make(map[string]Rule),
	}
}

// Register adds a rule to the registry under its descriptor ID.
// If a rule with the same ID already exists, it is replaced.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[rule.Descriptor().ID] = rule
}

// Load implements Loader.
func (r *Registry) Load(name string) (Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[name]
	if !ok {
		return nil, fmt.Errorf("unknown rule %q", name)
	}
	return rule, nil
}

// Get retrieves a rule by ID.
func (r *Registry) Get(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[id]
	return rule, ok
}

// Rules returns all registered rules sorted by ID for deterministic output.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.rules))
	for _, id := range sortedKeys(r.rules) {
		result = append(result, r.rules[id])
	}
	return result
}

// IDs returns all registered rule IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.rules))
	for id := range r.rules {
		result = append(result, id)
	}
	slices.Sort(result)
	return result
}

// DefaultRegistry is the global registry for built-in rules.
// Rules register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
