package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goaglint/pkg/lint"
)

func TestRegisterAll(t *testing.T) {
	registry := lint.NewRegistry()
	RegisterAll(registry)

	expected := []string{
		"duplicated-modifiers",
		"if-closed",
		"no-duplicated-rules",
		"no-invalid-rules",
		"no-short-rules",
		"no-trailing-spaces",
		"single-selector",
		"unknown-preprocessor-directives",
	}
	assert.Equal(t, expected, registry.IDs())
}

func TestDefaultRegistryHasBuiltins(t *testing.T) {
	// init() registers the built-ins globally.
	rule, err := lint.DefaultRegistry.Load("no-trailing-spaces")
	require.NoError(t, err)
	assert.True(t, rule.Descriptor().CanFix)
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	require.NotEmpty(t, settings)
	for id, setting := range settings {
		rule, err := lint.DefaultRegistry.Load(id)
		require.NoError(t, err)
		assert.Equal(t, rule.Descriptor().DefaultSeverity, setting.Severity)
	}
}

func TestDescriptorsAreWellFormed(t *testing.T) {
	registry := lint.NewRegistry()
	RegisterAll(registry)

	for _, rule := range registry.Rules() {
		desc := rule.Descriptor()
		assert.NotEmpty(t, desc.ID)
		assert.NotEmpty(t, desc.Description)
		assert.NotEmpty(t, desc.Category)
		assert.NotEmpty(t, desc.Messages)
		assert.True(t, desc.DefaultSeverity.IsValid())
	}
}
