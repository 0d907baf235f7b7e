package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/lint"
	"github.com/yaklabco/goaglint/pkg/parser/cssel"
	"github.com/yaklabco/goaglint/pkg/parser/fltparse"
)

// lintWith runs one rule against content and returns its diagnostics.
func lintWith(t *testing.T, rule lint.Rule, content string, options map[string]any) *lint.Result {
	t.Helper()

	registry := lint.NewRegistry()
	registry.Register(rule)

	engine := lint.NewEngine(fltparse.New(), registry)
	require.NoError(t,
		engine.RegisterEmbedded("CosmeticRule > SelectorBody.body", cssel.TreeAdapter{}))

	desc := rule.Descriptor()
	cfg := config.NewConfig()
	cfg.Rules = map[string]config.RuleSetting{
		desc.ID: {Severity: desc.DefaultSeverity, Options: options},
	}

	result, err := engine.Lint(context.Background(), "list.txt", []byte(content), cfg)
	require.NoError(t, err)
	return result
}

// fixWith runs one rule in fix mode and returns the outcome.
func fixWith(t *testing.T, rule lint.Rule, content string) *lint.FixOutcome {
	t.Helper()

	registry := lint.NewRegistry()
	registry.Register(rule)

	engine := lint.NewEngine(fltparse.New(), registry)
	require.NoError(t,
		engine.RegisterEmbedded("CosmeticRule > SelectorBody.body", cssel.TreeAdapter{}))

	desc := rule.Descriptor()
	cfg := config.NewConfig()
	cfg.Rules = map[string]config.RuleSetting{
		desc.ID: {Severity: desc.DefaultSeverity},
	}

	outcome, err := engine.LintWithFixes(
		context.Background(), "list.txt", []byte(content), cfg, lint.FixOptions{})
	require.NoError(t, err)
	return outcome
}
