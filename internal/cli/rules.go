package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goaglint/internal/logging"
	"github.com/yaklabco/goaglint/pkg/lint"
	_ "github.com/yaklabco/goaglint/pkg/lint/rules" // Register built-in rules
)

type rulesFlags struct {
	format string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Fixable     bool   `json:"fixable"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List all available lint rules with their IDs, descriptions,
category, default severity, and whether they support auto-fixing.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			rules := lint.DefaultRegistry.Rules()

			if flags.format == formatJSON {
				return outputRulesJSON(rules)
			}

			logger := logging.NewInteractive()

			if len(rules) == 0 {
				logger.Info("no rules registered")
				return nil
			}

			logger.Info("available rules")

			for _, rule := range rules {
				desc := rule.Descriptor()

				fixable := "-"
				if desc.CanFix {
					fixable = "yes"
				}

				logger.Info(desc.ID,
					logging.FieldCategory, string(desc.Category),
					logging.FieldSeverity, string(desc.DefaultSeverity),
					logging.FieldFixable, fixable,
					logging.FieldDescription, desc.Description,
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(rules []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		desc := rule.Descriptor()
		infos = append(infos, ruleInfo{
			ID:          desc.ID,
			Description: desc.Description,
			Category:    string(desc.Category),
			Severity:    string(desc.DefaultSeverity),
			Fixable:     desc.CanFix,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
