// Package cli provides the Cobra command structure for goaglint.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goaglint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root goaglint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "goaglint",
		Short: "A fast, self-fixing linter for adblock filter lists",
		Long: `goaglint is a fast, self-fixing linter for adblock filter lists written in Go.

It understands the common filter-list syntaxes (network rules, cosmetic
rules, comments, metadata headers, and preprocessor directives) and checks
them against a configurable rule set. goaglint can automatically fix many
issues while ensuring safety through dry-run mode and optional backups.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Flag parse failures are usage errors, not internal ones.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return exitWithCode(ExitInvalidUsage, err)
	})

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
