// Package main is the entry point for the goaglint CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/goaglint/internal/cli"
	"github.com/yaklabco/goaglint/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/yaklabco/goaglint/pkg/lint/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrLintIssuesFound is just a signal for the exit code.
		if !errors.Is(err, cli.ErrLintIssuesFound) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}

		var coder cli.ExitCoder
		if errors.As(err, &coder) {
			return coder.ExitCode()
		}
		return cli.ExitInternalError
	}

	return 0
}
