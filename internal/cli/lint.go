package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goaglint/internal/configloader"
	"github.com/yaklabco/goaglint/internal/logging"
	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/lint"
	_ "github.com/yaklabco/goaglint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/goaglint/pkg/parser/cssel"
	"github.com/yaklabco/goaglint/pkg/parser/fltparse"
	"github.com/yaklabco/goaglint/pkg/reporter"
	"github.com/yaklabco/goaglint/pkg/runner"
)

// ErrLintIssuesFound is returned when lint issues are found.
var ErrLintIssuesFound = errors.New("lint issues found")

type lintFlags struct {
	format        string
	ignore        []string
	fixRules      []string
	fixCategories []string
	maxFixRounds  int
	strict        bool
	noContext     bool
	compact       bool
	summaryOrder  string
}

func newLintCommand() *cobra.Command {
	var cfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint filter list files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cfg, flags)
		},
	}

	addLintFlags(cmd, &cfg, flags)

	return cmd
}

const lintLongDescription = `Lint adblock filter lists for syntax and style issues.

By default, lints all .txt files in the current directory and
subdirectories that look like filter lists. Specify paths to lint
specific files or directories.

Examples:
  goaglint lint                    # Lint current directory
  goaglint lint lists/             # Lint lists directory
  goaglint lint easylist.txt       # Lint single file
  goaglint lint --fix              # Lint and auto-fix issues
  goaglint lint --fix --dry-run    # Show fixes without applying
  goaglint lint --format json      # Output as JSON for CI
  goaglint lint --strict           # Treat warnings as errors`

func runLint(cmd *cobra.Command, args []string, cfg *config.Config, flags *lintFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	cfg.Format = config.OutputFormat(flags.format)
	cfg.Ignore = flags.ignore
	cfg.FixRules = flags.fixRules
	cfg.FixCategories = flags.fixCategories
	cfg.MaxFixRounds = flags.maxFixRounds

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return exitWithCode(ExitConfigError, errors.Join(errors.New("failed to load configuration"), err))
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldFix, finalCfg.Fix,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
	)

	engine, err := newLintEngine()
	if err != nil {
		return exitWithCode(ExitInternalError, fmt.Errorf("create engine: %w", err))
	}

	lintRunner := runner.New(engine)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return exitWithCode(ExitIOError, errors.Join(errors.New("lint run failed"), err))
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return exitWithCode(ExitInvalidUsage, fmt.Errorf("invalid format: %w", err))
	}

	rep, err := reporter.New(reporter.Options{
		Writer:       cmd.OutOrStdout(),
		Format:       format,
		Color:        colorMode,
		ShowContext:  !flags.noContext,
		ShowSummary:  true,
		Compact:      flags.compact,
		SummaryOrder: reporter.SummaryOrder(flags.summaryOrder),
		WorkingDir:   workDir,
	})
	if err != nil {
		return exitWithCode(ExitInvalidUsage, fmt.Errorf("create reporter: %w", err))
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return exitWithCode(ExitIOError, fmt.Errorf("report results: %w", err))
	}

	if code := ExitCodeFromResult(result, flags.strict); code != ExitSuccess {
		return exitWithCode(code, ErrLintIssuesFound)
	}

	return nil
}

// newLintEngine wires the filter-list parser, the default rule registry,
// and the embedded CSS selector parser for cosmetic rule bodies.
func newLintEngine() (*lint.Engine, error) {
	engine := lint.NewEngine(fltparse.New(), lint.DefaultRegistry)
	if err := engine.RegisterEmbedded("CosmeticRule > SelectorBody.body", cssel.TreeAdapter{}); err != nil {
		return nil, err
	}
	return engine, nil
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	cmd.Flags().BoolVar(&cfg.Fix, "fix", false, "automatically fix issues")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show fixes without applying them")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.fixRules, "fix-rules", nil, "limit auto-fix to specific rule IDs")
	cmd.Flags().StringSliceVar(&flags.fixCategories, "fix-categories", nil,
		"limit auto-fix to rule categories: problem, suggestion, layout")
	cmd.Flags().IntVar(&flags.maxFixRounds, "max-fix-rounds", 0,
		"maximum lint-then-fix iterations (0 = default)")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when fixing")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format (JSON)")
	cmd.Flags().StringVar(&flags.summaryOrder, "summary-order", "rules",
		"order of tables in summary output: rules, files")
}
