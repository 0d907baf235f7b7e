package cli

import "github.com/yaklabco/goaglint/pkg/runner"

// Exit codes for goaglint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitLintErrors indicates lint completed but found errors.
	ExitLintErrors = 1

	// ExitLintWarnings indicates lint completed but found warnings (when strict mode).
	ExitLintWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCoder is implemented by errors that carry a specific process exit code.
// main extracts the code with errors.As; untagged errors exit with
// ExitInternalError.
type ExitCoder interface {
	ExitCode() int
}

type exitError struct {
	code int
	err  error
}

// exitWithCode tags err with the process exit code it should produce.
func exitWithCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.Counts.Errors > 0 || result.Stats.FilesErrored > 0 {
		return ExitLintErrors
	}

	if strict && result.Stats.Counts.Warnings > 0 {
		return ExitLintWarnings
	}

	return ExitSuccess
}
