package config

// DefaultTemplate is the starter configuration written by "goaglint init".
const DefaultTemplate = `# goaglint configuration
# See: https://github.com/yaklabco/goaglint

# Per-rule settings. A rule entry is either a bare severity
# (off, warn, error) or [severity, options].
rules:
  no-trailing-spaces: warn
  no-short-rules: [warn, {min_length: 4}]
  duplicated-modifiers: warn
  no-duplicated-rules: warn
  no-invalid-rules: error
  if-closed: error
  unknown-preprocessor-directives: error
  single-selector: off

# Honor "! aglint-disable" style comments inside filter lists.
allow_inline_config: true

# Report disable directives that suppressed nothing.
report_unused_disable_directives: false
unused_directive_severity: warn

# Glob patterns for files to skip.
ignore: []

# Backup behavior for --fix.
backups:
  enabled: true
  mode: sidecar
`
