package fsutil

import (
	"context"
	"fmt"
	"os"
)

// BackupSuffix marks sidecar backups: list.txt backs up to
// list.txt.goaglint.bak next to the original.
const BackupSuffix = ".goaglint.bak"

// BackupMode selects where pre-fix backups go.
type BackupMode string

const (
	// BackupModeSidecar writes the backup next to the original file.
	BackupModeSidecar BackupMode = "sidecar"

	// BackupModeNone suppresses backups entirely.
	BackupModeNone BackupMode = "none"
)

// BackupConfig controls whether and how CreateBackup runs.
type BackupConfig struct {
	Enabled bool
	Mode    BackupMode
}

// DefaultBackupConfig returns sidecar mode with backups off; the fix
// pipeline flips Enabled from the resolved configuration.
func DefaultBackupConfig() BackupConfig {
	return BackupConfig{Enabled: false, Mode: BackupModeSidecar}
}

// BackupPath maps a file path to its backup location, or "" when the mode
// produces no backups. Unrecognized modes fall back to sidecar.
func BackupPath(path string, mode BackupMode) string {
	if mode == BackupModeNone {
		return ""
	}
	return path + BackupSuffix
}

// BackupExists reports whether path already has a backup under mode.
func BackupExists(path string, mode BackupMode) bool {
	backupPath := BackupPath(path, mode)
	if backupPath == "" {
		return false
	}
	_, err := os.Stat(backupPath)
	return err == nil
}

// CreateBackup snapshots path before the first fix touches it. An existing
// backup is never overwritten: across repeated --fix runs the backup keeps
// the content from before the first rewrite, which is the version worth
// restoring. Reports whether a new backup was written.
func CreateBackup(ctx context.Context, path string, cfg BackupConfig) (bool, error) {
	if !cfg.Enabled || cfg.Mode == BackupModeNone {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("backup %s: %w", path, err)
	}

	backupPath := BackupPath(path, cfg.Mode)
	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat %s: %w", backupPath, err)
	}

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// Nothing on disk yet, nothing to preserve.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := WriteAtomic(ctx, backupPath, content, stat.Mode()); err != nil {
		return false, fmt.Errorf("write backup for %s: %w", path, err)
	}
	return true, nil
}

// RestoreBackup copies the backup content back over path, preserving the
// backup's mode. Reports whether a restore happened; a missing backup is
// not an error.
func RestoreBackup(ctx context.Context, path string, mode BackupMode) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("restore %s: %w", path, err)
	}

	backupPath := BackupPath(path, mode)
	if backupPath == "" {
		return false, nil
	}

	content, err := os.ReadFile(backupPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", backupPath, err)
	}

	stat, err := os.Stat(backupPath)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", backupPath, err)
	}

	if err := WriteAtomic(ctx, path, content, stat.Mode()); err != nil {
		return false, fmt.Errorf("restore %s: %w", path, err)
	}
	return true, nil
}

// RemoveBackup deletes the backup for path if one exists.
func RemoveBackup(path string, mode BackupMode) (bool, error) {
	backupPath := BackupPath(path, mode)
	if backupPath == "" {
		return false, nil
	}

	if err := os.Remove(backupPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("remove %s: %w", backupPath, err)
	}
	return true, nil
}
