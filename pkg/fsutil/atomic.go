package fsutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is applied when a caller passes mode 0.
const DefaultFileMode os.FileMode = 0o644

// WriteAtomic replaces path with content without ever exposing a torn file.
// The content is staged in a temp file next to the target, synced, given the
// requested mode, and renamed over path. Rename is atomic on POSIX, so a
// concurrent reader sees either the old list or the fully fixed one. On any
// failure the stage file is removed and the original is left untouched.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if mode == 0 {
		mode = DefaultFileMode
	}

	// The stage file must live on the same filesystem as the target or the
	// final rename stops being atomic.
	stage, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("stage file for %s: %w", path, err)
	}
	stagePath := stage.Name()

	committed := false
	defer func() {
		if !committed {
			_ = stage.Close()
			_ = os.Remove(stagePath)
		}
	}()

	if _, err := stage.Write(content); err != nil {
		return fmt.Errorf("write stage file: %w", err)
	}
	if err := stage.Sync(); err != nil {
		return fmt.Errorf("sync stage file: %w", err)
	}
	if err := stage.Close(); err != nil {
		return fmt.Errorf("close stage file: %w", err)
	}
	if err := os.Chmod(stagePath, mode); err != nil {
		return fmt.Errorf("chmod stage file: %w", err)
	}
	if err := os.Rename(stagePath, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	committed = true
	return nil
}

// WriteAtomicIfChanged is WriteAtomic guarded by a content comparison: a
// file already holding content is left alone, mtime included. Reports
// whether the file was written.
func WriteAtomicIfChanged(ctx context.Context, path string, content []byte, mode os.FileMode) (bool, error) {
	existing, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No file yet; write it below.
	case err != nil:
		return false, fmt.Errorf("read %s: %w", path, err)
	case bytes.Equal(existing, content):
		return false, nil
	}

	if err := WriteAtomic(ctx, path, content, mode); err != nil {
		return false, err
	}
	return true, nil
}
