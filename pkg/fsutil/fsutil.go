// Package fsutil holds the write-safety primitives behind --fix: reading a
// filter list together with enough metadata to notice outside edits,
// atomically replacing file content, and sidecar backups of the pre-fix
// original.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"time"
)

// Sentinel errors callers can match with errors.Is.
var (
	// ErrNotFound means the path does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied means the path exists but cannot be read.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory means a directory was given where a file was expected.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrNilFileInfo means a modification check was handed a nil FileInfo.
	ErrNilFileInfo = errors.New("nil FileInfo")
)

// FileInfo records what a file looked like when it was read. The fix
// pipeline captures one before linting and consults it again before
// writing, so a list edited or deleted underneath a long run is never
// clobbered.
type FileInfo struct {
	// Path as given to ReadFile.
	Path string

	// Mode holds the permission bits to preserve on rewrite.
	Mode os.FileMode

	// ModTime and Size feed the cheap first modification check.
	ModTime time.Time
	Size    int64

	// Hash is the SHA-256 of the content, the authoritative check.
	Hash [32]byte
}

// ReadFile reads a filter list and captures the FileInfo needed for
// modification detection later in the run.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	stat, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case os.IsPermission(err):
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	case err != nil:
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	case stat.IsDir():
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	return content, &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}, nil
}

// CheckModified reports whether the file has changed since info was
// captured. Mod time and size are compared first; when they match, the
// content is re-hashed, which also catches same-size in-place edits. A
// deleted file counts as modified.
func CheckModified(ctx context.Context, info *FileInfo) (bool, error) {
	if info == nil {
		return false, ErrNilFileInfo
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("check %s: %w", info.Path, err)
	}

	stat, err := os.Stat(info.Path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", info.Path, err)
	}

	if statDiffers(stat, info) {
		return true, nil
	}

	content, err := os.ReadFile(info.Path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", info.Path, err)
	}
	return sha256.Sum256(content) != info.Hash, nil
}

// CheckModifiedQuick is the stat-only tier of CheckModified, for callers
// that can tolerate missing a same-size in-place edit.
func CheckModifiedQuick(ctx context.Context, info *FileInfo) (bool, error) {
	if info == nil {
		return false, ErrNilFileInfo
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("check %s: %w", info.Path, err)
	}

	stat, err := os.Stat(info.Path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", info.Path, err)
	}
	return statDiffers(stat, info), nil
}

func statDiffers(stat os.FileInfo, info *FileInfo) bool {
	return !stat.ModTime().Equal(info.ModTime) || stat.Size() != info.Size
}
