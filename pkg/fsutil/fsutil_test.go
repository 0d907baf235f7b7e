package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goaglint/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.txt")
	ctx := context.Background()

	require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("||ads.example^\n"), 0600))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "||ads.example^\n", string(got))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), stat.Mode().Perm())

	// No stray temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteAtomicPreservesOriginalOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "list.txt")

	err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0644)
	require.Error(t, err)
}

func TestWriteAtomicIfChanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.txt")
	ctx := context.Background()

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("a\n"), 0644)
	require.NoError(t, err)
	assert.True(t, written, "new file is always written")

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("a\n"), 0644)
	require.NoError(t, err)
	assert.False(t, written, "identical content is a no-op")

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("b\n"), 0644)
	require.NoError(t, err)
	assert.True(t, written)
}

func TestReadFileAndCheckModified(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.txt")
	ctx := context.Background()

	require.NoError(t, os.WriteFile(path, []byte("||ads.example^\n"), 0644))

	content, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "||ads.example^\n", string(content))
	require.NotNil(t, info)

	modified, err := fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.False(t, modified)

	// Same size, different bytes: the hash tier must catch it.
	require.NoError(t, os.WriteFile(path, []byte("||bds.example^\n"), 0644))
	require.NoError(t, os.Chtimes(path, info.ModTime, info.ModTime))

	modified, err = fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified)

	// Deleted file counts as modified.
	require.NoError(t, os.Remove(path))
	modified, err = fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified)
}

func TestReadFileErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	_, _, err := fsutil.ReadFile(ctx, filepath.Join(dir, "nope.txt"))
	assert.ErrorIs(t, err, fsutil.ErrNotFound)

	_, _, err = fsutil.ReadFile(ctx, dir)
	assert.ErrorIs(t, err, fsutil.ErrIsDirectory)

	_, err = fsutil.CheckModified(ctx, nil)
	assert.ErrorIs(t, err, fsutil.ErrNilFileInfo)
}

func TestBackupPath(t *testing.T) {
	assert.Equal(t, "/p/list.txt.goaglint.bak", fsutil.BackupPath("/p/list.txt", fsutil.BackupModeSidecar))
	assert.Empty(t, fsutil.BackupPath("/p/list.txt", fsutil.BackupModeNone))
	assert.Equal(t, "/p/list.txt.goaglint.bak", fsutil.BackupPath("/p/list.txt", fsutil.BackupMode("bogus")))
}

func TestBackupLifecycle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.txt")
	ctx := context.Background()
	cfg := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

	require.NoError(t, os.WriteFile(path, []byte("original\n"), 0600))

	created, err := fsutil.CreateBackup(ctx, path, cfg)
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, fsutil.BackupExists(path, cfg.Mode))

	backupPath := fsutil.BackupPath(path, cfg.Mode)
	stat, err := os.Stat(backupPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), stat.Mode().Perm(), "backup keeps the original mode")

	// Idempotent: a second create never clobbers the first backup.
	require.NoError(t, os.WriteFile(path, []byte("changed\n"), 0600))
	created, err = fsutil.CreateBackup(ctx, path, cfg)
	require.NoError(t, err)
	assert.False(t, created)

	restored, err := fsutil.RestoreBackup(ctx, path, cfg.Mode)
	require.NoError(t, err)
	assert.True(t, restored)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original\n", string(got))

	removed, err := fsutil.RemoveBackup(path, cfg.Mode)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, fsutil.BackupExists(path, cfg.Mode))
}

func TestBackupDisabled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.txt")
	ctx := context.Background()

	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))

	created, err := fsutil.CreateBackup(ctx, path, fsutil.BackupConfig{Enabled: false, Mode: fsutil.BackupModeSidecar})
	require.NoError(t, err)
	assert.False(t, created)

	created, err = fsutil.CreateBackup(ctx, path, fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeNone})
	require.NoError(t, err)
	assert.False(t, created)

	restored, err := fsutil.RestoreBackup(ctx, path, fsutil.BackupModeSidecar)
	require.NoError(t, err)
	assert.False(t, restored, "no backup to restore")
}
