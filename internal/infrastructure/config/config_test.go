package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := Load(dir)
		require.NoError(t, err)

		assert.Equal(t, DefaultSnapshotFile, cfg.Snapshot.Path)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
		content := "snapshot:\n  path: custom.db\nlog:\n  level: debug\n"
		require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte(content), 0644))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "custom.db", cfg.Snapshot.Path)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
		require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte("log:\n  level: warn\n"), 0644))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, DefaultSnapshotFile, cfg.Snapshot.Path)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
		require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte("\tnot yaml"), 0644))

		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config file")
	})

	t.Run("env override wins", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("EVENTBOOK_DATA", "/tmp/override.db")

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/override.db", cfg.Snapshot.Path)
	})
}

func TestSnapshotPath(t *testing.T) {
	t.Run("relative path resolves against the config dir", func(t *testing.T) {
		cfg := Default()
		got := cfg.SnapshotPath("/base")
		assert.Equal(t, filepath.Join("/base", DefaultConfigDir, DefaultSnapshotFile), got)
	})

	t.Run("absolute path used as-is", func(t *testing.T) {
		cfg := Default()
		cfg.Snapshot.Path = "/var/data/eventbook.db"
		assert.Equal(t, "/var/data/eventbook.db", cfg.SnapshotPath("/base"))
	})
}

func TestWriteDefault(t *testing.T) {
	t.Run("creates directory and file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, WriteDefault(dir))
		assert.True(t, Exists(dir))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, DefaultSnapshotFile, cfg.Snapshot.Path)
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, WriteDefault(dir))
		err := WriteDefault(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Log.Level = "error"
	require.NoError(t, Write(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "error", loaded.Log.Level)
}
