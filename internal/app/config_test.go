//go:build unit

package app

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		// Prepare
		t.Setenv("HOME", t.TempDir())

		// Execute
		config, err := LoadConfig("")

		// Check
		assert.NoError(t, err, "loaded")
		assert.Equal(t, int64(16), config.InitialCapacity, "default capacity")
		assert.Equal(t, "chaining", config.CollisionTechnique, "default technique")
		assert.Equal(t, "title", config.DefaultSortField, "default field")
		assert.Equal(t, "merge", config.DefaultSortAlgorithm, "default algorithm")
		assert.True(t, config.SampleBooks, "sample books on")
		assert.Equal(t, "stderr", config.LogOutput, "default log output")
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		// Prepare
		t.Setenv("HOME", t.TempDir())
		t.Setenv("BOOKSHELF_COLLISION_TECHNIQUE", "linear")
		t.Setenv("BOOKSHELF_INITIAL_CAPACITY", "64")
		t.Setenv("BOOKSHELF_SAMPLE_BOOKS", "false")
		t.Setenv("LOG_LEVEL", "debug")

		// Execute
		config, err := LoadConfig("")

		// Check
		assert.NoError(t, err, "loaded")
		assert.Equal(t, "linear", config.CollisionTechnique, "technique from env")
		assert.Equal(t, int64(64), config.InitialCapacity, "capacity from env")
		assert.False(t, config.SampleBooks, "sample books off")
		assert.Equal(t, "debug", config.LogLevel, "unprefixed log level")
	})

	t.Run("reads an explicit config file", func(t *testing.T) {
		// Prepare
		t.Setenv("HOME", t.TempDir())
		path := filepath.Join(t.TempDir(), "bookshelf.yaml")
		content := "default_sort_field: year\nadmin_password: s3cret\nseed_file: books.yaml\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644), "write config")

		// Execute
		config, err := LoadConfig(path)

		// Check
		assert.NoError(t, err, "loaded")
		assert.Equal(t, path, config.ConfigFile, "file recorded")
		assert.Equal(t, "year", config.DefaultSortField, "field from file")
		assert.Equal(t, "s3cret", config.AdminPassword, "password from file")
		assert.Equal(t, "books.yaml", config.SeedFile, "seed from file")
	})

	t.Run("finds the config file in home", func(t *testing.T) {
		// Prepare
		home := t.TempDir()
		t.Setenv("HOME", home)
		require.NoError(t, os.WriteFile(filepath.Join(home, ".bookshelf.yaml"), []byte("format: yaml\n"), 0644), "write config")

		// Execute
		config, err := LoadConfig("")

		// Check
		assert.NoError(t, err, "loaded")
		assert.Equal(t, "yaml", config.Format, "format from home config")
	})

	t.Run("fails on missing explicit file", func(t *testing.T) {
		// Execute
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		// Check
		assert.Error(t, err, "missing file reported")
	})
}

func TestConfig_UpdateFromFlags(t *testing.T) {
	t.Run("flags win over loaded values", func(t *testing.T) {
		// Prepare
		config := &Config{Format: "table", LogLevel: "error", SeedFile: "a.yaml"}

		// Execute
		config.UpdateFromFlags(Flags{Verbose: true, Format: "json", LogLevel: "trace", SeedFile: "b.yaml"})

		// Check
		assert.True(t, config.Verbose, "verbose set")
		assert.Equal(t, "json", config.Format, "format from flag")
		assert.Equal(t, "trace", config.LogLevelFlag, "explicit level kept apart")
		assert.Equal(t, "error", config.LogLevel, "environment level kept")
		assert.Equal(t, "b.yaml", config.SeedFile, "seed from flag")
	})

	t.Run("empty flags keep loaded values", func(t *testing.T) {
		// Prepare
		config := &Config{Format: "yaml", Quiet: true}

		// Execute
		config.UpdateFromFlags(Flags{})

		// Check
		assert.Equal(t, "yaml", config.Format, "format kept")
		assert.True(t, config.Quiet, "quiet kept")
	})
}
