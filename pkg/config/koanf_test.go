package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "dictatables", cfg.Paths.UnitsDir)
	assert.Equal(t, ".dictatable-config.json", cfg.Paths.UnitFiles[0])
	assert.Len(t, cfg.Paths.UnitFiles, 4)
	assert.False(t, cfg.Run.DryRun)
	assert.False(t, cfg.Run.KeepGoing)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.Equal(t, 300*time.Millisecond, cfg.Watch.Debounce)
	assert.Contains(t, DefaultsContent(), "[paths]")
}

func TestNew_Layers(t *testing.T) {
	t.Run("missing files are skipped", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := New(Sources{
			UserConfig: filepath.Join(dir, "nope.toml"),
			RootConfig: filepath.Join(dir, ".dictator.toml"),
		})
		require.NoError(t, err)
		assert.Equal(t, "dictatables", cfg.Paths.UnitsDir)
	})

	t.Run("root config overrides user config", func(t *testing.T) {
		dir := t.TempDir()
		user := writeConfig(t, dir, "user.toml", `
[output]
format = "text"

[run]
keep_going = true
`)
		root := writeConfig(t, dir, "root.toml", `
[output]
format = "json"

[paths]
units_dir = "rules"
`)

		cfg, err := New(Sources{UserConfig: user, RootConfig: root})
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Output.Format)
		assert.Equal(t, "rules", cfg.Paths.UnitsDir)
		assert.True(t, cfg.Run.KeepGoing)
	})

	t.Run("environment overrides files", func(t *testing.T) {
		dir := t.TempDir()
		root := writeConfig(t, dir, "root.toml", `
[run]
dry_run = false
`)
		t.Setenv("DICTATOR_RUN__DRY_RUN", "true")
		t.Setenv("DICTATOR_WATCH__DEBOUNCE", "2s")
		t.Setenv("DICTATOR_PATHS__UNIT_FILES", "a.json, b.yaml")

		cfg, err := New(Sources{RootConfig: root})
		require.NoError(t, err)
		assert.True(t, cfg.Run.DryRun)
		assert.Equal(t, 2*time.Second, cfg.Watch.Debounce)
		assert.Equal(t, []string{"a.json", "b.yaml"}, cfg.Paths.UnitFiles)
	})
}

func TestNew_Errors(t *testing.T) {
	t.Run("malformed toml", func(t *testing.T) {
		dir := t.TempDir()
		root := writeConfig(t, dir, "root.toml", "[output\nformat=")

		_, err := New(Sources{RootConfig: root})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid format value", func(t *testing.T) {
		t.Setenv("DICTATOR_OUTPUT__FORMAT", "xml")

		_, err := New(Sources{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		key, value string
		wantKey    string
		wantValue  interface{}
	}{
		{"DICTATOR_OUTPUT__FORMAT", "json", "output.format", "json"},
		{"DICTATOR_RUN__KEEP_GOING", "1", "run.keep_going", "1"},
		{"DICTATOR_PATHS__UNIT_FILES", "x.json,,y.toml", "paths.unit_files", []string{"x.json", "y.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			k, v := envKey(tt.key, tt.value)
			assert.Equal(t, tt.wantKey, k)
			assert.Equal(t, tt.wantValue, v)
		})
	}
}
