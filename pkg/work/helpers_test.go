package work

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dictator/pkg/filesystem"
	"github.com/arthur-debert/dictator/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const (
	targetRoot = "/target"
	unitDir    = "/dictator/dictatables/unit"
)

type testResolver struct{}

func (testResolver) FileInTarget(rel string) string {
	return filepath.Join(targetRoot, rel)
}

func (testResolver) FileInUnit(dir, rel string) string {
	return filepath.Join(dir, rel)
}

func newFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll(targetRoot, 0755))
	require.NoError(t, fs.MkdirAll(unitDir, 0755))
	for path, content := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fs.WriteFile(path, []byte(content), 0644))
	}
	return fs
}

func newContext(fs types.FS) Context {
	return Context{
		FS:       fs,
		Resolver: testResolver{},
		Logger:   zerolog.Nop(),
		Unit:     types.Unit{Name: "unit", Dir: unitDir},
	}
}

func build(t *testing.T, fs types.FS, action types.Action, kind string) Work {
	t.Helper()
	factory, err := factories.Get(kind)
	require.NoError(t, err)
	w, err := factory(newContext(fs), action)
	require.NoError(t, err)
	return w
}

func readString(t *testing.T, fs types.FS, path string) string {
	t.Helper()
	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
