package work

import (
	"io/fs"
	"testing"

	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/arthur-debert/dictator/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyWork(t *testing.T) {
	action := types.Action{Target: "config/.prettierrc", CopyFrom: "files/.prettierrc"}

	t.Run("creates missing target with parents", func(t *testing.T) {
		fsys := newFS(t, nil)
		require.NoError(t, fsys.MkdirAll(unitDir+"/files", 0755))
		require.NoError(t, fsys.WriteFile(unitDir+"/files/.prettierrc", []byte(`{"semi": false}`), 0600))
		w := build(t, fsys, action, types.ActionCopyFrom)

		require.NoError(t, w.Apply())
		assert.Equal(t, `{"semi": false}`, readString(t, fsys, targetRoot+"/config/.prettierrc"))

		info, err := fsys.Stat(targetRoot + "/config/.prettierrc")
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0600), info.Mode().Perm())
	})

	t.Run("different content is not applied", func(t *testing.T) {
		fsys := newFS(t, map[string]string{
			unitDir + "/files/.prettierrc":       `{"semi": false}`,
			targetRoot + "/config/.prettierrc": `{"semi": true}`,
		})
		w := build(t, fsys, action, types.ActionCopyFrom)

		applied, err := w.IsApplied()
		require.NoError(t, err)
		assert.False(t, applied)

		require.NoError(t, w.Apply())
		assert.Equal(t, `{"semi": false}`, readString(t, fsys, targetRoot+"/config/.prettierrc"))
	})

	t.Run("identical content is applied", func(t *testing.T) {
		fsys := newFS(t, map[string]string{
			unitDir + "/files/.prettierrc":       "same",
			targetRoot + "/config/.prettierrc": "same",
		})
		applied, err := build(t, fsys, action, types.ActionCopyFrom).IsApplied()
		require.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("target is a directory", func(t *testing.T) {
		fsys := newFS(t, map[string]string{unitDir + "/files/.prettierrc": "x"})
		require.NoError(t, fsys.MkdirAll(targetRoot+"/config/.prettierrc", 0755))

		applied, err := build(t, fsys, action, types.ActionCopyFrom).IsApplied()
		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("missing source", func(t *testing.T) {
		fsys := newFS(t, nil)
		w := build(t, fsys, action, types.ActionCopyFrom)

		applied, err := w.IsApplied()
		require.NoError(t, err)
		assert.False(t, applied)

		err = w.Apply()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPrecondition))
	})

	t.Run("directory only rewrites changed files", func(t *testing.T) {
		fsys := newFS(t, map[string]string{
			unitDir + "/hooks/a":      "a",
			unitDir + "/hooks/sub/b":  "b",
			targetRoot + "/.hooks/a":  "a",
			targetRoot + "/.hooks/zz": "extra",
		})
		require.NoError(t, fsys.Chmod(targetRoot+"/.hooks/a", 0600))
		w := build(t, fsys, types.Action{Target: ".hooks", CopyFrom: "hooks"}, types.ActionCopyFrom)

		require.NoError(t, w.Apply())
		assert.Equal(t, "b", readString(t, fsys, targetRoot+"/.hooks/sub/b"))
		assert.Equal(t, "extra", readString(t, fsys, targetRoot+"/.hooks/zz"))

		info, err := fsys.Stat(targetRoot + "/.hooks/a")
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0600), info.Mode().Perm())
	})

	t.Run("info", func(t *testing.T) {
		w := build(t, newFS(t, nil), action, types.ActionCopyFrom)
		assert.Equal(t, "config/.prettierrc be copied from files/.prettierrc", w.Info())
	})
}
