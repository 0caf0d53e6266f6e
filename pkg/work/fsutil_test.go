package work

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	t.Run("creates parents and leaves no staging file", func(t *testing.T) {
		fsys := newFS(t, nil)
		path := targetRoot + "/nested/dir/out.json"

		require.NoError(t, writeFile(fsys, path, []byte("{}"), 0600))

		assert.Equal(t, "{}", readString(t, fsys, path))
		info, err := fsys.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0600), info.Mode().Perm())

		_, err = fsys.Stat(path + tempSuffix)
		assert.True(t, isNotExist(err))
	})

	t.Run("existing file keeps its mode", func(t *testing.T) {
		path := targetRoot + "/tsconfig.json"
		fsys := newFS(t, map[string]string{path: "old"})
		require.NoError(t, fsys.Chmod(path, 0640))

		require.NoError(t, writeFile(fsys, path, []byte("new"), 0644))

		assert.Equal(t, "new", readString(t, fsys, path))
		info, err := fsys.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0640), info.Mode().Perm())
	})

	t.Run("stale staging file is replaced", func(t *testing.T) {
		path := targetRoot + "/a.json"
		fsys := newFS(t, map[string]string{path + tempSuffix: "garbage"})
		require.NoError(t, fsys.Chmod(path+tempSuffix, 0400))

		require.NoError(t, writeFile(fsys, path, []byte("[]"), 0644))

		assert.Equal(t, "[]", readString(t, fsys, path))
		info, err := fsys.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0644), info.Mode().Perm())
	})
}
