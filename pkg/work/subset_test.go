package work

import (
	"testing"

	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/arthur-debert/dictator/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubsetOfJSONFileWork(t *testing.T) {
	action := types.Action{Target: ".vscode/settings.json", BeSubsetOfJSONFile: "settings.json"}
	source := unitDir + "/settings.json"
	target := targetRoot + "/.vscode/settings.json"

	t.Run("missing target is created", func(t *testing.T) {
		fsys := newFS(t, map[string]string{source: `{"editor.tabSize": 2}`})
		w := build(t, fsys, action, types.ActionBeSubsetOfJSONFile)

		applied, err := w.IsApplied()
		require.NoError(t, err)
		assert.False(t, applied)

		require.NoError(t, w.Apply())
		assert.JSONEq(t, `{"editor.tabSize": 2}`, readString(t, fsys, target))
	})

	t.Run("existing keys survive the merge", func(t *testing.T) {
		fsys := newFS(t, map[string]string{
			source: `{"editor.tabSize": 2, "files.exclude": {"dist": true}}`,
			target: `{"zeta": 1, "files.exclude": {"node_modules": true}, "alpha": "a"}`,
		})
		w := build(t, fsys, action, types.ActionBeSubsetOfJSONFile)
		require.NoError(t, w.Apply())

		got := readString(t, fsys, target)
		assert.JSONEq(t, `{
			"zeta": 1,
			"files.exclude": {"node_modules": true, "dist": true},
			"alpha": "a",
			"editor.tabSize": 2
		}`, got)
		// target key order is preserved
		assert.Less(t, indexOf(got, `"zeta"`), indexOf(got, `"alpha"`))
	})

	t.Run("blank target converges", func(t *testing.T) {
		fsys := newFS(t, map[string]string{
			source: `{"editor.tabSize": 2}`,
			target: "  \n",
		})
		w := build(t, fsys, action, types.ActionBeSubsetOfJSONFile)

		applied, err := w.IsApplied()
		require.NoError(t, err)
		assert.False(t, applied)

		require.NoError(t, w.Apply())
		applied, err = w.IsApplied()
		require.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("source with an empty key converges", func(t *testing.T) {
		fsys := newFS(t, map[string]string{
			source: `{"": 1, "a": {"": true}}`,
			target: `{"b": 2}`,
		})
		w := build(t, fsys, action, types.ActionBeSubsetOfJSONFile)

		require.NoError(t, w.Apply())
		assert.JSONEq(t, `{"b": 2, "": 1, "a": {"": true}}`, readString(t, fsys, target))

		applied, err := w.IsApplied()
		require.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("superset target is applied", func(t *testing.T) {
		fsys := newFS(t, map[string]string{
			source: `{"a": {"b": [1]}}`,
			target: `{"a": {"b": [3, 1], "c": true}, "d": null}`,
		})
		applied, err := build(t, fsys, action, types.ActionBeSubsetOfJSONFile).IsApplied()
		require.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("unparseable target", func(t *testing.T) {
		fsys := newFS(t, map[string]string{
			source: `{"a": 1}`,
			target: `{"a": `,
		})
		w := build(t, fsys, action, types.ActionBeSubsetOfJSONFile)

		applied, err := w.IsApplied()
		require.NoError(t, err)
		assert.False(t, applied)

		err = w.Apply()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrActionExecute))
		assert.Equal(t, `{"a": `, readString(t, fsys, target))
	})

	t.Run("missing source", func(t *testing.T) {
		fsys := newFS(t, map[string]string{target: `{}`})
		w := build(t, fsys, action, types.ActionBeSubsetOfJSONFile)

		applied, err := w.IsApplied()
		require.NoError(t, err)
		assert.False(t, applied)

		err = w.Apply()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPrecondition))
	})

	t.Run("invalid source", func(t *testing.T) {
		fsys := newFS(t, map[string]string{source: `nope`})
		_, err := build(t, fsys, action, types.ActionBeSubsetOfJSONFile).IsApplied()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrActionInvalid))
	})

	t.Run("info", func(t *testing.T) {
		w := build(t, newFS(t, nil), action, types.ActionBeSubsetOfJSONFile)
		assert.Equal(t, ".vscode/settings.json contain subset of settings.json", w.Info())
	})
}
