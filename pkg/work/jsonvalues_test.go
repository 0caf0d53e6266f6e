package work

import (
	"testing"

	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/arthur-debert/dictator/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONPathValuesWork(t *testing.T) {
	action := types.Action{
		Target: "package.json",
		HaveJSONPathValues: []types.JSONPathValue{
			{Path: "$.scripts.lint", Value: "eslint ."},
			{Path: "$['private']", Value: true},
		},
	}
	target := targetRoot + "/package.json"

	t.Run("sets values keeping other keys", func(t *testing.T) {
		fsys := newFS(t, map[string]string{target: `{"name": "demo", "scripts": {"test": "jest"}}`})
		w := build(t, fsys, action, types.ActionHaveJSONPathValues)

		require.NoError(t, w.Apply())
		assert.JSONEq(t, `{
			"name": "demo",
			"scripts": {"test": "jest", "lint": "eslint ."},
			"private": true
		}`, readString(t, fsys, target))
	})

	t.Run("missing target starts from an empty object", func(t *testing.T) {
		fsys := newFS(t, nil)
		w := build(t, fsys, action, types.ActionHaveJSONPathValues)

		require.NoError(t, w.Apply())
		assert.JSONEq(t, `{"scripts": {"lint": "eslint ."}, "private": true}`, readString(t, fsys, target))
	})

	t.Run("blank target converges", func(t *testing.T) {
		fsys := newFS(t, map[string]string{target: " \n\t\n"})
		w := build(t, fsys, action, types.ActionHaveJSONPathValues)

		applied, err := w.IsApplied()
		require.NoError(t, err)
		assert.False(t, applied)

		require.NoError(t, w.Apply())
		applied, err = w.IsApplied()
		require.NoError(t, err)
		assert.True(t, applied)
		assert.JSONEq(t, `{"scripts": {"lint": "eslint ."}, "private": true}`, readString(t, fsys, target))
	})

	t.Run("partially applied", func(t *testing.T) {
		fsys := newFS(t, map[string]string{target: `{"scripts": {"lint": "eslint ."}, "private": false}`})
		applied, err := build(t, fsys, action, types.ActionHaveJSONPathValues).IsApplied()
		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("numbers compare by value", func(t *testing.T) {
		fsys := newFS(t, map[string]string{target: `{"version": 2.0}`})
		w := build(t, fsys, types.Action{
			Target:             "package.json",
			HaveJSONPathValues: []types.JSONPathValue{{Path: "$.version", Value: 2}},
		}, types.ActionHaveJSONPathValues)

		applied, err := w.IsApplied()
		require.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("unparseable target is not overwritten", func(t *testing.T) {
		fsys := newFS(t, map[string]string{target: `not json`})
		w := build(t, fsys, action, types.ActionHaveJSONPathValues)

		applied, err := w.IsApplied()
		require.NoError(t, err)
		assert.False(t, applied)

		err = w.Apply()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrActionExecute))
		assert.Equal(t, "not json", readString(t, fsys, target))
	})

	t.Run("info lists paths", func(t *testing.T) {
		w := build(t, newFS(t, nil), action, types.ActionHaveJSONPathValues)
		assert.Equal(t, "package.json have JSON path values $.scripts.lint, $['private']", w.Info())
	})
}
