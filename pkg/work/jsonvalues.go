package work

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/arthur-debert/dictator/pkg/jsonpath"
	"github.com/arthur-debert/dictator/pkg/types"
	"github.com/rs/zerolog"
)

// JSONPathValuesWork sets values at JSON paths of the target document
type JSONPathValuesWork struct {
	fs      types.FS
	logger  zerolog.Logger
	target  string
	relDest string
	values  []types.JSONPathValue
	paths   []jsonpath.Path
}

func newJSONPathValuesWork(ctx Context, action types.Action) (Work, error) {
	w := &JSONPathValuesWork{
		fs:      ctx.FS,
		logger:  ctx.Logger,
		target:  ctx.Resolver.FileInTarget(action.Target),
		relDest: action.Target,
		values:  action.HaveJSONPathValues,
	}
	for _, pv := range action.HaveJSONPathValues {
		p, err := jsonpath.Parse(pv.Path)
		if err != nil {
			return nil, err
		}
		w.paths = append(w.paths, p)
	}
	return w, nil
}

func (w *JSONPathValuesWork) IsApplied() (bool, error) {
	data, found, err := readOptional(w.fs, w.target)
	if err != nil || !found {
		return false, err
	}
	if !json.Valid(data) {
		w.logger.Debug().Str("target", w.target).Msg("target is not valid JSON")
		return false, nil
	}

	for i, p := range w.paths {
		got, ok, err := p.Get(data)
		if err != nil || !ok || !jsonpath.Equal(got, w.values[i].Value) {
			return false, nil
		}
	}
	return true, nil
}

func (w *JSONPathValuesWork) Apply() error {
	data, _, err := readOptional(w.fs, w.target)
	if err != nil {
		return err
	}
	if !jsonpath.IsBlank(data) && !json.Valid(data) {
		return errors.Newf(errors.ErrActionExecute, "target %s is not valid JSON, refusing to overwrite", w.target).
			WithDetail("target", w.target)
	}

	for i, p := range w.paths {
		if data, err = p.Set(data, w.values[i].Value); err != nil {
			return errors.Wrapf(err, errors.ErrActionExecute, "cannot set %s in %s", p, w.target)
		}
	}

	if err := writeFile(w.fs, w.target, jsonpath.Pretty(data), 0644); err != nil {
		return errors.Wrap(err, errors.ErrActionExecute, "JSON path write failed")
	}
	w.logger.Debug().Str("target", w.target).Int("paths", len(w.paths)).Msg("set JSON path values")
	return nil
}

func (w *JSONPathValuesWork) Info() string {
	names := make([]string, len(w.paths))
	for i, p := range w.paths {
		names[i] = p.String()
	}
	return fmt.Sprintf("%s have JSON path values %s", w.relDest, strings.Join(names, ", "))
}
