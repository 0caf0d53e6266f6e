package work

import (
	"encoding/json"
	"fmt"

	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/arthur-debert/dictator/pkg/jsonpath"
	"github.com/arthur-debert/dictator/pkg/types"
	"github.com/rs/zerolog"
)

// SubsetOfJSONFileWork makes the target JSON document contain a JSON
// document shipped with the unit
type SubsetOfJSONFileWork struct {
	fs      types.FS
	logger  zerolog.Logger
	source  string
	target  string
	relSrc  string
	relDest string
}

func newSubsetOfJSONFileWork(ctx Context, action types.Action) (Work, error) {
	return &SubsetOfJSONFileWork{
		fs:      ctx.FS,
		logger:  ctx.Logger,
		source:  ctx.Resolver.FileInUnit(ctx.Unit.Dir, action.BeSubsetOfJSONFile),
		target:  ctx.Resolver.FileInTarget(action.Target),
		relSrc:  action.BeSubsetOfJSONFile,
		relDest: action.Target,
	}, nil
}

func (w *SubsetOfJSONFileWork) readSource() ([]byte, interface{}, error) {
	data, found, err := readOptional(w.fs, w.source)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, errors.Newf(errors.ErrPrecondition, "subset source %s does not exist", w.source).
			WithDetail("source", w.source)
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrActionInvalid, "subset source %s is not valid JSON", w.source).
			WithDetail("source", w.source)
	}
	return data, v, nil
}

func (w *SubsetOfJSONFileWork) IsApplied() (bool, error) {
	if _, err := w.fs.Stat(w.source); err != nil && isNotExist(err) {
		// Apply reports the missing source
		return false, nil
	}
	_, want, err := w.readSource()
	if err != nil {
		return false, err
	}

	data, found, err := readOptional(w.fs, w.target)
	if err != nil || !found {
		return false, err
	}

	var have interface{}
	if err := json.Unmarshal(data, &have); err != nil {
		w.logger.Debug().Err(err).Str("target", w.target).Msg("target is not valid JSON")
		return false, nil
	}
	return IsSubset(want, have), nil
}

func (w *SubsetOfJSONFileWork) Apply() error {
	wantDoc, _, err := w.readSource()
	if err != nil {
		return err
	}

	haveDoc, _, err := readOptional(w.fs, w.target)
	if err != nil {
		return err
	}
	if !jsonpath.IsBlank(haveDoc) && !json.Valid(haveDoc) {
		return errors.Newf(errors.ErrActionExecute, "target %s is not valid JSON, refusing to overwrite", w.target).
			WithDetail("target", w.target)
	}

	merged, err := MergeJSON(wantDoc, haveDoc)
	if err != nil {
		return errors.Wrapf(err, errors.ErrActionExecute, "cannot merge %s into %s", w.source, w.target)
	}

	if err := writeFile(w.fs, w.target, merged, 0644); err != nil {
		return errors.Wrap(err, errors.ErrActionExecute, "subset write failed")
	}
	w.logger.Debug().Str("source", w.source).Str("target", w.target).Msg("merged JSON subset")
	return nil
}

func (w *SubsetOfJSONFileWork) Info() string {
	return fmt.Sprintf("%s contain subset of %s", w.relDest, w.relSrc)
}
