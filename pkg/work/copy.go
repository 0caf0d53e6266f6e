package work

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/arthur-debert/dictator/pkg/internal/hashutil"
	"github.com/arthur-debert/dictator/pkg/types"
	"github.com/rs/zerolog"
)

// CopyWork makes the target an exact copy of a file or directory shipped
// with the unit
type CopyWork struct {
	fs      types.FS
	logger  zerolog.Logger
	source  string
	target  string
	relSrc  string
	relDest string
}

func newCopyWork(ctx Context, action types.Action) (Work, error) {
	return &CopyWork{
		fs:      ctx.FS,
		logger:  ctx.Logger,
		source:  ctx.Resolver.FileInUnit(ctx.Unit.Dir, action.CopyFrom),
		target:  ctx.Resolver.FileInTarget(action.Target),
		relSrc:  action.CopyFrom,
		relDest: action.Target,
	}, nil
}

func (w *CopyWork) IsApplied() (bool, error) {
	srcInfo, err := w.fs.Stat(w.source)
	if err != nil {
		if isNotExist(err) {
			// Apply reports the missing source
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", w.source)
	}

	if srcInfo.IsDir() {
		return w.dirApplied(w.source, w.target)
	}
	return w.fileApplied(w.source, w.target)
}

func (w *CopyWork) fileApplied(source, target string) (bool, error) {
	info, err := w.fs.Stat(target)
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", target)
	}
	if info.IsDir() {
		return false, nil
	}

	same, err := hashutil.SameContent(w.fs, source, target)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot compare %s with %s", target, source)
	}
	w.logger.Trace().
		Str("source", source).
		Str("target", target).
		Bool("same", same).
		Msg("compared checksums")
	return same, nil
}

func (w *CopyWork) dirApplied(source, target string) (bool, error) {
	entries, err := w.fs.ReadDir(source)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %s", source)
	}

	for _, entry := range entries {
		src := filepath.Join(source, entry.Name())
		dst := filepath.Join(target, entry.Name())

		var applied bool
		if entry.IsDir() {
			applied, err = w.dirApplied(src, dst)
		} else {
			applied, err = w.fileApplied(src, dst)
		}
		if err != nil || !applied {
			return false, err
		}
	}
	return true, nil
}

func (w *CopyWork) Apply() error {
	srcInfo, err := w.fs.Stat(w.source)
	if err != nil {
		if isNotExist(err) {
			return errors.Newf(errors.ErrPrecondition, "cannot copy from non-existent source %s", w.source).
				WithDetail("source", w.source)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", w.source)
	}

	if srcInfo.IsDir() {
		return w.copyDir(w.source, w.target)
	}
	return w.copyFile(w.source, w.target)
}

func (w *CopyWork) copyFile(source, target string) error {
	info, err := w.fs.Stat(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", source)
	}
	data, err := w.fs.ReadFile(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", source)
	}

	if err := writeFile(w.fs, target, data, info.Mode().Perm()); err != nil {
		return errors.Wrap(err, errors.ErrActionExecute, "copy failed").
			WithDetail("source", source).
			WithDetail("target", target)
	}
	w.logger.Debug().Str("source", source).Str("target", target).Msg("copied file")
	return nil
}

// copyDir only rewrites files whose content differs
func (w *CopyWork) copyDir(source, target string) error {
	entries, err := w.fs.ReadDir(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %s", source)
	}

	if err := w.fs.MkdirAll(target, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", target)
	}

	for _, entry := range entries {
		src := filepath.Join(source, entry.Name())
		dst := filepath.Join(target, entry.Name())

		if entry.IsDir() {
			if err := w.copyDir(src, dst); err != nil {
				return err
			}
			continue
		}

		applied, err := w.fileApplied(src, dst)
		if err != nil {
			return err
		}
		if applied {
			continue
		}
		if err := w.copyFile(src, dst); err != nil {
			return err
		}
	}
	return nil
}

func (w *CopyWork) Info() string {
	return fmt.Sprintf("%s be copied from %s", w.relDest, w.relSrc)
}
