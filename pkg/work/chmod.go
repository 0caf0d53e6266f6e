package work

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/arthur-debert/dictator/pkg/types"
	"github.com/rs/zerolog"
)

// modeMask covers the bits a chmod can set
const modeMask = fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky

// ChmodWork sets the permission bits of an existing target
type ChmodWork struct {
	fs     types.FS
	logger zerolog.Logger
	target string
	raw    string
	mode   fs.FileMode
}

func newChmodWork(ctx Context, action types.Action) (Work, error) {
	mode, err := ParseMode(action.Chmod)
	if err != nil {
		return nil, err
	}
	return &ChmodWork{
		fs:     ctx.FS,
		logger: ctx.Logger,
		target: ctx.Resolver.FileInTarget(action.Target),
		raw:    action.Chmod,
		mode:   mode,
	}, nil
}

// ParseMode parses an octal mode string such as "644" or "4755"
func ParseMode(s string) (fs.FileMode, error) {
	n, err := strconv.ParseUint(s, 8, 32)
	if err != nil || n > 07777 {
		return 0, errors.Newf(errors.ErrActionInvalid, "invalid chmod mode %q", s).
			WithDetail("mode", s)
	}

	mode := fs.FileMode(n & 0777)
	if n&04000 != 0 {
		mode |= fs.ModeSetuid
	}
	if n&02000 != 0 {
		mode |= fs.ModeSetgid
	}
	if n&01000 != 0 {
		mode |= fs.ModeSticky
	}
	return mode, nil
}

func (w *ChmodWork) IsApplied() (bool, error) {
	info, err := w.fs.Stat(w.target)
	if err != nil {
		if isNotExist(err) {
			// the file may be created by a later work item
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", w.target)
	}

	current := info.Mode() & modeMask
	w.logger.Trace().
		Str("target", w.target).
		Str("current", fmt.Sprintf("%o", current.Perm())).
		Str("wanted", w.raw).
		Msg("comparing mode")
	return current == w.mode, nil
}

func (w *ChmodWork) Apply() error {
	exists, err := targetState(w.fs, w.target)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Newf(errors.ErrPrecondition, "cannot apply chmod to non-existent file %s", w.target).
			WithDetail("target", w.target)
	}

	if err := w.fs.Chmod(w.target, w.mode); err != nil {
		return errors.Wrapf(err, errors.ErrActionExecute, "chmod %s %s", w.raw, w.target).
			WithDetail("target", w.target)
	}
	return nil
}

func (w *ChmodWork) Info() string {
	return fmt.Sprintf("%s have chmod %s", filepath.Base(w.target), w.raw)
}
