package work

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/arthur-debert/dictator/pkg/types"
)

func isNotExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist)
}

// readOptional reads a file, returning nil data when it does not exist
func readOptional(fsys types.FS, path string) ([]byte, bool, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if isNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).
			WithDetail("path", path)
	}
	return data, true, nil
}

// tempSuffix names the sibling a target is staged in before the rename
const tempSuffix = ".dictator-tmp"

// writeFile replaces path with data, creating parent directories. The data
// is staged in a sibling file and renamed over path, so readers never see a
// partial document. Existing files keep their permission bits; new files
// get perm.
func writeFile(fsys types.FS, path string, data []byte, perm fs.FileMode) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory for %s", path).
			WithDetail("path", path)
	}
	if info, err := fsys.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp := path + tempSuffix
	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).
			WithDetail("path", path)
	}
	// WriteFile leaves the mode of a stale temp file alone
	if err := fsys.Chmod(tmp, perm); err != nil {
		_ = fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).
			WithDetail("path", path)
	}
	if err := fsys.Rename(tmp, path); err != nil {
		_ = fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot replace %s", path).
			WithDetail("path", path)
	}
	return nil
}
