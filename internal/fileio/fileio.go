// Package fileio reads whole files and replaces them atomically.
package fileio

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dchest/uniuri"
	"github.com/pkg/errors"
)

// ErrExists is returned by WriteAll when the target exists and overwriting
// was not requested.
var ErrExists = errors.New("file already exists")

// ReadAll returns the full contents of path.
func ReadAll(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %s", path)
	}
	return data, nil
}

// WriteAll stores data at path. The bytes go to a temporary file in the same
// directory that is renamed over path only once fully written, so readers
// never observe a partial file.
func WriteAll(path string, data []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.Wrapf(ErrExists, "cannot write %s", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, "cannot stat %s", path)
		}
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uniuri.NewLen(10)+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return errors.Wrapf(err, "cannot create temporary file for %s", path)
	}

	if err := writeAndClose(f, data); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "cannot write %s", path)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "cannot move %s into place", path)
	}
	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
