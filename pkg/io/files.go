package io

import (
	"io/fs"
	"os"
	"path/filepath"
)

// CreateAll creates a file along with its parent directories, if missing.
//
// args:
//   - name: filepath to be created.
//   - fmod: os.FileMode for the file.
//   - dmod: os.FileMode for directories.
//
// Note that `dmod` effects only newly-created directories.
// Directories which have existed are left as they are.
//
// return (*os.File, error):
//
//	When a file is created successfully, `(file, nil)` pair will be returned.
//	Or, if it failed creating one of the file or directories, `(nil, err)`.
func CreateAll(name string, fmod os.FileMode, dmod os.FileMode) (*os.File, error) {

	dirname := filepath.Dir(name)
	if err := os.MkdirAll(dirname, dmod); err != nil {
		return nil, err
	}

	return os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, fmod)
}

// DirCopy copies every regular file under src into dest, keeping the
// directory layout. Directories missing on the dest side are created
// with mode 0755.
func DirCopy(src string, dest string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		out, err := CreateAll(filepath.Join(dest, rel), info.Mode().Perm(), 0755)
		if err != nil {
			return err
		}
		if _, err := out.Write(content); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	})
}
