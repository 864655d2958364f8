// Package fileops reads and writes generated files inside an output root.
package fileops

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/utils"
)

// Root confines file operations to a directory tree. The zero root, created
// with an empty directory, accepts any path.
type Root struct {
	dir string
}

func New(dir string) *Root {
	if dir != "" {
		dir = filepath.Clean(dir)
	}
	return &Root{dir: dir}
}

// Resolve cleans path and rejects it when it lies outside the root.
func (r *Root) Resolve(path string) (string, error) {
	clean, err := utils.CleanPath(path)
	if err != nil {
		return "", err
	}
	if r.dir == "" {
		return clean, nil
	}
	rel, err := filepath.Rel(r.dir, clean)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.FileSystemErrorCode, "path %s escapes output root %s", path, r.dir).
			WithContext("path", path)
	}
	return clean, nil
}

// ReadIfExists returns the content of path; ok is false when the file does
// not exist yet.
func (r *Root) ReadIfExists(path string) (content []byte, ok bool, err error) {
	clean, err := r.Resolve(path)
	if err != nil {
		return nil, false, err
	}
	content, err = os.ReadFile(clean)
	switch {
	case os.IsNotExist(err):
		return nil, false, nil
	case err != nil:
		return nil, false, errors.WrapFileSystemError("read", clean, err)
	}
	return content, true, nil
}

// WriteFile writes content to path, creating missing parent directories.
func (r *Root) WriteFile(path string, content []byte, perm os.FileMode) error {
	clean, err := r.Resolve(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(clean); !isDir(dir) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapFileSystemError("create directory", dir, err)
		}
	}
	if err := os.WriteFile(clean, content, perm); err != nil {
		return errors.WrapFileSystemError("write", clean, err)
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
