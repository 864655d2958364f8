package cli

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/templates"
	"github.com/toyz/polygen/internal/utils"
)

// markerLines bounds how far into a file the generated marker is searched.
const markerLines = 8

// Cleaner handles cleaning up generated files
type Cleaner struct {
	files *utils.FileProcessor
}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{files: utils.NewFileProcessor()}
}

// CleanGeneratedFiles removes every generated file under the given
// directories. "dir/..." cleans the whole tree. Missing directories are
// skipped.
func (c *Cleaner) CleanGeneratedFiles(directories []string) ([]string, error) {
	removed, err := c.files.CleanDirectories(directories, GeneratedFileFilter())
	if err != nil {
		return removed, errors.Wrap(errors.FileSystemErrorCode, "failed to clean generated files", err)
	}
	return removed, nil
}

// GeneratedFileFilter selects files with a target language extension whose
// header carries the generated marker.
func GeneratedFileFilter() utils.FileFilter {
	var exts []string
	for _, l := range lang.All() {
		exts = append(exts, lang.MustPolicy(l).Extension)
	}
	byExtension := utils.ExtensionFilter(exts...)
	return func(path string, entry fs.DirEntry) bool {
		return byExtension(path, entry) && hasMarker(path)
	}
}

func hasMarker(path string) bool {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for i := 0; i < markerLines && scanner.Scan(); i++ {
		if strings.Contains(scanner.Text(), templates.GeneratedMarker) {
			return true
		}
	}
	return false
}
