package utils

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// RecursiveSuffix marks a directory argument that is walked recursively,
// as in "./models/...".
const RecursiveSuffix = "/..."

// FileProcessor walks directory trees and expands path arguments
type FileProcessor struct{}

// NewFileProcessor creates a new file processor
func NewFileProcessor() *FileProcessor {
	return &FileProcessor{}
}

// FileFilter decides whether a file is selected
type FileFilter func(path string, entry fs.DirEntry) bool

// DirectoryFilter decides whether a directory is descended into
type DirectoryFilter func(path string, entry fs.DirEntry) bool

// FileWalkOptions configures WalkFiles
type FileWalkOptions struct {
	FileFilter      FileFilter
	DirectoryFilter DirectoryFilter
	Recursive       bool
	SkipErrors      bool
}

// ExtensionFilter selects files whose extension is one of exts, compared
// case-insensitively. Hidden files are never selected.
func ExtensionFilter(exts ...string) FileFilter {
	wanted := make(map[string]bool, len(exts))
	for _, ext := range exts {
		wanted[strings.ToLower(ext)] = true
	}
	return func(path string, entry fs.DirEntry) bool {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			return false
		}
		return wanted[strings.ToLower(filepath.Ext(entry.Name()))]
	}
}

// ModelFileFilter selects YAML and JSON model documents
func ModelFileFilter() FileFilter {
	return ExtensionFilter(".yaml", ".yml", ".json")
}

// DefaultDirectoryFilter skips hidden, dependency and build directories
func DefaultDirectoryFilter() DirectoryFilter {
	skipDirs := map[string]bool{
		"vendor":       true,
		"node_modules": true,
		"testdata":     true,
		"build":        true,
		"dist":         true,
		"target":       true,
	}
	return func(path string, entry fs.DirEntry) bool {
		name := entry.Name()
		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			return false
		}
		return !skipDirs[name]
	}
}

// WalkFiles returns the files under rootDir selected by options, in lexical
// order. Without Recursive only rootDir's own entries are considered.
func (fp *FileProcessor) WalkFiles(rootDir string, options FileWalkOptions) ([]string, error) {
	var matched []string

	err := filepath.WalkDir(rootDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if options.SkipErrors {
				return nil
			}
			return err
		}

		if entry.IsDir() {
			if path == rootDir {
				return nil
			}
			if !options.Recursive {
				return filepath.SkipDir
			}
			if options.DirectoryFilter != nil && !options.DirectoryFilter(path, entry) {
				return filepath.SkipDir
			}
			return nil
		}

		if options.FileFilter == nil || options.FileFilter(path, entry) {
			matched = append(matched, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", rootDir, err)
	}
	return matched, nil
}

// ExpandPatterns resolves command line path arguments into files. A file
// argument is taken as is; a directory contributes its matching files; a
// directory ending in "/..." contributes matching files from its whole tree.
// Duplicates are dropped and argument order is kept.
func (fp *FileProcessor) ExpandPatterns(args []string, filter FileFilter) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		root, recursive := SplitRecursive(arg)

		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", root, err)
		}
		if !info.IsDir() {
			add(filepath.Clean(root))
			continue
		}

		found, err := fp.WalkFiles(root, FileWalkOptions{
			FileFilter:      filter,
			DirectoryFilter: DefaultDirectoryFilter(),
			Recursive:       recursive,
		})
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}
	return files, nil
}

// CleanDirectories removes every file selected by filter under the given
// patterns and returns the removed paths.
func (fp *FileProcessor) CleanDirectories(patterns []string, filter FileFilter) ([]string, error) {
	var removed []string
	for _, pattern := range patterns {
		root, recursive := SplitRecursive(pattern)
		if _, err := os.Stat(root); os.IsNotExist(err) {
			continue
		}

		found, err := fp.WalkFiles(root, FileWalkOptions{
			FileFilter:      filter,
			DirectoryFilter: DefaultDirectoryFilter(),
			Recursive:       recursive,
		})
		if err != nil {
			return removed, err
		}
		for _, path := range found {
			if err := os.Remove(path); err != nil {
				return removed, fmt.Errorf("failed to remove %s: %w", path, err)
			}
			removed = append(removed, path)
		}
	}
	return removed, nil
}

// SplitRecursive strips a trailing "/..." and reports whether it was present.
// A bare "..." means the current directory tree.
func SplitRecursive(arg string) (string, bool) {
	arg = filepath.ToSlash(arg)
	if arg == "..." {
		return ".", true
	}
	if strings.HasSuffix(arg, RecursiveSuffix) {
		root := strings.TrimSuffix(arg, RecursiveSuffix)
		if root == "" {
			root = "/"
		}
		return filepath.FromSlash(root), true
	}
	return filepath.FromSlash(arg), false
}
