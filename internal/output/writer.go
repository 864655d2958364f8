// Package output places generated sources on disk or on a stream.
package output

import (
	"bufio"
	"bytes"
	"io"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/generator"
	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/utils"
	"github.com/toyz/polygen/internal/utils/fileops"
)

// Outcome reports what a directory write did.
type Outcome int

const (
	Unchanged Outcome = iota
	Created
	Updated
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Updated:
		return "updated"
	default:
		return "unchanged"
	}
}

// DirectoryWriter writes each result below a root directory, touching a file
// only when its content changed.
type DirectoryWriter struct {
	root     string
	encoding encoding.Encoding
	files    *fileops.Root
	gomod    *utils.GoModParser
	logger   *zap.SugaredLogger

	once       sync.Once
	rootImport string // import path of root when it lies inside a Go module
}

// NewDirectoryWriter creates a writer for root. encodingName is an IANA
// character set name; empty means UTF-8.
func NewDirectoryWriter(root, encodingName string, logger *zap.SugaredLogger) (*DirectoryWriter, error) {
	if err := utils.NotEmpty("output directory")(root); err != nil {
		return nil, errors.WrapConfigurationError("output", "validate", err)
	}
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	root = filepath.Clean(root)
	return &DirectoryWriter{
		root:     root,
		encoding: enc,
		files:    fileops.New(root),
		gomod:    utils.NewGoModParser(utils.NewFileReader()),
		logger:   logger,
	}, nil
}

// Root returns the output root directory.
func (d *DirectoryWriter) Root() string {
	return d.root
}

// Path returns where r is written.
func (d *DirectoryWriter) Path(r *generator.Result) string {
	return filepath.Join(d.root, filepath.FromSlash(d.relPath(r)))
}

// relPath is <package dir>/<file name><extension>, slash separated. Go
// packages are import paths; inside a module the part naming root is dropped.
func (d *DirectoryWriter) relPath(r *generator.Result) string {
	dir := PackageDir(r.Language, r.Package)
	if r.Language == lang.Go {
		dir = d.goPackageDir(r.Package)
	}
	return path.Join(dir, r.FileName+r.Extension)
}

func (d *DirectoryWriter) goPackageDir(importPath string) string {
	d.once.Do(func() {
		moduleDir, modulePath, err := d.gomod.ModuleRoot(d.root)
		if err != nil {
			return
		}
		absRoot, err := filepath.Abs(d.root)
		if err != nil {
			return
		}
		rel, err := filepath.Rel(moduleDir, absRoot)
		if err != nil || strings.HasPrefix(rel, "..") {
			return
		}
		d.rootImport = path.Join(modulePath, filepath.ToSlash(rel))
	})

	switch {
	case d.rootImport == "":
		return importPath
	case importPath == d.rootImport:
		return ""
	case strings.HasPrefix(importPath, d.rootImport+"/"):
		return strings.TrimPrefix(importPath, d.rootImport+"/")
	}
	return importPath
}

// PackageDir maps a package name to a relative directory: separators ".",
// "::" and "\" become "/". Go import paths are already paths.
func PackageDir(l lang.Language, pkg string) string {
	if l == lang.Go {
		return pkg
	}
	pkg = strings.NewReplacer("::", "/", "\\", "/", ".", "/").Replace(pkg)
	return strings.Trim(pkg, "/")
}

// Write writes r and reports whether the file was created, updated or left
// unchanged.
func (d *DirectoryWriter) Write(r *generator.Result) (Outcome, error) {
	target := d.Path(r)

	enc, err := encodingFor(r, d.encoding)
	if err != nil {
		return Unchanged, err
	}
	content, err := encode(enc, r.Bytes())
	if err != nil {
		return Unchanged, err
	}

	existing, found, err := d.files.ReadIfExists(target)
	if err != nil {
		return Unchanged, err
	}
	outcome := Created
	if found {
		if bytes.Equal(existing, content) {
			d.logger.Debugw("output unchanged", "file", target, "language", r.Language)
			return Unchanged, nil
		}
		outcome = Updated
	}

	if err := d.files.WriteFile(target, content, 0o644); err != nil {
		return Unchanged, err
	}
	d.logger.Debugw("output written", "file", target, "language", r.Language, "outcome", outcome.String(), "bytes", len(content))
	return outcome, nil
}

// Flusher is implemented by buffered sinks.
type Flusher interface {
	Flush() error
}

// StreamWriter writes results to an io.Writer.
type StreamWriter struct {
	encoding encoding.Encoding
}

// NewStreamWriter creates a stream writer; encodingName is an IANA character
// set name, empty for UTF-8.
func NewStreamWriter(encodingName string) (*StreamWriter, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	return &StreamWriter{encoding: enc}, nil
}

// Write writes r to w and flushes w when it buffers.
func (s *StreamWriter) Write(w io.Writer, r *generator.Result) error {
	enc, err := encodingFor(r, s.encoding)
	if err != nil {
		return err
	}
	content, err := encode(enc, r.Bytes())
	if err != nil {
		return err
	}

	buf := bufio.NewWriter(w)
	if _, err := buf.Write(content); err != nil {
		return errors.WrapFileSystemError("write", "stream", err)
	}
	if err := buf.Flush(); err != nil {
		return errors.WrapFileSystemError("flush", "stream", err)
	}
	if f, ok := w.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return errors.WrapFileSystemError("flush", "stream", err)
		}
	}
	return nil
}
