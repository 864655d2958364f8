// Package loader reads model documents: YAML or JSON files describing one or
// more source files to generate.
package loader

import (
	"bytes"
	stderrors "errors"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/models"
	"github.com/toyz/polygen/internal/utils"
)

// Loader loads model documents from disk.
type Loader struct {
	reader *utils.FileReader
	files  *utils.FileProcessor
	logger *zap.SugaredLogger
}

// New creates a loader. A nil logger discards log output.
func New(logger *zap.SugaredLogger) *Loader {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Loader{
		reader: utils.NewFileReader(),
		files:  utils.NewFileProcessor(),
		logger: logger,
	}
}

// LoadFile loads every source file described by the document at path.
func (l *Loader) LoadFile(path string) ([]*models.SourceFile, error) {
	data, err := l.reader.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}
	files, err := LoadBytes(path, data)
	if err != nil {
		return nil, err
	}
	l.logger.Debugw("model document loaded", "file", path, "files", len(files))
	return files, nil
}

// Files expands path arguments into model document paths. Directories
// contribute their .yaml, .yml and .json files; "dir/..." walks the tree.
func (l *Loader) Files(patterns []string) ([]string, error) {
	paths, err := l.files.ExpandPatterns(patterns, utils.ModelFileFilter())
	if err != nil {
		return nil, errors.Wrap(errors.FileSystemErrorCode, "failed to resolve model documents", err)
	}
	return paths, nil
}

// Scan loads every model document matched by patterns, in order.
func (l *Loader) Scan(patterns []string) ([]*models.SourceFile, error) {
	paths, err := l.Files(patterns)
	if err != nil {
		return nil, err
	}
	var all []*models.SourceFile
	for _, path := range paths {
		files, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, files...)
	}
	return all, nil
}

// Forget drops a cached document so the next load reads it again.
func (l *Loader) Forget(path string) {
	l.reader.InvalidateFile(path)
}

// LoadBytes parses a model document. name identifies the document in errors
// and becomes each file's Origin. A YAML stream may hold several documents
// separated by "---"; JSON input is accepted as YAML.
func LoadBytes(name string, data []byte) ([]*models.SourceFile, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var files []*models.SourceFile
	for {
		var doc document
		err := decoder.Decode(&doc)
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, locate(name, err)
		}

		specs := doc.Files
		if len(specs) == 0 && !doc.fileSpec.empty() {
			specs = []fileSpec{doc.fileSpec}
		}
		for i := range specs {
			files = append(files, specs[i].toModel(name))
		}
	}

	if len(files) == 0 {
		return nil, errors.NewSyntaxError("model document declares no source files").
			WithLocation(errors.SourceLocation{File: name})
	}
	return files, nil
}

// locate names the document in a decoding error.
func locate(name string, err error) error {
	var syntax *errors.SyntaxError
	if errors.As(err, &syntax) {
		syntax.Loc.File = name
		return syntax
	}
	var base *errors.BaseError
	if errors.As(err, &base) {
		base.Loc.File = name
		return base
	}
	return errors.WrapParseError(name, err).
		WithLocation(errors.SourceLocation{File: name})
}
