package generator

import (
	"fmt"
	"strings"

	"github.com/toyz/polygen/internal/imports"
	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/models"
)

// Writer is the line buffer and import accumulator owned by one
// transformation. Lines are appended unindented; the format pass indents them.
type Writer struct {
	policy  *lang.Policy
	file    *models.SourceFile
	lines   []string
	imports *imports.Set
}

func newWriter(p *lang.Policy, f *models.SourceFile) *Writer {
	return &Writer{policy: p, file: f, imports: imports.NewSet()}
}

// File returns the source file being rendered.
func (w *Writer) File() *models.SourceFile { return w.file }

// Language returns the target language.
func (w *Writer) Language() lang.Language { return w.policy.Language }

// Line appends one line.
func (w *Writer) Line(line string) {
	w.lines = append(w.lines, line)
}

// Linef appends one formatted line.
func (w *Writer) Linef(format string, args ...any) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

// Append appends lines in order.
func (w *Writer) Append(lines ...string) {
	w.lines = append(w.lines, lines...)
}

// Blank appends an empty line unless the buffer already ends with one.
func (w *Writer) Blank() {
	if n := len(w.lines); n == 0 || strings.TrimSpace(w.lines[n-1]) == "" {
		return
	}
	w.lines = append(w.lines, "")
}

func (w *Writer) trimBlank() {
	for n := len(w.lines); n > 0 && strings.TrimSpace(w.lines[n-1]) == ""; n-- {
		w.lines = w.lines[:n-1]
	}
}

// Use records type references for the import pass. References are dropped
// when the file does not import automatically.
func (w *Writer) Use(types ...models.Type) {
	if !w.file.AutoImports {
		return
	}
	w.imports.AddTypes(types...)
}

// Require records an import name regardless of the model's types, for names a
// dialect introduces itself, such as a C++ container header.
func (w *Writer) Require(names ...string) {
	if !w.file.AutoImports {
		return
	}
	w.imports.AddExplicit(names...)
}

// Lines returns the buffer.
func (w *Writer) Lines() []string {
	return w.lines
}

// Imports returns the accumulated import set.
func (w *Writer) Imports() *imports.Set {
	return w.imports
}
