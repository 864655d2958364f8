package generator

import (
	"context"

	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/models"
)

// CodeGenerator defines the interface for rendering source files
type CodeGenerator interface {
	// Transform renders one source file into the target language
	Transform(file *models.SourceFile, l lang.Language) (*Result, error)

	// TransformAll renders files concurrently, keeping input order
	TransformAll(ctx context.Context, files []*models.SourceFile, l lang.Language) ([]*Result, error)
}

// Dialect renders model constructs for one target language. The walker calls
// the hooks in file order; a dialect is created per transformation and may
// keep state between calls (for example deferred method bodies).
type Dialect interface {
	Policy() *lang.Policy

	// NestsEnums reports whether a class's enums render inside the class body.
	NestsEnums() bool

	// Preamble returns lines that precede the generated header.
	Preamble(f *models.SourceFile) []string

	// FileHeader renders the lines before the import anchor.
	FileHeader(w *Writer) error

	// FileOpen renders the lines between the import anchor and the first type.
	FileOpen(w *Writer) error

	Enum(w *Writer, e *models.Enum, owner *TypeDecl) error
	TypeOpen(w *Writer, t *TypeDecl) error
	Field(w *Writer, t *TypeDecl, f *models.Field) error
	Method(w *Writer, t *TypeDecl, m *models.Method) error
	TypeClose(w *Writer, t *TypeDecl) error

	FileFooter(w *Writer) error
}

// DeclKind distinguishes classes from interfaces in a TypeDecl.
type DeclKind int

const (
	KindClass DeclKind = iota
	KindInterface
)

// TypeDecl is the walker's common view of a class or an interface.
type TypeDecl struct {
	Kind        DeclKind
	Name        string
	Description string
	Generics    string
	Access      models.Access
	Abstract    bool
	Final       bool
	Extends     []models.Type
	Implements  []models.Type
	Annotations []string
	Enums       []models.Enum
	Fields      []models.Field
	Methods     []models.Method
	Doc         *models.Doc
}

// IsInterface reports whether the declaration is an interface.
func (t *TypeDecl) IsInterface() bool {
	return t.Kind == KindInterface
}

// Super returns the extended class, if any.
func (t *TypeDecl) Super() (models.Type, bool) {
	if t.IsInterface() || len(t.Extends) == 0 {
		return models.Type{}, false
	}
	return t.Extends[0], true
}

func classDecl(c *models.Class) *TypeDecl {
	return &TypeDecl{
		Kind:        KindClass,
		Name:        c.Name,
		Description: c.Description,
		Generics:    c.Generics,
		Access:      c.Access,
		Abstract:    c.Abstract,
		Final:       c.Final,
		Extends:     c.Extends,
		Implements:  c.Implements,
		Annotations: c.Annotations,
		Enums:       c.Enums,
		Fields:      c.Fields,
		Methods:     c.Methods,
		Doc:         c.Doc,
	}
}

func interfaceDecl(i *models.Interface) *TypeDecl {
	return &TypeDecl{
		Kind:        KindInterface,
		Name:        i.Name,
		Description: i.Description,
		Generics:    i.Generics,
		Access:      i.Access,
		Abstract:    true,
		Extends:     i.Extends,
		Fields:      i.Fields,
		Methods:     i.Methods,
		Doc:         i.Doc,
	}
}
