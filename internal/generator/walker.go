package generator

import (
	"strconv"
	"strings"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/imports"
	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/models"
)

// expand renders the whole file through d: header, anchor, enums, interfaces
// and classes in model order, then the footer.
func expand(d Dialect, w *Writer, anchor imports.Anchor) error {
	f := w.File()

	if err := d.FileHeader(w); err != nil {
		return err
	}
	w.Line(anchor.Line())
	if err := d.FileOpen(w); err != nil {
		return err
	}

	for i := range f.Enums {
		if err := d.Enum(w, &f.Enums[i], nil); err != nil {
			return err
		}
		w.Blank()
	}
	for i := range f.Interfaces {
		if err := walkType(d, w, interfaceDecl(&f.Interfaces[i])); err != nil {
			return err
		}
		w.Blank()
	}
	for i := range f.Classes {
		if err := walkType(d, w, classDecl(&f.Classes[i])); err != nil {
			return err
		}
		w.Blank()
	}

	w.trimBlank()
	return d.FileFooter(w)
}

func walkType(d Dialect, w *Writer, t *TypeDecl) error {
	w.Use(t.Extends...)
	w.Use(t.Implements...)

	if !d.NestsEnums() {
		for i := range t.Enums {
			if err := d.Enum(w, &t.Enums[i], t); err != nil {
				return err
			}
			w.Blank()
		}
	}

	if err := d.TypeOpen(w, t); err != nil {
		return err
	}

	members := 0
	if d.NestsEnums() {
		for i := range t.Enums {
			if members > 0 {
				w.Blank()
			}
			if err := d.Enum(w, &t.Enums[i], t); err != nil {
				return err
			}
			members++
		}
	}

	if len(t.Fields) > 0 && members > 0 {
		w.Blank()
	}
	for i := range t.Fields {
		field := &t.Fields[i]
		w.Use(field.Type)
		if err := d.Field(w, t, field); err != nil {
			return err
		}
		members++
	}

	for i := range t.Methods {
		m := &t.Methods[i]
		useMethod(w, m)
		if members > 0 {
			w.Blank()
		}
		if err := d.Method(w, t, m); err != nil {
			return err
		}
		members++
	}

	w.trimBlank()
	return d.TypeClose(w, t)
}

func useMethod(w *Writer, m *models.Method) {
	for _, p := range m.Parameters {
		w.Use(p.Type)
	}
	for _, l := range m.Locals {
		w.Use(l.Type)
	}
	if m.Return != nil {
		w.Use(m.Return.Type)
	}
	for _, e := range m.Throws {
		w.Use(e.Type)
	}
}

// nullable reports whether a parameter of type t can hold a null value. C++
// passes everything but raw pointers by value.
func nullable(p *lang.Policy, t models.Type) bool {
	if p.Language == lang.Cpp {
		return !t.Array && strings.HasSuffix(strings.TrimSpace(t.Name), "*")
	}
	return !p.IsPrimitive(t.Name) || t.Array
}

// statements renders the parameter guards, local declarations and body lines
// of a method with a body.
func statements(p *lang.Policy, m *models.Method, typeName func(models.Type) string) ([]string, error) {
	var out []string
	for _, param := range m.Parameters {
		if !param.NotNull || !nullable(p, param.Type) {
			continue
		}
		guard, err := lang.Guard(p.Language, param.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, guard...)
	}
	for _, local := range m.Locals {
		decl, err := lang.DeclareLocal(p.Language, typeName(local.Type), local.Name, local.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, decl)
	}
	return append(out, m.Body...), nil
}

func isVoid(m *models.Method) bool {
	return m.Return == nil || m.Return.Type.IsZero() || m.Return.Type.Name == "void"
}

// hasBody reports whether m renders a body inside t.
func hasBody(t *TypeDecl, m *models.Method) bool {
	return m.HasBody(t.IsInterface())
}

func typeNames(types []models.Type, render func(models.Type) string) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = render(t)
	}
	return strings.Join(names, ", ")
}

// joinWords joins non-empty words with single spaces.
func joinWords(words ...string) string {
	var out []string
	for _, w := range words {
		if w != "" {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}

func generics(g string) string {
	if g == "" {
		return ""
	}
	return "<" + g + ">"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func uncapitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// terminated appends term to s unless it already ends with it.
func terminated(s, term string) string {
	if term == "" || strings.HasSuffix(s, term) {
		return s
	}
	return s + term
}

// elemType drops one array dimension, for variadic parameters.
func elemType(t models.Type) models.Type {
	if t.Dims() <= 1 {
		t.Array = false
		t.ArrayDimension = 0
		return t
	}
	t.ArrayDimension--
	return t
}

type enumKind int

const (
	enumPlain enumKind = iota
	enumInt
	enumString
)

// enumLiterals returns one literal per enum value. An enum without explicit
// values is plain and gets no literals; otherwise missing values are filled
// with their index, or their quoted name when the explicit values are strings.
func enumLiterals(l lang.Language, e *models.Enum) ([]string, enumKind, error) {
	kind := enumPlain
	for _, v := range e.Values {
		if v.Value == "" {
			continue
		}
		if isQuoted(v.Value) {
			kind = enumString
			break
		}
		kind = enumInt
	}
	if kind == enumPlain {
		return nil, kind, nil
	}

	out := make([]string, len(e.Values))
	for i, v := range e.Values {
		switch {
		case v.Value != "":
			out[i] = v.Value
		case kind == enumString:
			lit, err := lang.StringLiteral(l, v.Name)
			if err != nil {
				return nil, kind, err
			}
			out[i] = lit
		default:
			out[i] = strconv.Itoa(i)
		}
	}
	return out, kind, nil
}

func isQuoted(s string) bool {
	return len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0]
}

func integralEnum(l lang.Language, e *models.Enum, kind enumKind) error {
	if kind != enumString {
		return nil
	}
	return errors.NewModelErrorf("enum "+e.Name, "values",
		"enum %s has string values but %s enums are integral", e.Name, l)
}
