package generator

import (
	"strings"

	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/models"
)

type javaDialect struct {
	policy *lang.Policy
}

func (d *javaDialect) Policy() *lang.Policy                 { return d.policy }
func (d *javaDialect) NestsEnums() bool                     { return true }
func (d *javaDialect) Preamble(*models.SourceFile) []string { return nil }
func (d *javaDialect) FileOpen(*Writer) error               { return nil }
func (d *javaDialect) FileFooter(*Writer) error             { return nil }

func (d *javaDialect) FileHeader(w *Writer) error {
	if pkg := w.File().Package; pkg != "" {
		w.Linef("package %s;", pkg)
		w.Blank()
	}
	return nil
}

func (d *javaDialect) typeName(t models.Type) string {
	return t.SimpleName() + generics(t.Generics) + strings.Repeat("[]", t.Dims())
}

func (d *javaDialect) Enum(w *Writer, e *models.Enum, _ *TypeDecl) error {
	literals, kind, err := enumLiterals(lang.Java, e)
	if err != nil {
		return err
	}

	w.Append(docBlock(d.policy, declDoc(e.Doc, e.Description))...)
	w.Line(joinWords(string(e.Access), "enum", e.Name, "{"))
	for i, v := range e.Values {
		w.Append(docBlock(d.policy, v.Doc)...)
		constant := v.Name
		if literals != nil {
			constant += "(" + literals[i] + ")"
		}
		switch {
		case i < len(e.Values)-1:
			constant += ","
		case kind != enumPlain:
			constant += ";"
		}
		w.Line(constant)
	}

	if kind != enumPlain {
		valueType := "int"
		if kind == enumString {
			valueType = "String"
		}
		w.Blank()
		w.Linef("private final %s value;", valueType)
		w.Blank()
		w.Linef("%s(%s value) {", e.Name, valueType)
		w.Line("this.value = value;")
		w.Line("}")
		w.Blank()
		w.Linef("public %s getValue() {", valueType)
		w.Line("return value;")
		w.Line("}")
	}
	w.Line("}")
	return nil
}

func (d *javaDialect) TypeOpen(w *Writer, t *TypeDecl) error {
	w.Append(docBlock(d.policy, declDoc(t.Doc, t.Description))...)
	w.Append(t.Annotations...)

	if t.IsInterface() {
		decl := joinWords(string(t.Access), "interface", t.Name+generics(t.Generics))
		if len(t.Extends) > 0 {
			decl += " extends " + typeNames(t.Extends, d.typeName)
		}
		w.Line(decl + " {")
		return nil
	}

	var mods []string
	mods = append(mods, string(t.Access))
	if t.Abstract {
		mods = append(mods, "abstract")
	}
	if t.Final {
		mods = append(mods, "final")
	}
	decl := joinWords(append(mods, "class", t.Name+generics(t.Generics))...)
	if super, ok := t.Super(); ok {
		decl += " extends " + d.typeName(super)
	}
	if len(t.Implements) > 0 {
		decl += " implements " + typeNames(t.Implements, d.typeName)
	}
	w.Line(decl + " {")
	return nil
}

func (d *javaDialect) TypeClose(w *Writer, _ *TypeDecl) error {
	w.Line("}")
	return nil
}

func (d *javaDialect) Field(w *Writer, t *TypeDecl, f *models.Field) error {
	w.Append(docBlock(d.policy, f.Doc)...)
	w.Append(f.Annotations...)

	var mods []string
	if !t.IsInterface() {
		mods = append(mods, string(f.Access))
		if f.Static {
			mods = append(mods, "static")
		}
		if f.Final {
			mods = append(mods, "final")
		}
	}
	decl := joinWords(append(mods, d.typeName(f.Type), f.Name)...)
	if f.Default != "" {
		decl += " = " + f.Default
	}
	w.Line(decl + ";")
	return nil
}

func (d *javaDialect) Method(w *Writer, t *TypeDecl, m *models.Method) error {
	w.Append(docBlock(d.policy, methodDoc(m))...)
	if m.Override {
		w.Line("@Override")
	}
	w.Append(m.Annotations...)

	if m.StaticInitializer {
		w.Line("static {")
		return d.body(w, m)
	}

	var mods []string
	if !t.IsInterface() {
		mods = append(mods, string(m.Access))
		if m.Abstract {
			mods = append(mods, "abstract")
		}
		if m.Static {
			mods = append(mods, "static")
		}
		if m.Final {
			mods = append(mods, "final")
		}
	}

	name := m.Name
	if m.Constructor {
		name = t.Name
	} else if isVoid(m) {
		mods = append(mods, "void")
	} else {
		mods = append(mods, d.typeName(m.Return.Type))
	}

	sig := name + "(" + d.params(m.Parameters) + ")"
	if len(m.Throws) > 0 {
		throws := make([]models.Type, len(m.Throws))
		for i, e := range m.Throws {
			throws[i] = e.Type
		}
		sig += " throws " + typeNames(throws, d.typeName)
	}
	decl := joinWords(append(mods, sig)...)

	if !hasBody(t, m) {
		w.Line(decl + ";")
		return nil
	}
	w.Line(decl + " {")
	if m.SuperInvocation != "" {
		w.Line(terminated(m.SuperInvocation, ";"))
	}
	return d.body(w, m)
}

func (d *javaDialect) body(w *Writer, m *models.Method) error {
	lines, err := statements(d.policy, m, d.typeName)
	if err != nil {
		return err
	}
	w.Append(lines...)
	w.Line("}")
	return nil
}

func (d *javaDialect) params(params []models.Parameter) string {
	out := make([]string, len(params))
	for i, p := range params {
		typ := d.typeName(p.Type)
		if p.ArbitraryNumParams {
			typ = d.typeName(elemType(p.Type)) + "..."
		}
		final := ""
		if p.Final {
			final = "final"
		}
		out[i] = joinWords(final, typ, p.Name)
	}
	return strings.Join(out, ", ")
}
