package generator

import (
	"strings"

	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/models"
)

type csharpDialect struct {
	policy *lang.Policy
}

func (d *csharpDialect) Policy() *lang.Policy                 { return d.policy }
func (d *csharpDialect) NestsEnums() bool                     { return true }
func (d *csharpDialect) Preamble(*models.SourceFile) []string { return nil }
func (d *csharpDialect) FileHeader(*Writer) error             { return nil }
func (d *csharpDialect) FileFooter(*Writer) error             { return nil }

// FileOpen uses a file-scoped namespace so the using block stays on top.
func (d *csharpDialect) FileOpen(w *Writer) error {
	if pkg := w.File().Package; pkg != "" {
		w.Linef("namespace %s;", pkg)
		w.Blank()
	}
	return nil
}

func (d *csharpDialect) typeName(t models.Type) string {
	return t.SimpleName() + generics(t.Generics) + strings.Repeat("[]", t.Dims())
}

func (d *csharpDialect) Enum(w *Writer, e *models.Enum, _ *TypeDecl) error {
	literals, kind, err := enumLiterals(lang.CSharp, e)
	if err != nil {
		return err
	}
	if err := integralEnum(lang.CSharp, e, kind); err != nil {
		return err
	}

	w.Append(docBlock(d.policy, declDoc(e.Doc, e.Description))...)
	w.Line(joinWords(string(e.Access), "enum", e.Name, "{"))
	for i, v := range e.Values {
		w.Append(docBlock(d.policy, v.Doc)...)
		member := v.Name
		if literals != nil {
			member += " = " + literals[i]
		}
		if i < len(e.Values)-1 {
			member += ","
		}
		w.Line(member)
	}
	w.Line("}")
	return nil
}

func (d *csharpDialect) TypeOpen(w *Writer, t *TypeDecl) error {
	w.Append(docBlock(d.policy, declDoc(t.Doc, t.Description))...)
	w.Append(t.Annotations...)

	kind := "class"
	var mods []string
	mods = append(mods, string(t.Access))
	if t.IsInterface() {
		kind = "interface"
	} else {
		if t.Abstract {
			mods = append(mods, "abstract")
		}
		if t.Final {
			mods = append(mods, "sealed")
		}
	}
	decl := joinWords(append(mods, kind, t.Name+generics(t.Generics))...)

	bases := append(append([]models.Type(nil), t.Extends...), t.Implements...)
	if len(bases) > 0 {
		decl += " : " + typeNames(bases, d.typeName)
	}
	w.Line(decl + " {")
	return nil
}

func (d *csharpDialect) TypeClose(w *Writer, _ *TypeDecl) error {
	w.Line("}")
	return nil
}

func (d *csharpDialect) Field(w *Writer, t *TypeDecl, f *models.Field) error {
	w.Append(docBlock(d.policy, f.Doc)...)
	w.Append(f.Annotations...)

	if t.IsInterface() {
		w.Linef("%s %s { get; }", d.typeName(f.Type), f.Name)
		return nil
	}

	mods := []string{string(f.Access)}
	if f.Static {
		mods = append(mods, "static")
	}
	if f.Final {
		mods = append(mods, "readonly")
	}
	decl := joinWords(append(mods, d.typeName(f.Type), f.Name)...)
	if f.Default != "" {
		decl += " = " + f.Default
	}
	w.Line(decl + ";")
	return nil
}

func (d *csharpDialect) Method(w *Writer, t *TypeDecl, m *models.Method) error {
	w.Append(docBlock(d.policy, methodDoc(m))...)
	w.Append(m.Annotations...)

	if m.StaticInitializer {
		w.Linef("static %s() {", t.Name)
		return d.body(w, m)
	}

	var mods []string
	if !t.IsInterface() {
		mods = append(mods, string(m.Access))
		if m.Static {
			mods = append(mods, "static")
		}
		switch {
		case m.Abstract:
			mods = append(mods, "abstract")
		case m.Override && m.Final:
			mods = append(mods, "sealed", "override")
		case m.Override:
			mods = append(mods, "override")
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
	decl := joinWords(append(mods, name+"("+d.params(m.Parameters)+")")...)

	if !hasBody(t, m) {
		w.Line(decl + ";")
		return nil
	}
	if m.Constructor && m.SuperInvocation != "" {
		decl += " : " + strings.TrimSuffix(m.SuperInvocation, ";")
	}
	w.Line(decl + " {")
	return d.body(w, m)
}

func (d *csharpDialect) body(w *Writer, m *models.Method) error {
	lines, err := statements(d.policy, m, d.typeName)
	if err != nil {
		return err
	}
	w.Append(lines...)
	w.Line("}")
	return nil
}

func (d *csharpDialect) params(params []models.Parameter) string {
	out := make([]string, len(params))
	for i, p := range params {
		typ := d.typeName(p.Type)
		if p.ArbitraryNumParams {
			typ = "params " + d.typeName(elemType(p.Type)) + "[]"
		}
		out[i] = typ + " " + p.Name
	}
	return strings.Join(out, ", ")
}
