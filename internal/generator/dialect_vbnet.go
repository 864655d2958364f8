package generator

import (
	"strings"

	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/models"
)

type vbDialect struct {
	policy *lang.Policy
}

func (d *vbDialect) Policy() *lang.Policy                 { return d.policy }
func (d *vbDialect) NestsEnums() bool                     { return true }
func (d *vbDialect) Preamble(*models.SourceFile) []string { return nil }

// FileHeader is empty: Imports statements must precede every declaration.
func (d *vbDialect) FileHeader(*Writer) error { return nil }

func (d *vbDialect) FileOpen(w *Writer) error {
	if pkg := w.File().Package; pkg != "" {
		w.Linef("Namespace %s", pkg)
		w.Blank()
	}
	return nil
}

func (d *vbDialect) FileFooter(w *Writer) error {
	if w.File().Package != "" {
		w.Line("End Namespace")
	}
	return nil
}

func (d *vbDialect) typeName(t models.Type) string {
	name := t.SimpleName()
	if t.Generics != "" {
		name += "(Of " + t.Generics + ")"
	}
	return name + strings.Repeat("()", t.Dims())
}

func vbAccess(a models.Access, fallback string) string {
	if a == models.AccessDefault {
		return fallback
	}
	return capitalize(string(a))
}

func (d *vbDialect) Enum(w *Writer, e *models.Enum, _ *TypeDecl) error {
	literals, kind, err := enumLiterals(lang.VBNet, e)
	if err != nil {
		return err
	}
	if err := integralEnum(lang.VBNet, e, kind); err != nil {
		return err
	}

	w.Append(docBlock(d.policy, declDoc(e.Doc, e.Description))...)
	w.Line(joinWords(vbAccess(e.Access, "Public"), "Enum", e.Name))
	for i, v := range e.Values {
		w.Append(docBlock(d.policy, v.Doc)...)
		if literals != nil {
			w.Linef("%s = %s", v.Name, literals[i])
			continue
		}
		w.Line(v.Name)
	}
	w.Line("End Enum")
	return nil
}

func (d *vbDialect) TypeOpen(w *Writer, t *TypeDecl) error {
	w.Append(docBlock(d.policy, declDoc(t.Doc, t.Description))...)
	w.Append(t.Annotations...)

	name := t.Name
	if t.Generics != "" {
		name += "(Of " + t.Generics + ")"
	}

	if t.IsInterface() {
		w.Line(joinWords(vbAccess(t.Access, "Public"), "Interface", name))
		if len(t.Extends) > 0 {
			w.Line("Inherits " + typeNames(t.Extends, d.typeName))
		}
		return nil
	}

	mods := []string{vbAccess(t.Access, "Public")}
	if t.Abstract {
		mods = append(mods, "MustInherit")
	}
	if t.Final {
		mods = append(mods, "NotInheritable")
	}
	w.Line(joinWords(append(mods, "Class", name)...))
	if super, ok := t.Super(); ok {
		w.Line("Inherits " + d.typeName(super))
	}
	if len(t.Implements) > 0 {
		w.Line("Implements " + typeNames(t.Implements, d.typeName))
	}
	return nil
}

func (d *vbDialect) TypeClose(w *Writer, t *TypeDecl) error {
	if t.IsInterface() {
		w.Line("End Interface")
		return nil
	}
	w.Line("End Class")
	return nil
}

func (d *vbDialect) Field(w *Writer, t *TypeDecl, f *models.Field) error {
	w.Append(docBlock(d.policy, f.Doc)...)
	w.Append(f.Annotations...)

	if t.IsInterface() {
		w.Linef("ReadOnly Property %s As %s", f.Name, d.typeName(f.Type))
		return nil
	}

	mods := []string{vbAccess(f.Access, "Private")}
	if f.Static {
		mods = append(mods, "Shared")
	}
	if f.Final {
		mods = append(mods, "ReadOnly")
	}
	decl := joinWords(append(mods, f.Name, "As", d.typeName(f.Type))...)
	if f.Default != "" {
		decl += " = " + f.Default
	}
	w.Line(decl)
	return nil
}

func (d *vbDialect) Method(w *Writer, t *TypeDecl, m *models.Method) error {
	w.Append(docBlock(d.policy, methodDoc(m))...)
	w.Append(m.Annotations...)

	if m.StaticInitializer {
		w.Line("Shared Sub New()")
		return d.body(w, m, "Sub")
	}

	var mods []string
	if !t.IsInterface() {
		mods = append(mods, vbAccess(m.Access, "Public"))
		if m.Static {
			mods = append(mods, "Shared")
		}
		switch {
		case m.Abstract:
			mods = append(mods, "MustOverride")
		case m.Override && m.Final:
			mods = append(mods, "NotOverridable", "Overrides")
		case m.Override:
			mods = append(mods, "Overrides")
		}
	}

	kind, name := "Sub", m.Name
	if m.Constructor {
		name = "New"
	} else if !isVoid(m) {
		kind = "Function"
	}
	decl := joinWords(append(mods, kind, name+"("+d.params(m.Parameters)+")")...)
	if kind == "Function" {
		decl += " As " + d.typeName(m.Return.Type)
	}
	w.Line(decl)

	if !hasBody(t, m) {
		return nil
	}
	if m.SuperInvocation != "" {
		w.Line(m.SuperInvocation)
	}
	return d.body(w, m, kind)
}

func (d *vbDialect) body(w *Writer, m *models.Method, kind string) error {
	lines, err := statements(d.policy, m, d.typeName)
	if err != nil {
		return err
	}
	w.Append(lines...)
	w.Line("End " + kind)
	return nil
}

func (d *vbDialect) params(params []models.Parameter) string {
	out := make([]string, len(params))
	for i, p := range params {
		if p.ArbitraryNumParams {
			out[i] = "ParamArray " + p.Name + " As " + d.typeName(elemType(p.Type)) + "()"
			continue
		}
		out[i] = p.Name + " As " + d.typeName(p.Type)
	}
	return strings.Join(out, ", ")
}
