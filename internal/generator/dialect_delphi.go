package generator

import (
	"strings"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/models"
)

// delphiDialect renders a unit: declarations go to the interface section and
// method bodies are collected for the implementation section.
type delphiDialect struct {
	policy  *lang.Policy
	section models.Access
	impl    []string
}

func (d *delphiDialect) Policy() *lang.Policy                 { return d.policy }
func (d *delphiDialect) NestsEnums() bool                     { return false }
func (d *delphiDialect) Preamble(*models.SourceFile) []string { return nil }

func (d *delphiDialect) FileHeader(w *Writer) error {
	w.Linef("unit %s;", w.File().FileName())
	w.Blank()
	w.Line("interface")
	w.Blank()
	return nil
}

func (d *delphiDialect) FileOpen(w *Writer) error {
	w.Line("type")
	return nil
}

func (d *delphiDialect) FileFooter(w *Writer) error {
	w.Blank()
	w.Line("implementation")
	w.Blank()
	w.Append(d.impl...)
	w.Line("end.")
	return nil
}

func (d *delphiDialect) typeName(t models.Type) string {
	name := t.SimpleName() + generics(t.Generics)
	for i := 0; i < t.Dims(); i++ {
		name = "TArray<" + name + ">"
	}
	return name
}

func (d *delphiDialect) Enum(w *Writer, e *models.Enum, _ *TypeDecl) error {
	literals, kind, err := enumLiterals(lang.Delphi, e)
	if err != nil {
		return err
	}
	if err := integralEnum(lang.Delphi, e, kind); err != nil {
		return err
	}

	members := make([]string, len(e.Values))
	for i, v := range e.Values {
		members[i] = v.Name
		if literals != nil {
			members[i] += " = " + literals[i]
		}
	}
	w.Append(docBlock(d.policy, declDoc(e.Doc, e.Description))...)
	w.Linef("%s = (%s);", e.Name, strings.Join(members, ", "))
	return nil
}

func (d *delphiDialect) TypeOpen(w *Writer, t *TypeDecl) error {
	w.Append(docBlock(d.policy, declDoc(t.Doc, t.Description))...)
	w.Append(t.Annotations...)
	d.section = "-"

	name := t.Name + generics(t.Generics)
	if t.IsInterface() {
		decl := name + " = interface"
		if len(t.Extends) > 0 {
			decl += "(" + typeNames(t.Extends, d.typeName) + ")"
		}
		w.Line(decl)
		return nil
	}

	decl := name + " = class"
	switch {
	case t.Abstract:
		decl += " abstract"
	case t.Final:
		decl += " sealed"
	}
	bases := append(append([]models.Type(nil), t.Extends...), t.Implements...)
	if len(bases) > 0 {
		decl += "(" + typeNames(bases, d.typeName) + ")"
	}
	w.Line(decl)
	return nil
}

func (d *delphiDialect) TypeClose(w *Writer, _ *TypeDecl) error {
	w.Line("end;")
	return nil
}

func (d *delphiDialect) enterSection(w *Writer, access models.Access) {
	if access == models.AccessDefault {
		access = models.AccessPublic
	}
	if access == d.section {
		return
	}
	d.section = access
	w.Line(string(access))
}

func (d *delphiDialect) Field(w *Writer, t *TypeDecl, f *models.Field) error {
	if t.IsInterface() {
		return errors.NewUnsupportedTokenError(string(lang.Delphi), "InterfaceField")
	}
	d.enterSection(w, f.Access)
	w.Append(docBlock(d.policy, f.Doc)...)
	w.Append(f.Annotations...)

	switch {
	case f.Static && f.Final && f.Default != "":
		w.Linef("const %s = %s;", f.Name, f.Default)
	case f.Static:
		w.Linef("class var %s: %s;", f.Name, d.typeName(f.Type))
	default:
		w.Linef("%s: %s;", f.Name, d.typeName(f.Type))
	}
	return nil
}

func (d *delphiDialect) Method(w *Writer, t *TypeDecl, m *models.Method) error {
	if !t.IsInterface() {
		d.enterSection(w, m.Access)
	}
	w.Append(docBlock(d.policy, methodDoc(m))...)
	w.Append(m.Annotations...)

	kind, name := "procedure", m.Name
	switch {
	case m.StaticInitializer:
		kind, name = "class constructor", "Create"
	case m.Constructor:
		kind, name = "constructor", "Create"
	case !isVoid(m):
		kind = "function"
	}
	if m.Static && !m.StaticInitializer {
		kind = "class " + kind
	}

	sig := name
	if len(m.Parameters) > 0 {
		sig += "(" + d.params(m.Parameters) + ")"
	}
	if kind == "function" || kind == "class function" {
		sig += ": " + d.typeName(m.Return.Type)
	}

	var directives []string
	switch {
	case t.IsInterface():
	case m.Abstract:
		directives = append(directives, "virtual", "abstract")
	case m.Override:
		directives = append(directives, "override")
	case m.Static:
		directives = append(directives, "static")
	}
	if m.Final && m.Override {
		directives = append(directives, "final")
	}
	decl := kind + " " + sig + ";"
	for _, dir := range directives {
		decl += " " + dir + ";"
	}
	w.Line(decl)

	if !hasBody(t, m) {
		return nil
	}
	lines, err := statements(d.policy, m, d.typeName)
	if err != nil {
		return err
	}
	d.impl = append(d.impl, kind+" "+t.Name+"."+sig+";", "begin")
	if m.SuperInvocation != "" {
		d.impl = append(d.impl, terminated(m.SuperInvocation, ";"))
	}
	d.impl = append(d.impl, lines...)
	d.impl = append(d.impl, "end;", "")
	return nil
}

func (d *delphiDialect) params(params []models.Parameter) string {
	out := make([]string, len(params))
	for i, p := range params {
		switch {
		case p.ArbitraryNumParams:
			out[i] = "const " + p.Name + ": array of " + d.typeName(elemType(p.Type))
		case p.Final:
			out[i] = "const " + p.Name + ": " + d.typeName(p.Type)
		default:
			out[i] = p.Name + ": " + d.typeName(p.Type)
		}
	}
	return strings.Join(out, "; ")
}
