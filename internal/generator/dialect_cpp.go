package generator

import (
	"strings"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/models"
)

// cppDialect renders a single translation unit with inline member
// definitions. Arrays become std::vector.
type cppDialect struct {
	policy  *lang.Policy
	section models.Access
	vectors bool
	lists   bool
}

func (d *cppDialect) Policy() *lang.Policy                 { return d.policy }
func (d *cppDialect) NestsEnums() bool                     { return true }
func (d *cppDialect) Preamble(*models.SourceFile) []string { return nil }
func (d *cppDialect) FileHeader(*Writer) error             { return nil }

func (d *cppDialect) FileOpen(w *Writer) error {
	if ns := d.namespace(w.File().Package); ns != "" {
		w.Blank()
		w.Linef("namespace %s {", ns)
		w.Blank()
	}
	return nil
}

func (d *cppDialect) FileFooter(w *Writer) error {
	if ns := d.namespace(w.File().Package); ns != "" {
		w.Linef("} // namespace %s", ns)
	}
	if d.vectors {
		w.Require("std.vector")
	}
	if d.lists {
		w.Require("std.initializer_list")
	}
	return nil
}

func (d *cppDialect) namespace(pkg string) string {
	return strings.ReplaceAll(pkg, ".", "::")
}

func (d *cppDialect) typeName(t models.Type) string {
	name := strings.ReplaceAll(t.Name, ".", "::") + generics(t.Generics)
	for i := 0; i < t.Dims(); i++ {
		name = "std::vector<" + name + ">"
		d.vectors = true
	}
	return name
}

func (d *cppDialect) Enum(w *Writer, e *models.Enum, owner *TypeDecl) error {
	literals, kind, err := enumLiterals(lang.Cpp, e)
	if err != nil {
		return err
	}
	if err := integralEnum(lang.Cpp, e, kind); err != nil {
		return err
	}

	if owner != nil {
		d.enterSection(w, e.Access)
	}
	w.Append(docBlock(d.policy, declDoc(e.Doc, e.Description))...)
	w.Linef("enum class %s {", e.Name)
	for i, v := range e.Values {
		member := v.Name
		if literals != nil {
			member += " = " + literals[i]
		}
		if i < len(e.Values)-1 {
			member += ","
		}
		w.Line(member)
	}
	w.Line("};")
	return nil
}

func (d *cppDialect) TypeOpen(w *Writer, t *TypeDecl) error {
	w.Append(docBlock(d.policy, declDoc(t.Doc, t.Description))...)
	w.Append(t.Annotations...)
	d.section = "-"

	decl := "class " + t.Name
	if t.Final {
		decl += " final"
	}
	bases := append(append([]models.Type(nil), t.Extends...), t.Implements...)
	if len(bases) > 0 {
		names := make([]string, len(bases))
		for i, b := range bases {
			names[i] = "public " + d.typeName(b)
		}
		decl += " : " + strings.Join(names, ", ")
	}
	if t.Generics != "" {
		params := strings.Split(t.Generics, ",")
		for i, p := range params {
			params[i] = "typename " + strings.TrimSpace(p)
		}
		w.Line("template <" + strings.Join(params, ", ") + ">")
	}
	w.Line(decl + " {")

	if t.IsInterface() {
		d.enterSection(w, models.AccessPublic)
		w.Linef("virtual ~%s() = default;", t.Name)
	}
	return nil
}

func (d *cppDialect) TypeClose(w *Writer, _ *TypeDecl) error {
	w.Line("};")
	return nil
}

// enterSection emits an access label when the member's access differs from
// the current section.
func (d *cppDialect) enterSection(w *Writer, access models.Access) {
	if access == models.AccessDefault {
		access = models.AccessPublic
	}
	if access == d.section {
		return
	}
	d.section = access
	w.Line(string(access) + ":")
}

func (d *cppDialect) Field(w *Writer, t *TypeDecl, f *models.Field) error {
	if t.IsInterface() {
		return errors.NewUnsupportedTokenError(string(lang.Cpp), "InterfaceField")
	}
	d.enterSection(w, f.Access)
	w.Append(docBlock(d.policy, f.Doc)...)
	w.Append(f.Annotations...)

	var mods []string
	if f.Static {
		mods = append(mods, "static", "inline")
	}
	if f.Final {
		mods = append(mods, "const")
	}
	decl := joinWords(append(mods, d.typeName(f.Type), f.Name)...)
	if f.Default != "" {
		decl += " = " + f.Default
	}
	w.Line(decl + ";")
	return nil
}

func (d *cppDialect) Method(w *Writer, t *TypeDecl, m *models.Method) error {
	if m.StaticInitializer {
		return errors.NewUnsupportedTokenError(string(lang.Cpp), "StaticInitializer")
	}
	access := m.Access
	if t.IsInterface() {
		access = models.AccessPublic
	}
	d.enterSection(w, access)
	w.Append(docBlock(d.policy, methodDoc(m))...)
	w.Append(m.Annotations...)

	var mods []string
	switch {
	case m.Static:
		mods = append(mods, "static")
	case t.IsInterface() || m.Abstract:
		mods = append(mods, "virtual")
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
	if m.Override {
		decl += " override"
	}
	if m.Final {
		decl += " final"
	}

	if !hasBody(t, m) {
		w.Line(decl + " = 0;")
		return nil
	}
	if m.Constructor && m.SuperInvocation != "" {
		decl += " : " + strings.TrimSuffix(m.SuperInvocation, ";")
	}
	w.Line(decl + " {")
	lines, err := statements(d.policy, m, d.typeName)
	if err != nil {
		return err
	}
	w.Append(lines...)
	w.Line("}")
	return nil
}

func (d *cppDialect) params(params []models.Parameter) string {
	out := make([]string, len(params))
	for i, p := range params {
		var typ string
		if p.ArbitraryNumParams {
			typ = "std::initializer_list<" + d.typeName(elemType(p.Type)) + ">"
			d.lists = true
		} else {
			typ = d.typeName(p.Type)
		}
		if p.Final {
			typ = "const " + typ
		}
		out[i] = typ + " " + p.Name
	}
	return strings.Join(out, ", ")
}
