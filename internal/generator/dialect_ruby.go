package generator

import (
	"strings"

	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/models"
)

// rubyDialect renders packages as nested modules and interfaces as mixins.
type rubyDialect struct {
	policy *lang.Policy
}

func (d *rubyDialect) Policy() *lang.Policy                 { return d.policy }
func (d *rubyDialect) NestsEnums() bool                     { return true }
func (d *rubyDialect) Preamble(*models.SourceFile) []string { return nil }
func (d *rubyDialect) FileHeader(*Writer) error             { return nil }

func (d *rubyDialect) FileOpen(w *Writer) error {
	modules := rubyModules(w.File().Package)
	if len(modules) == 0 {
		return nil
	}
	w.Blank()
	for _, m := range modules {
		w.Line("module " + m)
	}
	return nil
}

func (d *rubyDialect) FileFooter(w *Writer) error {
	for range rubyModules(w.File().Package) {
		w.Line("end")
	}
	return nil
}

func rubyModules(pkg string) []string {
	if pkg == "" {
		return nil
	}
	segments := strings.Split(strings.ReplaceAll(pkg, "/", "."), ".")
	for i, s := range segments {
		segments[i] = camel(s)
	}
	return segments
}

// camel turns snake_case or lower case words into CamelCase.
func camel(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' })
	for i, p := range parts {
		parts[i] = capitalize(p)
	}
	return strings.Join(parts, "")
}

func (d *rubyDialect) typeName(t models.Type) string {
	return t.SimpleName()
}

func (d *rubyDialect) Enum(w *Writer, e *models.Enum, _ *TypeDecl) error {
	literals, _, err := enumLiterals(lang.Ruby, e)
	if err != nil {
		return err
	}
	w.Append(docBlock(d.policy, declDoc(e.Doc, e.Description))...)
	w.Line("module " + e.Name)
	for i, v := range e.Values {
		value := ":" + strings.ToLower(v.Name)
		if literals != nil {
			value = literals[i]
		}
		w.Linef("%s = %s", strings.ToUpper(v.Name), value)
	}
	w.Line("end")
	return nil
}

func (d *rubyDialect) TypeOpen(w *Writer, t *TypeDecl) error {
	w.Append(docBlock(d.policy, declDoc(t.Doc, t.Description))...)

	if t.IsInterface() {
		w.Line("module " + t.Name)
		for _, e := range t.Extends {
			w.Line("include " + d.typeName(e))
		}
		return nil
	}

	decl := "class " + t.Name
	if super, ok := t.Super(); ok {
		decl += " < " + d.typeName(super)
	}
	w.Line(decl)
	for _, i := range t.Implements {
		w.Line("include " + d.typeName(i))
	}
	return nil
}

func (d *rubyDialect) TypeClose(w *Writer, _ *TypeDecl) error {
	w.Line("end")
	return nil
}

func (d *rubyDialect) Field(w *Writer, _ *TypeDecl, f *models.Field) error {
	w.Append(docBlock(d.policy, f.Doc)...)

	switch {
	case f.Static && f.Final:
		value := f.Default
		if value == "" {
			value = "nil"
		}
		w.Linef("%s = %s", strings.ToUpper(f.Name), value)
	case f.Static:
		value := f.Default
		if value == "" {
			value = "nil"
		}
		w.Linef("@@%s = %s", f.Name, value)
	default:
		accessor := "attr_accessor"
		if f.Final {
			accessor = "attr_reader"
		}
		w.Line(joinWords(rubyVisibility(f.Access), accessor, ":"+f.Name))
	}
	return nil
}

func rubyVisibility(a models.Access) string {
	if a == models.AccessPrivate || a == models.AccessProtected {
		return string(a)
	}
	return ""
}

func (d *rubyDialect) Method(w *Writer, t *TypeDecl, m *models.Method) error {
	w.Append(docBlock(d.policy, methodDoc(m))...)

	if m.StaticInitializer {
		lines, err := statements(d.policy, m, d.typeName)
		if err != nil {
			return err
		}
		w.Append(lines...)
		return nil
	}

	name := m.Name
	switch {
	case m.Constructor:
		name = "initialize"
	case m.Static:
		name = "self." + name
	}
	sig := "def " + name
	if len(m.Parameters) > 0 {
		sig += "(" + d.params(m.Parameters) + ")"
	}
	if !m.Constructor && !m.Static {
		sig = joinWords(rubyVisibility(m.Access), sig)
	}

	if t.IsInterface() {
		w.Line(sig + "; end")
		return nil
	}
	w.Line(sig)
	if !hasBody(t, m) {
		w.Line("raise NotImplementedError, \"#{self.class} must implement " + m.Name + "\"")
		w.Line("end")
		return nil
	}
	if m.SuperInvocation != "" {
		w.Line(m.SuperInvocation)
	}
	lines, err := statements(d.policy, m, d.typeName)
	if err != nil {
		return err
	}
	w.Append(lines...)
	w.Line("end")
	return nil
}

func (d *rubyDialect) params(params []models.Parameter) string {
	out := make([]string, len(params))
	for i, p := range params {
		if p.ArbitraryNumParams {
			out[i] = "*" + p.Name
			continue
		}
		out[i] = p.Name
	}
	return strings.Join(out, ", ")
}
