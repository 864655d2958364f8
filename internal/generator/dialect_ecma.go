package generator

import (
	"strings"

	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/models"
)

// ecmaDialect renders ES modules. With typed set it renders TypeScript;
// otherwise JavaScript, where interfaces become @interface classes with empty
// members.
type ecmaDialect struct {
	policy *lang.Policy
	typed  bool
}

func (d *ecmaDialect) Policy() *lang.Policy                 { return d.policy }
func (d *ecmaDialect) NestsEnums() bool                     { return false }
func (d *ecmaDialect) Preamble(*models.SourceFile) []string { return nil }
func (d *ecmaDialect) FileHeader(*Writer) error             { return nil }
func (d *ecmaDialect) FileOpen(*Writer) error               { return nil }
func (d *ecmaDialect) FileFooter(*Writer) error             { return nil }

func (d *ecmaDialect) typeName(t models.Type) string {
	return t.SimpleName() + generics(t.Generics) + strings.Repeat("[]", t.Dims())
}

// annotate returns ": T" for TypeScript and nothing for JavaScript.
func (d *ecmaDialect) annotate(t models.Type) string {
	if !d.typed {
		return ""
	}
	return ": " + d.typeName(t)
}

func (d *ecmaDialect) Enum(w *Writer, e *models.Enum, _ *TypeDecl) error {
	literals, _, err := enumLiterals(d.policy.Language, e)
	if err != nil {
		return err
	}
	w.Append(docBlock(d.policy, declDoc(e.Doc, e.Description))...)

	if d.typed {
		w.Linef("export enum %s {", e.Name)
		for i, v := range e.Values {
			member := v.Name
			if literals != nil {
				member += " = " + literals[i]
			}
			w.Line(member + ",")
		}
		w.Line("}")
		return nil
	}

	w.Linef("export const %s = Object.freeze({", e.Name)
	for i, v := range e.Values {
		value := "'" + v.Name + "'"
		if literals != nil {
			value = literals[i]
		}
		w.Linef("%s: %s,", v.Name, value)
	}
	w.Line("});")
	return nil
}

func (d *ecmaDialect) TypeOpen(w *Writer, t *TypeDecl) error {
	doc := declDoc(t.Doc, t.Description)
	if t.IsInterface() && !d.typed {
		doc = withTag(doc, models.Tag{Name: "interface"})
	}
	w.Append(docBlock(d.policy, doc)...)
	w.Append(t.Annotations...)

	name := t.Name
	if d.typed {
		name += generics(t.Generics)
	}

	if t.IsInterface() {
		if !d.typed {
			w.Linef("export class %s {", name)
			return nil
		}
		decl := "export interface " + name
		if len(t.Extends) > 0 {
			decl += " extends " + typeNames(t.Extends, d.typeName)
		}
		w.Line(decl + " {")
		return nil
	}

	decl := "export class " + name
	if d.typed && t.Abstract {
		decl = "export abstract class " + name
	}
	if super, ok := t.Super(); ok {
		decl += " extends " + d.typeName(super)
	}
	if d.typed && len(t.Implements) > 0 {
		decl += " implements " + typeNames(t.Implements, d.typeName)
	}
	w.Line(decl + " {")
	return nil
}

func (d *ecmaDialect) TypeClose(w *Writer, _ *TypeDecl) error {
	w.Line("}")
	return nil
}

func (d *ecmaDialect) Field(w *Writer, t *TypeDecl, f *models.Field) error {
	w.Append(docBlock(d.policy, f.Doc)...)
	w.Append(f.Annotations...)

	var mods []string
	if d.typed && !t.IsInterface() && f.Access != models.AccessDefault {
		mods = append(mods, string(f.Access))
	}
	if f.Static && !t.IsInterface() {
		mods = append(mods, "static")
	}
	if d.typed && f.Final {
		mods = append(mods, "readonly")
	}
	decl := joinWords(append(mods, f.Name)...) + d.annotate(f.Type)
	if f.Default != "" && !t.IsInterface() {
		decl += " = " + f.Default
	}
	w.Line(decl + ";")
	return nil
}

func (d *ecmaDialect) Method(w *Writer, t *TypeDecl, m *models.Method) error {
	w.Append(docBlock(d.policy, methodDoc(m))...)
	w.Append(m.Annotations...)

	if m.StaticInitializer {
		w.Line("static {")
		return d.body(w, m)
	}

	var mods []string
	if d.typed && !t.IsInterface() {
		if m.Access != models.AccessDefault {
			mods = append(mods, string(m.Access))
		}
		if m.Abstract {
			mods = append(mods, "abstract")
		}
		if m.Override {
			mods = append(mods, "override")
		}
	}
	if m.Static && !t.IsInterface() {
		mods = append(mods, "static")
	}

	name := m.Name
	if m.Constructor {
		name = "constructor"
	}
	sig := name + "(" + d.params(m.Parameters) + ")"
	if d.typed && !m.Constructor {
		if isVoid(m) {
			sig += ": void"
		} else {
			sig += d.annotate(m.Return.Type)
		}
	}
	decl := joinWords(append(mods, sig)...)

	if !hasBody(t, m) {
		switch {
		case d.typed:
			w.Line(decl + ";")
		case t.IsInterface():
			w.Line(decl + " {}")
		default:
			w.Line(decl + " {")
			w.Linef("throw new Error('%s is abstract');", m.Name)
			w.Line("}")
		}
		return nil
	}

	w.Line(decl + " {")
	if m.SuperInvocation != "" {
		w.Line(terminated(m.SuperInvocation, ";"))
	}
	return d.body(w, m)
}

func (d *ecmaDialect) body(w *Writer, m *models.Method) error {
	lines, err := statements(d.policy, m, d.typeName)
	if err != nil {
		return err
	}
	w.Append(lines...)
	w.Line("}")
	return nil
}

func (d *ecmaDialect) params(params []models.Parameter) string {
	out := make([]string, len(params))
	for i, p := range params {
		if p.ArbitraryNumParams {
			t := p.Type
			if !t.Array {
				t = models.ArrayOf(t.Name, 1)
				t.Generics = p.Type.Generics
			}
			out[i] = "..." + p.Name + d.annotate(t)
			continue
		}
		out[i] = p.Name + d.annotate(p.Type)
	}
	return strings.Join(out, ", ")
}

func withTag(doc *models.Doc, tag models.Tag) *models.Doc {
	out := &models.Doc{}
	if doc != nil {
		*out = *doc
	}
	out.Tags = append(append([]models.Tag(nil), out.Tags...), tag)
	return out
}
