package generator

import (
	"strings"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/models"
)

type phpDialect struct {
	policy *lang.Policy
}

func (d *phpDialect) Policy() *lang.Policy     { return d.policy }
func (d *phpDialect) NestsEnums() bool         { return false }
func (d *phpDialect) FileOpen(*Writer) error   { return nil }
func (d *phpDialect) FileFooter(*Writer) error { return nil }

// Preamble puts the open tag ahead of the header comment.
func (d *phpDialect) Preamble(*models.SourceFile) []string {
	return []string{"<?php", ""}
}

func (d *phpDialect) FileHeader(w *Writer) error {
	w.Line("declare(strict_types=1);")
	w.Blank()
	if pkg := w.File().Package; pkg != "" {
		w.Linef("namespace %s;", strings.ReplaceAll(pkg, ".", `\`))
		w.Blank()
	}
	return nil
}

// typeName renders a type declaration; arrays collapse to array and generic
// arguments are dropped.
func (d *phpDialect) typeName(t models.Type) string {
	if t.Array {
		return "array"
	}
	return t.SimpleName()
}

func (d *phpDialect) Enum(w *Writer, e *models.Enum, _ *TypeDecl) error {
	literals, kind, err := enumLiterals(lang.PHP, e)
	if err != nil {
		return err
	}

	w.Append(docBlock(d.policy, declDoc(e.Doc, e.Description))...)
	switch kind {
	case enumInt:
		w.Linef("enum %s: int {", e.Name)
	case enumString:
		w.Linef("enum %s: string {", e.Name)
	default:
		w.Linef("enum %s {", e.Name)
	}
	for i, v := range e.Values {
		w.Append(docBlock(d.policy, v.Doc)...)
		if literals != nil {
			w.Linef("case %s = %s;", v.Name, literals[i])
			continue
		}
		w.Linef("case %s;", v.Name)
	}
	w.Line("}")
	return nil
}

func (d *phpDialect) TypeOpen(w *Writer, t *TypeDecl) error {
	w.Append(docBlock(d.policy, declDoc(t.Doc, t.Description))...)
	w.Append(t.Annotations...)

	if t.IsInterface() {
		decl := "interface " + t.Name
		if len(t.Extends) > 0 {
			decl += " extends " + typeNames(t.Extends, d.typeName)
		}
		w.Line(decl + " {")
		return nil
	}

	var mods []string
	if t.Abstract {
		mods = append(mods, "abstract")
	}
	if t.Final {
		mods = append(mods, "final")
	}
	decl := joinWords(append(mods, "class", t.Name)...)
	if super, ok := t.Super(); ok {
		decl += " extends " + d.typeName(super)
	}
	if len(t.Implements) > 0 {
		decl += " implements " + typeNames(t.Implements, d.typeName)
	}
	w.Line(decl + " {")
	return nil
}

func (d *phpDialect) TypeClose(w *Writer, _ *TypeDecl) error {
	w.Line("}")
	return nil
}

func (d *phpDialect) Field(w *Writer, t *TypeDecl, f *models.Field) error {
	w.Append(docBlock(d.policy, f.Doc)...)
	w.Append(f.Annotations...)

	if t.IsInterface() || (f.Static && f.Final) {
		if f.Default == "" {
			return errors.NewModelError("constant "+f.Name, "default")
		}
		w.Line(joinWords(phpAccess(f.Access), "const", f.Name, "=", f.Default+";"))
		return nil
	}

	mods := []string{phpAccess(f.Access)}
	if f.Static {
		mods = append(mods, "static")
	} else if f.Final && f.Default == "" {
		mods = append(mods, "readonly")
	}
	decl := joinWords(append(mods, d.typeName(f.Type), "$"+f.Name)...)
	if f.Default != "" {
		decl += " = " + f.Default
	}
	w.Line(decl + ";")
	return nil
}

func (d *phpDialect) Method(w *Writer, t *TypeDecl, m *models.Method) error {
	if m.StaticInitializer {
		return errors.NewUnsupportedTokenError(string(lang.PHP), "StaticInitializer")
	}
	w.Append(docBlock(d.policy, methodDoc(m))...)
	w.Append(m.Annotations...)

	var mods []string
	if m.Final && !t.IsInterface() {
		mods = append(mods, "final")
	}
	if m.Abstract && !t.IsInterface() {
		mods = append(mods, "abstract")
	}
	mods = append(mods, phpAccess(m.Access))
	if m.Static {
		mods = append(mods, "static")
	}

	name := m.Name
	if m.Constructor {
		name = "__construct"
	}
	sig := "function " + name + "(" + d.params(m.Parameters) + ")"
	switch {
	case m.Constructor:
	case isVoid(m):
		sig += ": void"
	default:
		sig += ": " + d.typeName(m.Return.Type)
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
	lines, err := statements(d.policy, m, d.typeName)
	if err != nil {
		return err
	}
	w.Append(lines...)
	w.Line("}")
	return nil
}

func (d *phpDialect) params(params []models.Parameter) string {
	out := make([]string, len(params))
	for i, p := range params {
		if p.ArbitraryNumParams {
			out[i] = d.typeName(elemType(p.Type)) + " ...$" + p.Name
			continue
		}
		out[i] = d.typeName(p.Type) + " $" + p.Name
	}
	return strings.Join(out, ", ")
}

func phpAccess(a models.Access) string {
	if a == models.AccessDefault {
		return string(models.AccessPublic)
	}
	return string(a)
}
