package generator

import (
	"path"
	"strings"

	"golang.org/x/mod/module"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/models"
)

// goDialect renders classes as structs with a NewX constructor and pointer
// receiver methods emitted after the type. The package value is an import path.
type goDialect struct {
	policy   *lang.Policy
	pkg      string
	deferred []string
}

func (d *goDialect) Policy() *lang.Policy                 { return d.policy }
func (d *goDialect) NestsEnums() bool                     { return false }
func (d *goDialect) Preamble(*models.SourceFile) []string { return nil }
func (d *goDialect) FileOpen(*Writer) error               { return nil }
func (d *goDialect) FileFooter(*Writer) error             { return nil }

// CheckPackage validates the package as a Go import path.
func (d *goDialect) CheckPackage(pkg string) error {
	if pkg == "" {
		return errors.NewModelError("file", "package").
			WithSuggestion("set the package to the Go import path of the generated file")
	}
	if err := module.CheckImportPath(pkg); err != nil {
		return errors.NewModelErrorf("file", "package", "invalid Go import path %q", pkg).
			WithCause(err)
	}
	return nil
}

func (d *goDialect) FileHeader(w *Writer) error {
	d.pkg = w.File().Package
	w.Line("package " + goPackageName(d.pkg))
	w.Blank()
	return nil
}

// goPackageName derives the package clause from an import path, skipping a
// major version suffix.
func goPackageName(importPath string) string {
	prefix, _, ok := module.SplitPathVersion(importPath)
	if !ok || prefix == "" {
		prefix = importPath
	}
	name := path.Base(prefix)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return strings.TrimPrefix(name, "go_")
}

// typeName qualifies types from other packages with their package name.
func (d *goDialect) typeName(t models.Type) string {
	name := t.SimpleName()
	if q := t.Qualifier(); q != "" && q != d.pkg {
		name = goPackageName(q) + "." + name
	}
	if t.Generics != "" {
		name += "[" + t.Generics + "]"
	}
	return strings.Repeat("[]", t.Dims()) + name
}

// exported applies Go visibility: private and protected names are unexported.
func exported(name string, access models.Access) string {
	if access == models.AccessPrivate || access == models.AccessProtected {
		return uncapitalize(name)
	}
	return capitalize(name)
}

func (d *goDialect) Enum(w *Writer, e *models.Enum, owner *TypeDecl) error {
	literals, kind, err := enumLiterals(lang.Go, e)
	if err != nil {
		return err
	}

	name := exported(e.Name, e.Access)
	if owner != nil {
		name = exported(owner.Name+capitalize(e.Name), e.Access)
	}
	base := "int"
	if kind == enumString {
		base = "string"
	}

	w.Append(docBlock(d.policy, declDoc(e.Doc, e.Description))...)
	w.Linef("type %s %s", name, base)
	w.Blank()
	w.Line("const (")
	for i, v := range e.Values {
		w.Append(docBlock(d.policy, v.Doc)...)
		constant := name + camel(strings.ToLower(v.Name))
		switch {
		case literals != nil:
			w.Linef("%s %s = %s", constant, name, goLiteral(literals[i]))
		case i == 0:
			w.Linef("%s %s = iota", constant, name)
		default:
			w.Line(constant)
		}
	}
	w.Line(")")
	return nil
}

// goLiteral converts single-quoted strings longer than one rune to Go string
// literals; 'x' stays a rune literal.
func goLiteral(s string) string {
	if len(s) > 3 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return `"` + strings.ReplaceAll(s[1:len(s)-1], `"`, `\"`) + `"`
	}
	return s
}

func (d *goDialect) TypeOpen(w *Writer, t *TypeDecl) error {
	w.Append(docBlock(d.policy, declDoc(t.Doc, t.Description))...)
	d.deferred = nil

	name := exported(t.Name, t.Access)
	if t.Generics != "" {
		name += "[" + t.Generics + " any]"
	}
	if t.IsInterface() {
		w.Linef("type %s interface {", name)
	} else {
		w.Linef("type %s struct {", name)
	}
	for _, e := range t.Extends {
		w.Line(d.typeName(e))
	}
	return nil
}

func (d *goDialect) TypeClose(w *Writer, t *TypeDecl) error {
	w.Line("}")
	if !t.IsInterface() && t.Generics == "" {
		for _, i := range t.Implements {
			w.Blank()
			w.Linef("var _ %s = (*%s)(nil)", d.typeName(i), exported(t.Name, t.Access))
		}
	}
	if len(d.deferred) > 0 {
		w.Blank()
		w.Append(d.deferred...)
		d.deferred = nil
	}
	return nil
}

func (d *goDialect) later(lines ...string) {
	d.deferred = append(d.deferred, lines...)
}

func (d *goDialect) Field(w *Writer, t *TypeDecl, f *models.Field) error {
	if t.IsInterface() {
		w.Append(docBlock(d.policy, f.Doc)...)
		w.Linef("%s() %s", capitalize(f.Name), d.typeName(f.Type))
		return nil
	}

	if f.Static {
		name := exported(t.Name+capitalize(f.Name), f.Access)
		if len(d.deferred) > 0 {
			d.later("")
		}
		d.later(docBlock(d.policy, f.Doc)...)
		switch {
		case f.Final && f.Default != "":
			d.later("const " + name + " = " + f.Default)
		case f.Default != "":
			d.later("var " + name + " " + d.typeName(f.Type) + " = " + f.Default)
		default:
			d.later("var " + name + " " + d.typeName(f.Type))
		}
		return nil
	}

	w.Append(docBlock(d.policy, f.Doc)...)
	decl := exported(f.Name, f.Access) + " " + d.typeName(f.Type)
	if tags := structTags(f.Annotations); tags != "" {
		decl += " " + tags
	}
	w.Line(decl)
	return nil
}

// structTags joins annotations written as key:"value" into one struct tag.
func structTags(annotations []string) string {
	var tags []string
	for _, a := range annotations {
		if strings.Contains(a, `:"`) {
			tags = append(tags, a)
		}
	}
	if len(tags) == 0 {
		return ""
	}
	return "`" + strings.Join(tags, " ") + "`"
}

func (d *goDialect) Method(w *Writer, t *TypeDecl, m *models.Method) error {
	doc := docBlock(d.policy, methodDoc(m))
	results := d.results(m)
	params := d.params(m.Parameters)

	if t.IsInterface() {
		w.Append(doc...)
		w.Line(strings.TrimSpace(capitalize(m.Name) + "(" + params + ") " + results))
		return nil
	}

	typeName := exported(t.Name, t.Access)
	var decl string
	switch {
	case m.StaticInitializer:
		decl = "func init()"
	case m.Constructor:
		result := "*" + typeName
		if len(m.Throws) > 0 {
			result = "(*" + typeName + ", error)"
		}
		decl = "func " + exported("New"+capitalize(t.Name), t.Access) + "(" + params + ") " + result
	case m.Static:
		decl = "func " + exported(t.Name+capitalize(m.Name), m.Access) + "(" + params + ")"
		decl = strings.TrimSpace(decl + " " + results)
	default:
		recv := strings.ToLower(t.Name[:1])
		decl = "func (" + recv + " *" + typeName + ") " + exported(m.Name, m.Access) + "(" + params + ")"
		decl = strings.TrimSpace(decl + " " + results)
	}

	if len(d.deferred) > 0 {
		d.later("")
	}
	d.later(doc...)
	d.later(decl + " {")

	if !hasBody(t, m) {
		d.later("panic(\"" + t.Name + "." + m.Name + " is abstract\")", "}")
		return nil
	}
	if m.SuperInvocation != "" {
		d.later(m.SuperInvocation)
	}
	lines, err := statements(d.policy, m, d.typeName)
	if err != nil {
		return err
	}
	d.later(lines...)
	if m.Constructor && len(m.Body) == 0 {
		if len(m.Throws) > 0 {
			d.later("return &" + typeName + "{}, nil")
		} else {
			d.later("return &" + typeName + "{}")
		}
	}
	d.later("}")
	return nil
}

// results renders the result list; a throws list adds a trailing error.
func (d *goDialect) results(m *models.Method) string {
	var out []string
	if !m.Constructor && !isVoid(m) {
		out = append(out, d.typeName(m.Return.Type))
	}
	if len(m.Throws) > 0 {
		out = append(out, "error")
	}
	switch len(out) {
	case 0:
		return ""
	case 1:
		return out[0]
	}
	return "(" + strings.Join(out, ", ") + ")"
}

func (d *goDialect) params(params []models.Parameter) string {
	out := make([]string, len(params))
	for i, p := range params {
		if p.ArbitraryNumParams {
			out[i] = p.Name + " ..." + d.typeName(elemType(p.Type))
			continue
		}
		out[i] = p.Name + " " + d.typeName(p.Type)
	}
	return strings.Join(out, ", ")
}
