package generator

import (
	"strings"

	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/models"
)

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// declDoc returns the doc for a declaration, falling back to its one-line
// description.
func declDoc(doc *models.Doc, description string) *models.Doc {
	if !doc.IsEmpty() || description == "" {
		return doc
	}
	return &models.Doc{Title: description}
}

// methodDoc returns the signature-aware doc view for m, or nil when nothing
// about the method is documented.
func methodDoc(m *models.Method) *models.Doc {
	if m.Doc.IsEmpty() && !describesSignature(m) {
		return nil
	}
	return m.Doc.ForMethod(m)
}

func describesSignature(m *models.Method) bool {
	for _, p := range m.Parameters {
		if p.Description != "" {
			return true
		}
	}
	if m.Return != nil && m.Return.Description != "" {
		return true
	}
	for _, e := range m.Throws {
		if e.Description != "" {
			return true
		}
	}
	return false
}

// docBlock renders d in the policy's documentation style.
func docBlock(p *lang.Policy, d *models.Doc) []string {
	if d.IsEmpty() {
		return nil
	}
	switch p.DocStyle {
	case lang.DocXML:
		prefix := "///"
		if p.Language == lang.VBNet {
			prefix = "'''"
		}
		return xmlDoc(prefix, d)
	case lang.DocHash:
		return prefixed("#", yardLines(d))
	case lang.DocGo:
		return prefixed("//", goDocLines(d))
	default:
		return javadoc(d)
	}
}

func javadoc(d *models.Doc) []string {
	body := d.Lines()
	var tags []string
	for _, p := range d.Params {
		tags = append(tags, joinWords("@param", p.Name, p.Description))
	}
	if d.Return != nil && d.Return.Description != "" {
		tags = append(tags, "@return "+d.Return.Description)
	}
	for _, e := range d.Throws {
		tags = append(tags, joinWords("@throws", e.Type.Name, e.Description))
	}
	if d.Deprecated != "" {
		tags = append(tags, "@deprecated "+d.Deprecated)
	}
	for _, t := range d.Tags {
		tags = append(tags, joinWords("@"+t.Name, t.Key, t.Value))
	}
	if len(body) > 0 && len(tags) > 0 {
		body = append(body, "")
	}
	body = append(body, tags...)

	out := []string{"/**"}
	for _, line := range body {
		out = append(out, strings.TrimRight("* "+line, " "))
	}
	return append(out, "*/")
}

func xmlDoc(prefix string, d *models.Doc) []string {
	var out []string
	if lines := d.Lines(); len(lines) > 0 {
		out = append(out, "<summary>")
		for _, line := range lines {
			if line != "" {
				out = append(out, xmlEscaper.Replace(line))
			}
		}
		out = append(out, "</summary>")
	}
	for _, p := range d.Params {
		out = append(out, `<param name="`+p.Name+`">`+xmlEscaper.Replace(p.Description)+"</param>")
	}
	if d.Return != nil && d.Return.Description != "" {
		out = append(out, "<returns>"+xmlEscaper.Replace(d.Return.Description)+"</returns>")
	}
	for _, e := range d.Throws {
		out = append(out, `<exception cref="`+e.Type.SimpleName()+`">`+xmlEscaper.Replace(e.Description)+"</exception>")
	}
	if d.Deprecated != "" {
		out = append(out, "<remarks>Deprecated: "+xmlEscaper.Replace(d.Deprecated)+"</remarks>")
	}
	for _, t := range d.Tags {
		out = append(out, "<"+t.Name+">"+xmlEscaper.Replace(joinWords(t.Key, t.Value))+"</"+t.Name+">")
	}
	return prefixed(prefix, out)
}

func yardLines(d *models.Doc) []string {
	out := d.Lines()
	var tags []string
	for _, p := range d.Params {
		tags = append(tags, joinWords("@param", p.Name, p.Description))
	}
	if d.Return != nil && d.Return.Description != "" {
		tags = append(tags, "@return "+d.Return.Description)
	}
	for _, e := range d.Throws {
		tags = append(tags, joinWords("@raise ["+e.Type.SimpleName()+"]", e.Description))
	}
	if d.Deprecated != "" {
		tags = append(tags, "@deprecated "+d.Deprecated)
	}
	for _, t := range d.Tags {
		tags = append(tags, joinWords("@"+t.Name, t.Key, t.Value))
	}
	if len(out) > 0 && len(tags) > 0 {
		out = append(out, "")
	}
	return append(out, tags...)
}

func goDocLines(d *models.Doc) []string {
	out := d.Lines()
	if d.Deprecated != "" {
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, "Deprecated: "+d.Deprecated)
	}
	return out
}

func prefixed(prefix string, lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line == "" {
			out[i] = prefix
			continue
		}
		out[i] = prefix + " " + line
	}
	return out
}
