package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/utils"
)

// GeneratedMarker is carried by every generated file header.
const GeneratedMarker = "Code generated by polygen. DO NOT EDIT."

// HeaderData is the data available to header templates.
type HeaderData struct {
	Source   string // model document the file came from
	File     string // generated file name without extension
	Package  string
	Language string
	Title    string // file-level doc title
}

// HeaderSource renders file headers. Templates are looked up as
// <dir>/header.<lang>.tmpl, then <dir>/header.tmpl, then the built-in default.
type HeaderSource struct {
	dir   string
	cache *utils.Cache[string, *template.Template]
}

// NewHeaderSource creates a header source; dir may be empty to use built-ins only.
func NewHeaderSource(dir string) *HeaderSource {
	return &HeaderSource{
		dir:   dir,
		cache: utils.NewCache[string, *template.Template](),
	}
}

// Lines renders the header for language l, each line prefixed with the
// language's line-comment token. The generated marker is always the first line.
func (h *HeaderSource) Lines(l lang.Language, data HeaderData) ([]string, error) {
	comment, err := lang.Syntax(l, lang.LineComment)
	if err != nil {
		return nil, err
	}

	tmpl, err := h.lookup(l)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.WrapTemplateError(tmpl.Name(), "execute", err)
	}

	text := strings.TrimRight(buf.String(), "\n")
	if !strings.Contains(text, GeneratedMarker) {
		text = GeneratedMarker + "\n" + text
	}

	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			lines[i] = comment
			continue
		}
		lines[i] = comment + " " + line
	}
	return lines, nil
}

func (h *HeaderSource) lookup(l lang.Language) (*template.Template, error) {
	if h.dir != "" {
		for _, name := range []string{"header." + string(l) + ".tmpl", "header.tmpl"} {
			path := filepath.Join(h.dir, name)
			if tmpl, ok := h.cache.GetWithFileValidation(path, path); ok {
				return tmpl, nil
			}
			content, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				continue
			}
			if err != nil {
				return nil, errors.WrapFileSystemError("read", path, err)
			}
			tmpl, err := parse(name, string(content))
			if err != nil {
				return nil, err
			}
			if err := h.cache.SetWithFileInfo(path, tmpl, path); err != nil {
				return nil, errors.WrapFileSystemError("stat", path, err)
			}
			return tmpl, nil
		}
	}

	name, text := builtinHeader(l)
	if tmpl, ok := h.cache.Get(name); ok {
		return tmpl, nil
	}
	tmpl, err := parse(name, text)
	if err != nil {
		return nil, err
	}
	h.cache.Set(name, tmpl)
	return tmpl, nil
}

// parse parses a template with the helper functions available to headers
func parse(name, text string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"join":  strings.Join,
	}

	tmpl, err := template.New(name).Funcs(funcMap).Parse(text)
	if err != nil {
		return nil, errors.WrapTemplateError(name, "parse", err)
	}
	return tmpl, nil
}
