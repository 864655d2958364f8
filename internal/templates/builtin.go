package templates

import "github.com/toyz/polygen/internal/lang"

// builtinHeaders back every language without a header override. A
// "header.<lang>" entry replaces the shared "header" for that language.
var builtinHeaders = map[string]string{
	"header": GeneratedMarker + `
{{- if .Title}}
{{.Title}}
{{- end}}

{{if .Source}}Source: {{.Source}}
{{end}}Language: {{.Language}}{{if .Package}}, package {{.Package}}{{end}}`,

	// go vet and gopls only honour the marker on its own line ahead of the
	// package clause.
	"header.go": GeneratedMarker + `
{{- if .Title}}

{{.Title}}
{{- end}}`,
}

func builtinHeader(l lang.Language) (name, text string) {
	name = "header." + string(l)
	if text, ok := builtinHeaders[name]; ok {
		return name, text
	}
	return "header", builtinHeaders["header"]
}
