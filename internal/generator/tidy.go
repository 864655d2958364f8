package generator

import (
	"strings"

	goimports "golang.org/x/tools/imports"
)

// tidy runs Go output through goimports in format-only mode, which sorts and
// groups the import block the gofmt way. Output that does not parse (for
// example from hand-written body lines) is returned unchanged.
func (g *Generator) tidy(filename string, lines []string) []string {
	src := []byte(strings.Join(lines, "\n") + "\n")
	out, err := goimports.Process(filename, src, &goimports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		g.logger.Warnw("Go tidy skipped", "file", filename, "error", err)
		return lines
	}
	return strings.Split(strings.TrimRight(string(out), "\n"), "\n")
}
