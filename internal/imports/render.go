package imports

import (
	"fmt"
	"path"
	"strings"
	"unicode"

	"github.com/toyz/polygen/internal/lang"
)

// cppHeaders maps standard library names whose header differs from the name.
var cppHeaders = map[string]string{
	"unique_ptr":       "memory",
	"shared_ptr":       "memory",
	"weak_ptr":         "memory",
	"make_unique":      "memory",
	"make_shared":      "memory",
	"cout":             "iostream",
	"cerr":             "iostream",
	"cin":              "iostream",
	"runtime_error":    "stdexcept",
	"invalid_argument": "stdexcept",
	"out_of_range":     "stdexcept",
	"logic_error":      "stdexcept",
	"function":         "functional",
	"pair":             "utility",
	"move":             "utility",
	"size_t":           "cstddef",
	"int32_t":          "cstdint",
	"int64_t":          "cstdint",
	"uint32_t":         "cstdint",
	"uint64_t":         "cstdint",
	"wstring":          "string",
}

// Render turns grouped names into declaration lines. Every non-empty group is
// followed by exactly one blank line; empty input renders nothing.
func Render(groups [][]string, opts Options) []string {
	switch opts.Policy.Language {
	case lang.Delphi:
		return renderUses(groups, opts.Policy)
	case lang.Go:
		return renderGoBlock(groups)
	}

	line := declaration(opts)
	var out []string
	seen := make(map[string]bool)
	for _, group := range groups {
		emitted := 0
		for _, name := range group {
			decl := line(name)
			if seen[decl] {
				continue
			}
			seen[decl] = true
			out = append(out, decl)
			emitted++
		}
		if emitted > 0 {
			out = append(out, "")
		}
	}
	return out
}

func declaration(opts Options) func(string) string {
	p := opts.Policy
	sep := func(name string) string {
		return strings.ReplaceAll(name, ".", p.ImportSeparator)
	}

	switch p.Language {
	case lang.CSharp:
		return func(name string) string { return "using " + name + ";" }
	case lang.VBNet:
		return func(name string) string { return "Imports " + name }
	case lang.PHP:
		return func(name string) string { return "use " + sep(name) + ";" }
	case lang.Cpp:
		return func(name string) string {
			if rest, ok := strings.CutPrefix(name, "std."); ok {
				header := rest
				if h, known := cppHeaders[rest]; known {
					header = h
				}
				return "#include <" + header + ">"
			}
			return `#include "` + sep(name) + `.h"`
		}
	case lang.JavaScript:
		return func(name string) string {
			return fmt.Sprintf("import { %s } from '%s.js';", simpleName(name), modulePath(opts.Package, name))
		}
	case lang.TypeScript:
		return func(name string) string {
			return fmt.Sprintf(`import { %s } from "%s";`, simpleName(name), modulePath(opts.Package, name))
		}
	case lang.Ruby:
		return func(name string) string {
			segments := strings.Split(name, ".")
			for i, s := range segments {
				segments[i] = snake(s)
			}
			return "require '" + strings.Join(segments, "/") + "'"
		}
	default:
		return func(name string) string { return "import " + name + ";" }
	}
}

// renderUses renders one Delphi uses clause spanning every group.
func renderUses(groups [][]string, p *lang.Policy) []string {
	var names []string
	var breaks []int
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		names = append(names, group...)
		breaks = append(breaks, len(names))
	}
	if len(names) == 0 {
		return nil
	}

	out := []string{"uses"}
	next := 0
	for i, name := range names {
		term := ","
		if i == len(names)-1 {
			term = ";"
		}
		out = append(out, strings.ReplaceAll(name, ".", p.ImportSeparator)+term)
		if i+1 == breaks[next] {
			out = append(out, "")
			next++
		}
	}
	return out
}

// renderGoBlock renders a single parenthesized import declaration with one
// blank line between groups and one after the block.
func renderGoBlock(groups [][]string) []string {
	var out []string
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, "")
		}
		for _, name := range group {
			out = append(out, fmt.Sprintf("%q", name))
		}
	}
	if len(out) == 0 {
		return nil
	}
	block := append([]string{"import ("}, out...)
	return append(block, ")", "")
}

func simpleName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// modulePath returns the relative module specifier for name as seen from a
// file in package pkg.
func modulePath(pkg, name string) string {
	target := strings.ReplaceAll(name, ".", "/")
	from := strings.ReplaceAll(Canonical(pkg), ".", "/")

	rel := relative(from, target)
	if !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}
	return rel
}

func relative(from, target string) string {
	fromParts := splitPath(from)
	targetParts := splitPath(target)

	common := 0
	for common < len(fromParts) && common < len(targetParts)-1 && fromParts[common] == targetParts[common] {
		common++
	}

	var parts []string
	for range fromParts[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, targetParts[common:]...)
	return path.Join(parts...)
}

func splitPath(p string) []string {
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func snake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
