// Package format re-indents a flat list of generated lines in one forward
// pass, inferring nesting from line content alone.
package format

import (
	"strings"

	"github.com/toyz/polygen/internal/lang"
)

// Engine indents lines for one language. It holds no state between calls.
type Engine struct {
	policy *lang.Policy
}

// New creates an engine for the policy's block rules and indent unit.
func New(p *lang.Policy) *Engine {
	return &Engine{policy: p}
}

// Format returns the re-indented lines.
func (e *Engine) Format(lines []string) []string {
	out, _ := e.FormatDepth(lines)
	return out
}

// FormatDepth returns the re-indented lines and the nesting depth left after
// the last line, which is zero for balanced input.
//
// Closing lines dedent before they are written and opening lines indent the
// lines after them. Runs of blank lines collapse to one, and a blank line
// right after an opening line is dropped.
func (e *Engine) FormatDepth(lines []string) ([]string, int) {
	out := make([]string, 0, len(lines))
	depth := 0
	prevBlank := false
	prevOpened := false
	inBlockComment := false

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if line == "" {
			if prevBlank || prevOpened {
				continue
			}
			out = append(out, "")
			prevBlank = true
			continue
		}

		var opens, closes bool
		if !inBlockComment {
			opens, closes = e.policy.Classify(line)
		}
		if closes && depth > 0 {
			depth--
		}

		text := line
		if inBlockComment && strings.HasPrefix(line, "*") {
			text = " " + line
		}
		out = append(out, strings.Repeat(e.policy.Indent, depth)+text)

		if opens {
			depth++
		}
		prevBlank = false
		prevOpened = opens

		switch {
		case inBlockComment:
			inBlockComment = !strings.Contains(line, "*/")
		case strings.HasPrefix(line, "/*"):
			inBlockComment = !strings.Contains(line[2:], "*/")
		}
	}

	return out, depth
}

// Lines is a convenience wrapper formatting lines for language l.
func Lines(l lang.Language, lines []string) ([]string, error) {
	p, err := lang.PolicyFor(l)
	if err != nil {
		return nil, err
	}
	return New(p).Format(lines), nil
}
