package utils

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// Verbosity selects how much a Console prints.
type Verbosity int

const (
	Quiet Verbosity = iota
	Normal
	Verbose
)

// Console prints the user-facing progress of a command: a banner, one line
// per touched file and a closing tally. Structured logs go through zap
// instead.
type Console struct {
	verbosity Verbosity
	out       io.Writer
	colors    bool
}

func NewConsole(verbosity Verbosity, out io.Writer) *Console {
	return &Console{verbosity: verbosity, out: out, colors: colorsEnabled()}
}

// Header prints the banner line of a command.
func (c *Console) Header(message string) {
	if c.verbosity < Normal {
		return
	}
	c.paint(color.FgCyan).Fprintf(c.out, "polygen: %s\n", message)
}

// Outcome prints a path tagged with what happened to it.
func (c *Console) Outcome(tag, path string) {
	if c.verbosity < Normal {
		return
	}
	attr := color.Reset
	switch tag {
	case "created":
		attr = color.FgGreen
	case "updated":
		attr = color.FgYellow
	case "removed":
		attr = color.FgRed
	}
	fmt.Fprint(c.out, "  ")
	c.paint(attr).Fprintf(c.out, "%-9s", tag)
	fmt.Fprintf(c.out, " %s\n", path)
}

// Summary prints title and the counts in key order, e.g.
// "Done: 2 created, 1 unchanged".
func (c *Console) Summary(title string, counts map[string]int) {
	if c.verbosity < Normal {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%d %s", counts[k], k)
	}
	fmt.Fprintf(c.out, "\n%s: %s\n", title, strings.Join(parts, ", "))
}

// Detailf prints a line only in verbose mode.
func (c *Console) Detailf(format string, args ...any) {
	if c.verbosity < Verbose {
		return
	}
	c.paint(color.FgHiBlack).Fprintf(c.out, "  "+format+"\n", args...)
}

func (c *Console) paint(attr color.Attribute) *color.Color {
	p := color.New(attr)
	if !c.colors {
		p.DisableColor()
	}
	return p
}

// colorsEnabled honours NO_COLOR and FORCE_COLOR before looking at TERM.
func colorsEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}
