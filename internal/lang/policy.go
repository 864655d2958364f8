package lang

import (
	"strings"
	"unicode"
)

// DocStyle selects how documentation blocks are rendered.
type DocStyle int

const (
	DocJavadoc DocStyle = iota // /** ... */ with @tags
	DocXML                     // /// <summary> ... or ''' for VB
	DocHash                    // # lines with YARD tags
	DocGo                      // // lines starting with the name
)

// Policy bundles everything the shared pipeline needs to know about a language.
type Policy struct {
	Language  Language
	Extension string

	// NamespaceStyle targets import containing namespaces rather than types,
	// so the trailing segment of an import entry is dropped.
	NamespaceStyle bool

	// ImportSeparator replaces "." between import segments when rendering.
	ImportSeparator string

	// Indent is one level of indentation.
	Indent string

	// PreferredPrefixes are emitted as leading import groups, in order.
	PreferredPrefixes []string

	// MultipleInheritance allows a class to extend more than one type.
	MultipleInheritance bool

	DocStyle DocStyle
	Blocks   BlockRules

	primitives map[string]struct{}
}

// IsPrimitive reports whether name is a built-in type that never needs an import.
func (p *Policy) IsPrimitive(name string) bool {
	_, ok := p.primitives[name]
	return ok
}

// Classify reports whether line opens and/or closes a block.
func (p *Policy) Classify(line string) (opens, closes bool) {
	return p.Blocks.Classify(line)
}

// BlockRules is a line classifier driven by token lists. Prefix and suffix
// matches respect word boundaries when the token ends (or starts) with a letter.
type BlockRules struct {
	OpenPrefixes  []string
	OpenSuffixes  []string
	OpenContains  []string
	ClosePrefixes []string

	// Sections are exact lines that close the previous section and open the next,
	// so they render one level out from their contents.
	Sections []string

	// Modifiers are leading words skipped before prefix matching.
	Modifiers []string

	// ModifiedOpeners open a block only when at least one modifier preceded them.
	ModifiedOpeners []string

	// NeverOpen vetoes opening for lines containing any of these.
	NeverOpen []string

	// CommentPrefixes mark lines that are never classified.
	CommentPrefixes []string
}

// Classify reports whether line opens and/or closes a block.
func (r BlockRules) Classify(line string) (opens, closes bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, false
	}
	for _, c := range r.CommentPrefixes {
		if strings.HasPrefix(line, c) {
			return false, false
		}
	}
	for _, s := range r.Sections {
		if line == s {
			return true, true
		}
	}

	closes = hasWordPrefix(line, r.ClosePrefixes)

	rest, modified := r.stripModifiers(line)
	opens = hasWordPrefix(rest, r.OpenPrefixes) ||
		hasWordSuffix(line, r.OpenSuffixes) ||
		containsAny(line, r.OpenContains) ||
		(modified && hasWordPrefix(rest, r.ModifiedOpeners))

	if opens && containsAny(line, r.NeverOpen) {
		opens = false
	}
	return opens, closes
}

func (r BlockRules) stripModifiers(line string) (string, bool) {
	if len(r.Modifiers) == 0 {
		return line, false
	}
	modified := false
	for {
		word, rest, found := strings.Cut(line, " ")
		if !found || !contains(r.Modifiers, word) {
			return line, modified
		}
		line = strings.TrimLeft(rest, " ")
		modified = true
	}
}

func hasWordPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if !strings.HasPrefix(line, p) {
			continue
		}
		if len(line) == len(p) || !isWordChar(rune(p[len(p)-1])) || !isWordChar(rune(line[len(p)])) {
			return true
		}
	}
	return false
}

func hasWordSuffix(line string, suffixes []string) bool {
	for _, s := range suffixes {
		if !strings.HasSuffix(line, s) {
			continue
		}
		start := len(line) - len(s)
		if start == 0 || !isWordChar(rune(s[0])) || !isWordChar(rune(line[start-1])) {
			return true
		}
	}
	return false
}

func containsAny(line string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func set(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, item := range items {
		m[item] = struct{}{}
	}
	return m
}
