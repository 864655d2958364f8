package imports

import (
	"sort"
	"strings"

	"github.com/toyz/polygen/internal/lang"
)

// Options parametrize the resolution pass for one source file.
type Options struct {
	Policy *lang.Policy

	// Package is the file's own package or namespace; matching entries are dropped.
	Package string

	// Preferred overrides the policy's preferred prefixes when non-nil.
	Preferred []string

	// Declared lists the qualified names of types declared in the file itself.
	Declared []string
}

func (o Options) preferred() []string {
	if o.Preferred != nil {
		return o.Preferred
	}
	return o.Policy.PreferredPrefixes
}

// Normalize reduces an entry to the name it would be imported by, or "" when
// the entry can never produce an import.
func Normalize(e Entry, p *lang.Policy) string {
	name := Canonical(e.Name)
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}
	for strings.HasSuffix(name, "[]") {
		name = strings.TrimSpace(strings.TrimSuffix(name, "[]"))
	}
	switch e.Kind {
	case Resolved:
		return name
	case Explicit:
		// Go imports are package paths, not type names.
		if p.NamespaceStyle && !strings.Contains(name, "/") {
			name = container(name)
		}
		return name
	}
	if !strings.ContainsAny(name, "./") {
		return ""
	}
	if p.NamespaceStyle {
		name = container(name)
	}
	return name
}

// Canonical rewrites "::" and "\" namespace separators to ".".
func Canonical(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "::", ".")
	return strings.ReplaceAll(name, `\`, ".")
}

// container drops the trailing type segment. For path-like names only a dot
// after the last slash separates a type.
func container(name string) string {
	dot := strings.LastIndex(name, ".")
	if dot > strings.LastIndex(name, "/") {
		return name[:dot]
	}
	return name
}

// Resolve normalizes, sorts, deduplicates and filters the entries. The result
// is made of Resolved entries, so resolving it again returns it unchanged.
func Resolve(entries []Entry, opts Options) []Entry {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name := Normalize(e, opts.Policy); name != "" {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	self := Canonical(opts.Package)
	declared := make(map[string]struct{}, len(opts.Declared))
	for _, name := range opts.Declared {
		declared[Canonical(name)] = struct{}{}
	}
	resolved := make([]Entry, 0, len(names))
	for i, name := range names {
		if i > 0 && names[i-1] == name {
			continue
		}
		if opts.Policy.IsPrimitive(name) || (self != "" && name == self) {
			continue
		}
		if _, ok := declared[name]; ok {
			continue
		}
		resolved = append(resolved, Entry{Name: name, Kind: Resolved})
	}
	return resolved
}

// Names returns the entry names.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Group splits sorted names into one group per preferred prefix, in prefix
// order, followed by a final group of everything else. Each name lands in the
// first group whose prefix matches.
func Group(names []string, preferred []string) [][]string {
	groups := make([][]string, len(preferred)+1)
	for _, name := range names {
		idx := len(preferred)
		for i, prefix := range preferred {
			if matchesPrefix(name, prefix) {
				idx = i
				break
			}
		}
		groups[idx] = append(groups[idx], name)
	}
	return groups
}

func matchesPrefix(name, prefix string) bool {
	if prefix == lang.StdlibPrefix {
		first, _, _ := strings.Cut(name, "/")
		return !strings.Contains(first, ".")
	}
	if !strings.HasPrefix(name, prefix) {
		return false
	}
	if len(name) == len(prefix) || strings.HasSuffix(prefix, ".") {
		return true
	}
	next := name[len(prefix)]
	return next == '.' || next == '/'
}
