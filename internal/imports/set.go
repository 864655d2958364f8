// Package imports collects the type names referenced while a source file is
// expanded and splices the resolved import/using block back into the rendered
// lines.
package imports

import (
	"github.com/toyz/polygen/internal/models"
)

// Kind tells the resolver how an entry was produced.
type Kind int

const (
	// TypeRef entries name a referenced type. Unqualified names are dropped and
	// namespace-style targets reduce them to their containing namespace.
	TypeRef Kind = iota
	// Explicit entries are authored imports. They are kept even when
	// unqualified, but dotted names still lose their type segment on
	// namespace-style targets.
	Explicit
	// Resolved entries are the output of Resolve and pass through unchanged.
	Resolved
)

// Entry is one raw import candidate.
type Entry struct {
	Name string
	Kind Kind
}

// Set accumulates import entries in insertion order. It is owned by a single
// transformation and is not safe for concurrent use.
type Set struct {
	entries []Entry
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{entries: make([]Entry, 0, 16)}
}

// AddType records a referenced type.
func (s *Set) AddType(t models.Type) {
	if t.IsZero() {
		return
	}
	s.entries = append(s.entries, Entry{Name: t.Name, Kind: TypeRef})
}

// AddTypes records several referenced types.
func (s *Set) AddTypes(types ...models.Type) {
	for _, t := range types {
		s.AddType(t)
	}
}

// AddName records a referenced type by its raw name.
func (s *Set) AddName(names ...string) {
	for _, name := range names {
		if name != "" {
			s.entries = append(s.entries, Entry{Name: name, Kind: TypeRef})
		}
	}
}

// AddExplicit records authored import entries.
func (s *Set) AddExplicit(names ...string) {
	for _, name := range names {
		if name != "" {
			s.entries = append(s.entries, Entry{Name: name, Kind: Explicit})
		}
	}
}

// Merge appends every entry of other.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	s.entries = append(s.entries, other.entries...)
}

// Entries returns a copy of the raw entries.
func (s *Set) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Len returns the number of raw entries, duplicates included.
func (s *Set) Len() int {
	return len(s.entries)
}
