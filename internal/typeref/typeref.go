// Package typeref parses textual type references such as
// "java.util.Map<String, List<Integer>>[][]" into model types.
package typeref

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/models"
)

// typeRef is the grammar root. Namespace separators "::" and "\" are
// accepted anywhere "." is.
type typeRef struct {
	Pos      lexer.Position
	Segments []string   `parser:"@Ident ( Sep @Ident )*"`
	Generics []*typeRef `parser:"( '<' @@ ( ',' @@ )* '>' )?"`
	Arrays   []string   `parser:"( @'[' ']' )*"`
}

var parser = participle.MustBuild[typeRef](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Sep", Pattern: `::|\.|\\`},
		{Name: "Ident", Pattern: `[a-zA-Z_$?][a-zA-Z0-9_$/\-]*`},
		{Name: "Punct", Pattern: `[<>,\[\]]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})),
	participle.Elide("Whitespace"),
)

// Parse parses a type reference.
func Parse(s string) (models.Type, error) {
	input := strings.TrimSpace(s)
	if input == "" {
		return models.Type{}, errors.NewSyntaxError("empty type reference")
	}

	ref, err := parser.ParseString("", input)
	if err != nil {
		offset := 0
		if perr, ok := err.(participle.Error); ok {
			offset = perr.Position().Offset
		}
		return models.Type{}, errors.NewSyntaxErrorAt("invalid type reference", input, offset).WithCause(err)
	}

	return ref.toType(), nil
}

// MustParse is like Parse but panics on error. Intended for tests and literals.
func MustParse(s string) models.Type {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseAll parses every reference, stopping at the first failure.
func ParseAll(refs []string) ([]models.Type, error) {
	types := make([]models.Type, 0, len(refs))
	for _, ref := range refs {
		t, err := Parse(ref)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

func (r *typeRef) toType() models.Type {
	t := models.Type{Name: strings.Join(r.Segments, ".")}
	if len(r.Generics) > 0 {
		args := make([]string, len(r.Generics))
		for i, g := range r.Generics {
			args[i] = g.String()
		}
		t.Generics = strings.Join(args, ", ")
	}
	if n := len(r.Arrays); n > 0 {
		t.Array = true
		t.ArrayDimension = n
	}
	return t
}

func (r *typeRef) String() string {
	return r.toType().String()
}
