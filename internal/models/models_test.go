package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/polygen/internal/errors"
)

func TestTypeHelpers(t *testing.T) {
	typ := Type{Name: "java.util.Map", Generics: "String, Integer", Array: true, ArrayDimension: 2}

	assert.Equal(t, "Map", typ.SimpleName())
	assert.Equal(t, "java.util", typ.Qualifier())
	assert.Equal(t, 2, typ.Dims())
	assert.Equal(t, "java.util.Map<String, Integer>[][]", typ.String())

	plain := NewType("int")
	assert.Equal(t, "", plain.Qualifier())
	assert.Equal(t, 0, plain.Dims())

	// dimension without the array flag is ignored
	assert.Equal(t, 0, Type{Name: "X", ArrayDimension: 3}.Dims())
	assert.Equal(t, 1, ArrayOf("X", 0).Dims())
}

func TestFileNameDerivation(t *testing.T) {
	tests := []struct {
		name     string
		file     SourceFile
		expected string
	}{
		{"explicit", SourceFile{Name: "Main", Classes: []Class{{Name: "Circle"}}}, "Main"},
		{"first class", SourceFile{Classes: []Class{{Name: "Circle"}, {Name: "Square"}}, Interfaces: []Interface{{Name: "Shape"}}}, "Circle"},
		{"interface when no class", SourceFile{Interfaces: []Interface{{Name: "Shape"}}, Enums: []Enum{{Name: "Color"}}}, "Shape"},
		{"enum only", SourceFile{Enums: []Enum{{Name: "Color"}}}, "Color"},
		{"empty", SourceFile{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.file.FileName())
		})
	}
}

func TestBuilderProducesTree(t *testing.T) {
	circle := NewClass("Circle").
		Extends(NewType("myprog.Base")).
		Implements(NewType("myprog.Shape")).
		Field(NewField("radius", NewType("double")).Build()).
		Method(
			NewConstructor("Circle").
				Param(NewParam("radius", NewType("double")).NotNull().Build()).
				Body("this.radius = radius;").
				Build(),
			NewMethod("area").Returns(NewType("double"), "the area").Body("return Math.PI * radius * radius;").Build(),
		).
		Build()

	file := NewSourceFile("myprog").Class(circle).Build()

	require.Len(t, file.Classes, 1)
	assert.Equal(t, "Circle", file.FileName())
	assert.True(t, file.AutoImports)
	assert.Equal(t, AccessPrivate, file.Classes[0].Fields[0].Access)
	assert.True(t, file.Classes[0].Methods[0].Constructor)
	assert.True(t, file.Classes[0].Methods[0].Parameters[0].NotNull)
	assert.Equal(t, "double", file.Classes[0].Methods[1].Return.Type.Name)

	super, ok := file.Classes[0].Super()
	assert.True(t, ok)
	assert.Equal(t, "myprog.Base", super.Name)

	assert.NoError(t, Validate(file))
}

func TestValidateCollectsEveryFault(t *testing.T) {
	file := &SourceFile{
		Classes: []Class{{
			Name:   "Broken",
			Fields: []Field{{Name: "x"}},
			Methods: []Method{
				{Body: []string{"x++;"}},
				{Name: "Broken", Constructor: true, Return: &Return{Type: NewType("int")}},
				{Name: "sum", Parameters: []Parameter{{Name: "a"}, {Type: NewType("int")}}},
				{StaticInitializer: true},
			},
		}},
	}

	err := Validate(file)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingField))

	var list errors.List
	require.True(t, errors.As(err, &list))
	assert.Len(t, list, 5)
	assert.Contains(t, err.Error(), "class Broken > field x: missing required field 'type'")
	assert.Contains(t, err.Error(), "method #1: missing required field 'name'")
	assert.Contains(t, err.Error(), "a constructor cannot declare a return type")
	assert.Contains(t, err.Error(), "parameter a: missing required field 'type'")
	assert.Contains(t, err.Error(), "parameter #2: missing required field 'name'")
}

func TestValidateRejectsEmptyFile(t *testing.T) {
	err := Validate(&SourceFile{Package: "myprog"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required field 'name'")

	assert.Error(t, Validate(nil))
}

func TestDocForMethodDoesNotMutate(t *testing.T) {
	doc := &Doc{Title: "Area", Description: []string{"Computes the area."}}
	method := NewMethod("area").
		Param(NewParam("scale", NewType("double")).Describe("factor").Build()).
		Returns(NewType("double"), "the area").
		Throws(NewType("java.lang.ArithmeticException"), "on overflow").
		Doc(doc).
		Build()

	view := doc.ForMethod(&method)

	assert.Empty(t, doc.Params)
	assert.Nil(t, doc.Return)
	require.Len(t, view.Params, 1)
	assert.Equal(t, "factor", view.Params[0].Description)
	assert.Equal(t, "the area", view.Return.Description)
	require.Len(t, view.Throws, 1)
	assert.Equal(t, []string{"Area", "", "Computes the area."}, view.Lines())

	var nilDoc *Doc
	ctor := NewConstructor("Circle").Build()
	assert.True(t, nilDoc.ForMethod(&ctor).IsEmpty())
}

func TestHasBody(t *testing.T) {
	m := NewMethod("area").Body("return 1;").Build()
	assert.True(t, m.HasBody(false))
	assert.False(t, m.HasBody(true))

	m.Abstract = true
	assert.False(t, m.HasBody(false))
}
