package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/models"
)

const shapesDoc = `
files:
  - package: myprog
    imports: [java.util.List]
    doc: { title: "Shapes", description: ["Geometry primitives."] }
    enums: [{ name: Color, values: [{name: RED}, {name: GREEN, value: "2"}, BLUE] }]
    interfaces:
      - name: Shape
        methods: [{ name: area, return: { type: double, description: the area } }]
    classes:
      - name: Circle
        extends: [myprog.Base]
        implements: [myprog.Shape]
        fields: [{ name: radius, type: double, access: private }]
        methods:
          - name: Circle
            constructor: true
            params: [{ name: radius, type: double, notnull: true }]
            body: ["this.radius = radius;"]
          - name: scale
            params:
              - { name: factors, type: "double[]", varargs: true }
            throws: [java.io.IOException]
            body: |
              radius *= factors[0];
              return;
`

func TestLoadBytes(t *testing.T) {
	files, err := LoadBytes("shapes.yaml", []byte(shapesDoc))
	require.NoError(t, err)
	require.Len(t, files, 1)

	f := files[0]
	assert.Equal(t, "myprog", f.Package)
	assert.Equal(t, "shapes.yaml", f.Origin)
	assert.True(t, f.AutoImports, "auto imports default to on")
	assert.Equal(t, []string{"java.util.List"}, f.Imports)
	assert.Equal(t, "Shapes", f.Doc.Title)
	assert.Equal(t, "Circle", f.FileName())

	require.Len(t, f.Enums, 1)
	assert.Equal(t, []models.EnumValue{{Name: "RED"}, {Name: "GREEN", Value: "2"}, {Name: "BLUE"}}, f.Enums[0].Values)

	require.Len(t, f.Interfaces, 1)
	area := f.Interfaces[0].Methods[0]
	require.NotNil(t, area.Return)
	assert.Equal(t, models.NewType("double"), area.Return.Type)
	assert.Equal(t, "the area", area.Return.Description)

	circle := f.Classes[0]
	assert.Equal(t, []models.Type{models.NewType("myprog.Base")}, circle.Extends)
	assert.Equal(t, []models.Type{models.NewType("myprog.Shape")}, circle.Implements)
	assert.Equal(t, models.AccessPrivate, circle.Fields[0].Access)

	ctor := circle.Methods[0]
	assert.True(t, ctor.Constructor)
	assert.True(t, ctor.Parameters[0].NotNull)
	assert.Equal(t, []string{"this.radius = radius;"}, ctor.Body)

	scale := circle.Methods[1]
	assert.True(t, scale.Parameters[0].ArbitraryNumParams)
	assert.Equal(t, models.ArrayOf("double", 1), scale.Parameters[0].Type)
	assert.Equal(t, []models.Exception{{Type: models.NewType("java.io.IOException")}}, scale.Throws)
	assert.Equal(t, []string{"radius *= factors[0];", "return;"}, scale.Body)

	assert.NoError(t, models.Validate(f))
}

func TestLoadBytesTypeForms(t *testing.T) {
	doc := `
package: geo
autoImports: false
classes:
  - name: Grid
    generics: T
    fields:
      - { name: cells, type: "java.util.Map<String, List<T>>[][]" }
      - { name: raw, type: { name: byte, dims: 2 } }
      - { name: origin, type: "geo::Point" }
`
	files, err := LoadBytes("grid.yaml", []byte(doc))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.False(t, files[0].AutoImports)

	fields := files[0].Classes[0].Fields
	assert.Equal(t, models.Type{Name: "java.util.Map", Generics: "String, List<T>", Array: true, ArrayDimension: 2}, fields[0].Type)
	assert.Equal(t, models.ArrayOf("byte", 2), fields[1].Type)
	assert.Equal(t, models.NewType("geo.Point"), fields[2].Type)
}

func TestLoadBytesMultipleDocumentsAndJSON(t *testing.T) {
	stream := "package: a\nclasses: [{name: A}]\n---\npackage: b\nclasses: [{name: B}]\n"
	files, err := LoadBytes("stream.yaml", []byte(stream))
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "A", files[0].FileName())
	assert.Equal(t, "B", files[1].FileName())

	json := `{"files": [{"package": "j", "enums": [{"name": "Mode", "values": ["ON", "OFF"]}]}]}`
	files, err = LoadBytes("doc.json", []byte(json))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "Mode", files[0].FileName())
}

func TestLoadBytesErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		code    errors.ErrorCode
		message string
	}{
		{"empty document", "", errors.SyntaxErrorCode, "declares no source files"},
		{"bad type reference", "classes: [{name: A, fields: [{name: x, type: \"List<\"}]}]", errors.SyntaxErrorCode, "bad.yaml:1:"},
		{"unknown access", "classes: [{name: A, access: friend}]", errors.SyntaxErrorCode, "unknown access modifier"},
		{"unknown key", "classes: [{name: A, color: red}]", errors.SyntaxErrorCode, "failed to parse bad.yaml"},
		{"malformed yaml", "classes: [", errors.SyntaxErrorCode, "bad.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBytes("bad.yaml", []byte(tt.doc))
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.CodeOf(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	write := func(name, content string) {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	write("a.yaml", "package: p\nclasses: [{name: A}]\n")
	write("nested/b.yml", "package: p\nclasses: [{name: B}]\n")
	write("nested/notes.txt", "not a model")

	l := New(nil)

	flat, err := l.Scan([]string{root})
	require.NoError(t, err)
	require.Len(t, flat, 1)
	assert.Equal(t, "A", flat[0].FileName())
	assert.Equal(t, filepath.Join(root, "a.yaml"), flat[0].Origin)

	deep, err := l.Scan([]string{root + "/..."})
	require.NoError(t, err)
	require.Len(t, deep, 2)
	assert.Equal(t, "B", deep[1].FileName())

	_, err = l.Scan([]string{filepath.Join(root, "missing")})
	require.Error(t, err)
	assert.Equal(t, errors.FileSystemErrorCode, errors.CodeOf(err))
}

func TestLoadFileRereadsChangedDocuments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: p\nclasses: [{name: A}]\n"), 0o644))

	l := New(nil)
	files, err := l.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A", files[0].FileName())

	require.NoError(t, os.WriteFile(path, []byte("package: p\nclasses: [{name: Renamed}]\n"), 0o644))
	l.Forget(path)
	files, err = l.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", files[0].FileName())
}
