package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanGeneratedFiles(t *testing.T) {
	models := t.TempDir()
	out := t.TempDir()
	writeModel(t, models, "shapes.yaml", shapesModel)

	gen, err := NewGenerator(testConfig(out), nil, nil, nil)
	require.NoError(t, err)
	_, err = gen.Run(context.Background(), []string{models})
	require.NoError(t, err)

	handWritten := writeModel(t, out, "shapes/Helper.java", "public class Helper {}\n")
	notSource := writeModel(t, out, "shapes/README.md", "Code generated by polygen. DO NOT EDIT.\n")
	generatedElsewhere := writeModel(t, out, "nested/deep/Old.rb", "# Code generated by polygen. DO NOT EDIT.\nclass Old\nend\n")

	cleaner := NewCleaner()

	removed, err := cleaner.CleanGeneratedFiles([]string{out})
	require.NoError(t, err)
	assert.Empty(t, removed, "top level holds no generated files")

	removed, err = cleaner.CleanGeneratedFiles([]string{out + "/...", filepath.Join(out, "missing")})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(out, "nested", "deep", "Old.rb"),
		filepath.Join(out, "shapes", "Circle.java"),
		filepath.Join(out, "shapes", "Square.java"),
	}, removed)

	assert.FileExists(t, handWritten)
	assert.FileExists(t, notSource)
	assert.NoFileExists(t, generatedElsewhere)
}
