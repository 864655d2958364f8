package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoModParser_ModuleRoot(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"go.mod":            "module github.com/acme/app\n\ngo 1.25\n",
		"internal/gen/.keep": "",
	})

	p := NewGoModParser(NewFileReader())
	dir, modulePath, err := p.ModuleRoot(filepath.Join(root, "internal", "gen"))
	require.NoError(t, err)
	assert.Equal(t, "github.com/acme/app", modulePath)

	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGoModParser_Errors(t *testing.T) {
	root := t.TempDir()
	p := NewGoModParser(NewFileReader())

	goMod := filepath.Join(root, "go.mod")
	require.NoError(t, os.WriteFile(goMod, []byte("go 1.25\n"), 0o644))
	_, err := p.ParseModuleName(goMod)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no module declaration")

	_, err = p.ParseModuleName(filepath.Join(root, "missing", "go.mod"))
	assert.Error(t, err)
}
