package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/polygen/internal/errors"
)

func TestRoot_WriteThenRead(t *testing.T) {
	dir := t.TempDir()
	root := New(dir)
	path := filepath.Join(dir, "shapes", "geo", "Circle.java")

	_, ok, err := root.ReadIfExists(path)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, root.WriteFile(path, []byte("class Circle {}\n"), 0o644))

	content, ok, err := root.ReadIfExists(path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "class Circle {}\n", string(content))
}

func TestRoot_Resolve(t *testing.T) {
	dir := t.TempDir()
	root := New(dir)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"inside", filepath.Join(dir, "a", "b.go"), false},
		{"root itself", dir, false},
		{"sibling", filepath.Join(dir, "..", "other", "x.go"), true},
		{"parent", filepath.Join(dir, ".."), true},
		{"dotted name inside", filepath.Join(dir, "..hidden", "x.go"), false},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := root.Resolve(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}

	_, err := New("").Resolve(filepath.Join(dir, "..", "anywhere"))
	assert.NoError(t, err)
}

func TestRoot_EscapingWriteIsRejected(t *testing.T) {
	dir := t.TempDir()
	err := New(filepath.Join(dir, "out")).WriteFile(filepath.Join(dir, "elsewhere.java"), []byte("x"), 0o644)
	require.Error(t, err)
	assert.Equal(t, errors.FileSystemErrorCode, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "escapes output root")
	assert.NoFileExists(t, filepath.Join(dir, "elsewhere.java"))
}

func TestRoot_WriteErrorsAreCoded(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0o644))

	err := New("").WriteFile(filepath.Join(blocker, "Circle.java"), []byte("x"), 0o644)
	require.Error(t, err)
	assert.Equal(t, errors.FileSystemErrorCode, errors.CodeOf(err))
}
