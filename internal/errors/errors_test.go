package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *BaseError
		expected string
	}{
		{"message only", New(GenerationErrorCode, "boom"), "boom"},
		{
			"with location",
			New(ModelErrorCode, "missing name").WithLocation(SourceLocation{File: "shapes.yaml", Line: 3, Column: 5}),
			"shapes.yaml:3:5: missing name",
		},
		{"line only", New(SyntaxErrorCode, "bad").WithLocation(SourceLocation{File: "a.yaml", Line: 7}), "a.yaml:7: bad"},
		{"with cause", Wrap(FileSystemErrorCode, "cannot write", fmt.Errorf("disk full")), "cannot write: disk full"},
		{"cause already in message", Wrap(FileSystemErrorCode, "disk full", fmt.Errorf("disk full")), "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestSentinelsMatchThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("transform: %w", MissingAnchorError("Circle.java"))
	assert.True(t, Is(wrapped, ErrMissingAnchor))
	assert.False(t, Is(wrapped, ErrUnsupportedToken))

	assert.True(t, Is(NewUnsupportedTokenError("ruby", "For"), ErrUnsupportedToken))
	assert.True(t, Is(NewModelError("class <unnamed>", "name"), ErrMissingField))

	generate := WrapGenerateError("java", "Circle", NewModelError("class Circle", "name")).WithStage("validate")
	assert.Equal(t, GenerationErrorCode, CodeOf(generate))
	assert.True(t, Is(generate, ErrMissingField))
	assert.Equal(t, "validate", generate.Context()["stage"])
}

func TestListReportsEveryEntry(t *testing.T) {
	var list List
	assert.Nil(t, list.Err())

	list = append(list, NewModelError("class Circle > field #1", "type"))
	assert.Equal(t, "class Circle > field #1: missing required field 'type'", list.Err().Error())

	list = append(list, NewUnsupportedTokenError("vbnet", "For"))
	err := list.Err()
	require.Error(t, err)
	assert.True(t, Is(err, ErrMissingField))
	assert.True(t, Is(err, ErrUnsupportedToken))
	assert.Equal(t, ModelErrorCode, CodeOf(err))
	assert.Contains(t, err.Error(), "2 errors:")
	assert.Equal(t, "vbnet", list.Context()["2.language"])

	var unsupported *UnsupportedTokenError
	require.True(t, As(err, &unsupported))
	assert.Equal(t, "For", unsupported.Token)
}

func TestHintsCollectsBothKinds(t *testing.T) {
	hints := Hints(fmt.Errorf("load: %w", UnknownLanguageError("cobol", []string{"java"})))
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "supported languages")

	plain := WithHint(fmt.Errorf("no config"), "create polygen.yaml")
	assert.Equal(t, []string{"create polygen.yaml"}, Hints(plain))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, TemplateErrorCode, CodeOf(WrapTemplateError("header", "parse", fmt.Errorf("bad"))))
	assert.Equal(t, UnknownErrorCode, CodeOf(fmt.Errorf("plain")))
	assert.Equal(t, "MissingAnchorError", MissingAnchorErrorCode.String())
	assert.Equal(t, "UnknownError", ErrorCode(99).String())
}
