package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"empty string", NotEmpty("output")(""), "invalid output: cannot be empty"},
		{"blank string", NotEmpty("output")("  "), "invalid output: cannot be empty"},
		{"non-empty string", NotEmpty("output")("gen"), ""},
		{"allowed value", IsOneOf("framework", "gin", "echo")("echo"), ""},
		{"disallowed value", IsOneOf("framework", "gin", "echo")("chi"), "invalid framework: chi is not one of [gin echo]"},
		{"below minimum", AtLeast("workers", 0)(-1), "invalid workers: must be at least 0"},
		{"at minimum", AtLeast("workers", 0)(0), ""},
		{"custom failure", Custom("encoding", "unknown", func(string) bool { return false })("x"), "invalid encoding: unknown"},
		{"optional zero", Optional(NotEmpty("x"))(""), ""},
		{"optional set", Optional(Custom("x", "bad", func(string) bool { return false }))("y"), "invalid x: bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.message == "" {
				assert.NoError(t, tt.err)
				return
			}
			require.Error(t, tt.err)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestFirstError(t *testing.T) {
	err := FirstError(
		NotEmpty("language")("java"),
		AtLeast("workers", 1)(0),
		NotEmpty("output")(""),
	)
	require.Error(t, err)

	var field FieldError
	require.ErrorAs(t, err, &field)
	assert.Equal(t, "workers", field.Field)
	assert.Equal(t, 0, field.Value)

	assert.NoError(t, FirstError(nil, NotEmpty("x")("y")))
}
