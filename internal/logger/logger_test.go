package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
	}{
		{"JSON output mode", true},
		{"Console output mode", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(func() { Logger, JSONOutput = nil, false })

			require.NoError(t, Initialize(tt.jsonOutput, false))
			assert.NotNil(t, Logger)
			assert.Equal(t, tt.jsonOutput, JSONOutput)
		})
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, true, false)
	require.NoError(t, err)

	l.Debugw("hidden", "k", 1)
	l.Infow("file written", "file", "Circle.java", "outcome", "created")
	require.NoError(t, l.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry), "only the info entry is written")
	assert.Equal(t, "file written", entry["msg"])
	assert.Equal(t, "Circle.java", entry["file"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewVerboseConsole(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, false, true)
	require.NoError(t, err)

	l.Debugw("expanding", "language", "java")
	require.NoError(t, l.Sync())

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "expanding")
	assert.Contains(t, out, `"language": "java"`)
}
