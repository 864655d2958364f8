package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherRegeneratesOnChange(t *testing.T) {
	models := t.TempDir()
	out := t.TempDir()
	writeModel(t, models, "shapes.yaml", shapesModel)

	gen, err := NewGenerator(testConfig(out), nil, nil, nil)
	require.NoError(t, err)

	var (
		mu   sync.Mutex
		runs []GenerationSummary
		errs []error
	)
	var reports bytes.Buffer
	w := NewWatcher(gen, []string{models + "/..."}, 20*time.Millisecond, NewDiagnosticReporter(&reports, false), nil)
	w.OnRun = func(s GenerationSummary, err error) {
		mu.Lock()
		defer mu.Unlock()
		runs = append(runs, s)
		errs = append(errs, err)
	}
	runCount := func() int {
		mu.Lock()
		defer mu.Unlock()
		return len(runs)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return runCount() == 1 }, 5*time.Second, 10*time.Millisecond)
	assert.FileExists(t, filepath.Join(out, "shapes", "Circle.java"))

	writeModel(t, models, "nested/extra.yaml", "package: shapes\nclasses: [{name: Triangle}]\n")
	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(out, "shapes", "Triangle.java"))
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)

	writeModel(t, models, "shapes.yaml", "classes: [{fields: [{name: x, type: int}]}]\n")
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(errs) > 0 && errs[len(errs)-1] != nil
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}
	assert.Contains(t, reports.String(), "ERROR")
}

func TestWatcherRejectsMissingPaths(t *testing.T) {
	gen, err := NewGenerator(testConfig(t.TempDir()), nil, nil, nil)
	require.NoError(t, err)

	w := NewWatcher(gen, []string{filepath.Join(t.TempDir(), "missing")}, 0, nil, nil)
	assert.Equal(t, DefaultDebounce, w.debounce)
	assert.Error(t, w.Run(context.Background()))
}
