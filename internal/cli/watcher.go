package cli

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/utils"
)

// DefaultDebounce is how long the watcher waits for events to settle.
const DefaultDebounce = 200 * time.Millisecond

// Watcher re-runs a Generator whenever a watched model document changes.
type Watcher struct {
	generator *Generator
	patterns  []string
	debounce  time.Duration
	reporter  *DiagnosticReporter
	logger    *zap.SugaredLogger
	files     *utils.FileProcessor

	// OnRun is called after every run, including the initial one.
	OnRun func(GenerationSummary, error)
}

// NewWatcher creates a watcher for the given path arguments. A non-positive
// debounce uses DefaultDebounce.
func NewWatcher(g *Generator, patterns []string, debounce time.Duration, reporter *DiagnosticReporter, logger *zap.SugaredLogger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Watcher{
		generator: g,
		patterns:  patterns,
		debounce:  debounce,
		reporter:  reporter,
		logger:    logger,
		files:     utils.NewFileProcessor(),
	}
}

// Run generates once, then again after every burst of changes, until ctx
// is cancelled. Failed runs are reported and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.FileSystemErrorCode, "failed to start file watcher", err)
	}
	defer fsw.Close()

	recursive, err := w.addRoots(fsw)
	if err != nil {
		return err
	}

	w.run(ctx)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	isModel := utils.ModelFileFilter()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) && recursive[filepath.Dir(event.Name)] {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(fsw, event.Name, recursive); err != nil {
						w.logger.Warnw("cannot watch new directory", "dir", event.Name, "error", err)
					}
					// files may have landed before the directory was watched
					timer.Reset(w.debounce)
					continue
				}
			}
			if event.Op == fsnotify.Chmod || !isModel(event.Name, fakeEntry(event.Name)) {
				continue
			}
			w.logger.Debugw("model document changed", "file", event.Name, "op", event.Op.String())
			w.generator.Forget(event.Name)
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnw("file watcher error", "error", err)

		case <-timer.C:
			w.run(ctx)
		}
	}
}

func (w *Watcher) run(ctx context.Context) {
	summary, err := w.generator.Run(ctx, w.patterns)
	if err != nil && ctx.Err() == nil && w.reporter != nil {
		w.reporter.ReportError(err)
	}
	if w.OnRun != nil {
		w.OnRun(summary, err)
	}
}

// addRoots watches the directory of every pattern. The returned set holds
// the directories watched recursively.
func (w *Watcher) addRoots(fsw *fsnotify.Watcher) (map[string]bool, error) {
	recursive := make(map[string]bool)
	for _, pattern := range w.patterns {
		root, deep := utils.SplitRecursive(pattern)
		info, err := os.Stat(root)
		if err != nil {
			return nil, errors.WrapFileSystemError("watch", root, err)
		}
		if !info.IsDir() {
			root = filepath.Dir(root)
			deep = false
		}
		if deep {
			if err := w.addTree(fsw, root, recursive); err != nil {
				return nil, err
			}
			continue
		}
		if err := fsw.Add(root); err != nil {
			return nil, errors.WrapFileSystemError("watch", root, err)
		}
	}
	return recursive, nil
}

func (w *Watcher) addTree(fsw *fsnotify.Watcher, root string, recursive map[string]bool) error {
	skip := utils.DefaultDirectoryFilter()
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && !skip(path, d) {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			return errors.WrapFileSystemError("watch", path, err)
		}
		recursive[path] = true
		return nil
	})
}

// fakeEntry lets file filters judge a path that may no longer exist.
func fakeEntry(path string) fs.DirEntry {
	return fs.FileInfoToDirEntry(nameInfo(filepath.Base(path)))
}

type nameInfo string

func (n nameInfo) Name() string       { return string(n) }
func (n nameInfo) Size() int64        { return 0 }
func (n nameInfo) Mode() fs.FileMode  { return 0 }
func (n nameInfo) ModTime() time.Time { return time.Time{} }
func (n nameInfo) IsDir() bool        { return false }
func (n nameInfo) Sys() any           { return nil }
