package cli

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/toyz/polygen/internal/config"
	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/generator"
	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/loader"
	"github.com/toyz/polygen/internal/models"
	"github.com/toyz/polygen/internal/output"
	"github.com/toyz/polygen/internal/utils"
)

// Generator coordinates one generate run: load model documents, transform
// every source file and write the results.
type Generator struct {
	loader   *loader.Loader
	codegen  *generator.Generator
	language lang.Language
	dir      *output.DirectoryWriter
	stream   *output.StreamWriter
	stdout   io.Writer
	console  *utils.Console
	logger   *zap.SugaredLogger
}

// GenerationSummary describes a finished run
type GenerationSummary struct {
	Documents int
	Files     int
	Outcomes  map[string]int
	Written   []string
	Duration  time.Duration
}

// NewGenerator builds a generator from cfg. With cfg.Output.Stdout set the
// rendered files are streamed to stdout; otherwise they go under
// cfg.Output.Dir.
func NewGenerator(cfg *config.Config, stdout io.Writer, console *utils.Console, logger *zap.SugaredLogger) (*Generator, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if console == nil {
		console = utils.NewConsole(utils.Quiet, io.Discard)
	}
	l, err := cfg.Target()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.GeneratorOptions()
	if err != nil {
		return nil, err
	}

	g := &Generator{
		loader:   loader.New(logger),
		codegen:  generator.NewGenerator(opts, logger),
		language: l,
		stdout:   stdout,
		console:  console,
		logger:   logger,
	}
	if cfg.Output.Stdout {
		g.stream, err = output.NewStreamWriter(cfg.Output.Encoding)
	} else {
		g.dir, err = output.NewDirectoryWriter(cfg.Output.Dir, cfg.Output.Encoding, logger)
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Run executes the complete generation process for the given path arguments.
func (g *Generator) Run(ctx context.Context, patterns []string) (GenerationSummary, error) {
	start := time.Now()
	summary := GenerationSummary{Outcomes: make(map[string]int)}

	paths, err := g.loader.Files(patterns)
	if err != nil {
		return summary, err
	}
	if len(paths) == 0 {
		return summary, errors.Newf(errors.FileSystemErrorCode, "no model documents found in %v", patterns).
			WithSuggestion("pass .yaml, .yml or .json files, or directories holding them (dir/... recurses)")
	}
	g.console.Detailf("model documents: %v", paths)

	var sources []*models.SourceFile
	for _, path := range paths {
		docs, err := g.loader.LoadFile(path)
		if err != nil {
			return summary, err
		}
		summary.Documents++
		sources = append(sources, docs...)
	}

	files, err := g.codegen.TransformAll(ctx, sources, g.language)
	if err != nil {
		return summary, err
	}

	for _, r := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if g.stream != nil {
			if err := g.stream.Write(g.stdout, r); err != nil {
				return summary, err
			}
			summary.Files++
			continue
		}

		outcome, err := g.dir.Write(r)
		if err != nil {
			return summary, err
		}
		path := g.dir.Path(r)
		summary.Files++
		summary.Outcomes[outcome.String()]++
		if outcome != output.Unchanged {
			summary.Written = append(summary.Written, path)
		}
		g.console.Outcome(outcome.String(), path)
	}

	summary.Duration = time.Since(start)
	g.logger.Infow("generation finished",
		"language", g.language,
		"documents", summary.Documents,
		"files", summary.Files,
		"duration", summary.Duration)
	return summary, nil
}

// Forget drops a cached model document so the next run reads it again.
func (g *Generator) Forget(path string) {
	g.loader.Forget(path)
}
