package generator

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/format"
	"github.com/toyz/polygen/internal/imports"
	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/models"
	"github.com/toyz/polygen/internal/templates"
)

// Options configure a Generator.
type Options struct {
	// HeaderDir holds header template overrides; empty uses the built-in header.
	HeaderDir string

	// Preferred overrides the preferred import prefixes per language.
	Preferred map[lang.Language][]string

	// GoTidy runs Go output through the goimports formatter.
	GoTidy bool

	// Workers bounds TransformAll concurrency; zero or less means one per file.
	Workers int
}

// Result is one rendered source file.
type Result struct {
	File      *models.SourceFile
	Language  lang.Language
	FileName  string // without extension
	Extension string
	Package   string
	Lines     []string
	Imports   []string // resolved import names, in rendered order
}

// Source returns the rendered text with a trailing newline.
func (r *Result) Source() string {
	return strings.Join(r.Lines, "\n") + "\n"
}

// Bytes returns the rendered text as bytes.
func (r *Result) Bytes() []byte {
	return []byte(r.Source())
}

// Generator implements the CodeGenerator interface
type Generator struct {
	opts    Options
	headers *templates.HeaderSource
	logger  *zap.SugaredLogger
}

// NewGenerator creates a new generator instance
func NewGenerator(opts Options, logger *zap.SugaredLogger) *Generator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Generator{
		opts:    opts,
		headers: templates.NewHeaderSource(opts.HeaderDir),
		logger:  logger,
	}
}

// Transform renders f into language l. Every fault is fatal; a failed
// transformation produces no partial result.
func (g *Generator) Transform(f *models.SourceFile, l lang.Language) (*Result, error) {
	if f == nil {
		return nil, errors.NewGenerationError("source file cannot be nil").WithLanguage(string(l))
	}
	policy, err := lang.PolicyFor(l)
	if err != nil {
		return nil, err
	}
	name := f.FileName()

	if err := models.Validate(f); err != nil {
		return nil, errors.WrapGenerateError(string(l), name, err).WithStage("validate")
	}
	if err := checkInheritance(f, policy); err != nil {
		return nil, errors.WrapGenerateError(string(l), name, err).WithStage("validate")
	}

	d, err := newDialect(l)
	if err != nil {
		return nil, err
	}
	if checker, ok := d.(packageChecker); ok {
		if err := checker.CheckPackage(f.Package); err != nil {
			return nil, errors.WrapGenerateError(string(l), name, err).WithStage("validate")
		}
	}

	comment, err := lang.Syntax(l, lang.LineComment)
	if err != nil {
		return nil, err
	}
	anchor := imports.NewAnchor(comment)
	w := newWriter(policy, f)

	w.Append(d.Preamble(f)...)
	header, err := g.headers.Lines(l, templates.HeaderData{
		Source:   f.Origin,
		File:     name,
		Package:  f.Package,
		Language: string(l),
		Title:    titleOf(f.Doc),
	})
	if err != nil {
		return nil, errors.WrapGenerateError(string(l), name, err).WithStage("header")
	}
	w.Append(header...)
	w.Blank()

	if err := expand(d, w, anchor); err != nil {
		return nil, errors.WrapGenerateError(string(l), name, err).WithStage("expand")
	}

	set := w.Imports()
	if !f.AutoImports {
		set = imports.NewSet()
	}
	set.AddExplicit(f.Imports...)

	lines, resolved, err := imports.Apply(w.Lines(), anchor, set, imports.Options{
		Policy:    policy,
		Package:   f.Package,
		Preferred: g.opts.Preferred[l],
		Declared:  declaredTypes(policy, f),
	}, name)
	if err != nil {
		return nil, errors.WrapGenerateError(string(l), name, err).WithStage("imports")
	}

	lines = format.New(policy).Format(trimTrailingBlanks(lines))
	if l == lang.Go && g.opts.GoTidy {
		lines = g.tidy(name+policy.Extension, lines)
	}

	g.logger.Debugw("Transformed source file",
		"file", name,
		"language", l,
		"imports", len(resolved),
		"lines", len(lines))

	return &Result{
		File:      f,
		Language:  l,
		FileName:  name,
		Extension: policy.Extension,
		Package:   f.Package,
		Lines:     lines,
		Imports:   resolved,
	}, nil
}

// TransformAll renders files concurrently with at most Options.Workers
// transformations in flight. Results keep input order; the first error
// cancels transformations that have not started.
func (g *Generator) TransformAll(ctx context.Context, files []*models.SourceFile, l lang.Language) ([]*Result, error) {
	results := make([]*Result, len(files))
	group, ctx := errgroup.WithContext(ctx)
	if g.opts.Workers > 0 {
		group.SetLimit(g.opts.Workers)
	}

	for i, f := range files {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := g.Transform(f, l)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// checkInheritance rejects classes extending more than one class in targets
// without multiple inheritance.
func checkInheritance(f *models.SourceFile, p *lang.Policy) error {
	if p.MultipleInheritance {
		return nil
	}
	for _, c := range f.Classes {
		if len(c.Extends) > 1 {
			return errors.NewModelErrorf("class "+c.Name, "extends",
				"class %s extends %d classes but %s allows one", c.Name, len(c.Extends), p.Language).
				WithSuggestion("move the extra supertypes to implements")
		}
	}
	return nil
}

func titleOf(d *models.Doc) string {
	if d == nil {
		return ""
	}
	return d.Title
}

func trimTrailingBlanks(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// declaredTypes returns the qualified names of the types f declares. Java keeps
// same-package imports and namespace-style targets import containers, so both
// get nil.
func declaredTypes(p *lang.Policy, f *models.SourceFile) []string {
	if f.Package == "" || p.NamespaceStyle || p.Language == lang.Java {
		return nil
	}
	var names []string
	add := func(name string) {
		if name != "" {
			names = append(names, f.Package+"."+name)
		}
	}
	for _, e := range f.Enums {
		add(e.Name)
	}
	for _, i := range f.Interfaces {
		add(i.Name)
	}
	for _, c := range f.Classes {
		add(c.Name)
		for _, e := range c.Enums {
			add(e.Name)
		}
	}
	return names
}
