package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/format"
	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/models"
)

func newTestGenerator(opts Options) *Generator {
	return NewGenerator(opts, zap.NewNop().Sugar())
}

func circleFile(pkg string) *models.SourceFile {
	return models.NewSourceFile(pkg).
		Import("java.util.List").
		Class(models.NewClass("Circle").
			Extends(models.NewType("myprog.Base")).
			Implements(models.NewType("myprog.Shape")).
			Field(models.NewField("radius", models.NewType("double")).Build()).
			Method(
				models.NewConstructor("Circle").
					Param(models.NewParam("radius", models.NewType("double")).NotNull().Build()).
					Body("this.radius = radius;").
					Build(),
				models.NewMethod("area").
					Returns(models.NewType("double"), "").
					Body("return Math.PI * radius * radius;").
					Build(),
			).
			Build()).
		Build()
}

func TestTransformJava(t *testing.T) {
	result, err := newTestGenerator(Options{}).Transform(circleFile("myprog"), lang.Java)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"// Code generated by polygen. DO NOT EDIT.",
		"//",
		"// Language: java, package myprog",
		"",
		"package myprog;",
		"",
		"import java.util.List;",
		"",
		"import myprog.Base;",
		"import myprog.Shape;",
		"",
		"public class Circle extends Base implements Shape {",
		"    private double radius;",
		"",
		"    public Circle(double radius) {",
		"        this.radius = radius;",
		"    }",
		"",
		"    public double area() {",
		"        return Math.PI * radius * radius;",
		"    }",
		"}",
	}, result.Lines)

	assert.Equal(t, "Circle", result.FileName)
	assert.Equal(t, ".java", result.Extension)
	assert.Equal(t, []string{"java.util.List", "myprog.Base", "myprog.Shape"}, result.Imports)
	assert.True(t, strings.HasSuffix(result.Source(), "}\n"))
}

func TestTransformDoesNotMutateImports(t *testing.T) {
	file := circleFile("myprog")
	_, err := newTestGenerator(Options{}).Transform(file, lang.Java)
	require.NoError(t, err)
	assert.Equal(t, []string{"java.util.List"}, file.Imports)
}

func TestAutoImportsDisabledKeepsExplicitOnly(t *testing.T) {
	file := circleFile("myprog")
	file.AutoImports = false

	result, err := newTestGenerator(Options{}).Transform(file, lang.Java)
	require.NoError(t, err)
	assert.Equal(t, []string{"java.util.List"}, result.Imports)
	assert.NotContains(t, result.Lines, "import myprog.Base;")
}

func TestNotNullParametersAreGuarded(t *testing.T) {
	file := models.NewSourceFile("myprog").
		Class(models.NewClass("Greeter").
			Method(models.NewMethod("greet").
				Param(models.NewParam("name", models.NewType("String")).NotNull().Build()).
				Local("greeting", models.NewType("String"), `"Hello " + name`).
				Body("System.out.println(greeting);").
				Build()).
			Build()).
		Build()

	result, err := newTestGenerator(Options{}).Transform(file, lang.Java)
	require.NoError(t, err)

	source := result.Source()
	assert.Contains(t, source, "    public void greet(String name) {\n"+
		"        if (name == null) {\n"+
		"            throw new IllegalArgumentException(\"name must not be null\");\n"+
		"        }\n"+
		"        String greeting = \"Hello \" + name;\n"+
		"        System.out.println(greeting);\n"+
		"    }\n")
}

func TestCppGuardsPointerParametersOnly(t *testing.T) {
	file := models.NewSourceFile("shapes").
		Class(models.NewClass("Greeter").
			Method(models.NewMethod("greet").
				Param(
					models.NewParam("label", models.NewType("geo.Label")).NotNull().Build(),
					models.NewParam("name", models.NewType("char*")).NotNull().Build(),
					models.NewParam("sizes", models.ArrayOf("int", 1)).NotNull().Build(),
				).
				Build()).
			Build()).
		Build()

	result, err := newTestGenerator(Options{}).Transform(file, lang.Cpp)
	require.NoError(t, err)

	source := result.Source()
	assert.Contains(t, source, "if (name == nullptr) {")
	assert.NotContains(t, source, "label == nullptr")
	assert.NotContains(t, source, "sizes == nullptr")
}

func TestAuthoredImportsUseNamespaceContainer(t *testing.T) {
	tests := []struct {
		lang     lang.Language
		expected string
	}{
		{lang.CSharp, "using System.Collections.Generic;"},
		{lang.VBNet, "Imports System.Collections.Generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			file := models.NewSourceFile("Shapes").
				Import("System.Collections.Generic.List").
				Class(models.NewClass("Bag").Build()).
				Build()

			result, err := newTestGenerator(Options{}).Transform(file, tt.lang)
			require.NoError(t, err)
			assert.Equal(t, []string{"System.Collections.Generic"}, result.Imports)
			assert.Contains(t, result.Lines, tt.expected)
		})
	}
}

func TestSameFileTypesAreNotImported(t *testing.T) {
	for _, l := range []lang.Language{lang.TypeScript, lang.JavaScript, lang.PHP, lang.Ruby} {
		t.Run(string(l), func(t *testing.T) {
			file := models.NewSourceFile("acme.shapes").
				Interface(models.NewInterface("Shape").Build()).
				Class(models.NewClass("Circle").
					Extends(models.NewType("acme.geo.Base")).
					Implements(models.NewType("acme.shapes.Shape")).
					Build()).
				Build()

			result, err := newTestGenerator(Options{}).Transform(file, l)
			require.NoError(t, err)
			assert.Equal(t, []string{"acme.geo.Base"}, result.Imports)
		})
	}
}

func TestFileFooterFollowsLastType(t *testing.T) {
	for _, l := range []lang.Language{lang.Cpp, lang.VBNet, lang.Ruby} {
		t.Run(string(l), func(t *testing.T) {
			result, err := newTestGenerator(Options{}).Transform(richFile(l), l)
			require.NoError(t, err)

			n := len(result.Lines)
			require.Greater(t, n, 2)
			assert.NotEqual(t, "", result.Lines[n-1])
			assert.NotEqual(t, "", result.Lines[n-2], "blank line before %q", result.Lines[n-1])
		})
	}
}

func TestAbstractInterfaceMethodsNeverEmitBody(t *testing.T) {
	for _, l := range lang.All() {
		t.Run(string(l), func(t *testing.T) {
			pkg := "shapes"
			if l == lang.Go {
				pkg = "example.com/shapes"
			}
			file := models.NewSourceFile(pkg).
				Interface(models.NewInterface("Shape").
					Method(models.NewMethod("area").
						Abstract().
						Returns(models.NewType("double"), "").
						Body("UNREACHABLE").
						Build()).
					Build()).
				Class(models.NewClass("Polygon").
					Abstract().
					Method(models.NewMethod("sides").
						Abstract().
						Returns(models.NewType("int"), "").
						Body("UNREACHABLE").
						Build()).
					Build()).
				Build()

			result, err := newTestGenerator(Options{}).Transform(file, l)
			require.NoError(t, err)
			assert.NotContains(t, result.Source(), "UNREACHABLE")
		})
	}
}

// richFile exercises every construct each target supports.
func richFile(l lang.Language) *models.SourceFile {
	pkg := "shapes"
	if l == lang.Go {
		pkg = "example.com/shapes"
	}
	return models.NewSourceFile(pkg).
		Doc(&models.Doc{Title: "Shapes", Description: []string{"Geometry primitives."}}).
		Enum(models.NewEnum("Color").Value("RED", "").Value("GREEN", "").Build()).
		Interface(models.NewInterface("Shape").
			Doc(&models.Doc{Title: "A closed figure."}).
			Method(models.NewMethod("area").
				Returns(models.NewType("double"), "the area").
				Build()).
			Build()).
		Class(models.NewClass("Circle").
			Describe("A round shape.").
			Extends(models.NewType("geo.Base")).
			Implements(models.NewType("Shape")).
			Field(
				models.NewField("radius", models.NewType("double")).Build(),
				models.NewField("count", models.NewType("int")).Static().Default("0").Build(),
			).
			Method(
				models.NewConstructor("Circle").
					Param(models.NewParam("label", models.NewType("geo.Label")).NotNull().Describe("display label").Build()).
					Super("super()").
					Body("init()").
					Build(),
				models.NewMethod("area").
					Override().
					Returns(models.NewType("double"), "").
					Local("r", models.NewType("double"), "1").
					Body("return r").
					Build(),
				models.NewMethod("scale").
					Param(models.NewParam("factors", models.ArrayOf("double", 1)).Varargs().Build()).
					Throws(models.NewType("geo.ScaleError"), "when a factor is negative").
					Build(),
			).
			Build()).
		Build()
}

func TestEveryLanguageRendersBalancedOutput(t *testing.T) {
	for _, l := range lang.All() {
		t.Run(string(l), func(t *testing.T) {
			result, err := newTestGenerator(Options{}).Transform(richFile(l), l)
			require.NoError(t, err)

			_, depth := format.New(lang.MustPolicy(l)).FormatDepth(result.Lines)
			assert.Equal(t, 0, depth)

			for _, line := range result.Lines {
				assert.NotContains(t, line, "polygen:imports")
			}
			assert.Contains(t, result.Lines[0]+result.Lines[2], "Code generated by polygen")
			assert.NotEmpty(t, result.Imports)
		})
	}
}

func TestPHPOpenTagPrecedesHeader(t *testing.T) {
	result, err := newTestGenerator(Options{}).Transform(richFile(lang.PHP), lang.PHP)
	require.NoError(t, err)
	assert.Equal(t, "<?php", result.Lines[0])
	assert.Equal(t, "", result.Lines[1])
	assert.True(t, strings.HasPrefix(result.Lines[2], "// Code generated by polygen"))
}

func TestDialectShapes(t *testing.T) {
	tests := []struct {
		lang     lang.Language
		contains []string
	}{
		{lang.CSharp, []string{"using geo;", "namespace shapes;", "public class Circle : Base, Shape {",
			"    public Circle(Label label) : super() {", "    public override double area() {",
			"    public void scale(params double[] factors) {"}},
		{lang.Cpp, []string{`#include "geo/Base.h"`, "namespace shapes {", "class Circle : public geo::Base, public Shape {",
			"private:", "    static inline int count = 0;", "    void scale(std::initializer_list<double> factors) {",
			"#include <initializer_list>", "} // namespace shapes"}},
		{lang.PHP, []string{`use geo\Base;`, "namespace shapes;", "class Circle extends Base implements Shape {",
			"    public function __construct(Label $label) {", "    public function scale(double ...$factors): void {",
			"enum Color {", "    case RED;"}},
		{lang.Delphi, []string{"unit Circle;", "uses", "  geo;", "type", "  Circle = class(Base, Shape)",
			"  private", "    class var count: int;", "  public", "    constructor Create(label: Label);",
			"    function area: double; override;", "implementation", "constructor Circle.Create(label: Label);",
			"end."}},
		{lang.VBNet, []string{"Imports geo", "Namespace shapes", "    Public Class Circle", "        Inherits Base",
			"        Implements Shape", "        Public Sub New(label As Label)", "        Public Overrides Function area() As double",
			"        Public Sub scale(ParamArray factors As double())", "End Namespace"}},
		{lang.JavaScript, []string{"import { Base } from '../geo/Base.js';", "export class Circle extends Base {",
			"    constructor(label) {", "    scale(...factors) {", "export const Color = Object.freeze({", "    RED: 'RED',",
			" * @interface", "    area() {}"}},
		{lang.TypeScript, []string{`import { Base } from "../geo/Base";`, "export class Circle extends Base implements Shape {",
			"    private static count: int = 0;", "    public override area(): double {", "    public scale(...factors: double[]): void {",
			"export interface Shape {", "    area(): double;"}},
		{lang.Ruby, []string{"require 'geo/base'", "module Shapes", "  class Circle < Base", "    include Shape",
			"    private attr_accessor :radius", "    @@count = 0", "    def initialize(label)", "    def scale(*factors)",
			"  module Shape", "    def area; end", "  # A round shape."}},
		{lang.Go, []string{"package shapes", "type Circle struct {", "\tgeo.Base", "\tradius float64", "var _ Shape = (*Circle)(nil)",
			"func NewCircle(label geo.Label) *Circle {", "func (c *Circle) Area() double {",
			"func (c *Circle) Scale(factors ...double) error {", "type Color int", "\tColorRed Color = iota",
			"var circleCount int = 0", "// Deprecated:"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			file := richFile(tt.lang)
			if tt.lang == lang.Go {
				file.Classes[0].Fields[0].Type = models.NewType("float64")
				file.Classes[0].Methods[1].Doc = &models.Doc{Deprecated: "use Size"}
			}
			result, err := newTestGenerator(Options{}).Transform(file, tt.lang)
			require.NoError(t, err)

			source := result.Source()
			for _, want := range tt.contains {
				assert.Contains(t, source, want)
			}
		})
	}
}

func TestTransformRejectsMissingFields(t *testing.T) {
	file := models.NewSourceFile("myprog").
		Class(models.NewClass("Circle").
			Method(models.NewMethod("").Build()).
			Build()).
		Build()

	result, err := newTestGenerator(Options{}).Transform(file, lang.Java)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, errors.ErrMissingField))
	assert.Contains(t, err.Error(), "method")
}

func TestUnsupportedConstructsFailFast(t *testing.T) {
	file := models.NewSourceFile("shapes").
		Class(models.NewClass("Registry").
			Method(models.Method{StaticInitializer: true, Body: []string{"load();"}}).
			Build()).
		Build()

	for _, l := range []lang.Language{lang.Cpp, lang.PHP} {
		_, err := newTestGenerator(Options{}).Transform(file, l)
		require.Error(t, err, l)
		assert.True(t, errors.Is(err, errors.ErrUnsupportedToken), l)
	}

	result, err := newTestGenerator(Options{}).Transform(file, lang.Java)
	require.NoError(t, err)
	assert.Contains(t, result.Source(), "    static {\n        load();\n    }\n")
}

func TestSingleInheritanceTargetsRejectSecondSuperclass(t *testing.T) {
	file := models.NewSourceFile("shapes").
		Class(models.NewClass("Square").
			Extends(models.NewType("shapes.Rect"), models.NewType("shapes.Rhombus")).
			Build()).
		Build()

	_, err := newTestGenerator(Options{}).Transform(file, lang.Java)
	require.Error(t, err)
	assert.Equal(t, errors.GenerationErrorCode, errors.CodeOf(err))

	result, err := newTestGenerator(Options{}).Transform(file, lang.Cpp)
	require.NoError(t, err)
	assert.Contains(t, result.Source(), "class Square : public shapes::Rect, public shapes::Rhombus {")
}

func TestStringEnumsRejectedByIntegralTargets(t *testing.T) {
	file := models.NewSourceFile("shapes").
		Enum(models.NewEnum("Unit").Value("CM", `"cm"`).Value("MM", "").Build()).
		Build()

	_, err := newTestGenerator(Options{}).Transform(file, lang.CSharp)
	require.Error(t, err)

	result, err := newTestGenerator(Options{}).Transform(file, lang.Java)
	require.NoError(t, err)
	source := result.Source()
	assert.Contains(t, source, "    CM(\"cm\"),\n    MM(\"MM\");\n")
	assert.Contains(t, source, "    private final String value;")
}

func TestGoPackageValidation(t *testing.T) {
	file := models.NewSourceFile("not a path").
		Class(models.NewClass("Circle").Build()).
		Build()

	_, err := newTestGenerator(Options{}).Transform(file, lang.Go)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingField))

	file.Package = ""
	_, err = newTestGenerator(Options{}).Transform(file, lang.Go)
	require.Error(t, err)
}

func TestGoPackageName(t *testing.T) {
	tests := map[string]string{
		"example.com/shapes":       "shapes",
		"example.com/shapes/v2":    "shapes",
		"github.com/acme/go-geo":   "geo",
		"gopkg.in/yaml.v3":         "yaml",
		"github.com/acme/geo-tools": "geo_tools",
	}
	for in, want := range tests {
		assert.Equal(t, want, goPackageName(in), in)
	}
}

func TestGoTidyAlignsAndGroups(t *testing.T) {
	file := models.NewSourceFile("example.com/shapes").
		Class(models.NewClass("Circle").
			Field(
				models.NewField("Center", models.NewType("github.com/acme/geo.Point")).Access(models.AccessPublic).Build(),
				models.NewField("Created", models.NewType("time.Time")).Access(models.AccessPublic).Build(),
			).
			Build()).
		Build()

	result, err := newTestGenerator(Options{GoTidy: true}).Transform(file, lang.Go)
	require.NoError(t, err)

	source := result.Source()
	assert.Contains(t, source, "import (\n\t\"time\"\n\n\t\"github.com/acme/geo\"\n)\n")
	assert.Contains(t, source, "\tCenter  geo.Point\n\tCreated time.Time\n")
	assert.Equal(t, []string{"time", "github.com/acme/geo"}, result.Imports)
}

func TestPreferredPrefixOverride(t *testing.T) {
	gen := newTestGenerator(Options{Preferred: map[lang.Language][]string{lang.Java: {"myprog."}}})
	result, err := gen.Transform(circleFile("myprog"), lang.Java)
	require.NoError(t, err)
	assert.Equal(t, []string{"myprog.Base", "myprog.Shape", "java.util.List"}, result.Imports)
}

func TestTransformAllKeepsOrder(t *testing.T) {
	names := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"}
	files := make([]*models.SourceFile, len(names))
	for i, name := range names {
		files[i] = models.NewSourceFile("myprog").Class(models.NewClass(name).Build()).Build()
	}

	results, err := newTestGenerator(Options{Workers: 2}).TransformAll(context.Background(), files, lang.Java)
	require.NoError(t, err)
	require.Len(t, results, len(names))
	for i, name := range names {
		assert.Equal(t, name, results[i].FileName)
	}
}

func TestTransformAllStopsOnError(t *testing.T) {
	files := []*models.SourceFile{
		models.NewSourceFile("myprog").Class(models.NewClass("Good").Build()).Build(),
		models.NewSourceFile("myprog").Class(models.NewClass("Bad").Method(models.NewMethod("").Build()).Build()).Build(),
	}

	results, err := newTestGenerator(Options{}).TransformAll(context.Background(), files, lang.Java)
	require.Error(t, err)
	assert.Nil(t, results)
	assert.True(t, errors.Is(err, errors.ErrMissingField))
}

func TestTransformAllHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files := []*models.SourceFile{models.NewSourceFile("myprog").Class(models.NewClass("A").Build()).Build()}
	_, err := newTestGenerator(Options{}).TransformAll(ctx, files, lang.Java)
	assert.ErrorIs(t, err, context.Canceled)
}
