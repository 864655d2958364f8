package format

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/polygen/internal/lang"
)

func TestFormatJava(t *testing.T) {
	input := []string{
		"package myprog;",
		"",
		"",
		"public class Circle {",
		"",
		"private double radius;",
		"",
		"",
		"public double area() {",
		"if (radius > 0) {",
		"return Math.PI * radius * radius;",
		"} else {",
		"return 0;",
		"}",
		"}",
		"}",
	}

	got, err := Lines(lang.Java, input)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"package myprog;",
		"",
		"public class Circle {",
		"    private double radius;",
		"",
		"    public double area() {",
		"        if (radius > 0) {",
		"            return Math.PI * radius * radius;",
		"        } else {",
		"            return 0;",
		"        }",
		"    }",
		"}",
	}, got)
}

func TestFormatTrimsExistingIndentation(t *testing.T) {
	got, err := Lines(lang.Go, []string{"   func main() {", "\t\t  fmt.Println()  ", "   }"})
	require.NoError(t, err)
	assert.Equal(t, []string{"func main() {", "\tfmt.Println()", "}"}, got)
}

func TestFormatJavadocContinuation(t *testing.T) {
	got, err := Lines(lang.Java, []string{
		"class A {",
		"/**",
		"* Area of the shape.",
		"*/",
		"double area();",
		"}",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"class A {",
		"    /**",
		"     * Area of the shape.",
		"     */",
		"    double area();",
		"}",
	}, got)
}

func TestFormatSections(t *testing.T) {
	got, err := Lines(lang.Cpp, []string{
		"class Circle {",
		"public:",
		"double area();",
		"private:",
		"double radius;",
		"};",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"class Circle {",
		"public:",
		"    double area();",
		"private:",
		"    double radius;",
		"};",
	}, got)
}

func TestFormatDelphiUnit(t *testing.T) {
	got, err := Lines(lang.Delphi, []string{
		"unit Circle;",
		"interface",
		"type",
		"TCircle = class(TObject)",
		"public",
		"function Area: Double;",
		"end;",
		"implementation",
		"function TCircle.Area: Double;",
		"begin",
		"Exit(0);",
		"end;",
		"end.",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"unit Circle;",
		"interface",
		"type",
		"  TCircle = class(TObject)",
		"  public",
		"    function Area: Double;",
		"  end;",
		"implementation",
		"  function TCircle.Area: Double;",
		"  begin",
		"    Exit(0);",
		"  end;",
		"end.",
	}, got)
}

func TestFormatRubyAndVB(t *testing.T) {
	ruby, err := Lines(lang.Ruby, []string{"class Circle", "def area", "if r.nil?", "0", "else", "r * r", "end", "end", "end"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"class Circle",
		"  def area",
		"    if r.nil?",
		"      0",
		"    else",
		"      r * r",
		"    end",
		"  end",
		"end",
	}, ruby)

	vb, err := Lines(lang.VBNet, []string{
		"Namespace Shapes",
		"Public Class Circle",
		"Public Function Area() As Double",
		"Return 0",
		"End Function",
		"End Class",
		"End Namespace",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Namespace Shapes",
		"    Public Class Circle",
		"        Public Function Area() As Double",
		"            Return 0",
		"        End Function",
		"    End Class",
		"End Namespace",
	}, vb)
}

func TestBlankLineCollapse(t *testing.T) {
	engine := New(lang.MustPolicy(lang.Java))
	for n := 2; n <= 6; n++ {
		input := []string{"int a;"}
		for i := 0; i < n; i++ {
			input = append(input, "   ")
		}
		input = append(input, "int b;")

		assert.Equal(t, []string{"int a;", "", "int b;"}, engine.Format(input), "n=%d", n)
	}

	// no blank line directly inside a fresh block
	got := engine.Format([]string{"class A {", "", "", "int a;", "}"})
	assert.Equal(t, []string{"class A {", "    int a;", "}"}, got)
}

func TestIndentationBalance(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, l := range []lang.Language{lang.Java, lang.Go, lang.Ruby, lang.CSharp} {
		engine := New(lang.MustPolicy(l))
		open, close := balancedTokens(l)

		for iter := 0; iter < 50; iter++ {
			lines := randomBalanced(rng, open, close, 4)
			out, depth := engine.FormatDepth(lines)
			assert.Equal(t, 0, depth, "%s: %v", l, lines)

			require.NotEmpty(t, out)
			assert.False(t, strings.HasPrefix(out[0], " ") || strings.HasPrefix(out[0], "\t"), l)
			last := out[len(out)-1]
			assert.Equal(t, strings.TrimSpace(last), last, l)
		}
	}
}

func TestUnbalancedCloseDoesNotGoNegative(t *testing.T) {
	out, depth := New(lang.MustPolicy(lang.Java)).FormatDepth([]string{"}", "}", "int a;"})
	assert.Equal(t, 0, depth)
	assert.Equal(t, []string{"}", "}", "int a;"}, out)
}

func TestUnknownLanguage(t *testing.T) {
	_, err := Lines("cobol", []string{"x"})
	assert.Error(t, err)
}

func balancedTokens(l lang.Language) (string, string) {
	switch l {
	case lang.Ruby:
		return "def step", "end"
	case lang.Go:
		return "if ok {", "}"
	default:
		return "while (true) {", "}"
	}
}

// randomBalanced builds a nested block structure with statements and blank lines.
func randomBalanced(rng *rand.Rand, open, close string, maxDepth int) []string {
	var lines []string
	var build func(depth int)
	build = func(depth int) {
		n := rng.Intn(3) + 1
		for i := 0; i < n; i++ {
			switch {
			case depth < maxDepth && rng.Intn(2) == 0:
				lines = append(lines, open)
				build(depth + 1)
				lines = append(lines, close)
			case rng.Intn(3) == 0:
				lines = append(lines, "")
			default:
				lines = append(lines, "x = 1")
			}
		}
	}
	lines = append(lines, open)
	build(1)
	lines = append(lines, close)
	return lines
}
