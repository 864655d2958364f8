package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/polygen/internal/errors"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected Language
	}{
		{"java", Java},
		{"Java", Java},
		{" csharp ", CSharp},
		{"C#", CSharp},
		{"c++", Cpp},
		{"vb", VBNet},
		{"pascal", Delphi},
		{"golang", Go},
		{"ts", TypeScript},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := Parse("cobol")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownLanguage))
}

func TestAllLanguagesHavePolicies(t *testing.T) {
	require.Len(t, All(), 10)

	extensions := map[Language]string{
		Java: ".java", CSharp: ".cs", Cpp: ".cpp", PHP: ".php", Delphi: ".pas",
		VBNet: ".vb", JavaScript: ".js", TypeScript: ".ts", Ruby: ".rb", Go: ".go",
	}
	for l, ext := range extensions {
		p, err := PolicyFor(l)
		require.NoError(t, err, l)
		assert.Equal(t, ext, p.Extension, l)
	}

	_, err := PolicyFor("cobol")
	assert.Error(t, err)
}

func TestSyntaxCoversEveryPair(t *testing.T) {
	unsupportedPairs := map[Language][]Token{
		Delphi: {ForClose},
		VBNet:  {ForClose, Break},
		Ruby:   {ForClose},
		Go:     {Self},
	}

	for _, l := range All() {
		for _, tok := range Tokens() {
			got, err := Syntax(l, tok)
			if containsToken(unsupportedPairs[l], tok) {
				require.Error(t, err, "%s/%s", l, tok)
				assert.True(t, errors.Is(err, errors.ErrUnsupportedToken))
				continue
			}
			require.NoError(t, err, "%s/%s", l, tok)
			switch tok {
			case Terminator, VarSigil:
				// may legitimately be empty
			default:
				assert.NotEmpty(t, got, "%s/%s", l, tok)
			}
		}
	}
}

func TestSyntaxTokens(t *testing.T) {
	assert.Equal(t, "'", MustSyntax(VBNet, LineComment))
	assert.Equal(t, "#", MustSyntax(Ruby, LineComment))
	assert.Equal(t, ".", MustSyntax(PHP, ConcatOperator))
	assert.Equal(t, "&", MustSyntax(VBNet, ConcatOperator))
	assert.Equal(t, "$", MustSyntax(PHP, VarSigil))
	assert.Equal(t, "", MustSyntax(Ruby, Terminator))
	assert.Equal(t, ";", MustSyntax(Java, Terminator))

	_, err := Syntax("cobol", LineComment)
	assert.True(t, errors.Is(err, errors.ErrUnknownLanguage))
}

func TestForIsUnsupportedWithoutCStyleLoops(t *testing.T) {
	for _, l := range []Language{Ruby, VBNet, Delphi} {
		_, err := For(l, "i = 0", "i < n", "i++")
		require.Error(t, err, l)
		assert.True(t, errors.Is(err, errors.ErrUnsupportedToken))
	}

	got, err := For(Java, "int i = 0", "i < n", "i++")
	require.NoError(t, err)
	assert.Equal(t, "for (int i = 0; i < n; i++) {", got)

	got, err = For(Go, "i := 0", "i < n", "i++")
	require.NoError(t, err)
	assert.Equal(t, "for i := 0; i < n; i++ {", got)
}

func TestExpressions(t *testing.T) {
	got, _ := If(Delphi, "x > 0")
	assert.Equal(t, "if x > 0 then begin", got)

	got, _ = While(Go, "ok")
	assert.Equal(t, "for ok {", got)

	got, _ = Each(CSharp, "string", "s", "names")
	assert.Equal(t, "foreach (string s in names) {", got)

	got, _ = Each(Ruby, "", "s", "names")
	assert.Equal(t, "names.each do |s|", got)

	got, _ = DeclareLocal(TypeScript, "number", "total", "0")
	assert.Equal(t, "let total: number = 0;", got)

	got, _ = DeclareLocal(PHP, "", "total", "")
	assert.Equal(t, "$total = null;", got)

	got, _ = Return(Delphi, "Result")
	assert.Equal(t, "Exit(Result);", got)

	got, _ = Return(VBNet, "")
	assert.Equal(t, "Return", got)

	got, _ = StringLiteral(Java, `say "hi"`)
	assert.Equal(t, `"say \"hi\""`, got)

	got, _ = StringLiteral(Delphi, "it's")
	assert.Equal(t, "'it''s'", got)

	got, _ = Concat(PHP, "$a", "'-'", "$b")
	assert.Equal(t, "$a . '-' . $b", got)

	lines, err := Guard(Java, "name")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"if (name == null) {",
		`throw new IllegalArgumentException("name must not be null");`,
		"}",
	}, lines)

	lines, err = Guard(Ruby, "name")
	require.NoError(t, err)
	assert.Equal(t, []string{"if name.nil?", "raise ArgumentError, 'name must not be null'", "end"}, lines)
}

func TestClassify(t *testing.T) {
	type result struct{ opens, closes bool }
	tests := []struct {
		lang     Language
		line     string
		expected result
	}{
		{Java, "public class Circle {", result{true, false}},
		{Java, "}", result{false, true}},
		{Java, "} else {", result{true, true}},
		{Java, "// {", result{false, false}},
		{Java, "return x;", result{false, false}},
		{Cpp, "public:", result{true, true}},
		{Go, "import (", result{true, false}},
		{Go, ")", result{false, true}},
		{Ruby, "def area", result{true, false}},
		{Ruby, "end", result{false, true}},
		{Ruby, "endpoint = 1", result{false, false}},
		{Ruby, "def area; end", result{false, false}},
		{Ruby, "private def helper", result{true, false}},
		{Ruby, "names.each do |n|", result{true, false}},
		{Ruby, "else", result{true, true}},
		{VBNet, "Public Class Circle", result{true, false}},
		{VBNet, "Public Sub New(radius As Double)", result{true, false}},
		{VBNet, "Function Area() As Double", result{false, false}},
		{VBNet, "Public MustOverride Function Area() As Double", result{false, false}},
		{VBNet, "If x Then", result{true, false}},
		{VBNet, "End If", result{false, true}},
		{VBNet, "Exit Sub", result{false, false}},
		{Delphi, "unit Circle;", result{true, false}},
		{Delphi, "TCircle = class(TBase)", result{true, false}},
		{Delphi, "TCircle = class;", result{false, false}},
		{Delphi, "private", result{true, true}},
		{Delphi, "end else begin", result{true, true}},
		{Delphi, "end.", result{false, true}},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang)+"/"+tt.line, func(t *testing.T) {
			opens, closes := MustPolicy(tt.lang).Classify(tt.line)
			assert.Equal(t, tt.expected, result{opens, closes})
		})
	}
}

func TestPrimitives(t *testing.T) {
	assert.True(t, MustPolicy(Java).IsPrimitive("int"))
	assert.False(t, MustPolicy(Java).IsPrimitive("java.util.Date"))
	assert.True(t, MustPolicy(Go).IsPrimitive("error"))
	assert.True(t, MustPolicy(VBNet).IsPrimitive("Integer"))
}

func containsToken(tokens []Token, t Token) bool {
	for _, tok := range tokens {
		if tok == t {
			return true
		}
	}
	return false
}
