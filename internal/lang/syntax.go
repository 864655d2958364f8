package lang

import (
	"fmt"
	"strings"

	"github.com/toyz/polygen/internal/errors"
)

// Token is a language construct with a fixed literal rendering.
type Token int

const (
	LineComment Token = iota
	StringQuote
	ConcatOperator
	Terminator
	VarSigil
	IfClose
	ForClose
	WhileClose
	EachClose
	Else
	Break
	Null
	Self
)

var tokenNames = [...]string{
	"LineComment", "StringQuote", "ConcatOperator", "Terminator", "VarSigil",
	"IfClose", "ForClose", "WhileClose", "EachClose", "Else", "Break", "Null", "Self",
}

func (t Token) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("Token(%d)", int(t))
}

// Tokens lists every token.
func Tokens() []Token {
	tokens := make([]Token, len(tokenNames))
	for i := range tokens {
		tokens[i] = Token(i)
	}
	return tokens
}

// unsupported marks a pair with no rendering. An empty string is a valid
// rendering (for example a missing statement terminator).
const unsupported = "\x00"

var table = map[Language][]string{
	//           comment quote concat term sigil ifclose forclose whileclose eachclose else break null self
	Java:       {"//", `"`, "+", ";", "", "}", "}", "}", "}", "} else {", "break;", "null", "this"},
	CSharp:     {"//", `"`, "+", ";", "", "}", "}", "}", "}", "} else {", "break;", "null", "this"},
	Cpp:        {"//", `"`, "+", ";", "", "}", "}", "}", "}", "} else {", "break;", "nullptr", "this"},
	PHP:        {"//", "'", ".", ";", "$", "}", "}", "}", "}", "} else {", "break;", "null", "$this"},
	Delphi:     {"//", "'", "+", ";", "", "end;", unsupported, "end;", "end;", "end else begin", "Break;", "nil", "Self"},
	VBNet:      {"'", `"`, "&", "", "", "End If", unsupported, "End While", "Next", "Else", unsupported, "Nothing", "Me"},
	JavaScript: {"//", "'", "+", ";", "", "}", "}", "}", "}", "} else {", "break;", "null", "this"},
	TypeScript: {"//", `"`, "+", ";", "", "}", "}", "}", "}", "} else {", "break;", "null", "this"},
	Ruby:       {"#", "'", "+", "", "@", "end", unsupported, "end", "end", "else", "break", "nil", "self"},
	Go:         {"//", `"`, "+", "", "", "}", "}", "}", "}", "} else {", "break", "nil", unsupported},
}

// Syntax returns the literal rendering of token in language l.
// Pairs without a rendering fail with an error matching errors.ErrUnsupportedToken.
func Syntax(l Language, t Token) (string, error) {
	row, ok := table[l]
	if !ok {
		return "", errors.UnknownLanguageError(string(l), Names())
	}
	if int(t) < 0 || int(t) >= len(row) || row[t] == unsupported {
		return "", errors.NewUnsupportedTokenError(string(l), t.String())
	}
	return row[t], nil
}

// MustSyntax is like Syntax but panics; only for tokens every language supports.
func MustSyntax(l Language, t Token) string {
	s, err := Syntax(l, t)
	if err != nil {
		panic(err)
	}
	return s
}

func unsupportedExpr(l Language, construct string) error {
	return errors.NewUnsupportedTokenError(string(l), construct)
}

// If renders the opening line of a conditional block.
func If(l Language, cond string) (string, error) {
	switch l {
	case Java, CSharp, Cpp, PHP, JavaScript, TypeScript:
		return fmt.Sprintf("if (%s) {", cond), nil
	case Go:
		return fmt.Sprintf("if %s {", cond), nil
	case Delphi:
		return fmt.Sprintf("if %s then begin", cond), nil
	case VBNet:
		return fmt.Sprintf("If %s Then", cond), nil
	case Ruby:
		return fmt.Sprintf("if %s", cond), nil
	}
	return "", unsupportedExpr(l, "If")
}

// For renders the opening line of a three-clause loop.
func For(l Language, init, cond, post string) (string, error) {
	switch l {
	case Java, CSharp, Cpp, PHP, JavaScript, TypeScript:
		return fmt.Sprintf("for (%s; %s; %s) {", init, cond, post), nil
	case Go:
		return fmt.Sprintf("for %s; %s; %s {", init, cond, post), nil
	}
	return "", unsupportedExpr(l, "For")
}

// While renders the opening line of a conditional loop.
func While(l Language, cond string) (string, error) {
	switch l {
	case Java, CSharp, Cpp, PHP, JavaScript, TypeScript:
		return fmt.Sprintf("while (%s) {", cond), nil
	case Go:
		return fmt.Sprintf("for %s {", cond), nil
	case Delphi:
		return fmt.Sprintf("while %s do begin", cond), nil
	case VBNet:
		return fmt.Sprintf("While %s", cond), nil
	case Ruby:
		return fmt.Sprintf("while %s", cond), nil
	}
	return "", unsupportedExpr(l, "While")
}

// Each renders the opening line of a loop over a collection.
func Each(l Language, elemType, elem, collection string) (string, error) {
	switch l {
	case Java, Cpp:
		return fmt.Sprintf("for (%s %s : %s) {", elemType, elem, collection), nil
	case CSharp:
		return fmt.Sprintf("foreach (%s %s in %s) {", elemType, elem, collection), nil
	case PHP:
		return fmt.Sprintf("foreach ($%s as $%s) {", collection, elem), nil
	case Delphi:
		return fmt.Sprintf("for %s in %s do begin", elem, collection), nil
	case VBNet:
		return fmt.Sprintf("For Each %s As %s In %s", elem, elemType, collection), nil
	case JavaScript, TypeScript:
		return fmt.Sprintf("for (const %s of %s) {", elem, collection), nil
	case Ruby:
		return fmt.Sprintf("%s.each do |%s|", collection, elem), nil
	case Go:
		return fmt.Sprintf("for _, %s := range %s {", elem, collection), nil
	}
	return "", unsupportedExpr(l, "Each")
}

// DeclareLocal renders a local variable declaration. typ is already rendered
// for the target; value may be empty.
func DeclareLocal(l Language, typ, name, value string) (string, error) {
	switch l {
	case Java, CSharp, Cpp:
		if value == "" {
			return fmt.Sprintf("%s %s;", typ, name), nil
		}
		return fmt.Sprintf("%s %s = %s;", typ, name, value), nil
	case PHP:
		if value == "" {
			value = "null"
		}
		return fmt.Sprintf("$%s = %s;", name, value), nil
	case Delphi:
		if value == "" {
			return fmt.Sprintf("var %s: %s;", name, typ), nil
		}
		return fmt.Sprintf("var %s: %s := %s;", name, typ, value), nil
	case VBNet:
		if value == "" {
			return fmt.Sprintf("Dim %s As %s", name, typ), nil
		}
		return fmt.Sprintf("Dim %s As %s = %s", name, typ, value), nil
	case JavaScript:
		if value == "" {
			return fmt.Sprintf("let %s;", name), nil
		}
		return fmt.Sprintf("let %s = %s;", name, value), nil
	case TypeScript:
		if value == "" {
			return fmt.Sprintf("let %s: %s;", name, typ), nil
		}
		return fmt.Sprintf("let %s: %s = %s;", name, typ, value), nil
	case Ruby:
		if value == "" {
			value = "nil"
		}
		return fmt.Sprintf("%s = %s", name, value), nil
	case Go:
		if value == "" {
			return fmt.Sprintf("var %s %s", name, typ), nil
		}
		return fmt.Sprintf("var %s %s = %s", name, typ, value), nil
	}
	return "", unsupportedExpr(l, "DeclareLocal")
}

// Return renders a return statement; expr may be empty.
func Return(l Language, expr string) (string, error) {
	switch l {
	case Java, CSharp, Cpp, PHP, JavaScript, TypeScript:
		if expr == "" {
			return "return;", nil
		}
		return fmt.Sprintf("return %s;", expr), nil
	case Delphi:
		if expr == "" {
			return "Exit;", nil
		}
		return fmt.Sprintf("Exit(%s);", expr), nil
	case VBNet:
		return strings.TrimSpace("Return " + expr), nil
	case Ruby, Go:
		return strings.TrimSpace("return " + expr), nil
	}
	return "", unsupportedExpr(l, "Return")
}

// StringLiteral quotes s for the target, escaping embedded quotes.
func StringLiteral(l Language, s string) (string, error) {
	quote, err := Syntax(l, StringQuote)
	if err != nil {
		return "", err
	}
	var escaped string
	switch l {
	case Delphi, VBNet:
		escaped = strings.ReplaceAll(s, quote, quote+quote)
	default:
		escaped = strings.ReplaceAll(s, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, quote, `\`+quote)
	}
	return quote + escaped + quote, nil
}

// Concat joins expressions with the target's string concatenation operator.
func Concat(l Language, parts ...string) (string, error) {
	op, err := Syntax(l, ConcatOperator)
	if err != nil {
		return "", err
	}
	return strings.Join(parts, " "+op+" "), nil
}

// NullCheck renders a condition that is true when name holds no value.
func NullCheck(l Language, name string) (string, error) {
	switch l {
	case Java, CSharp, JavaScript, TypeScript:
		return name + " == null", nil
	case Cpp:
		return name + " == nullptr", nil
	case PHP:
		return "$" + name + " === null", nil
	case Delphi:
		return name + " = nil", nil
	case VBNet:
		return name + " Is Nothing", nil
	case Ruby:
		return name + ".nil?", nil
	case Go:
		return name + " == nil", nil
	}
	return "", unsupportedExpr(l, "NullCheck")
}

// Throw renders a statement raising an argument error with message.
func Throw(l Language, message string) (string, error) {
	lit, err := StringLiteral(l, message)
	if err != nil {
		return "", err
	}
	switch l {
	case Java:
		return fmt.Sprintf("throw new IllegalArgumentException(%s);", lit), nil
	case CSharp:
		return fmt.Sprintf("throw new System.ArgumentNullException(%s);", lit), nil
	case Cpp:
		return fmt.Sprintf("throw std::invalid_argument(%s);", lit), nil
	case PHP:
		return fmt.Sprintf(`throw new \InvalidArgumentException(%s);`, lit), nil
	case Delphi:
		return fmt.Sprintf("raise EArgumentNilException.Create(%s);", lit), nil
	case VBNet:
		return fmt.Sprintf("Throw New System.ArgumentNullException(%s)", lit), nil
	case JavaScript, TypeScript:
		return fmt.Sprintf("throw new TypeError(%s);", lit), nil
	case Ruby:
		return fmt.Sprintf("raise ArgumentError, %s", lit), nil
	case Go:
		return fmt.Sprintf("panic(%s)", lit), nil
	}
	return "", unsupportedExpr(l, "Throw")
}

// Guard renders the lines rejecting an unset parameter.
func Guard(l Language, name string) ([]string, error) {
	cond, err := NullCheck(l, name)
	if err != nil {
		return nil, err
	}
	open, err := If(l, cond)
	if err != nil {
		return nil, err
	}
	throw, err := Throw(l, name+" must not be null")
	if err != nil {
		return nil, err
	}
	closing, err := Syntax(l, IfClose)
	if err != nil {
		return nil, err
	}
	return []string{open, throw, closing}, nil
}
