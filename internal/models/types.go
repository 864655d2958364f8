package models

import (
	"strings"
)

// Access is a visibility modifier. The empty value means the target's default.
type Access string

const (
	AccessDefault   Access = ""
	AccessPublic    Access = "public"
	AccessProtected Access = "protected"
	AccessPrivate   Access = "private"
)

// Type is a reference to a named type, possibly namespaced, generic or an array.
type Type struct {
	Name           string `json:"name"`
	Generics       string `json:"generics,omitempty"` // opaque text between the angle brackets
	Array          bool   `json:"array,omitempty"`
	ArrayDimension int    `json:"array_dimension,omitempty"` // only meaningful when Array is set
}

// NewType returns a plain, non-array type reference.
func NewType(name string) Type {
	return Type{Name: name}
}

// ArrayOf returns an array type with the given number of dimensions.
func ArrayOf(name string, dims int) Type {
	if dims < 1 {
		dims = 1
	}
	return Type{Name: name, Array: true, ArrayDimension: dims}
}

// Dims returns the number of array dimensions, zero for a non-array type.
func (t Type) Dims() int {
	if !t.Array {
		return 0
	}
	if t.ArrayDimension < 1 {
		return 1
	}
	return t.ArrayDimension
}

// IsZero reports whether the type reference is unset.
func (t Type) IsZero() bool {
	return t.Name == ""
}

// SimpleName returns the last dotted segment of the name.
func (t Type) SimpleName() string {
	if i := strings.LastIndex(t.Name, "."); i >= 0 {
		return t.Name[i+1:]
	}
	return t.Name
}

// Qualifier returns everything before the last dotted segment, or "" for unqualified names.
func (t Type) Qualifier() string {
	if i := strings.LastIndex(t.Name, "."); i >= 0 {
		return t.Name[:i]
	}
	return ""
}

// String renders the type in a neutral notation: Name<Generics>[][]
func (t Type) String() string {
	var b strings.Builder
	b.WriteString(t.Name)
	if t.Generics != "" {
		b.WriteString("<")
		b.WriteString(t.Generics)
		b.WriteString(">")
	}
	for i := 0; i < t.Dims(); i++ {
		b.WriteString("[]")
	}
	return b.String()
}

// Parameter is a method parameter.
type Parameter struct {
	Type               Type   `json:"type"`
	Name               string `json:"name"`
	Description        string `json:"description,omitempty"`
	Final              bool   `json:"final,omitempty"`
	NotNull            bool   `json:"notnull,omitempty"` // emits a guard at the top of the body
	ArbitraryNumParams bool   `json:"varargs,omitempty"`
}

// LocalVariable is declared at the top of a method body, before the body lines.
type LocalVariable struct {
	Type        Type   `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Value       string `json:"value,omitempty"`
}

// Exception is an entry of a method's throw list.
type Exception struct {
	Type        Type   `json:"type"`
	Description string `json:"description,omitempty"`
}

// Return describes a method result.
type Return struct {
	Type        Type   `json:"type"`
	Description string `json:"description,omitempty"`
}

// Field is a class or interface member variable.
type Field struct {
	Name        string   `json:"name"`
	Type        Type     `json:"type"`
	Access      Access   `json:"access,omitempty"`
	Static      bool     `json:"static,omitempty"`
	Final       bool     `json:"final,omitempty"`
	Default     string   `json:"default,omitempty"` // literal text, emitted verbatim
	Annotations []string `json:"annotations,omitempty"`
	Doc         *Doc     `json:"doc,omitempty"`
}

// Method is a member function. Constructors carry no Return.
type Method struct {
	Name              string          `json:"name"`
	Access            Access          `json:"access,omitempty"`
	Abstract          bool            `json:"abstract,omitempty"`
	Static            bool            `json:"static,omitempty"`
	Override          bool            `json:"override,omitempty"`
	Final             bool            `json:"final,omitempty"`
	Constructor       bool            `json:"constructor,omitempty"`
	StaticInitializer bool            `json:"static_initializer,omitempty"`
	Parameters        []Parameter     `json:"parameters,omitempty"`
	Locals            []LocalVariable `json:"locals,omitempty"`
	Return            *Return         `json:"return,omitempty"`
	Throws            []Exception     `json:"throws,omitempty"`
	Annotations       []string        `json:"annotations,omitempty"`
	Body              []string        `json:"body,omitempty"`
	SuperInvocation   string          `json:"super,omitempty"` // explicit call to the superclass constructor
	Doc               *Doc            `json:"doc,omitempty"`
}

// HasBody reports whether the method renders a body in the given context.
// Interface methods and abstract methods never do.
func (m *Method) HasBody(inInterface bool) bool {
	if inInterface || m.Abstract {
		return false
	}
	return true
}

// EnumValue is one constant of an Enum.
type EnumValue struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
	Doc   *Doc   `json:"doc,omitempty"`
}

// Enum is an enumeration type.
type Enum struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Access      Access      `json:"access,omitempty"`
	Values      []EnumValue `json:"values"`
	Doc         *Doc        `json:"doc,omitempty"`
}

// Interface is an abstract type declaring methods and constants.
type Interface struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Generics    string   `json:"generics,omitempty"`
	Access      Access   `json:"access,omitempty"`
	Extends     []Type   `json:"extends,omitempty"` // more than one only outside java
	Fields      []Field  `json:"fields,omitempty"`
	Methods     []Method `json:"methods,omitempty"`
	Doc         *Doc     `json:"doc,omitempty"`
}

// Class is a concrete or abstract class.
type Class struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Generics    string   `json:"generics,omitempty"`
	Access      Access   `json:"access,omitempty"`
	Abstract    bool     `json:"abstract,omitempty"`
	Final       bool     `json:"final,omitempty"`
	Extends     []Type   `json:"extends,omitempty"`
	Implements  []Type   `json:"implements,omitempty"`
	Annotations []string `json:"annotations,omitempty"`
	Enums       []Enum   `json:"enums,omitempty"`
	Fields      []Field  `json:"fields,omitempty"`
	Methods     []Method `json:"methods,omitempty"`
	Doc         *Doc     `json:"doc,omitempty"`
}

// Super returns the extended type, if any.
func (c *Class) Super() (Type, bool) {
	if len(c.Extends) == 0 {
		return Type{}, false
	}
	return c.Extends[0], true
}

// SourceFile is one compilation unit and the unit of transformation.
type SourceFile struct {
	Name        string      `json:"name,omitempty"` // derived from the first type when empty
	Package     string      `json:"package,omitempty"`
	Encoding    string      `json:"encoding,omitempty"`
	Imports     []string    `json:"imports,omitempty"`
	Enums       []Enum      `json:"enums,omitempty"`
	Interfaces  []Interface `json:"interfaces,omitempty"`
	Classes     []Class     `json:"classes,omitempty"`
	Doc         *Doc        `json:"doc,omitempty"`
	AutoImports bool        `json:"auto_imports"`

	// Origin is the model document the file was loaded from, if any.
	Origin string `json:"-"`
}

// FileName returns the explicit name or the name of the first contained class,
// interface or enum, in that order.
func (f *SourceFile) FileName() string {
	if f.Name != "" {
		return f.Name
	}
	if len(f.Classes) > 0 {
		return f.Classes[0].Name
	}
	if len(f.Interfaces) > 0 {
		return f.Interfaces[0].Name
	}
	if len(f.Enums) > 0 {
		return f.Enums[0].Name
	}
	return ""
}

// IsEmpty reports whether the file declares no types.
func (f *SourceFile) IsEmpty() bool {
	return len(f.Classes) == 0 && len(f.Interfaces) == 0 && len(f.Enums) == 0
}
