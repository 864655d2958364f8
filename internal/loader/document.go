package loader

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/models"
	"github.com/toyz/polygen/internal/typeref"
)

// document is the root of a model document. Either Files lists the source
// files, or the root itself describes a single file.
type document struct {
	Files   []fileSpec `yaml:"files"`
	fileSpec `yaml:",inline"`
}

type fileSpec struct {
	Name        string          `yaml:"name"`
	Package     string          `yaml:"package"`
	Encoding    string          `yaml:"encoding"`
	AutoImports *bool           `yaml:"autoImports"`
	Imports     []string        `yaml:"imports"`
	Doc         *docSpec        `yaml:"doc"`
	Enums       []enumSpec      `yaml:"enums"`
	Interfaces  []interfaceSpec `yaml:"interfaces"`
	Classes     []classSpec     `yaml:"classes"`
}

func (f *fileSpec) empty() bool {
	return f.Name == "" && f.Package == "" && len(f.Enums) == 0 &&
		len(f.Interfaces) == 0 && len(f.Classes) == 0
}

type docSpec struct {
	Title       string       `yaml:"title"`
	Description lines        `yaml:"description"`
	Deprecated  string       `yaml:"deprecated"`
	Tags        []models.Tag `yaml:"tags"`
}

type enumSpec struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Access      access      `yaml:"access"`
	Values      []enumValue `yaml:"values"`
	Doc         *docSpec    `yaml:"doc"`
}

type interfaceSpec struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Generics    string       `yaml:"generics"`
	Access      access       `yaml:"access"`
	Extends     []typeSpec   `yaml:"extends"`
	Fields      []fieldSpec  `yaml:"fields"`
	Methods     []methodSpec `yaml:"methods"`
	Doc         *docSpec     `yaml:"doc"`
}

type classSpec struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Generics    string       `yaml:"generics"`
	Access      access       `yaml:"access"`
	Abstract    bool         `yaml:"abstract"`
	Final       bool         `yaml:"final"`
	Extends     []typeSpec   `yaml:"extends"`
	Implements  []typeSpec   `yaml:"implements"`
	Annotations []string     `yaml:"annotations"`
	Enums       []enumSpec   `yaml:"enums"`
	Fields      []fieldSpec  `yaml:"fields"`
	Methods     []methodSpec `yaml:"methods"`
	Doc         *docSpec     `yaml:"doc"`
}

type fieldSpec struct {
	Name        string   `yaml:"name"`
	Type        typeSpec `yaml:"type"`
	Access      access   `yaml:"access"`
	Static      bool     `yaml:"static"`
	Final       bool     `yaml:"final"`
	Default     string   `yaml:"default"`
	Annotations []string `yaml:"annotations"`
	Doc         *docSpec `yaml:"doc"`
}

type methodSpec struct {
	Name              string       `yaml:"name"`
	Access            access       `yaml:"access"`
	Abstract          bool         `yaml:"abstract"`
	Static            bool         `yaml:"static"`
	Override          bool         `yaml:"override"`
	Final             bool         `yaml:"final"`
	Constructor       bool         `yaml:"constructor"`
	StaticInitializer bool         `yaml:"staticInitializer"`
	Params            []paramSpec  `yaml:"params"`
	Locals            []localSpec  `yaml:"locals"`
	Return            *typedSpec   `yaml:"return"`
	Throws            []typedSpec  `yaml:"throws"`
	Annotations       []string     `yaml:"annotations"`
	Body              lines        `yaml:"body"`
	Super             string       `yaml:"super"`
	Doc               *docSpec     `yaml:"doc"`
}

type paramSpec struct {
	Name        string   `yaml:"name"`
	Type        typeSpec `yaml:"type"`
	Description string   `yaml:"description"`
	Final       bool     `yaml:"final"`
	NotNull     bool     `yaml:"notnull"`
	Varargs     bool     `yaml:"varargs"`
}

type localSpec struct {
	Name        string   `yaml:"name"`
	Type        typeSpec `yaml:"type"`
	Description string   `yaml:"description"`
	Value       string   `yaml:"value"`
}

// typeSpec accepts a type reference string such as "java.util.List<String>[]"
// or a mapping with name, generics, array and dims.
type typeSpec struct {
	models.Type
}

func (t *typeSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := typeref.Parse(node.Value)
		if err != nil {
			return at(err, node)
		}
		t.Type = parsed
		return nil
	case yaml.MappingNode:
		var raw struct {
			Name     string `yaml:"name"`
			Generics string `yaml:"generics"`
			Array    bool   `yaml:"array"`
			Dims     int    `yaml:"dims"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		t.Type = models.Type{Name: raw.Name, Generics: raw.Generics, Array: raw.Array || raw.Dims > 0, ArrayDimension: raw.Dims}
		return nil
	}
	return at(errors.NewSyntaxError("type must be a string or a mapping"), node)
}

// typedSpec is a return value or thrown exception: a bare type, or a mapping
// with type and description.
type typedSpec struct {
	Type        typeSpec
	Description string
}

func (t *typedSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&t.Type)
	}
	var raw struct {
		Type        typeSpec `yaml:"type"`
		Description string   `yaml:"description"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	t.Type, t.Description = raw.Type, raw.Description
	return nil
}

// enumValue is a bare constant name or a mapping with name, value and doc.
type enumValue struct {
	Name  string
	Value string
	Doc   *docSpec
}

func (e *enumValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		e.Name = node.Value
		return nil
	}
	var raw struct {
		Name  string   `yaml:"name"`
		Value string   `yaml:"value"`
		Doc   *docSpec `yaml:"doc"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	e.Name, e.Value, e.Doc = raw.Name, raw.Value, raw.Doc
	return nil
}

// lines accepts a list of strings or one block scalar split at newlines.
type lines []string

func (l *lines) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		text := strings.TrimRight(node.Value, "\n")
		if text == "" {
			*l = nil
			return nil
		}
		*l = strings.Split(text, "\n")
		return nil
	}
	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*l = list
	return nil
}

type access models.Access

func (a *access) UnmarshalYAML(node *yaml.Node) error {
	value := models.Access(strings.ToLower(strings.TrimSpace(node.Value)))
	switch value {
	case models.AccessDefault, models.AccessPublic, models.AccessProtected, models.AccessPrivate:
		*a = access(value)
		return nil
	}
	return at(errors.NewSyntaxErrorAt("unknown access modifier", node.Value, 0).
		WithSuggestion("use public, protected or private, or leave it unset"), node)
}

// at attaches the node position to coded errors; the file is filled in later.
func at(err error, node *yaml.Node) error {
	loc := errors.SourceLocation{Line: node.Line, Column: node.Column}
	switch e := err.(type) {
	case *errors.SyntaxError:
		e.Loc = loc
	case *errors.BaseError:
		e.Loc = loc
	}
	return err
}
