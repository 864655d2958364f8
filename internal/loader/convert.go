package loader

import (
	"github.com/toyz/polygen/internal/models"
)

func (f *fileSpec) toModel(origin string) *models.SourceFile {
	auto := true
	if f.AutoImports != nil {
		auto = *f.AutoImports
	}
	file := &models.SourceFile{
		Name:        f.Name,
		Package:     f.Package,
		Encoding:    f.Encoding,
		Imports:     f.Imports,
		Doc:         f.Doc.toModel(),
		AutoImports: auto,
		Origin:      origin,
	}
	for i := range f.Enums {
		file.Enums = append(file.Enums, f.Enums[i].toModel())
	}
	for i := range f.Interfaces {
		file.Interfaces = append(file.Interfaces, f.Interfaces[i].toModel())
	}
	for i := range f.Classes {
		file.Classes = append(file.Classes, f.Classes[i].toModel())
	}
	return file
}

func (d *docSpec) toModel() *models.Doc {
	if d == nil {
		return nil
	}
	return &models.Doc{
		Title:       d.Title,
		Description: d.Description,
		Deprecated:  d.Deprecated,
		Tags:        d.Tags,
	}
}

func (e *enumSpec) toModel() models.Enum {
	enum := models.Enum{
		Name:        e.Name,
		Description: e.Description,
		Access:      models.Access(e.Access),
		Doc:         e.Doc.toModel(),
	}
	for _, v := range e.Values {
		enum.Values = append(enum.Values, models.EnumValue{Name: v.Name, Value: v.Value, Doc: v.Doc.toModel()})
	}
	return enum
}

func (s *interfaceSpec) toModel() models.Interface {
	iface := models.Interface{
		Name:        s.Name,
		Description: s.Description,
		Generics:    s.Generics,
		Access:      models.Access(s.Access),
		Extends:     types(s.Extends),
		Doc:         s.Doc.toModel(),
	}
	for i := range s.Fields {
		iface.Fields = append(iface.Fields, s.Fields[i].toModel())
	}
	for i := range s.Methods {
		iface.Methods = append(iface.Methods, s.Methods[i].toModel())
	}
	return iface
}

func (s *classSpec) toModel() models.Class {
	class := models.Class{
		Name:        s.Name,
		Description: s.Description,
		Generics:    s.Generics,
		Access:      models.Access(s.Access),
		Abstract:    s.Abstract,
		Final:       s.Final,
		Extends:     types(s.Extends),
		Implements:  types(s.Implements),
		Annotations: s.Annotations,
		Doc:         s.Doc.toModel(),
	}
	for i := range s.Enums {
		class.Enums = append(class.Enums, s.Enums[i].toModel())
	}
	for i := range s.Fields {
		class.Fields = append(class.Fields, s.Fields[i].toModel())
	}
	for i := range s.Methods {
		class.Methods = append(class.Methods, s.Methods[i].toModel())
	}
	return class
}

func (s *fieldSpec) toModel() models.Field {
	return models.Field{
		Name:        s.Name,
		Type:        s.Type.Type,
		Access:      models.Access(s.Access),
		Static:      s.Static,
		Final:       s.Final,
		Default:     s.Default,
		Annotations: s.Annotations,
		Doc:         s.Doc.toModel(),
	}
}

func (s *methodSpec) toModel() models.Method {
	m := models.Method{
		Name:              s.Name,
		Access:            models.Access(s.Access),
		Abstract:          s.Abstract,
		Static:            s.Static,
		Override:          s.Override,
		Final:             s.Final,
		Constructor:       s.Constructor,
		StaticInitializer: s.StaticInitializer,
		Annotations:       s.Annotations,
		Body:              s.Body,
		SuperInvocation:   s.Super,
		Doc:               s.Doc.toModel(),
	}
	for _, p := range s.Params {
		m.Parameters = append(m.Parameters, models.Parameter{
			Type:               p.Type.Type,
			Name:               p.Name,
			Description:        p.Description,
			Final:              p.Final,
			NotNull:            p.NotNull,
			ArbitraryNumParams: p.Varargs,
		})
	}
	for _, l := range s.Locals {
		m.Locals = append(m.Locals, models.LocalVariable{Type: l.Type.Type, Name: l.Name, Description: l.Description, Value: l.Value})
	}
	if s.Return != nil {
		m.Return = &models.Return{Type: s.Return.Type.Type, Description: s.Return.Description}
	}
	for _, t := range s.Throws {
		m.Throws = append(m.Throws, models.Exception{Type: t.Type.Type, Description: t.Description})
	}
	return m
}

func types(specs []typeSpec) []models.Type {
	if len(specs) == 0 {
		return nil
	}
	out := make([]models.Type, len(specs))
	for i, s := range specs {
		out[i] = s.Type
	}
	return out
}
