package models

import (
	"fmt"

	"github.com/toyz/polygen/internal/errors"
)

// Validate checks every required field of the tree and returns all faults
// at once as an errors.List, or nil.
func Validate(f *SourceFile) error {
	if f == nil {
		return errors.NewModelError("file", "source file")
	}

	var errs errors.List
	add := func(err errors.CodegenError) { errs = append(errs, err) }

	file := "file " + f.FileName()
	if f.FileName() == "" {
		add(errors.NewModelError("file", "name").
			WithSuggestion("declare at least one class, interface or enum, or set the file name"))
		file = "file <unnamed>"
	}

	for i := range f.Enums {
		validateEnum(add, file, &f.Enums[i], i)
	}
	for i := range f.Interfaces {
		iface := &f.Interfaces[i]
		path := construct(file, "interface", iface.Name, i)
		if iface.Name == "" {
			add(errors.NewModelError(path, "name"))
		}
		validateTypes(add, path, "extends", iface.Extends)
		for j := range iface.Fields {
			validateField(add, path, &iface.Fields[j], j)
		}
		for j := range iface.Methods {
			validateMethod(add, path, &iface.Methods[j], j)
		}
	}
	for i := range f.Classes {
		class := &f.Classes[i]
		path := construct(file, "class", class.Name, i)
		if class.Name == "" {
			add(errors.NewModelError(path, "name"))
		}
		validateTypes(add, path, "extends", class.Extends)
		validateTypes(add, path, "implements", class.Implements)
		for j := range class.Enums {
			validateEnum(add, path, &class.Enums[j], j)
		}
		for j := range class.Fields {
			validateField(add, path, &class.Fields[j], j)
		}
		for j := range class.Methods {
			validateMethod(add, path, &class.Methods[j], j)
		}
	}

	return errs.Err()
}

func validateEnum(add func(errors.CodegenError), parent string, e *Enum, index int) {
	path := construct(parent, "enum", e.Name, index)
	if e.Name == "" {
		add(errors.NewModelError(path, "name"))
	}
	for i, v := range e.Values {
		if v.Name == "" {
			add(errors.NewModelError(fmt.Sprintf("%s > value #%d", path, i+1), "name"))
		}
	}
}

func validateField(add func(errors.CodegenError), parent string, field *Field, index int) {
	path := construct(parent, "field", field.Name, index)
	if field.Name == "" {
		add(errors.NewModelError(path, "name"))
	}
	if field.Type.IsZero() {
		add(errors.NewModelError(path, "type"))
	}
}

func validateMethod(add func(errors.CodegenError), parent string, m *Method, index int) {
	path := construct(parent, "method", m.Name, index)
	if m.Name == "" && !m.StaticInitializer && !m.Constructor {
		add(errors.NewModelError(path, "name").
			WithSuggestion("only constructors and static initializers may omit the name"))
	}
	if m.Constructor && m.Return != nil {
		add(errors.NewModelErrorf(path, "return", "a constructor cannot declare a return type"))
	}
	if m.StaticInitializer && len(m.Parameters) > 0 {
		add(errors.NewModelErrorf(path, "parameters", "a static initializer cannot take parameters"))
	}
	if m.Return != nil && m.Return.Type.IsZero() {
		add(errors.NewModelError(path+" > return", "type"))
	}
	for i, p := range m.Parameters {
		ppath := construct(path, "parameter", p.Name, i)
		if p.Name == "" {
			add(errors.NewModelError(ppath, "name"))
		}
		if p.Type.IsZero() {
			add(errors.NewModelError(ppath, "type"))
		}
	}
	for i, l := range m.Locals {
		lpath := construct(path, "local", l.Name, i)
		if l.Name == "" {
			add(errors.NewModelError(lpath, "name"))
		}
		if l.Type.IsZero() {
			add(errors.NewModelError(lpath, "type"))
		}
	}
	for i, t := range m.Throws {
		if t.Type.IsZero() {
			add(errors.NewModelError(fmt.Sprintf("%s > throws #%d", path, i+1), "type"))
		}
	}
}

func validateTypes(add func(errors.CodegenError), parent, list string, types []Type) {
	for i, t := range types {
		if t.IsZero() {
			add(errors.NewModelError(fmt.Sprintf("%s > %s #%d", parent, list, i+1), "name"))
		}
	}
}

func construct(parent, kind, name string, index int) string {
	if name == "" {
		return fmt.Sprintf("%s > %s #%d", parent, kind, index+1)
	}
	return fmt.Sprintf("%s > %s %s", parent, kind, name)
}
