package models

// ClassBuilder provides a fluent interface for building classes
type ClassBuilder struct {
	class Class
}

// NewClass creates a new class builder
func NewClass(name string) *ClassBuilder {
	return &ClassBuilder{class: Class{Name: name, Access: AccessPublic}}
}

// Access sets the class visibility
func (b *ClassBuilder) Access(access Access) *ClassBuilder {
	b.class.Access = access
	return b
}

// Abstract marks the class abstract
func (b *ClassBuilder) Abstract() *ClassBuilder {
	b.class.Abstract = true
	return b
}

// Final marks the class final / sealed
func (b *ClassBuilder) Final() *ClassBuilder {
	b.class.Final = true
	return b
}

// Generics sets the type parameter text
func (b *ClassBuilder) Generics(generics string) *ClassBuilder {
	b.class.Generics = generics
	return b
}

// Describe sets the one-line description
func (b *ClassBuilder) Describe(description string) *ClassBuilder {
	b.class.Description = description
	return b
}

// Extends adds supertypes
func (b *ClassBuilder) Extends(types ...Type) *ClassBuilder {
	b.class.Extends = append(b.class.Extends, types...)
	return b
}

// Implements adds implemented interfaces
func (b *ClassBuilder) Implements(types ...Type) *ClassBuilder {
	b.class.Implements = append(b.class.Implements, types...)
	return b
}

// Annotate adds annotation text, emitted verbatim above the declaration
func (b *ClassBuilder) Annotate(annotations ...string) *ClassBuilder {
	b.class.Annotations = append(b.class.Annotations, annotations...)
	return b
}

// Enum adds a nested enum
func (b *ClassBuilder) Enum(enum Enum) *ClassBuilder {
	b.class.Enums = append(b.class.Enums, enum)
	return b
}

// Field adds a field
func (b *ClassBuilder) Field(fields ...Field) *ClassBuilder {
	b.class.Fields = append(b.class.Fields, fields...)
	return b
}

// Method adds a method
func (b *ClassBuilder) Method(methods ...Method) *ClassBuilder {
	b.class.Methods = append(b.class.Methods, methods...)
	return b
}

// Doc sets the documentation block
func (b *ClassBuilder) Doc(doc *Doc) *ClassBuilder {
	b.class.Doc = doc
	return b
}

// Build returns the class
func (b *ClassBuilder) Build() Class {
	return b.class
}

// InterfaceBuilder provides a fluent interface for building interfaces
type InterfaceBuilder struct {
	iface Interface
}

// NewInterface creates a new interface builder
func NewInterface(name string) *InterfaceBuilder {
	return &InterfaceBuilder{iface: Interface{Name: name, Access: AccessPublic}}
}

// Extends adds super interfaces
func (b *InterfaceBuilder) Extends(types ...Type) *InterfaceBuilder {
	b.iface.Extends = append(b.iface.Extends, types...)
	return b
}

// Generics sets the type parameter text
func (b *InterfaceBuilder) Generics(generics string) *InterfaceBuilder {
	b.iface.Generics = generics
	return b
}

// Field adds a constant
func (b *InterfaceBuilder) Field(fields ...Field) *InterfaceBuilder {
	b.iface.Fields = append(b.iface.Fields, fields...)
	return b
}

// Method adds a method declaration
func (b *InterfaceBuilder) Method(methods ...Method) *InterfaceBuilder {
	b.iface.Methods = append(b.iface.Methods, methods...)
	return b
}

// Doc sets the documentation block
func (b *InterfaceBuilder) Doc(doc *Doc) *InterfaceBuilder {
	b.iface.Doc = doc
	return b
}

// Build returns the interface
func (b *InterfaceBuilder) Build() Interface {
	return b.iface
}

// EnumBuilder provides a fluent interface for building enums
type EnumBuilder struct {
	enum Enum
}

// NewEnum creates a new enum builder
func NewEnum(name string) *EnumBuilder {
	return &EnumBuilder{enum: Enum{Name: name, Access: AccessPublic}}
}

// Value adds a constant; value may be empty
func (b *EnumBuilder) Value(name, value string) *EnumBuilder {
	b.enum.Values = append(b.enum.Values, EnumValue{Name: name, Value: value})
	return b
}

// Doc sets the documentation block
func (b *EnumBuilder) Doc(doc *Doc) *EnumBuilder {
	b.enum.Doc = doc
	return b
}

// Build returns the enum
func (b *EnumBuilder) Build() Enum {
	return b.enum
}

// MethodBuilder provides a fluent interface for building methods
type MethodBuilder struct {
	method Method
}

// NewMethod creates a new public method builder
func NewMethod(name string) *MethodBuilder {
	return &MethodBuilder{method: Method{Name: name, Access: AccessPublic}}
}

// NewConstructor creates a constructor builder; the name is the owning class
func NewConstructor(className string) *MethodBuilder {
	return &MethodBuilder{method: Method{Name: className, Access: AccessPublic, Constructor: true}}
}

// Access sets the method visibility
func (b *MethodBuilder) Access(access Access) *MethodBuilder {
	b.method.Access = access
	return b
}

// Abstract marks the method abstract
func (b *MethodBuilder) Abstract() *MethodBuilder {
	b.method.Abstract = true
	return b
}

// Static marks the method static
func (b *MethodBuilder) Static() *MethodBuilder {
	b.method.Static = true
	return b
}

// Override marks the method as overriding a supertype method
func (b *MethodBuilder) Override() *MethodBuilder {
	b.method.Override = true
	return b
}

// Final marks the method final
func (b *MethodBuilder) Final() *MethodBuilder {
	b.method.Final = true
	return b
}

// Param adds parameters
func (b *MethodBuilder) Param(params ...Parameter) *MethodBuilder {
	b.method.Parameters = append(b.method.Parameters, params...)
	return b
}

// Local adds a local variable declaration
func (b *MethodBuilder) Local(name string, typ Type, value string) *MethodBuilder {
	b.method.Locals = append(b.method.Locals, LocalVariable{Name: name, Type: typ, Value: value})
	return b
}

// Returns sets the result type
func (b *MethodBuilder) Returns(typ Type, description string) *MethodBuilder {
	b.method.Return = &Return{Type: typ, Description: description}
	return b
}

// Throws adds an exception to the throw list
func (b *MethodBuilder) Throws(typ Type, description string) *MethodBuilder {
	b.method.Throws = append(b.method.Throws, Exception{Type: typ, Description: description})
	return b
}

// Annotate adds annotation text
func (b *MethodBuilder) Annotate(annotations ...string) *MethodBuilder {
	b.method.Annotations = append(b.method.Annotations, annotations...)
	return b
}

// Body appends pre-rendered body lines
func (b *MethodBuilder) Body(lines ...string) *MethodBuilder {
	b.method.Body = append(b.method.Body, lines...)
	return b
}

// Super sets the explicit superclass constructor invocation
func (b *MethodBuilder) Super(invocation string) *MethodBuilder {
	b.method.SuperInvocation = invocation
	return b
}

// Doc sets the documentation block
func (b *MethodBuilder) Doc(doc *Doc) *MethodBuilder {
	b.method.Doc = doc
	return b
}

// Build returns the method
func (b *MethodBuilder) Build() Method {
	return b.method
}

// FieldBuilder provides a fluent interface for building fields
type FieldBuilder struct {
	field Field
}

// NewField creates a new private field builder
func NewField(name string, typ Type) *FieldBuilder {
	return &FieldBuilder{field: Field{Name: name, Type: typ, Access: AccessPrivate}}
}

// Access sets the field visibility
func (b *FieldBuilder) Access(access Access) *FieldBuilder {
	b.field.Access = access
	return b
}

// Static marks the field static
func (b *FieldBuilder) Static() *FieldBuilder {
	b.field.Static = true
	return b
}

// Final marks the field final / read-only
func (b *FieldBuilder) Final() *FieldBuilder {
	b.field.Final = true
	return b
}

// Default sets the initializer literal
func (b *FieldBuilder) Default(value string) *FieldBuilder {
	b.field.Default = value
	return b
}

// Annotate adds annotation text
func (b *FieldBuilder) Annotate(annotations ...string) *FieldBuilder {
	b.field.Annotations = append(b.field.Annotations, annotations...)
	return b
}

// Doc sets the documentation block
func (b *FieldBuilder) Doc(doc *Doc) *FieldBuilder {
	b.field.Doc = doc
	return b
}

// Build returns the field
func (b *FieldBuilder) Build() Field {
	return b.field
}

// ParamBuilder provides a fluent interface for building parameters
type ParamBuilder struct {
	param Parameter
}

// NewParam creates a new parameter builder
func NewParam(name string, typ Type) *ParamBuilder {
	return &ParamBuilder{param: Parameter{Name: name, Type: typ}}
}

// Final marks the parameter final
func (b *ParamBuilder) Final() *ParamBuilder {
	b.param.Final = true
	return b
}

// NotNull requests a null guard for the parameter
func (b *ParamBuilder) NotNull() *ParamBuilder {
	b.param.NotNull = true
	return b
}

// Varargs marks the parameter as taking an arbitrary number of values
func (b *ParamBuilder) Varargs() *ParamBuilder {
	b.param.ArbitraryNumParams = true
	return b
}

// Describe sets the documentation text
func (b *ParamBuilder) Describe(description string) *ParamBuilder {
	b.param.Description = description
	return b
}

// Build returns the parameter
func (b *ParamBuilder) Build() Parameter {
	return b.param
}

// SourceFileBuilder provides a fluent interface for building source files
type SourceFileBuilder struct {
	file SourceFile
}

// NewSourceFile creates a builder for a file in the given package
func NewSourceFile(pkg string) *SourceFileBuilder {
	return &SourceFileBuilder{file: SourceFile{Package: pkg, AutoImports: true}}
}

// Name overrides the derived file name
func (b *SourceFileBuilder) Name(name string) *SourceFileBuilder {
	b.file.Name = name
	return b
}

// Encoding sets the output encoding
func (b *SourceFileBuilder) Encoding(encoding string) *SourceFileBuilder {
	b.file.Encoding = encoding
	return b
}

// Import adds explicit import entries
func (b *SourceFileBuilder) Import(entries ...string) *SourceFileBuilder {
	b.file.Imports = append(b.file.Imports, entries...)
	return b
}

// AutoImports toggles collecting imports from referenced types
func (b *SourceFileBuilder) AutoImports(enabled bool) *SourceFileBuilder {
	b.file.AutoImports = enabled
	return b
}

// Class adds classes
func (b *SourceFileBuilder) Class(classes ...Class) *SourceFileBuilder {
	b.file.Classes = append(b.file.Classes, classes...)
	return b
}

// Interface adds interfaces
func (b *SourceFileBuilder) Interface(ifaces ...Interface) *SourceFileBuilder {
	b.file.Interfaces = append(b.file.Interfaces, ifaces...)
	return b
}

// Enum adds enums
func (b *SourceFileBuilder) Enum(enums ...Enum) *SourceFileBuilder {
	b.file.Enums = append(b.file.Enums, enums...)
	return b
}

// Doc sets the file-level documentation
func (b *SourceFileBuilder) Doc(doc *Doc) *SourceFileBuilder {
	b.file.Doc = doc
	return b
}

// Build returns the source file
func (b *SourceFileBuilder) Build() *SourceFile {
	file := b.file
	return &file
}
