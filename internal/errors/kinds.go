package errors

import "fmt"

// SyntaxError reports text that could not be parsed: a type reference or a
// model document.
type SyntaxError struct {
	*BaseError
	Input    string
	Position int
}

func NewSyntaxError(message string) *SyntaxError {
	return &SyntaxError{BaseError: New(SyntaxErrorCode, message)}
}

// NewSyntaxErrorAt points the error at an offset of input.
func NewSyntaxErrorAt(message, input string, position int) *SyntaxError {
	if input != "" {
		message = fmt.Sprintf("%s (in %q at offset %d)", message, input, position)
	}
	return &SyntaxError{BaseError: New(SyntaxErrorCode, message), Input: input, Position: position}
}

// WrapParseError reports that item could not be decoded.
func WrapParseError(item string, cause error) *SyntaxError {
	return &SyntaxError{BaseError: Wrap(SyntaxErrorCode, "failed to parse "+item, cause)}
}

func (e *SyntaxError) WithLocation(loc SourceLocation) *SyntaxError {
	e.BaseError.WithLocation(loc)
	return e
}

func (e *SyntaxError) WithCause(cause error) *SyntaxError {
	e.BaseError.WithCause(cause)
	return e
}

func (e *SyntaxError) WithSuggestion(suggestion string) *SyntaxError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}

// ModelError reports a model node that lacks a required field or combines
// fields that cannot go together. Construct is the node's path, for example
// "file Shapes > class Circle > method area".
type ModelError struct {
	*BaseError
	Construct string
	Field     string
}

// NewModelError reports that construct has no value for field.
func NewModelError(construct, field string) *ModelError {
	return newModelError(construct, field, fmt.Sprintf("missing required field '%s'", field))
}

// NewModelErrorf reports a fault of construct's field in its own words.
func NewModelErrorf(construct, field, format string, args ...any) *ModelError {
	return newModelError(construct, field, fmt.Sprintf(format, args...))
}

func newModelError(construct, field, detail string) *ModelError {
	base := New(ModelErrorCode, construct+": "+detail).
		WithContext("construct", construct).
		WithContext("field", field)
	return &ModelError{BaseError: base, Construct: construct, Field: field}
}

func (e *ModelError) WithSuggestion(suggestion string) *ModelError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}

func (e *ModelError) WithLocation(loc SourceLocation) *ModelError {
	e.BaseError.WithLocation(loc)
	return e
}

// GenerationError reports a failure while turning one source file into
// target text. Stage names the pipeline step: validate, header, expand or
// imports.
type GenerationError struct {
	*BaseError
	Language string
	File     string
	Stage    string
}

func NewGenerationError(message string) *GenerationError {
	return &GenerationError{BaseError: New(GenerationErrorCode, message)}
}

// WrapGenerateError reports that file could not be produced for language.
func WrapGenerateError(language, file string, cause error) *GenerationError {
	base := Wrap(GenerationErrorCode, "failed to generate "+file, cause).
		WithContext("language", language)
	return &GenerationError{BaseError: base, Language: language, File: file}
}

// WrapTemplateError reports a header or footer template that failed to
// parse or execute.
func WrapTemplateError(name, operation string, cause error) *GenerationError {
	base := Wrap(TemplateErrorCode, fmt.Sprintf("cannot %s template %s", operation, name), cause).
		WithContext("template", name)
	return &GenerationError{BaseError: base, File: name, Stage: operation}
}

func (e *GenerationError) WithLanguage(language string) *GenerationError {
	e.Language = language
	e.BaseError.WithContext("language", language)
	return e
}

func (e *GenerationError) WithStage(stage string) *GenerationError {
	e.Stage = stage
	e.BaseError.WithContext("stage", stage)
	return e
}

// UnsupportedTokenError reports a token the target language has no
// rendering for.
type UnsupportedTokenError struct {
	*BaseError
	Language string
	Token    string
}

func NewUnsupportedTokenError(language, token string) *UnsupportedTokenError {
	base := Newf(UnsupportedTokenErrorCode, "token %s is not supported by language %s", token, language).
		WithContext("language", language).
		WithContext("token", token)
	return &UnsupportedTokenError{BaseError: base, Language: language, Token: token}
}

// WrapFileSystemError reports a failed file operation on path.
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	return Wrap(FileSystemErrorCode, fmt.Sprintf("cannot %s %s", operation, path), cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapConfigurationError reports a configuration source that could not be
// read or did not validate.
func WrapConfigurationError(source, operation string, cause error) *BaseError {
	return Wrap(ConfigurationErrorCode, fmt.Sprintf("cannot %s %s configuration", operation, source), cause).
		WithContext("source", source)
}

// MissingAnchorError reports that the import anchor line vanished from a
// rendered buffer.
func MissingAnchorError(file string) *BaseError {
	return Newf(MissingAnchorErrorCode, "import anchor not found in %s", file).
		WithContext("file", file).
		WithSuggestion("header and footer text must not remove or rewrite the anchor line")
}

// UnknownLanguageError reports a language outside the supported set.
func UnknownLanguageError(name string, known []string) *BaseError {
	return Newf(UnknownLanguageErrorCode, "unknown language '%s'", name).
		WithContext("language", name).
		WithSuggestion(fmt.Sprintf("supported languages: %v", known))
}
