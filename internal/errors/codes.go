package errors

// ErrorCode classifies a failure for reporting and exit handling.
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota
	SyntaxErrorCode
	ValidationErrorCode
	ModelErrorCode
	GenerationErrorCode
	TemplateErrorCode
	FileSystemErrorCode
	UnsupportedTokenErrorCode
	MissingAnchorErrorCode
	UnknownLanguageErrorCode
	ConfigurationErrorCode
)

var codeNames = [...]string{
	UnknownErrorCode:          "UnknownError",
	SyntaxErrorCode:           "SyntaxError",
	ValidationErrorCode:       "ValidationError",
	ModelErrorCode:            "ModelError",
	GenerationErrorCode:       "GenerationError",
	TemplateErrorCode:         "TemplateError",
	FileSystemErrorCode:       "FileSystemError",
	UnsupportedTokenErrorCode: "UnsupportedTokenError",
	MissingAnchorErrorCode:    "MissingAnchorError",
	UnknownLanguageErrorCode:  "UnknownLanguageError",
	ConfigurationErrorCode:    "ConfigurationError",
}

func (c ErrorCode) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return codeNames[UnknownErrorCode]
	}
	return codeNames[c]
}

// CodegenError is implemented by every coded polygen error. The diagnostic
// reporter reads the location, details and suggestions from it.
type CodegenError interface {
	error
	ErrorCode() ErrorCode
	Location() SourceLocation
	Context() map[string]any
	Suggestions() []string
}
