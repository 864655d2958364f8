package errors

import (
	stderrors "errors"

	crdb "github.com/cockroachdb/errors"
)

// Sentinels matched with Is through any amount of wrapping.
var (
	ErrUnsupportedToken = crdb.New("unsupported token")
	ErrMissingAnchor    = crdb.New("missing import anchor")
	ErrMissingField     = crdb.New("missing required field")
	ErrUnknownLanguage  = crdb.New("unknown language")
)

var sentinelByCode = map[ErrorCode]error{
	UnsupportedTokenErrorCode: ErrUnsupportedToken,
	MissingAnchorErrorCode:    ErrMissingAnchor,
	ModelErrorCode:            ErrMissingField,
	UnknownLanguageErrorCode:  ErrUnknownLanguage,
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target) || crdb.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// WithHint attaches a user-facing hint to a plain error.
func WithHint(err error, hint string) error {
	return crdb.WithHint(err, hint)
}

// Hints collects every hint attached to err, both coded suggestions and cockroachdb hints.
func Hints(err error) []string {
	var hints []string
	var coded CodegenError
	if stderrors.As(err, &coded) {
		hints = append(hints, coded.Suggestions()...)
	}
	hints = append(hints, crdb.GetAllHints(err)...)
	return hints
}

// CodeOf returns the code of the first coded error in err's chain.
func CodeOf(err error) ErrorCode {
	var coded CodegenError
	if stderrors.As(err, &coded) {
		return coded.ErrorCode()
	}
	return UnknownErrorCode
}
