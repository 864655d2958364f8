package errors

import (
	"fmt"
	"strings"
)

// List collects independent failures, such as every missing field of a
// model tree, so they can be reported together.
type List []CodegenError

// Err returns the list as an error, or nil when it is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d errors:", len(l))
	for i, err := range l {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, err.Error())
	}
	return b.String()
}

// Unwrap exposes every entry to Is and As.
func (l List) Unwrap() []error {
	errs := make([]error, len(l))
	for i, err := range l {
		errs[i] = err
	}
	return errs
}

// ErrorCode is the code of the first entry.
func (l List) ErrorCode() ErrorCode {
	if len(l) == 0 {
		return UnknownErrorCode
	}
	return l[0].ErrorCode()
}

func (l List) Location() SourceLocation {
	if len(l) == 0 {
		return SourceLocation{}
	}
	return l[0].Location()
}

// Context merges the details of every entry, prefixing each key with the
// entry's position.
func (l List) Context() map[string]any {
	merged := make(map[string]any)
	for i, err := range l {
		for k, v := range err.Context() {
			merged[fmt.Sprintf("%d.%s", i+1, k)] = v
		}
	}
	return merged
}

func (l List) Suggestions() []string {
	var hints []string
	for _, err := range l {
		hints = append(hints, err.Suggestions()...)
	}
	return hints
}
