package utils

import (
	"fmt"
	"strings"
)

// FieldError reports a setting whose value was rejected.
type FieldError struct {
	Field  string
	Value  any
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validator checks one value and returns a FieldError when it is rejected.
type Validator[T any] func(T) error

// NotEmpty rejects blank strings.
func NotEmpty(field string) Validator[string] {
	return Custom(field, "cannot be empty", func(v string) bool { return strings.TrimSpace(v) != "" })
}

// IsOneOf rejects values outside allowed.
func IsOneOf[T comparable](field string, allowed ...T) Validator[T] {
	return func(value T) error {
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return FieldError{Field: field, Value: value, Reason: fmt.Sprintf("%v is not one of %v", value, allowed)}
	}
}

// AtLeast rejects integers below min.
func AtLeast(field string, min int) Validator[int] {
	return func(value int) error {
		if value < min {
			return FieldError{Field: field, Value: value, Reason: fmt.Sprintf("must be at least %d", min)}
		}
		return nil
	}
}

// Custom rejects values for which ok returns false, giving reason.
func Custom[T any](field, reason string, ok func(T) bool) Validator[T] {
	return func(value T) error {
		if ok(value) {
			return nil
		}
		return FieldError{Field: field, Value: value, Reason: reason}
	}
}

// Optional accepts the zero value and otherwise defers to validator.
func Optional[T comparable](validator Validator[T]) Validator[T] {
	return func(value T) error {
		var zero T
		if value == zero {
			return nil
		}
		return validator(value)
	}
}

// FirstError returns the first non-nil error of errs.
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
