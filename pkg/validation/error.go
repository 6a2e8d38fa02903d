package validation

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
)

// Common validation errors usable with errors.Is for branching on the
// failure kind without inspecting messages.
var (
	// ErrValidationFailed is the generic sentinel matched by every FieldError.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidFormat is matched when input does not fit the expected lexical grammar.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrOutOfRange is matched when a parsed value violates a numeric or date bound.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidLength is matched when a string violates a configured length bound.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidChoice is matched when a value is not among the configured choices.
	ErrInvalidChoice = errors.New("invalid choice")
)

// Kind classifies a validation failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindFormat
	KindRange
	KindLength
	KindMembership
)

// WarningLevel classifies an overridable failure. The zero value marks an
// ordinary, non-overridable error.
type WarningLevel int

const (
	NotWarning WarningLevel = iota
	WarningUser
	WarningInternal
)

func (l WarningLevel) String() string {
	switch l {
	case WarningUser:
		return "user"
	case WarningInternal:
		return "internal"
	default:
		return "none"
	}
}

// FieldError represents a single-field validation failure. Converters raise
// it with Field and Table left at their "unknown" defaults; the caller
// attributes it to a field via Merge.
type FieldError struct {
	// Message is a complete, ready-to-display description of the failure.
	Message string

	// Field names the form/record slot the error belongs to. Defaults to
	// "unknown" until attributed by Merge.
	Field string

	// Table names the table or form context. Defaults to "unknown".
	Table string

	// Kind classifies the failure for errors.Is matching.
	Kind Kind

	// Nested holds inner per-field failures for composite errors.
	Nested Errors

	// Level marks the error as an overridable warning when non-zero.
	Level WarningLevel

	// WarningKey is the stable content-derived key of a warning, empty for
	// ordinary errors.
	WarningKey string
}

const unknownContext = "unknown"

// New returns an ordinary FieldError with the given display message.
func New(message string) *FieldError {
	return &FieldError{
		Message: message,
		Field:   unknownContext,
		Table:   unknownContext,
	}
}

// Newf is New with fmt.Sprintf formatting.
func Newf(format string, args ...any) *FieldError {
	return New(fmt.Sprintf(format, args...))
}

// Format returns a format-kind error: the input did not match the expected
// lexical grammar.
func Format(format string, args ...any) *FieldError {
	e := Newf(format, args...)
	e.Kind = KindFormat
	return e
}

// Range returns a range-kind error: the value parsed but violates a bound.
func Range(format string, args ...any) *FieldError {
	e := Newf(format, args...)
	e.Kind = KindRange
	return e
}

// Length returns a length-kind error for string length violations.
func Length(format string, args ...any) *FieldError {
	e := Newf(format, args...)
	e.Kind = KindLength
	return e
}

// Membership returns a membership-kind error: the value is not among the
// configured choices.
func Membership(format string, args ...any) *FieldError {
	e := Newf(format, args...)
	e.Kind = KindMembership
	return e
}

// NewWarning returns a warning-classified error whose WarningKey is a stable
// one-way hash over the warning level, the name of the offending field or
// check, the offending value, and the message. Repeated validation of the
// same input yields the same key, letting callers recognize and acknowledge
// "the same" warning across attempts.
func NewWarning(level WarningLevel, name string, value any, format string, args ...any) *FieldError {
	e := Newf(format, args...)
	e.Level = level
	e.WarningKey = WarningKey(level, name, value, e.Message)
	return e
}

// WarningKey derives the stable acknowledgment key for a warning.
func WarningKey(level WarningLevel, name string, value any, message string) string {
	sum := sha1.Sum(fmt.Appendf(nil, "%s-%s-%v-%s", level, name, value, message))
	return hex.EncodeToString(sum[:])
}

// Error implements the error interface. Composite errors join their nested
// entries as "table.field: message" pairs.
func (e *FieldError) Error() string {
	if len(e.Nested) > 0 {
		return e.Nested.Error()
	}
	return e.Message
}

// IsWarning reports whether the error is overridable.
func (e *FieldError) IsWarning() bool {
	return e.Level != NotWarning
}

// Is matches the package sentinel corresponding to the error's Kind, and
// ErrValidationFailed for any FieldError.
func (e *FieldError) Is(target error) bool {
	if target == ErrValidationFailed {
		return true
	}
	switch e.Kind {
	case KindFormat:
		return target == ErrInvalidFormat
	case KindRange:
		return target == ErrOutOfRange
	case KindLength:
		return target == ErrInvalidLength
	case KindMembership:
		return target == ErrInvalidChoice
	}
	return false
}
