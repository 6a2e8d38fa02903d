package convert

import (
	"fmt"
	"strings"
)

// Converter is the capability set shared by every field converter. Callers
// hold a field-to-converter mapping without knowing concrete types.
//
// Converters are configuration objects: construct once, do not mutate after
// first use, call from any number of goroutines.
type Converter interface {
	// IsEmpty reports whether the raw value counts as absent. Empty input
	// short-circuits Parse to (nil, nil) before any grammar or constraint
	// check runs.
	IsEmpty(value any) bool

	// Parse converts raw input into the converter's typed value, or returns
	// a *validation.FieldError describing the failure. The returned error
	// carries no field attribution; the caller assigns it via
	// validation.Merge.
	Parse(value any) (any, error)

	// Render converts a typed value back to its canonical display string.
	// It never fails: unrecognized runtime types pass through unchanged.
	Render(value any) RenderResult
}

// RenderResult is the outcome of Render: either a canonical display string
// or the original value passed through because the converter did not
// recognize its runtime type. The distinction is explicit so callers cannot
// mistake an unformatted value for a formatted one.
type RenderResult struct {
	display   string
	original  any
	formatted bool
}

// Display wraps a canonical display string.
func Display(s string) RenderResult {
	return RenderResult{display: s, formatted: true}
}

// PassThrough wraps a value the converter did not recognize.
func PassThrough(v any) RenderResult {
	return RenderResult{original: v}
}

// Formatted reports whether the result is a canonical rendering rather than
// a passed-through value.
func (r RenderResult) Formatted() bool {
	return r.formatted
}

// String returns the display string, or a best-effort string form of the
// passed-through value.
func (r RenderResult) String() string {
	if r.formatted {
		return r.display
	}
	if r.original == nil {
		return ""
	}
	return fmt.Sprint(r.original)
}

// Value returns the display string for formatted results and the original
// value for pass-throughs.
func (r RenderResult) Value() any {
	if r.formatted {
		return r.display
	}
	return r.original
}

// Ptr returns a pointer to v, for optional bound fields:
//
//	convert.Integer{Min: convert.Ptr(0), Max: convert.Ptr(10)}
func Ptr[T any](v T) *T {
	return &v
}

// isBlank is the default emptiness rule: nil, or a string that is empty
// after trimming whitespace.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
