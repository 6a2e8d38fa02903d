package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Errors is a field-path-keyed collection of validation failures. At most
// one error is held per field path; merging overwrites earlier entries for
// the same path.
type Errors map[string]*FieldError

// Error implements the error interface with a deterministic summary of
// every entry as "table.field: message".
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s.%s: %s", e[k].Table, k, e[k].Message))
	}
	return strings.Join(parts, ", ")
}

// Has reports whether the collection holds an error for the field path.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the display message for a field path, or "" when absent.
func (e Errors) Get(field string) string {
	if fe, ok := e[field]; ok {
		return fe.Message
	}
	return ""
}

// Fields returns the sorted field paths present in the collection.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for k := range e {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

// IsEmpty reports whether the collection holds no errors.
func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// Merge folds a failure into dst and returns the collection (allocating it
// when dst is nil). Accepted failure shapes:
//
//   - nil: dst is returned unchanged.
//   - Errors (or *FieldError with a non-empty Nested collection): every
//     entry's Field is set to its map key, preserving inner field names
//     verbatim, and the entry is stored under prefix+key.
//   - bare *FieldError: stored under prefix + its Field attribute.
//   - any other error: wrapped via New and stored under prefix + "unknown".
//
// The prefix lets callers namespace a nested form's fields, e.g. merging
// {"a": e1, "b": e2} with prefix "form." yields keys "form.a" and "form.b".
func Merge(dst Errors, err error, prefix string) Errors {
	if err == nil {
		return dst
	}
	if dst == nil {
		dst = Errors{}
	}

	switch e := err.(type) {
	case Errors:
		mergeNested(dst, e, prefix)
	case *FieldError:
		if len(e.Nested) > 0 {
			mergeNested(dst, e.Nested, prefix)
		} else {
			dst[prefix+e.Field] = e
		}
	default:
		dst[prefix+unknownContext] = New(err.Error())
	}
	return dst
}

func mergeNested(dst, src Errors, prefix string) {
	for k, v := range src {
		v.Field = k
		dst[prefix+k] = v
	}
}
