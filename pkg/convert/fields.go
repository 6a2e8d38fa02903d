package convert

import (
	"errors"

	"github.com/dmitrymomot/fieldconv/pkg/validation"
)

// Fields maps field names to their converters, modeling one flat form or
// record. It is the thin caller-side assembly the converters are designed
// for: each field parses independently and failures are attributed to their
// field name in a single validation.Errors collection. No cross-field
// validation happens here.
type Fields map[string]Converter

// Parse converts every declared field from values, returning the typed
// results and the per-field failures. Fields absent from values parse as
// empty. A nil error collection means every field converted.
func (f Fields) Parse(values map[string]any) (map[string]any, validation.Errors) {
	out := make(map[string]any, len(f))
	var errs validation.Errors

	for name, conv := range f {
		v, err := conv.Parse(values[name])
		if err != nil {
			var fe *validation.FieldError
			if !errors.As(err, &fe) {
				fe = validation.New(err.Error())
			}
			fe.Field = name
			errs = validation.Merge(errs, fe, "")
			continue
		}
		out[name] = v
	}
	return out, errs
}

// Render produces the canonical display string of every declared field
// present in values.
func (f Fields) Render(values map[string]any) map[string]string {
	out := make(map[string]string, len(f))
	for name, conv := range f {
		if v, ok := values[name]; ok {
			out[name] = conv.Render(v).String()
		}
	}
	return out
}
