// Package convert turns loosely-typed external input (form values, API
// payload fields, import cells) into strongly-typed domain values and
// renders domain values back to canonical display strings.
//
// # Architecture
//
// Every converter is a small configuration struct implementing the Converter
// interface: IsEmpty, Parse, Render. Parsing always follows the same flow —
// an emptiness short-circuit that returns (nil, nil) before any grammar or
// constraint runs, then the type-specific parse, then the configured
// constraint checks. Rendering never fails: values a converter does not
// recognize pass through unchanged, reported as such by the RenderResult
// tagged union.
//
// Derived converters compose rather than subclass: Currency embeds Decimal
// and delegates the numeric conversion after stripping currency syntax,
// Enum embeds String, ObjectID embeds Integer, and so on. Each converter is
// immutable after construction and safe for concurrent use.
//
// Failures are *validation.FieldError values from pkg/validation, raised
// without field attribution; the caller assigns field identity when folding
// them into a validation.Errors collection (the Fields helper shows the
// loop).
//
// # Usage
//
//	price := convert.NewCurrency()
//	v, err := price.Parse("$1,000.3") // decimal.Decimal 1000.30
//	out := price.Render(v)            // Display "$1,000.30"
//
// A form is a map of named converters:
//
//	form := convert.Fields{
//	    "qty":   convert.Integer{Min: convert.Ptr(1)},
//	    "email": convert.NewEmail(),
//	}
//	typed, errs := form.Parse(map[string]any{"qty": "0", "email": "a@b.com"})
//
// # Error Handling
//
// Parse errors satisfy errors.Is against the pkg/validation sentinels
// (ErrInvalidFormat, ErrOutOfRange, ErrInvalidLength, ErrInvalidChoice) and
// carry complete, ready-to-display messages. Render never returns an error;
// check RenderResult.Formatted to distinguish a canonical rendering from a
// passed-through value.
package convert
