// Package validation defines the error model used by field-level input
// conversion: a single-field failure type with field and table context, a
// field-keyed error collection, a merge operation for assembling multi-field
// error sets, and a warning classification that lets callers explicitly
// acknowledge and bypass selected failures.
//
// # Architecture
//
// FieldError describes one failure. It carries a ready-to-display message, a
// Kind from a small taxonomy (format, range, length, membership), the field
// and table it belongs to, and an optional warning classification with a
// stable content-derived key. Errors is a map from field path to FieldError;
// Merge folds a failure of any supported shape (single error, nested
// collection, plain error) into such a map without losing field identity.
//
// The package has no global state. Warning acknowledgments live in a
// caller-owned object (AckSet or OverrideRegistry) passed explicitly to
// ResolveWarnings, so concurrent requests never share override state.
//
// # Usage
//
//	errs := validation.Errors{}
//	if _, err := conv.Parse(raw); err != nil {
//	    errs = validation.Merge(errs, err, "shipment.")
//	}
//	if !errs.IsEmpty() {
//	    // render errs per field
//	}
//
// Warning-classified failures can be filtered out once acknowledged:
//
//	acks := validation.NewOverrideRegistry()
//	acks.Register(warnKey)
//	remaining := validation.ResolveWarnings(errs, acks)
//
// # Error Handling
//
// FieldError and Errors both implement the error interface. FieldError
// supports errors.Is against the package sentinels (ErrInvalidFormat,
// ErrOutOfRange, ErrInvalidLength, ErrInvalidChoice), so callers can branch
// on the failure kind while keeping the display message intact.
package validation
