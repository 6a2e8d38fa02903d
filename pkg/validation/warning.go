package validation

import "sync"

// Acknowledgments answers whether a warning key has been explicitly
// acknowledged by the caller. Implementations are caller-owned and scoped to
// whatever boundary the caller chooses (request, session, import run).
type Acknowledgments interface {
	Acknowledged(key string) bool
}

// AckSet is the simplest Acknowledgments implementation: a plain set of
// acknowledged warning keys. Suitable when the keys arrive in one batch,
// e.g. from a form resubmission payload.
type AckSet map[string]bool

// Acknowledged implements Acknowledgments.
func (s AckSet) Acknowledged(key string) bool {
	return s[key]
}

// OverrideRegistry is a concurrency-safe Acknowledgments implementation for
// callers that accumulate acknowledgments over time. The registry never
// expires entries; its owner defines the lifecycle by discarding it at the
// session boundary.
type OverrideRegistry struct {
	mu   sync.RWMutex
	keys map[string]bool
}

// NewOverrideRegistry returns an empty registry.
func NewOverrideRegistry() *OverrideRegistry {
	return &OverrideRegistry{keys: make(map[string]bool)}
}

// Register records one or more acknowledged warning keys.
func (r *OverrideRegistry) Register(keys ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		r.keys[k] = true
	}
}

// Acknowledged implements Acknowledgments.
func (r *OverrideRegistry) Acknowledged(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.keys[key]
}

// Len returns the number of registered keys.
func (r *OverrideRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.keys)
}

// ResolveWarnings returns a copy of errs without every entry whose warning
// key is acknowledged. Ordinary errors and unacknowledged warnings are kept.
// The input collection is not modified, so resolving twice with the same
// acknowledgment state yields the same result.
func ResolveWarnings(errs Errors, acks Acknowledgments) Errors {
	if errs == nil {
		return nil
	}

	out := make(Errors, len(errs))
	for k, v := range errs {
		if acks != nil && v.WarningKey != "" && acks.Acknowledged(v.WarningKey) {
			continue
		}
		out[k] = v
	}
	return out
}
