package convert

import (
	"fmt"
	"strconv"
	"strings"
)

// ChoiceSource is the injected capability for externally-defined ordered key
// sets (enumeration types). Enum derives its maximum length from
// MaxKeyLength when no explicit bound is configured.
type ChoiceSource interface {
	// Keys returns the ordered set of valid keys.
	Keys() []string

	// MaxKeyLength returns the display length of the longest key.
	MaxKeyLength() int
}

// Pair couples a stored value with its display label. Membership is checked
// against Value only.
type Pair[T comparable] struct {
	Value T
	Label string
}

// ChoiceSet is a resolved allowed-choices collection. The supported input
// shapes (plain values, value/label pairs, external ChoiceSource) are
// resolved to a flat value list at construction time.
type ChoiceSet[T comparable] struct {
	values    []T
	maxKeyLen int
}

// Choices builds a ChoiceSet from plain values.
func Choices[T comparable](values ...T) ChoiceSet[T] {
	return ChoiceSet[T]{values: values}
}

// LabeledChoices builds a ChoiceSet from value/label pairs.
func LabeledChoices[T comparable](pairs ...Pair[T]) ChoiceSet[T] {
	values := make([]T, len(pairs))
	for i, p := range pairs {
		values[i] = p.Value
	}
	return ChoiceSet[T]{values: values}
}

// SourceChoices builds a string ChoiceSet from an external key set,
// capturing its maximum key length.
func SourceChoices(src ChoiceSource) ChoiceSet[string] {
	return ChoiceSet[string]{values: src.Keys(), maxKeyLen: src.MaxKeyLength()}
}

// IntSourceChoices builds an integer ChoiceSet from an external key set
// whose keys are decimal integers. Non-numeric keys are skipped.
func IntSourceChoices(src ChoiceSource) ChoiceSet[int] {
	keys := src.Keys()
	values := make([]int, 0, len(keys))
	for _, k := range keys {
		if n, err := strconv.Atoi(k); err == nil {
			values = append(values, n)
		}
	}
	return ChoiceSet[int]{values: values}
}

// Contains reports membership.
func (c ChoiceSet[T]) Contains(v T) bool {
	for _, allowed := range c.values {
		if v == allowed {
			return true
		}
	}
	return false
}

// Values returns the resolved value list in its original order.
func (c ChoiceSet[T]) Values() []T {
	return c.values
}

// List returns the values joined for display in membership error messages.
func (c ChoiceSet[T]) List() string {
	parts := make([]string, len(c.values))
	for i, v := range c.values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

// MaxKeyLength returns the longest key length reported by the originating
// ChoiceSource, or 0 for sets built from plain values or pairs.
func (c ChoiceSet[T]) MaxKeyLength() int {
	return c.maxKeyLen
}
