package convert

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/fieldconv/pkg/validation"
)

// String coerces any input to text, dropping bytes that do not form valid
// UTF-8, and enforces optional length bounds counted in runes. A zero bound
// means unbounded. With Truncate set, input over MaxLength is cut instead
// of rejected.
type String struct {
	MinLength int
	MaxLength int
	Truncate  bool
}

func (c String) IsEmpty(v any) bool {
	return isBlank(v)
}

func (c String) Parse(v any) (any, error) {
	if c.IsEmpty(v) {
		return nil, nil
	}
	s, err := c.checkLength(toText(v))
	if err != nil {
		return nil, err
	}
	return s, nil
}

// checkLength is the constraint hook shared with the converters that embed
// String.
func (c String) checkLength(s string) (string, error) {
	if c.MinLength > 0 && utf8.RuneCountInString(s) < c.MinLength {
		return "", validation.Length("must be at least %d characters long", c.MinLength)
	}
	if c.MaxLength > 0 && utf8.RuneCountInString(s) > c.MaxLength {
		if c.Truncate {
			return string([]rune(s)[:c.MaxLength]), nil
		}
		return "", validation.Length("must be at most %d characters long", c.MaxLength)
	}
	return s, nil
}

func (c String) Render(v any) RenderResult {
	if v == nil {
		return PassThrough(v)
	}
	return Display(toText(v))
}

// Enum is a String restricted to a configured choice set. When no explicit
// MaxLength is set and the choices come from a ChoiceSource, the bound is
// derived from the source's longest key.
type Enum struct {
	String
	Choices ChoiceSet[string]
}

// NewEnum returns an Enum over the given choices.
func NewEnum(choices ChoiceSet[string]) Enum {
	e := Enum{Choices: choices}
	e.MaxLength = choices.MaxKeyLength()
	return e
}

func (c Enum) Parse(v any) (any, error) {
	if c.IsEmpty(v) {
		return nil, nil
	}
	s := strings.TrimSpace(toText(v))
	if !c.Choices.Contains(s) {
		return nil, validation.Membership("must be one of: %s (got [%s])", c.Choices.List(), s)
	}
	out, err := c.String.checkLength(s)
	if err != nil {
		return nil, err
	}
	return out, nil
}
