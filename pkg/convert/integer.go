package convert

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/fieldconv/pkg/validation"
)

// Integer parses whole numbers from strings (thousands separators allowed)
// and numeric runtime types, enforcing optional inclusive bounds. Renders
// with thousands grouping.
type Integer struct {
	Min *int
	Max *int
}

func (c Integer) IsEmpty(v any) bool {
	return isBlank(v)
}

func (c Integer) Parse(v any) (any, error) {
	if c.IsEmpty(v) {
		return nil, nil
	}
	n, err := c.parseInt(v)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// parseInt is the numeric hook shared with the converters that embed
// Integer: coercion plus bound checks, no emptiness handling.
func (c Integer) parseInt(v any) (int, error) {
	var n int
	switch t := v.(type) {
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
		parsed, err := strconv.Atoi(s)
		if err != nil {
			return 0, validation.Format("must be an integer: [%s]", t)
		}
		n = parsed
	default:
		coerced, ok := toInt(v)
		if !ok {
			return 0, validation.Format("must be an integer: [%v]", v)
		}
		n = coerced
	}

	if c.Min != nil && n < *c.Min {
		return 0, validation.Range("must not be less than %d", *c.Min)
	}
	if c.Max != nil && n > *c.Max {
		return 0, validation.Range("must not be greater than %d", *c.Max)
	}
	return n, nil
}

func (c Integer) Render(v any) RenderResult {
	if n, ok := toInt(v); ok {
		return Display(groupDefault(strconv.Itoa(n)))
	}
	return PassThrough(v)
}

// ObjectID is an Integer for foreign identifiers: minimum 1 by default and
// rendered as a plain digit string without grouping.
type ObjectID struct {
	Integer
}

// NewObjectID returns an ObjectID with the default minimum of 1.
func NewObjectID() ObjectID {
	return ObjectID{Integer{Min: Ptr(1)}}
}

func (c ObjectID) Render(v any) RenderResult {
	if n, ok := toInt(v); ok {
		return Display(strconv.Itoa(n))
	}
	return PassThrough(v)
}

// IntEnum is an Integer restricted to a configured choice set, for typed
// discriminator columns (alert type, event type). Bounds apply before the
// membership check.
type IntEnum struct {
	Integer
	Choices ChoiceSet[int]
}

// NewIntEnum returns an IntEnum over the given choices.
func NewIntEnum(choices ChoiceSet[int]) IntEnum {
	return IntEnum{Choices: choices}
}

func (c IntEnum) Parse(v any) (any, error) {
	if c.IsEmpty(v) {
		return nil, nil
	}
	n, err := c.Integer.parseInt(v)
	if err != nil {
		return nil, err
	}
	if !c.Choices.Contains(n) {
		return nil, validation.Membership("must be one of: %s (got [%d])", c.Choices.List(), n)
	}
	return n, nil
}
