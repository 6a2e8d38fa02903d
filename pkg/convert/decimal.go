package convert

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/fieldconv/pkg/validation"
)

// Rounding selects how a parsed value is brought to the configured scale.
// The zero value is round-half-to-even (banker's rounding).
type Rounding int

const (
	RoundHalfEven Rounding = iota
	RoundHalfUp
	RoundDown
	RoundUp
	RoundCeil
	RoundFloor
)

func (r Rounding) round(d decimal.Decimal, scale int32) decimal.Decimal {
	switch r {
	case RoundHalfUp:
		return d.Round(scale)
	case RoundDown:
		return d.RoundDown(scale)
	case RoundUp:
		return d.RoundUp(scale)
	case RoundCeil:
		return d.RoundCeil(scale)
	case RoundFloor:
		return d.RoundFloor(scale)
	default:
		return d.RoundBank(scale)
	}
}

// Decimal parses fixed-point numbers at a configured scale. Bounds are
// compared in fixed point, after rounding, so float representation drift
// cannot flip a comparison. Typed values are decimal.Decimal.
type Decimal struct {
	Min      *decimal.Decimal
	Max      *decimal.Decimal
	Scale    int32
	Rounding Rounding
}

// NewDecimal returns a Decimal with the conventional defaults: two digits
// after the point, round-half-to-even.
func NewDecimal() Decimal {
	return Decimal{Scale: 2}
}

func (c Decimal) IsEmpty(v any) bool {
	return isBlank(v)
}

func (c Decimal) Parse(v any) (any, error) {
	if c.IsEmpty(v) {
		return nil, nil
	}
	d, err := c.parseNumber(v)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// parseNumber is the numeric hook shared with the converters that embed
// Decimal: coercion, quantization to Scale, and bound checks.
func (c Decimal) parseNumber(v any) (decimal.Decimal, error) {
	var d decimal.Decimal
	switch t := v.(type) {
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
		parsed, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Decimal{}, validation.Format("must be a number: [%s]", t)
		}
		d = parsed
	default:
		coerced, ok := toDecimalValue(v)
		if !ok {
			return decimal.Decimal{}, validation.Format("must be a number: [%v]", v)
		}
		d = coerced
	}

	d = c.Rounding.round(d, c.Scale)

	if c.Min != nil && d.Cmp(*c.Min) < 0 {
		return decimal.Decimal{}, validation.Range("must not be less than %s", c.Min)
	}
	if c.Max != nil && d.Cmp(*c.Max) > 0 {
		return decimal.Decimal{}, validation.Range("must not be greater than %s", c.Max)
	}
	return d, nil
}

func (c Decimal) Render(v any) RenderResult {
	if d, ok := toDecimalValue(v); ok {
		return Display(groupDefault(c.Rounding.round(d, c.Scale).StringFixed(c.Scale)))
	}
	return PassThrough(v)
}
