package convert

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/fieldconv/pkg/validation"
)

// currencyRE accepts an optional sign on either side of an optional dollar
// symbol, grouped or plain integer digits, and an optional 1-2 digit cents
// fraction. When both sign positions carry a sign, the one nearer the
// digits wins.
var currencyRE = regexp.MustCompile(`^([+-])?\$?([+-])?(\d*(?:,\d{3})*)(\.\d{1,2})?$`)

// Currency is a Decimal that understands display-form dollar amounts:
// "$1,000.3" parses to 1000.30. A bare "$" counts as empty.
type Currency struct {
	Decimal
}

// NewCurrency returns a Currency at the conventional two-digit scale.
func NewCurrency() Currency {
	return Currency{NewDecimal()}
}

func (c Currency) IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		return s == "" || s == "$"
	}
	return false
}

func (c Currency) Parse(v any) (any, error) {
	if c.IsEmpty(v) {
		return nil, nil
	}

	s, ok := v.(string)
	if !ok {
		d, err := c.Decimal.parseNumber(v)
		if err != nil {
			return nil, err
		}
		return d, nil
	}

	m := currencyRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil || (m[3] == "" && m[4] == "") {
		return nil, validation.Format("must be a number: [%s]", s)
	}

	sign := m[2]
	if sign == "" {
		sign = m[1]
	}
	cents := m[4]
	if cents == "" {
		cents = ".00"
	}

	d, err := c.Decimal.parseNumber(sign + strings.ReplaceAll(m[3], ",", "") + cents)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (c Currency) Render(v any) RenderResult {
	if r := c.Decimal.Render(v); r.Formatted() {
		return Display("$" + r.String())
	}
	return PassThrough(v)
}

// percentSuffixRE strips a trailing percent sign with optional surrounding
// whitespace.
var percentSuffixRE = regexp.MustCompile(`\s*%\s*$`)

// Percentage is a Decimal that tolerates a trailing "%" on input: "5%"
// parses to 5.00. Rendering is plain Decimal rendering, without the sign.
type Percentage struct {
	Decimal
}

// NewPercentage returns a Percentage at the conventional two-digit scale.
func NewPercentage() Percentage {
	return Percentage{NewDecimal()}
}

func (c Percentage) Parse(v any) (any, error) {
	if c.IsEmpty(v) {
		return nil, nil
	}
	if s, ok := v.(string); ok {
		v = percentSuffixRE.ReplaceAllString(s, "")
	}
	d, err := c.Decimal.parseNumber(v)
	if err != nil {
		return nil, err
	}
	return d, nil
}
