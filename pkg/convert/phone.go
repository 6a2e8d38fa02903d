package convert

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/fieldconv/pkg/validation"
)

var (
	// phoneRE matches anywhere but must reach end of string: optional
	// country-code digits, area code starting 2-9, exchange, subscriber,
	// with arbitrary non-digit separators between groups.
	phoneRE = regexp.MustCompile(`(\d*)\D*([2-9]\d{2})\D*(\d{3})\D*(\d{4})$`)

	// phoneZeroRE recognizes placeholder numbers like 000-000-0000, common
	// in imported carrier data.
	phoneZeroRE = regexp.MustCompile(`0{3}\D*0{3}\D*0{4}$`)
)

// Phone parses 10-digit North American phone numbers with an optional
// country code, normalizing to a bare digit string ("2234567890") or a
// +-prefixed one ("+12234567890"). All-zero numbers count as empty.
type Phone struct {
	String
}

// NewPhone returns a Phone with the default 16-character bound.
func NewPhone() Phone {
	return Phone{String{MaxLength: 16}}
}

func (c Phone) IsEmpty(v any) bool {
	if isBlank(v) {
		return true
	}
	return phoneZeroRE.MatchString(toText(v))
}

func (c Phone) Parse(v any) (any, error) {
	if c.IsEmpty(v) {
		return nil, nil
	}

	m := phoneRE.FindStringSubmatch(toText(v))
	if m == nil {
		return nil, validation.Format("must be a 10 digit phone number with optional country code in the format +# ###-###-####")
	}

	number := m[2] + m[3] + m[4]
	if m[1] != "" {
		number = "+" + m[1] + number
	}

	out, err := c.String.checkLength(number)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Render formats "+12234567890" as "+1 (223) 456-7890" and bare 10-digit
// values as "(223) 456-7890". Anything else passes through unchanged.
func (c Phone) Render(v any) RenderResult {
	s, ok := v.(string)
	if !ok {
		return PassThrough(v)
	}

	if strings.HasPrefix(s, "+") {
		if len(s) < 12 {
			// Needs at least + and a country code before the 10 digits.
			return PassThrough(v)
		}
		prefix, local := s[:len(s)-10], s[len(s)-10:]
		return Display(fmt.Sprintf("%s (%s) %s-%s", prefix, local[:3], local[3:6], local[6:]))
	}

	if len(s) != 10 {
		return PassThrough(v)
	}
	return Display(fmt.Sprintf("(%s) %s-%s", s[:3], s[3:6], s[6:]))
}

var phoneExtRE = regexp.MustCompile(`^(\d{1,6})`)

// PhoneExt parses a 1-6 digit phone extension from the start of the input,
// silently discarding anything after the matched digits.
type PhoneExt struct {
	String
}

// NewPhoneExt returns a PhoneExt with the default 6-character bound.
func NewPhoneExt() PhoneExt {
	return PhoneExt{String{MaxLength: 6}}
}

func (c PhoneExt) Parse(v any) (any, error) {
	if c.IsEmpty(v) {
		return nil, nil
	}
	s := toText(v)
	m := phoneExtRE.FindStringSubmatch(s)
	if m == nil {
		return nil, validation.Format("must be an extension of 1 to 6 digits: [%s]", s)
	}
	return m[1], nil
}
