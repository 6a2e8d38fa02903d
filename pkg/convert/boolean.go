package convert

import (
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/fieldconv/pkg/validation"
)

var (
	trueWords  = []string{"true", "t", "yes", "y", "on", "1", "yeah", "yah", "yup"}
	falseWords = []string{"false", "f", "no", "n", "off", "0", "2", "nah", "nope"}
	noneWords  = []string{"none"}
)

// Boolean parses yes/no words case-insensitively; "none" yields an absent
// value, non-string input is coerced by generic truthiness.
type Boolean struct{}

func (c Boolean) IsEmpty(v any) bool {
	return isBlank(v)
}

func (c Boolean) Parse(v any) (any, error) {
	if c.IsEmpty(v) {
		return nil, nil
	}

	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		switch {
		case slices.Contains(trueWords, s):
			return true, nil
		case s == "" || slices.Contains(falseWords, s):
			return false, nil
		case slices.Contains(noneWords, s):
			return nil, nil
		}
		return nil, validation.Format(`must be "yes" or "no"`)
	default:
		if n, ok := toInt(v); ok {
			return n != 0, nil
		}
		// Any other non-nil value is truthy.
		return true, nil
	}
}

func (c Boolean) Render(v any) RenderResult {
	if b, ok := v.(bool); ok {
		return Display(strconv.FormatBool(b))
	}
	return PassThrough(v)
}
