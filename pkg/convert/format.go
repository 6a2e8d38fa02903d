package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// GroupThousands inserts thousandsSep every three digits into the integral
// part of a numeric string, preserving any leading non-numeric characters
// (sign, currency symbol) and the fractional part after decimalSep.
// Garbage in, garbage out on non-numeric input.
func GroupThousands(s, thousandsSep, decimalSep string) string {
	numChars := decimalSep + "0123456789"
	i := 0
	for i < len(s) && !strings.ContainsRune(numChars, rune(s[i])) {
		i++
	}
	lhs := s[:i]
	s = s[i:]

	rhs := ""
	if decimalSep != "" {
		if cut := strings.LastIndex(s, decimalSep); cut > 0 {
			rhs = decimalSep + s[cut+len(decimalSep):]
			s = s[:cut]
		}
	}

	grouped := ""
	for s != "" {
		start := len(s) - 3
		if start < 0 {
			start = 0
		}
		if grouped == "" {
			grouped = s[start:]
		} else {
			grouped = s[start:] + thousandsSep + grouped
		}
		s = s[:start]
	}

	return lhs + grouped + rhs
}

// groupDefault applies the conventional "," / "." separators.
func groupDefault(s string) string {
	return GroupThousands(s, ",", ".")
}

// toText is the best-effort text coercion used by the textual converters:
// invalid UTF-8 bytes are dropped, numeric values take their plain decimal
// form, anything else goes through fmt.
func toText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return cleanUTF8(t)
	case []byte:
		return cleanUTF8(string(t))
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// cleanUTF8 drops bytes that do not form valid UTF-8 sequences. The
// transform chain carries internal buffers, so it is built per call rather
// than shared; converters stay safe for concurrent use.
func cleanUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	sanitizer := transform.Chain(
		runes.ReplaceIllFormed(),
		runes.Remove(runes.Predicate(func(r rune) bool { return r == utf8.RuneError })),
	)
	out, _, err := transform.String(sanitizer, s)
	if err != nil {
		return s
	}
	return out
}

var (
	minIntDec = decimal.NewFromInt(math.MinInt)
	maxIntDec = decimal.NewFromInt(math.MaxInt)
)

// toInt reports whether v is a numeric runtime type and returns its integer
// value, truncating any fractional part toward zero. Values that do not fit
// in int are rejected instead of wrapping.
func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int8:
		return int(t), true
	case int16:
		return int(t), true
	case int32:
		return int(t), true
	case int64:
		if t < math.MinInt || t > math.MaxInt {
			return 0, false
		}
		return int(t), true
	case uint:
		if uint64(t) > math.MaxInt {
			return 0, false
		}
		return int(t), true
	case uint8:
		return int(t), true
	case uint16:
		return int(t), true
	case uint32:
		return int(t), true
	case uint64:
		if t > math.MaxInt {
			return 0, false
		}
		return int(t), true
	case float32:
		return floatToInt(float64(t))
	case float64:
		return floatToInt(t)
	case decimal.Decimal:
		if t.Cmp(minIntDec) < 0 || t.Cmp(maxIntDec) > 0 {
			return 0, false
		}
		return int(t.IntPart()), true
	}
	return 0, false
}

// floatToInt truncates toward zero. float64 cannot represent MaxInt
// exactly, so the representable range uses an exclusive upper bound of
// -MinInt (a power of two); NaN and infinities fall outside it.
func floatToInt(f float64) (int, bool) {
	if !(f >= math.MinInt && f < -float64(math.MinInt)) {
		return 0, false
	}
	return int(f), true
}

// toDecimalValue reports whether v is a numeric runtime type and returns its
// fixed-point value.
func toDecimalValue(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case decimal.Decimal:
		return t, true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(t), true
	case float32:
		if math.IsNaN(float64(t)) || math.IsInf(float64(t), 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat32(t), true
	default:
		if n, ok := toInt(v); ok {
			return decimal.NewFromInt(int64(n)), true
		}
	}
	return decimal.Decimal{}, false
}
