package convert

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/dmitrymomot/fieldconv/pkg/validation"
)

// minYear guards against two-digit-year and typo dates in historical data.
const minYear = 1900

// Date parses calendar dates: time.Time values pass through with the clock
// zeroed, text goes to a general-purpose date parser. Years before 1900 are
// rejected. Renders as MM/DD/YYYY.
type Date struct{}

func (c Date) IsEmpty(v any) bool {
	return isBlank(v)
}

func (c Date) Parse(v any) (any, error) {
	if c.IsEmpty(v) {
		return nil, nil
	}
	if t, ok := v.(time.Time); ok {
		return dateOnly(t), nil
	}

	t, err := dateparse.ParseAny(toText(v))
	if err != nil {
		return nil, validation.Format("%s", err)
	}
	if t.Year() < minYear {
		return nil, validation.Range("year must be %d or later", minYear)
	}
	return dateOnly(t), nil
}

func (c Date) Render(v any) RenderResult {
	if t, ok := v.(time.Time); ok {
		return Display(t.Format("01/02/2006"))
	}
	return PassThrough(v)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// timeRE normalizes the accepted clock shapes: H:MM, HH:MM, HHMM, optional
// :SS or SS, optional AM/PM.
var timeRE = regexp.MustCompile(`(?i)^(\d{1,2}):?(\d\d)(:?\d\d)?(\s*[AP]M)?$`)

// Time parses flexible time-of-day text ("5:45", "1545", "5:45 PM",
// "15:45:45") into a time.Time carrying only clock fields. Renders as HH:MM
// in 24-hour form.
type Time struct{}

func (c Time) IsEmpty(v any) bool {
	return isBlank(v)
}

func (c Time) Parse(v any) (any, error) {
	if c.IsEmpty(v) {
		return nil, nil
	}
	if t, ok := v.(time.Time); ok {
		return t, nil
	}

	m := timeRE.FindStringSubmatch(strings.TrimSpace(toText(v)))
	if m == nil {
		return nil, validation.Format("must be a time in the format HH:MM")
	}

	canonical := m[1] + ":" + m[2]
	layout := "15:04"
	if m[3] != "" {
		canonical += ":" + strings.TrimPrefix(m[3], ":")
		layout += ":05"
	}
	if m[4] != "" {
		canonical += " " + strings.ToUpper(strings.TrimSpace(m[4]))
		layout = strings.Replace(layout, "15", "3", 1) + " PM"
	}

	t, err := time.Parse(layout, canonical)
	if err != nil {
		return nil, validation.Format("%s", err)
	}
	return t, nil
}

func (c Time) Render(v any) RenderResult {
	if t, ok := v.(time.Time); ok {
		return Display(t.Format("15:04"))
	}
	return PassThrough(v)
}

// DateTime parses timestamps: time.Time passes through, text goes to the
// general-purpose parser with no further constraints. Renders as
// YYYY-MM-DD HH:MM:SS.
type DateTime struct{}

func (c DateTime) IsEmpty(v any) bool {
	return isBlank(v)
}

func (c DateTime) Parse(v any) (any, error) {
	if c.IsEmpty(v) {
		return nil, nil
	}
	if t, ok := v.(time.Time); ok {
		return t, nil
	}

	t, err := dateparse.ParseAny(toText(v))
	if err != nil {
		return nil, validation.Format("%s", err)
	}
	return t, nil
}

func (c DateTime) Render(v any) RenderResult {
	if t, ok := v.(time.Time); ok {
		return Display(t.Format("2006-01-02 15:04:05"))
	}
	return PassThrough(v)
}
