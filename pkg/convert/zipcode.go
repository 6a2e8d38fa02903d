package convert

import (
	"regexp"

	"github.com/dmitrymomot/fieldconv/pkg/validation"
)

var (
	zip5RE = regexp.MustCompile(`^(\d{5})`)
	zip4RE = regexp.MustCompile(`^(\d{4})`)
)

// ZipCode parses a 5-digit US postal code from the start of the input,
// silently discarding trailing characters ("123456" parses to "12345").
// Shorter digit runs are a format error, not padded.
type ZipCode struct {
	String
}

// NewZipCode returns a ZipCode with the default 5-character bound.
func NewZipCode() ZipCode {
	return ZipCode{String{MaxLength: 5}}
}

func (c ZipCode) Parse(v any) (any, error) {
	if c.IsEmpty(v) {
		return nil, nil
	}
	s := toText(v)
	m := zip5RE.FindStringSubmatch(s)
	if m == nil {
		return nil, validation.Format("must be a zip code of 5 digits: [%s]", s)
	}
	return m[1], nil
}

// ZipCodeExt parses the 4-digit ZIP+4 extension the same way ZipCode parses
// the leading 5 digits.
type ZipCodeExt struct {
	String
}

// NewZipCodeExt returns a ZipCodeExt with the default 4-character bound.
func NewZipCodeExt() ZipCodeExt {
	return ZipCodeExt{String{MaxLength: 4}}
}

func (c ZipCodeExt) Parse(v any) (any, error) {
	if c.IsEmpty(v) {
		return nil, nil
	}
	s := toText(v)
	m := zip4RE.FindStringSubmatch(s)
	if m == nil {
		return nil, validation.Format("must be a zip code extension of 4 digits: [%s]", s)
	}
	return m[1], nil
}
