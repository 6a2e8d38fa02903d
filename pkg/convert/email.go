package convert

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/fieldconv/pkg/validation"
)

// localPartPunct is the punctuation allowed in the local part alongside
// letters and digits. Quoted local parts and the rarely-used special
// characters are deliberately not supported.
const localPartPunct = "!#$%&'*+-/=?^_`{|}~."

// domainRE: one or more 1-63 character labels (alphanumeric with internal
// hyphens) followed by a top-level label of two or more letters.
var domainRE = regexp.MustCompile(`(?i)^(?:[a-z0-9][a-z0-9-]{0,62}\.)+[a-z]{2,}$`)

// Email validates addresses of the practical user@domain.com shape: a
// restricted local part and a dotted domain. Failures distinguish the
// malformed half in the message. The typed value is the trimmed address.
type Email struct {
	String
}

// NewEmail returns an Email with the default 255-character bound.
func NewEmail() Email {
	return Email{String{MaxLength: 255}}
}

func (c Email) Parse(v any) (any, error) {
	if c.IsEmpty(v) {
		return nil, nil
	}

	s := strings.TrimSpace(toText(v))
	local, domain, found := strings.Cut(s, "@")
	if !found {
		return nil, validation.Format("must be an email address in the form user@domain.com")
	}
	if !validLocalPart(local) {
		return nil, validation.Format("the username portion of the email address is invalid (the portion before the @: %s)", local)
	}
	if !domainRE.MatchString(domain) {
		return nil, validation.Format("the domain portion of the email address is invalid (the portion after the @: %s)", domain)
	}

	out, err := c.String.checkLength(s)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func validLocalPart(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune(localPartPunct, r):
		default:
			return false
		}
	}
	if strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") {
		return false
	}
	return !strings.Contains(s, "..")
}
