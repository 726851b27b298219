package account

import (
	"regexp"
	"strings"

	"github.com/amirasaad/ledger/pkg/domain"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

// NormalizePhone strips spaces, dashes, dots and parentheses and validates what remains.
// The normalized form is the external identity key stored on the account.
func NormalizePhone(raw string) (string, error) {
	phone := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
	if !phonePattern.MatchString(phone) {
		return "", domain.ErrInvalidPhone
	}
	return phone, nil
}
