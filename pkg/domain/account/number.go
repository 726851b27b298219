package account

import (
	"fmt"
	"regexp"
)

// NumberPrefix is the fixed institution prefix of every account number.
const NumberPrefix = "4501"

const (
	// MinNumberSuffix and MaxNumberSuffix bound the random 6-digit part.
	MinNumberSuffix = 100000
	MaxNumberSuffix = 999999
)

var numberPattern = regexp.MustCompile(`^` + NumberPrefix + `[1-9][0-9]{5}$`)

// Number is an account number: NumberPrefix followed by six digits, stored ungrouped.
type Number string

// NewNumber builds an account number from a 6-digit suffix.
func NewNumber(suffix int) (Number, error) {
	if suffix < MinNumberSuffix || suffix > MaxNumberSuffix {
		return "", fmt.Errorf("account number suffix %d out of range", suffix)
	}
	return Number(fmt.Sprintf("%s%06d", NumberPrefix, suffix)), nil
}

// Valid reports whether n has the prefix + 6 digits form.
func (n Number) Valid() bool {
	return numberPattern.MatchString(string(n))
}

// Display groups the number for readability, e.g. 4501-123-456.
func (n Number) Display() string {
	s := string(n)
	if !n.Valid() {
		return s
	}
	return s[:4] + "-" + s[4:7] + "-" + s[7:]
}

func (n Number) String() string {
	return string(n)
}
