package street

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"streetmatch/internal/textutil"
)

// ErrMissingStreetNumber marks an address without any digit.
var ErrMissingStreetNumber = errors.New("address has no street number")

var (
	leadingNumber  = regexp.MustCompile(`^\d+,?\s.+`)
	leadingUnit    = regexp.MustCompile(`^[\p{L}\p{N}_]\d+,?\s`)
	trailingLetter = regexp.MustCompile(`\s\d*?\s[a-zA-Z]$`)
	unitSuffix     = regexp.MustCompile(`(.*?\s\d*?\s?[a-zA-Z]?)[./,\-+\s–]`)
)

// Normalizer cleans street addresses on top of a text normalizer.
type Normalizer struct {
	Text textutil.Normalizer
}

// Normalize returns raw with its street comparison form.
func (n Normalizer) Normalize(raw string) textutil.Text {
	return textutil.Text{Original: raw, Cleaned: n.Clean(raw)}
}

// Clean returns the street comparison form of raw. Unicode spaces are
// folded to ASCII before the street rules apply.
func (n Normalizer) Clean(raw string) string {
	s := n.Text.Fold(strings.TrimSpace(raw))
	s = rotateLeadingNumber(s)
	s = dropUnitSuffix(s)
	return textutil.StripPunctuation(strings.TrimSpace(s))
}

// Normalize cleans raw with the default normalizer.
func Normalize(raw string) textutil.Text {
	return Normalizer{}.Normalize(raw)
}

// HasStreetNumber reports whether raw contains a digit.
func HasStreetNumber(raw string) bool {
	return strings.ContainsFunc(raw, unicode.IsDigit)
}

// RequireStreetNumber returns ErrMissingStreetNumber when raw has no digit.
func RequireStreetNumber(raw string) error {
	if HasStreetNumber(raw) {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrMissingStreetNumber, raw)
}

// rotateLeadingNumber turns "4 bernstrasse" into "bernstrasse 4".
func rotateLeadingNumber(s string) string {
	if !leadingNumber.MatchString(s) && !leadingUnit.MatchString(s) {
		return s
	}
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return s
	}
	return strings.Join(append(fields[1:], fields[0]), " ")
}

// dropUnitSuffix keeps "<name> <number><letter>" and discards what follows
// the next separator. A lone trailing letter after the number ("7 a") is
// kept as part of the house number.
func dropUnitSuffix(s string) string {
	if trailingLetter.MatchString(s) {
		return s
	}
	if match := unitSuffix.FindString(s); match != "" {
		return match
	}
	return s
}
