package isbn

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"

	errs "github.com/matzehuels/isbnkit/pkg/errors"
)

// MaxInputLen is the longest raw identifier accepted, in characters.
// It leaves room for a 13-digit ISBN with four hyphens.
const MaxInputLen = 17

// Digits is a normalized identifier: only '0'-'9', 'x' and 'X', in input order.
type Digits string

// Normalize strips every character that is neither a decimal digit nor a
// check symbol. Full-width forms are narrowed first so full-width digits
// count; other look-alikes such as circled or Roman numerals are dropped.
// Raw input longer than MaxInputLen characters fails with INPUT_TOO_LONG.
func Normalize(raw string) (Digits, error) {
	if n := utf8.RuneCountInString(raw); n > MaxInputLen {
		return "", errs.New(errs.ErrCodeInputTooLong,
			"invalid ISBN %q: %d characters exceeds the limit of %d (did you use too many hyphens?)", raw, n, MaxInputLen)
	}

	folded := width.Narrow.String(raw)
	var b strings.Builder
	b.Grow(len(folded))
	for i := 0; i < len(folded); i++ {
		if c := folded[i]; isDigit(c) || isCheckSymbol(c) {
			b.WriteByte(c)
		}
	}
	return Digits(b.String()), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isCheckSymbol(c byte) bool { return c == 'X' || c == 'x' }
