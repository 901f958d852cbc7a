package isbn

import (
	"strings"

	errs "github.com/matzehuels/isbnkit/pkg/errors"
)

// Hyphen positions: a hyphen is written before each index.
//
//	ISBN-10  D-DDD-DDDDD-C        group, publisher, title, check
//	ISBN-13  DDD-D-DDDDD-DDD-C    prefix, group, publisher, title, check
var (
	breaks10 = []int{1, 4, 9}
	breaks13 = []int{3, 4, 9, 12}
)

// Format hyphenates a complete ISBN-10 or ISBN-13. It does not verify the
// check digit; a lower-case x is written as X.
func Format(d Digits) (string, error) {
	v, err := Classify(d)
	if err != nil {
		return "", err
	}
	if !v.Complete() {
		return "", errs.New(errs.ErrCodeLengthMismatch, "cannot format %s: check digit missing", d)
	}
	return hyphenate(v, d), nil
}

func hyphenate(v Variant, d Digits) string {
	breaks := breaks10
	if v.Family() == ISBN13 {
		breaks = breaks13
	}

	var b strings.Builder
	b.Grow(len(d) + len(breaks))
	next := 0
	for i := 0; i < len(d); i++ {
		if next < len(breaks) && breaks[next] == i {
			b.WriteByte('-')
			next++
		}
		c := d[i]
		if c == 'x' {
			c = 'X'
		}
		b.WriteByte(c)
	}
	return b.String()
}
