package isbn

import (
	"strings"

	errs "github.com/matzehuels/isbnkit/pkg/errors"
)

// Validation is the outcome of Validate.
type Validation struct {
	Input      string  // raw identifier as supplied
	Normalized Digits  // digits and check symbol only
	Variant    Variant // always a full variant
	Valid      bool
	// Check is the check character the identifier should end with.
	Check string
}

// Validate checks the check digit of a complete ISBN-10 or ISBN-13.
//
// An identifier without its check digit fails with INVALID_LENGTH, as does
// a complete identifier of the wrong family when family is not AnyFamily.
// A well-formed identifier with a wrong check digit is not an error; it is
// reported through Validation.Valid.
func Validate(raw string, family Family) (Validation, error) {
	d, v, err := parse(raw)
	if err != nil {
		return Validation{}, err
	}
	if !v.Complete() {
		return Validation{}, errs.New(errs.ErrCodeInvalidLength,
			"invalid ISBN %q: %d digits is missing its check digit (run fix to complete it)", raw, len(d))
	}
	if family != AnyFamily && v.Family() != family {
		return Validation{}, errs.New(errs.ErrCodeInvalidLength,
			"invalid %s %q: got %d characters, want %d", family, raw, len(d), lengthOf(family))
	}

	body := d[:len(d)-1]
	return Validation{
		Input:      raw,
		Normalized: d,
		Variant:    v,
		Valid:      valid(v, d),
		Check:      string(checkChar(checkValue(v, body))),
	}, nil
}

// Fix completes an identifier that is missing its check digit: nine digits
// become a hyphenated ISBN-10, twelve digits a hyphenated ISBN-13. An
// identifier that already has a check digit fails with LENGTH_MISMATCH.
func Fix(raw string) (string, error) {
	d, v, err := parse(raw)
	if err != nil {
		return "", err
	}
	if err := Expect(v, false); err != nil {
		return "", err
	}
	full, fv := complete(d, v)
	return hyphenate(fv, full), nil
}

// To13 converts a valid ISBN-10 to its 978-prefixed ISBN-13.
func To13(raw string) (string, error) {
	r, err := Validate(raw, ISBN10)
	if err != nil {
		return "", err
	}
	if !r.Valid {
		return "", errs.New(errs.ErrCodeInvalidInput, "cannot convert %q: check digit is wrong", raw)
	}
	full, v := complete("978"+r.Normalized[:9], Isbn13Partial)
	return hyphenate(v, full), nil
}

// To10 converts a valid 978-prefixed ISBN-13 to ISBN-10. 979 identifiers
// have no ISBN-10 form.
func To10(raw string) (string, error) {
	r, err := Validate(raw, ISBN13)
	if err != nil {
		return "", err
	}
	if !r.Valid {
		return "", errs.New(errs.ErrCodeInvalidInput, "cannot convert %q: check digit is wrong", raw)
	}
	if !strings.HasPrefix(string(r.Normalized), "978") {
		return "", errs.New(errs.ErrCodeInvalidInput, "cannot convert %q: only 978 ISBN-13s have an ISBN-10 form", raw)
	}
	full, v := complete(r.Normalized[3:12], Isbn10Partial)
	return hyphenate(v, full), nil
}

func parse(raw string) (Digits, Variant, error) {
	d, err := Normalize(raw)
	if err != nil {
		return "", 0, err
	}
	v, err := Classify(d)
	if err != nil {
		return "", 0, err
	}
	return d, v, nil
}

// complete appends the check character to a partial sequence.
func complete(d Digits, v Variant) (Digits, Variant) {
	full := d + Digits(checkChar(checkValue(v, d)))
	if v == Isbn13Partial {
		return full, Isbn13Full
	}
	return full, Isbn10Full
}

func lengthOf(f Family) int {
	if f == ISBN13 {
		return 13
	}
	return 10
}
