package isbn

import (
	"strings"

	errs "github.com/matzehuels/isbnkit/pkg/errors"
)

// Family selects ISBN-10 or ISBN-13.
type Family int

const (
	// AnyFamily accepts either family.
	AnyFamily Family = 0
	ISBN10    Family = 10
	ISBN13    Family = 13
)

// String returns "ISBN-10", "ISBN-13" or "any".
func (f Family) String() string {
	switch f {
	case ISBN10:
		return "ISBN-10"
	case ISBN13:
		return "ISBN-13"
	default:
		return "any"
	}
}

// ParseFamily maps "auto"/"any"/"" to AnyFamily and "10"/"isbn10"/"isbn-10"
// (and the 13 equivalents) to the matching family.
func ParseFamily(s string) (Family, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "") {
	case "", "auto", "any":
		return AnyFamily, nil
	case "10", "isbn10":
		return ISBN10, nil
	case "13", "isbn13":
		return ISBN13, nil
	}
	return AnyFamily, errs.New(errs.ErrCodeInvalidInput, "invalid ISBN family %q (want auto, 10 or 13)", s)
}

// Variant is the ISBN shape implied by a normalized length.
type Variant int

const (
	// Isbn10Partial is nine digits with the check digit missing.
	Isbn10Partial Variant = iota + 1
	// Isbn10Full is nine digits plus a check digit or X.
	Isbn10Full
	// Isbn13Partial is twelve digits with the check digit missing.
	Isbn13Partial
	// Isbn13Full is thirteen digits.
	Isbn13Full
)

var variantNames = map[Variant]string{
	Isbn10Partial: "isbn10-partial",
	Isbn10Full:    "isbn10",
	Isbn13Partial: "isbn13-partial",
	Isbn13Full:    "isbn13",
}

func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}
	return "unknown"
}

// Family reports ISBN10 or ISBN13.
func (v Variant) Family() Family {
	switch v {
	case Isbn10Partial, Isbn10Full:
		return ISBN10
	case Isbn13Partial, Isbn13Full:
		return ISBN13
	}
	return AnyFamily
}

// Complete reports whether the variant carries its check digit.
func (v Variant) Complete() bool {
	return v == Isbn10Full || v == Isbn13Full
}

// Len is the number of characters a sequence of this variant has.
func (v Variant) Len() int {
	switch v {
	case Isbn10Partial:
		return 9
	case Isbn10Full:
		return 10
	case Isbn13Partial:
		return 12
	case Isbn13Full:
		return 13
	}
	return 0
}

// Classify derives the variant from the length of d.
//
// Lengths other than 9, 10, 12 and 13 fail with INVALID_LENGTH. A check
// symbol is only legal as the last character of a 10-character sequence;
// anywhere else it fails with INVALID_CHECK_SYMBOL.
func Classify(d Digits) (Variant, error) {
	var v Variant
	switch len(d) {
	case 9:
		v = Isbn10Partial
	case 10:
		v = Isbn10Full
	case 12:
		v = Isbn13Partial
	case 13:
		v = Isbn13Full
	default:
		return 0, errs.New(errs.ErrCodeInvalidLength,
			"invalid ISBN: %d digits (want 9 or 12 without check digit, 10 or 13 with)", len(d))
	}

	for i := 0; i < len(d); i++ {
		if !isCheckSymbol(d[i]) {
			continue
		}
		if v != Isbn10Full || i != len(d)-1 {
			return 0, errs.New(errs.ErrCodeInvalidCheckSymbol,
				"invalid ISBN %s: X is only allowed as the last character of an ISBN-10", d)
		}
	}
	return v, nil
}

// Expect fails with LENGTH_MISMATCH when v's completeness differs from
// complete, i.e. when a check digit is present but the operation expects
// none, or the reverse.
func Expect(v Variant, complete bool) error {
	if v.Complete() == complete {
		return nil
	}
	if complete {
		return errs.New(errs.ErrCodeLengthMismatch,
			"expected a complete %s but got %d digits without a check digit", v.Family(), v.Len())
	}
	return errs.New(errs.ErrCodeLengthMismatch,
		"expected an %s without check digit (%d digits) but got %d characters; use check to validate it",
		v.Family(), v.Len()-1, v.Len())
}
