// Package isbn validates, repairs and generates ISBN-10 and ISBN-13 identifiers.
//
// # Overview
//
// Every operation runs the same four steps:
//
//  1. [Normalize] drops everything except digits and the check symbol X.
//  2. [Classify] maps the remaining length onto a [Variant]:
//     9 and 12 characters are partial (no check digit), 10 and 13 are full.
//  3. The checksum functions ([CheckValue10], [CheckValue13], [Valid10],
//     [Valid13]) apply the ISBN-10 weights 10..1 modulo 11 or the ISBN-13
//     weights 1,3,1,3... modulo 10.
//  4. [Format] hyphenates the result.
//
// The package holds no state. All functions are safe for concurrent use,
// except that an [Entropy] passed to [Generate] is only as safe as its
// implementation.
//
// # Validating
//
//	v, err := isbn.Validate("0-306-40615-2", isbn.AnyFamily)
//	if err != nil {
//	    return err // malformed input
//	}
//	fmt.Println(v.Valid) // true
//
// # Fixing
//
// [Fix] takes an identifier without its check digit and appends the correct
// one:
//
//	s, _ := isbn.Fix("030640615")     // "0-306-40615-2"
//	s, _ = isbn.Fix("978-0-30640-615") // "978-0-30640-615-7"
//
// # Generating
//
// [Generate] draws nine digits from an [Entropy] source and fixes them:
//
//	s, err := isbn.Generate(isbn.SecureEntropy())
//
// Errors are *errors.Error values from the isbnkit errors package; use
// errors.Is with the ErrCode constants to tell them apart.
package isbn
