// Package pkg holds the public isbnkit libraries.
//
// # Overview
//
//  1. [isbn] - Normalization, classification, check digits, hyphenation,
//     conversion and generation of ISBN-10 and ISBN-13 identifiers
//  2. [errors] - Coded errors shared by the engine and the CLI
//  3. [buildinfo] - Version metadata injected at build time
//
// # Data Flow
//
//	raw input
//	    ↓
//	[isbn.Normalize] (length limit, full-width fold, keep digits and X)
//	    ↓
//	[isbn.Classify] (ISBN-10/13, complete or missing its check digit)
//	    ↓
//	[isbn.Validate] / [isbn.Fix] / [isbn.To13] / [isbn.To10]
//	    ↓
//	hyphenated identifier or validation result
//
// # Quick Start
//
//	v, err := isbn.Validate("0-306-40615-2", isbn.AnyFamily)
//	if err != nil {
//	    return err // malformed input, see errors.GetCode
//	}
//	fmt.Println(v.Valid) // true
//
//	s, _ := isbn.Fix("978030640615") // "978-0-30640-615-7"
//
// The command-line front end lives in internal/cli and cmd/isbn.
//
// [isbn]: https://pkg.go.dev/github.com/matzehuels/isbnkit/pkg/isbn
// [errors]: https://pkg.go.dev/github.com/matzehuels/isbnkit/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/isbnkit/pkg/buildinfo
// [isbn.Normalize]: https://pkg.go.dev/github.com/matzehuels/isbnkit/pkg/isbn#Normalize
// [isbn.Classify]: https://pkg.go.dev/github.com/matzehuels/isbnkit/pkg/isbn#Classify
// [isbn.Validate]: https://pkg.go.dev/github.com/matzehuels/isbnkit/pkg/isbn#Validate
// [isbn.Fix]: https://pkg.go.dev/github.com/matzehuels/isbnkit/pkg/isbn#Fix
// [isbn.To13]: https://pkg.go.dev/github.com/matzehuels/isbnkit/pkg/isbn#To13
// [isbn.To10]: https://pkg.go.dev/github.com/matzehuels/isbnkit/pkg/isbn#To10
package pkg
