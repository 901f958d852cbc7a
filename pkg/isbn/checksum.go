package isbn

import "fmt"

// value returns the numeric value of a digit or check symbol.
// Normalize and Classify guarantee nothing else gets here.
func value(c byte) int {
	switch {
	case isDigit(c):
		return int(c - '0')
	case isCheckSymbol(c):
		return 10
	}
	panic(fmt.Sprintf("isbn: unexpected character %q in checksum", c))
}

// Sum10 is the ISBN-10 weighted sum: the digit at index i has weight 10-i.
func Sum10(d Digits) int {
	sum := 0
	for i := 0; i < len(d); i++ {
		sum += value(d[i]) * (10 - i)
	}
	return sum
}

// CheckValue10 returns the check value in [0,10] for nine ISBN-10 digits.
func CheckValue10(d Digits) int {
	return (11 - Sum10(d)%11) % 11
}

// Valid10 reports whether a 10-character ISBN-10 has a correct check digit.
func Valid10(d Digits) bool {
	return Sum10(d)%11 == 0
}

// Sum13 is the ISBN-13 weighted sum: weight 1 at even indices, 3 at odd.
func Sum13(d Digits) int {
	sum := 0
	for i := 0; i < len(d); i++ {
		w := 1
		if i%2 == 1 {
			w = 3
		}
		sum += value(d[i]) * w
	}
	return sum
}

// CheckValue13 returns the check digit in [0,9] for twelve ISBN-13 digits.
func CheckValue13(d Digits) int {
	return (10 - Sum13(d)%10) % 10
}

// Valid13 reports whether a 13-digit ISBN-13 has a correct check digit.
func Valid13(d Digits) bool {
	return Sum13(d)%10 == 0
}

// checkChar renders a check value; 10 becomes X.
func checkChar(v int) byte {
	if v == 10 {
		return 'X'
	}
	return byte('0' + v)
}

// checkValue dispatches on the variant family.
func checkValue(v Variant, d Digits) int {
	if v.Family() == ISBN13 {
		return CheckValue13(d)
	}
	return CheckValue10(d)
}

// valid dispatches on the variant family.
func valid(v Variant, d Digits) bool {
	if v.Family() == ISBN13 {
		return Valid13(d)
	}
	return Valid10(d)
}
