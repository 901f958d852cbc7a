package errors

import (
	"slices"
	"strings"
)

// ValidateOption checks that value is one of allowed.
// Comparison is case-insensitive and ignores surrounding whitespace;
// the error lists the accepted values.
func ValidateOption(name, value string, allowed []string) error {
	v := strings.ToLower(strings.TrimSpace(value))
	if slices.Contains(allowed, v) {
		return nil
	}
	return New(ErrCodeInvalidInput, "invalid %s %q (want one of: %s)", name, value, strings.Join(allowed, ", "))
}
