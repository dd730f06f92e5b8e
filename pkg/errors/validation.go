package errors

import (
	"slices"
	"strings"
)

// ValidateNonNegative rejects negative numeric options such as window or
// chunk sizes. Zero is allowed and conventionally means "unbounded" or
// "disabled".
func ValidateNonNegative(name string, v int) error {
	if v < 0 {
		return New(ErrCodeInvalidOption, "%s must not be negative (got %d)", name, v)
	}
	return nil
}

// ValidateChoice checks that value is one of choices.
// The comparison is case-sensitive; the error lists the accepted values.
func ValidateChoice(name, value string, choices []string) error {
	if slices.Contains(choices, value) {
		return nil
	}
	return New(ErrCodeInvalidOption, "invalid %s: %q (must be one of: %s)", name, value, strings.Join(choices, ", "))
}
