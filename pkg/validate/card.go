package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsCardNumber reports whether a membership card number carries a valid Luhn
// check digit. An empty string has no check digit to validate and is never
// a valid card.
func IsCardNumber(s string) bool {
	if s == "" {
		return false
	}
	err := goluhn.Validate(s)
	return err == nil
}
