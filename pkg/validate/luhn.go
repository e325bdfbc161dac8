package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// IsReference accepts an empty order reference or a Luhn-valid one.
func IsReference(s string) bool {
	return s == "" || IsLuhn(s)
}
