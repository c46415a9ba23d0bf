// Package validator registers the custom binding rules.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// maxBinCodeLength bounds the printed label on a bin.
const maxBinCodeLength = 32

// binCodeRegex matches bin codes: letters and digits in groups joined by a
// single hyphen or underscore, e.g. "b-101" or "LIB_2".
var binCodeRegex = regexp.MustCompile(`^[A-Za-z0-9]+([-_][A-Za-z0-9]+)*$`)

// validateBinCode validates that a string is a usable bin code
func validateBinCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	return len(code) <= maxBinCodeLength && binCodeRegex.MatchString(code)
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("bincode", validateBinCode)
	}
}
