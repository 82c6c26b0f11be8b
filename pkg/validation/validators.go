package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// E.164-style phone: optional +, first digit 1-9, at most 16 digits total.
// No spaces, dashes or parentheses.
var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)

// New returns a validator configured for form submissions: custom validators
// registered and field names reported by their json tag so clients can match
// errors to form inputs.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("intl_phone", IntlPhone)
}

// IntlPhone validates an international phone number structure
func IntlPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return phoneRegex.MatchString(val)
}
