package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs the `validate` struct tags on a domain value and
// returns the offending fields mapped to the rule each one broke, or
// nil when the value is well formed. Reservation payloads pass through
// here before they reach a repository, so a stay can never be stored
// without a room, guest or date range.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
