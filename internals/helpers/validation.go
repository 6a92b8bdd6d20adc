// file: internals/helpers/validation.go
package helper

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs validator.v10 and flattens the result into the
// field->messages map JsonValidationError expects.
func ValidateStruct(s any) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"invalid input"}
		return out
	}

	for _, fe := range ve {
		field := fe.Field()
		var msg string
		switch fe.Tag() {
		case "required":
			msg = field + " is required."
		case "email":
			msg = "invalid email format."
		case "min":
			msg = field + " must be at least " + fe.Param() + " characters."
		case "max":
			msg = field + " must be at most " + fe.Param() + " characters."
		case "oneof":
			msg = field + " must be one of: " + fe.Param() + "."
		case "gt":
			msg = field + " must be greater than " + fe.Param() + "."
		case "uuid":
			msg = field + " must be a valid UUID."
		default:
			msg = field + " has an invalid format."
		}
		out[field] = append(out[field], msg)
	}
	return out
}
