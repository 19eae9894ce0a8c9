package middlewares

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct validates any struct value using the shared validator
// instance. Used for startup configuration; enquiry payloads go through
// the validation package instead, which accumulates per-rule messages
// over untyped JSON.
func ValidateStruct(v interface{}) error {
	return validate.Struct(v)
}
