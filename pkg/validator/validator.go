package validator

import (
	"github.com/go-playground/validator/v10"
)

// ErrorResponse describes one failed validation rule on a request struct
type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

// ValidateStruct runs the struct's validate tags and collects every failure
func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	if err := validate.Struct(data); err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			errors = append(errors, &ErrorResponse{
				FailedField: err.StructNamespace(),
				Tag:         err.Tag(),
				Value:       err.Param(),
			})
		}
	}
	return errors
}
