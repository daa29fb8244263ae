package service

import (
	"errors"
	"fmt"

	"go-salestrack/pkg/validator"
)

// ErrValidation wraps request-validation failures so handlers can map them to
// a 400 response
var ErrValidation = errors.New("Validation failed")

func validateStruct(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("%w: Field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}
	return nil
}
