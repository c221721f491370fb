// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "shuttle/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a single validator.Validate instance; it caches struct
// metadata, so one instance serves the whole server.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator installed on the echo server.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks the bound request payload against its `validate` tags and
// converts failures into the domain validation error.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
