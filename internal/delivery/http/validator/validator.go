// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "vestira/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the Echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags on a bound request body. Failures surface
// as the generic validation error so field internals never reach the wire.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidation.WithDetails(err.Error())
	}

	return nil
}
