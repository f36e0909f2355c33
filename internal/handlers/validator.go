package handlers

import (
	"receipt-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator on top of the shared rule set
type CustomValidator struct {
	validator *validation.Validator
}

func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
