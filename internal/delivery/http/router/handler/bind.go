package handler

import (
	"storm/internal/delivery/http/response"
	"storm/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate decodes the body into req and checks its rules.
// When it returns false the 400 response has already been written.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Request body must be a JSON object")
	}

	if err := c.Validate(req); err != nil {
		var validationErr *validator.ValidationError
		if errors.As(err, &validationErr) {
			return false, response.ValidationError(c, validationErr.Error())
		}

		return false, errors.WithStack(err)
	}

	return true, nil
}
