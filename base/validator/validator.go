package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// IsValidUsername reports whether a username is plausible input for the
// identity service: non-empty after trimming and free of whitespace. The
// exact character rules belong to the upstream, not us.
func IsValidUsername(username string) bool {
	trimmed := strings.TrimSpace(username)
	return trimmed != "" && !strings.ContainsAny(trimmed, " \t\r\n")
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
