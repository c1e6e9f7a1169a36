package validators

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
)

// CustomValidator wires go-playground/validator into Echo.
type CustomValidator struct {
	validate *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return apperrors.Wrap(err, apperrors.CodeValidationFailed, "GLOBAL.INVALID_REQUEST", http.StatusBadRequest)
	}
	return nil
}
