package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/constants"
)

// Validator aplica as tags `validate` dos structs de requisição.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}
	return nil
}
