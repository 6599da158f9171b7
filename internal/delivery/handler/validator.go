package handler

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"

	"hub-service/internal/apperrors"
)

// RequestValidator plugs go-playground/validator into echo. Failed fields
// are reported with the message in their `msg` tag.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if msg := field.Tag.Get("msg"); msg != "" {
			return msg
		}
		return field.Name
	})
	return &RequestValidator{validate: v}
}

func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}
	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		messages = append(messages, fieldError.Field())
	}
	return apperrors.Validation(messages...)
}
