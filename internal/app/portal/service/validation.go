package service

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator создает валидатор, который в сообщениях использует
// имена полей из json-тегов (или form-тегов для query-параметров),
// а не имена полей Go-структур
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// toValidationError преобразует ошибку валидатора в ValidationError
// со всеми нарушенными полями, а не только первым
func toValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return NewValidationError("body", "invalid request body")
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		fields[fieldError.Field()] = violationMessage(fieldError)
	}

	return &ValidationError{Fields: fields}
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}
