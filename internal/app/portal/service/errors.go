package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// Ошибки бизнес-логики для обработки в handlers
	ErrRecordNotFound = errors.New("record not found")
)

// ValidationError перечисляет все нарушенные ограничения, а не только первое
// Ключ - имя поля в JSON, значение - сообщение о нарушении
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError создает ошибку валидации для одного поля
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
