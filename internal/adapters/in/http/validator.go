package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for request DTOs.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks the struct's validate tags.
func (rv *RequestValidator) Validate(i any) error {
	return rv.validate.Struct(i)
}

// validationMessages flattens a validator error into one human-readable
// message per violated field, so the client sees every problem at once
// instead of just the first.
func validationMessages(err error) []string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		messages = append(messages, messageFor(fieldError))
	}
	return messages
}

func messageFor(fieldError validator.FieldError) string {
	// "CheckoutRequest.ClientDetails.Email" -> "clientDetails.email"
	field := fieldPath(fieldError.Namespace())

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fieldError.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fieldError.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fieldError.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		idx := strings.IndexByte(part, '[')
		head := part
		tail := ""
		if idx >= 0 {
			head, tail = part[:idx], part[idx:]
		}
		if head != "" {
			head = strings.ToLower(head[:1]) + head[1:]
		}
		parts[i] = head + tail
	}
	return strings.Join(parts, ".")
}
