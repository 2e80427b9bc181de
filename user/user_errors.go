package user

import "errors"

var ErrUserNotFound = errors.New("user not found")

var ErrEmailTaken = errors.New("email already registered")

var ErrInvalidCredentials = errors.New("invalid email or password")

// FieldErrors collects validation messages per registration field.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "user validation failed"
}
