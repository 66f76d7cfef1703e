package internal

import (
	"errors"
	"fmt"
)

// AppError is the error shape carried in API responses.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func NewAppError(code int, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}

var (
	ErrEmptyName         = errors.New("app name cannot be empty")
	ErrMissingDate       = errors.New("please enter a valid date")
	ErrMissingCollection = errors.New("please select a collection")
)

// InvalidRangeError reports a numeric field outside its allowed range.
// Max < 0 means the field has no upper bound.
type InvalidRangeError struct {
	Field string
	Min   int64
	Max   int64
}

func (e *InvalidRangeError) Error() string {
	if e.Max < 0 {
		return fmt.Sprintf("%s must be a non-negative integer", e.Field)
	}
	return fmt.Sprintf("%s must be between %d and %d", e.Field, e.Min, e.Max)
}

// NonIntegerError reports a numeric field that did not parse as an integer.
type NonIntegerError struct {
	Field string
}

func (e *NonIntegerError) Error() string {
	return fmt.Sprintf("%s must be a valid integer", e.Field)
}

// StoreWriteError wraps a failed document insert. Session state is left
// untouched so the user can retry without re-entering data.
type StoreWriteError struct {
	Collection string
	Err        error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("failed to insert into collection %q: %v", e.Collection, e.Err)
}

func (e *StoreWriteError) Unwrap() error { return e.Err }
