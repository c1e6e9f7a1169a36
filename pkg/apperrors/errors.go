package apperrors

import (
	"fmt"
	"net/http"
)

// AppError carries a machine code, an i18n message key and the HTTP status the
// error maps to. Services return *AppError; the HTTP layer localizes MessageKey.
type AppError struct {
	Code       ErrorCode
	MessageKey string
	HTTPCode   int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s (%v)", e.Code, e.MessageKey, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.MessageKey)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, messageKey string, httpCode int) *AppError {
	return &AppError{Code: code, MessageKey: messageKey, HTTPCode: httpCode}
}

// Wrap attaches an underlying cause for logging; the cause is never serialized.
func Wrap(err error, code ErrorCode, messageKey string, httpCode int) *AppError {
	return &AppError{Code: code, MessageKey: messageKey, HTTPCode: httpCode, Err: err}
}

func NotFound(messageKey string) *AppError {
	return New(CodeNotFound, messageKey, http.StatusNotFound)
}

func Forbidden(messageKey string) *AppError {
	return New(CodeForbidden, messageKey, http.StatusForbidden)
}

func Validation(messageKey string) *AppError {
	return New(CodeValidationFailed, messageKey, http.StatusBadRequest)
}

func Unauthorized(messageKey string) *AppError {
	return New(CodeUnauthorized, messageKey, http.StatusUnauthorized)
}

func Conflict(messageKey string) *AppError {
	return New(CodeConflict, messageKey, http.StatusConflict)
}

func Internal(err error) *AppError {
	return Wrap(err, CodeInternalError, "GLOBAL.INTERNAL_ERROR", http.StatusInternalServerError)
}
