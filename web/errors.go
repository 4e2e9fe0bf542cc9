package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound    ErrorType = "NOT_FOUND"
	ErrorTypeUnavailable ErrorType = "CATALOG_UNAVAILABLE"
	ErrorTypeInternal    ErrorType = "INTERNAL_ERROR"
)

type APIError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *APIError {
	return &APIError{Type: ErrorTypeValidation, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...any) *APIError {
	return &APIError{Type: ErrorTypeNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewUnavailableError(err error) *APIError {
	return &APIError{Type: ErrorTypeUnavailable, Message: "Catalog unavailable", Details: err.Error()}
}

func NewInternalError(err error) *APIError {
	return &APIError{Type: ErrorTypeInternal, Message: "Internal server error", Details: err.Error()}
}

func statusFor(t ErrorType) int {
	switch t {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		apiErr = NewInternalError(err)
	}
	writeJSON(w, statusFor(apiErr.Type), apiErr)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
