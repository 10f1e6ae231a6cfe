// Package apierror carries HTTP-mapped errors from the service layer to the
// handlers. Every 4xx/5xx body is the envelope {"detail": "..."} so clients
// can surface one message field regardless of the failure class.
package apierror

import (
	"errors"
	"net/http"
)

type APIError struct {
	Status int    `json:"-"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	return e.Detail
}

func New(status int, detail string) *APIError {
	return &APIError{Status: status, Detail: detail}
}

func BadRequest(detail string) *APIError {
	return New(http.StatusBadRequest, detail)
}

func Unauthorized(detail string) *APIError {
	return New(http.StatusUnauthorized, detail)
}

func Forbidden(detail string) *APIError {
	return New(http.StatusForbidden, detail)
}

func NotFound(detail string) *APIError {
	return New(http.StatusNotFound, detail)
}

func Conflict(detail string) *APIError {
	return New(http.StatusConflict, detail)
}

// StatusOf maps any error to an HTTP status, defaulting to 500.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}
