package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
)

// domainErrorHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed fall back on the prefix rules in GetHTTPStatus.
var domainErrorHTTPStatus = map[string]int{
	"NOT_FOUND":      http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,

	// Optimistic lock and in-flight dedup both surface as conflicts the
	// caller should retry or drop.
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"OPERATION_IN_FLIGHT":  http.StatusConflict,

	// Business rule violations
	"INVALID_STATE":     http.StatusUnprocessableEntity,
	"ALREADY_PAID":      http.StatusUnprocessableEntity,
	"NO_RECIPIENTS":     http.StatusUnprocessableEntity,
	"VALIDATION_ERRORS": http.StatusUnprocessableEntity,

	// Upstream provider failures
	"CALENDAR_SYNC_FAILED":  http.StatusBadGateway,
	"EXTRACTION_FAILED":     http.StatusBadGateway,
	"EXTRACTOR_UNAVAILABLE": http.StatusServiceUnavailable,

	// Input errors
	"INVALID_INPUT": http.StatusBadRequest,

	// Envelope codes
	ErrCodeUnknown:    http.StatusInternalServerError,
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeNotFound:   http.StatusNotFound,
	ErrCodeValidation: http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code. Codes
// starting with INVALID_ are field validation failures and map to 400;
// anything unknown is treated as an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := domainErrorHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
