package dto

import "net/http"

// domainCodeHTTPStatus maps domain error codes to HTTP status codes
var domainCodeHTTPStatus = map[string]int{
	"NOT_FOUND":           http.StatusNotFound,
	"ALREADY_EXISTS":      http.StatusConflict,
	"VALIDATION_ERROR":    http.StatusBadRequest,
	"INVALID_INPUT":       http.StatusBadRequest,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"FORBIDDEN":           http.StatusForbidden,
	"STORAGE_DISABLED":    http.StatusServiceUnavailable,
	"STORAGE_ERROR":       http.StatusInternalServerError,
	"PASSWORD_HASH_ERROR": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for a domain error code,
// defaulting to 500 for anything unmapped
func GetHTTPStatus(code string) int {
	if status, ok := domainCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
