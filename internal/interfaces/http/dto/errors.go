package dto

import "net/http"

// domainCodeHTTPStatus maps domain error codes to HTTP status codes.
// Validation failures from value-object constructors are 400s, conflicts
// with existing state are 409s, and business-rule refusals are 422s.
var domainCodeHTTPStatus = map[string]int{
	// Resource lookups
	"NOT_FOUND":         http.StatusNotFound,
	"PRODUCT_NOT_FOUND": http.StatusNotFound,

	// Conflicts
	"ALREADY_EXISTS":       http.StatusConflict,
	"DUPLICATE_EMAIL":      http.StatusConflict,
	"DUPLICATE_SKU":        http.StatusConflict,
	"SUBDOMAIN_TAKEN":      http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Authentication / authorization
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"INVALID_TOKEN":       http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,
	"FORBIDDEN":           http.StatusForbidden,
	"USER_INACTIVE":       http.StatusForbidden,
	"TENANT_INACTIVE":     http.StatusForbidden,

	// Business rules
	"INVALID_STATE":              http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":         http.StatusUnprocessableEntity,
	"CANNOT_DELETE_WITH_BALANCE": http.StatusUnprocessableEntity,
	"PRODUCT_INACTIVE":           http.StatusUnprocessableEntity,
	"CUSTOMER_REQUIRED":          http.StatusUnprocessableEntity,

	// Input validation
	"INVALID_INPUT":           http.StatusBadRequest,
	"VALIDATION_FAILED":       http.StatusBadRequest,
	"INVALID_AMOUNT":          http.StatusBadRequest,
	"INVALID_FACTOR":          http.StatusBadRequest,
	"INVALID_EMAIL_FORMAT":    http.StatusBadRequest,
	"INVALID_QUANTITY":        http.StatusBadRequest,
	"INVALID_DISCOUNT":        http.StatusBadRequest,
	"INVALID_COMMISSION_RATE": http.StatusBadRequest,
	"INVALID_NAME":            http.StatusBadRequest,
	"INVALID_SKU":             http.StatusBadRequest,
	"INVALID_THRESHOLD":       http.StatusBadRequest,
	"INVALID_SUBDOMAIN":       http.StatusBadRequest,
	"INVALID_ROLE":            http.StatusBadRequest,
	"INVALID_PASSWORD":        http.StatusBadRequest,
	"INVALID_PAYMENT_METHOD":  http.StatusBadRequest,
	"INVALID_MOVEMENT_TYPE":   http.StatusBadRequest,
	"BAD_REQUEST":             http.StatusBadRequest,
}

// Codes raised by the HTTP layer itself
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// HTTPStatusForCode returns the HTTP status for a domain error code,
// defaulting to 500 for unknown codes
func HTTPStatusForCode(code string) int {
	if status, ok := domainCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
