package shared

// DomainError represents a domain-level error with a stable code that
// the HTTP layer maps to a status
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientStock   = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
)

// Error codes raised by value objects and services. Constructors fail
// fast with these; ValidateSale is the one deliberate exception that
// accumulates messages instead of failing on the first violation.
const (
	CodeInvalidAmount           = "INVALID_AMOUNT"
	CodeInvalidFactor           = "INVALID_FACTOR"
	CodeInvalidEmailFormat      = "INVALID_EMAIL_FORMAT"
	CodeInvalidQuantity         = "INVALID_QUANTITY"
	CodeInvalidDiscount         = "INVALID_DISCOUNT"
	CodeInvalidCommissionRate   = "INVALID_COMMISSION_RATE"
	CodeDuplicateEmail          = "DUPLICATE_EMAIL"
	CodeCannotDeleteWithBalance = "CANNOT_DELETE_WITH_BALANCE"
)
