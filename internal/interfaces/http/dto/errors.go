package dto

import "net/http"

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is used when request binding or validation fails
	ErrCodeValidation = "VALIDATION_ERROR"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeDuplicateName is used when a supplier name is already taken
	ErrCodeDuplicateName = "DUPLICATE_NAME"
)

// Business rule error codes
const (
	// ErrCodeSupplierNotFound is used when a toy references a missing supplier
	ErrCodeSupplierNotFound = "SUPPLIER_NOT_FOUND"
	// ErrCodeSpecialtyMismatch is used when a toy's category does not match
	// its supplier's specialty
	ErrCodeSpecialtyMismatch = "SPECIALTY_MISMATCH"
	// ErrCodeSpecialtyLocked is used when a specialty change is blocked by
	// dependent toys
	ErrCodeSpecialtyLocked = "SPECIALTY_LOCKED"
	// ErrCodeHasDependentToys is used when a supplier delete is blocked
	ErrCodeHasDependentToys = "HAS_DEPENDENT_TOYS"
)

// Input error codes
const (
	// ErrCodeInvalidEmail is used for malformed email addresses
	ErrCodeInvalidEmail = "INVALID_EMAIL"
	// ErrCodeInvalidName is used for empty or malformed names
	ErrCodeInvalidName = "INVALID_NAME"
	// ErrCodeInvalidPrice is used for negative prices
	ErrCodeInvalidPrice = "INVALID_PRICE"
	// ErrCodeInvalidRange is used when min_price exceeds max_price
	ErrCodeInvalidRange = "INVALID_RANGE"
	// ErrCodeInvalidDiscount is used for discounts outside 1-90
	ErrCodeInvalidDiscount = "INVALID_DISCOUNT"
	// ErrCodeNoFieldsProvided is used for empty partial updates
	ErrCodeNoFieldsProvided = "NO_FIELDS_PROVIDED"
)

// Infrastructure error codes
const (
	// ErrCodeStoreUnavailable is used when the data store cannot be reached
	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeDuplicateName: http.StatusConflict,

	// Referencing a missing supplier or breaking the specialty rule is a
	// client input problem, not a lookup failure
	ErrCodeSupplierNotFound:  http.StatusBadRequest,
	ErrCodeSpecialtyMismatch: http.StatusBadRequest,
	ErrCodeSpecialtyLocked:   http.StatusConflict,
	ErrCodeHasDependentToys:  http.StatusConflict,

	ErrCodeInvalidEmail:     http.StatusBadRequest,
	ErrCodeInvalidName:      http.StatusBadRequest,
	ErrCodeInvalidPrice:     http.StatusBadRequest,
	ErrCodeInvalidRange:     http.StatusBadRequest,
	ErrCodeInvalidDiscount:  http.StatusBadRequest,
	ErrCodeNoFieldsProvided: http.StatusBadRequest,

	ErrCodeStoreUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
