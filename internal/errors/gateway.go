package errors

import (
	"fmt"
	"net/http"
)

// Client input errors. Never audit-logged.
var (
	ErrInvalidBody = &DomainError{
		Code:    "INVALID_REQUEST",
		Message: "Invalid request body",
		Status:  http.StatusBadRequest,
	}
	ErrInvalidAction = &DomainError{
		Code:    "INVALID_ACTION",
		Message: "Invalid action",
		Status:  http.StatusBadRequest,
	}
	ErrInvalidEndpoint = &DomainError{
		Code:    "INVALID_ENDPOINT",
		Message: "Invalid endpoint",
		Status:  http.StatusBadRequest,
	}
)

var (
	ErrRateLimitExceeded = &DomainError{
		Code:    "rate_limit_exceeded",
		Message: "Too many requests. Please try again later.",
		Status:  http.StatusTooManyRequests,
	}
	ErrCredentialsNotFound = &DomainError{
		Code:    "CREDENTIALS_NOT_FOUND",
		Message: "Merchant credentials not found",
		Status:  http.StatusNotFound,
	}
	ErrUpstreamFailed = &DomainError{
		Code:    "UPSTREAM_ERROR",
		Message: "Upstream request failed",
		Status:  http.StatusInternalServerError,
	}
	ErrInternal = &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Status:  http.StatusInternalServerError,
	}
)

// MissingField reports a required request field that was absent or blank.
func MissingField(field string) *DomainError {
	return &DomainError{
		Code:    "MISSING_FIELD",
		Message: fmt.Sprintf("%s is required", field),
		Status:  http.StatusBadRequest,
	}
}

// InvalidField reports a present field whose value is not accepted.
func InvalidField(field string) *DomainError {
	return &DomainError{
		Code:    "INVALID_FIELD",
		Message: fmt.Sprintf("%s is invalid", field),
		Status:  http.StatusBadRequest,
	}
}

// CapabilityDisabled reports an optional payment method the merchant has not enabled.
func CapabilityDisabled(name string) *DomainError {
	return &DomainError{
		Code:    "CAPABILITY_DISABLED",
		Message: fmt.Sprintf("%s not enabled for this merchant", name),
		Status:  http.StatusBadRequest,
	}
}
