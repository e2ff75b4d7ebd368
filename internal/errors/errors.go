// Package errors holds the domain error taxonomy shared by the gateway handlers.
// Each DomainError carries the HTTP status it maps to and a stable machine-readable code.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

type DomainError struct {
	Code    string
	Message string
	Status  int
	Details string
}

func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

// Is matches on Code so copies produced by WithDetails still satisfy errors.Is.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !stderrors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithDetails returns a copy of e carrying extra detail for the caller.
func (e *DomainError) WithDetails(details string) *DomainError {
	cp := *e
	cp.Details = details
	return &cp
}

// StatusOf returns the HTTP status for err, 500 for anything that is not a DomainError.
func StatusOf(err error) int {
	var de *DomainError
	if stderrors.As(err, &de) && de.Status != 0 {
		return de.Status
	}
	return http.StatusInternalServerError
}
