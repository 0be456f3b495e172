// Package provider defines the uniform LLM provider contract: request and
// response types, the adapter interface, per-provider pricing tables, and
// the closed error taxonomy every backend failure maps into.
package provider

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Code is a stable, user-visible error code. Every failure in the
// provider path maps to exactly one.
type Code string

// The closed error taxonomy.
const (
	CodeInvalidRequest      Code = "INVALID_REQUEST"
	CodeUnauthorized        Code = "UNAUTHORIZED"
	CodeBudgetExceeded      Code = "COST_LIMIT_EXCEEDED"
	CodeRateLimited         Code = "RATE_LIMIT_EXCEEDED"
	CodeProviderUnavailable Code = "PROVIDER_UNAVAILABLE"
	CodeQuotaExceeded       Code = "QUOTA_EXCEEDED"
	CodeTimeout             Code = "TIMEOUT"
	CodeCancelled           Code = "CANCELLED"
	CodeStorageFailure      Code = "STORAGE_FAILURE"
	CodeVerificationFailed  Code = "VERIFICATION_FAILED"
	CodeAllProvidersFailed  Code = "ALL_PROVIDERS_FAILED"
	CodeAuditNotFound       Code = "AUDIT_NOT_FOUND"
)

// Error is the typed error carried through the gateway and surfaced on
// the event bus. Adapter-level errors are always wrapped into one —
// raw backend errors never leak past the adapter.
type Error struct {
	Code       Code
	Provider   string
	Message    string
	RetryAfter time.Duration // populated for RateLimited when known
	Err        error         // wrapped cause, may be nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	if e.Provider != "" {
		b.WriteString(" (" + e.Provider + ")")
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.Err }

// NewError builds a taxonomy error.
func NewError(code Code, providerName, message string) *Error {
	return &Error{Code: code, Provider: providerName, Message: message}
}

// WrapError builds a taxonomy error around a cause.
func WrapError(code Code, providerName string, err error) *Error {
	return &Error{Code: code, Provider: providerName, Err: err}
}

// CodeOf extracts the taxonomy code from err, or ProviderUnavailable for
// untyped errors (conservative: untyped failures are treated as transient).
func CodeOf(err error) Code {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return CodeProviderUnavailable
}

// IsRetryable reports whether the gateway retry loop may retry err.
// RateLimited, ProviderUnavailable and Timeout are retryable; everything
// else is terminal for the current provider.
func IsRetryable(err error) bool {
	switch CodeOf(err) {
	case CodeRateLimited, CodeProviderUnavailable, CodeTimeout:
		return true
	default:
		return false
	}
}

// Recoverable reports whether the caller can reasonably retry the whole
// operation later. Used for the recoverable flag on error events.
func Recoverable(err error) bool {
	switch CodeOf(err) {
	case CodeRateLimited, CodeProviderUnavailable, CodeTimeout, CodeBudgetExceeded:
		return true
	default:
		return false
	}
}

// RetryAfterOf returns the retry-after hint carried by err, if any.
func RetryAfterOf(err error) time.Duration {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.RetryAfter
	}
	return 0
}

// AllFailedError aggregates per-provider causes after the gateway has
// exhausted the provider list.
type AllFailedError struct {
	Causes map[string]error // provider name → terminal error
}

// Error implements the error interface.
func (e *AllFailedError) Error() string {
	parts := make([]string, 0, len(e.Causes))
	for name, cause := range e.Causes {
		parts = append(parts, fmt.Sprintf("%s: %v", name, cause))
	}
	return string(CodeAllProvidersFailed) + ": " + strings.Join(parts, "; ")
}

// TaxonomyCode lets AllFailedError participate in CodeOf via errors.As
// on *Error — it converts itself into a taxonomy error.
func (e *AllFailedError) As(target any) bool {
	if pe, ok := target.(**Error); ok {
		*pe = &Error{Code: CodeAllProvidersFailed, Message: e.Error()}
		return true
	}
	return false
}
