package provider

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "typed error",
			err:      NewError(CodeRateLimited, "openai", "slow down"),
			expected: CodeRateLimited,
		},
		{
			name:     "wrapped typed error",
			err:      fmt.Errorf("search: %w", NewError(CodeTimeout, "google", "")),
			expected: CodeTimeout,
		},
		{
			name:     "untyped error is treated as transient",
			err:      errors.New("connection reset"),
			expected: CodeProviderUnavailable,
		},
		{
			name:     "all-failed aggregate",
			err:      &AllFailedError{Causes: map[string]error{"openai": errors.New("boom")}},
			expected: CodeAllProvidersFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CodeOf(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NewError(CodeRateLimited, "p", "")))
	assert.True(t, IsRetryable(NewError(CodeProviderUnavailable, "p", "")))
	assert.True(t, IsRetryable(NewError(CodeTimeout, "p", "")))

	assert.False(t, IsRetryable(NewError(CodeUnauthorized, "p", "")))
	assert.False(t, IsRetryable(NewError(CodeInvalidRequest, "p", "")))
	assert.False(t, IsRetryable(NewError(CodeQuotaExceeded, "p", "")))
	assert.False(t, IsRetryable(NewError(CodeCancelled, "p", "")))
	assert.False(t, IsRetryable(NewError(CodeBudgetExceeded, "p", "")))
}

func TestRetryAfterOf(t *testing.T) {
	e := NewError(CodeRateLimited, "p", "")
	e.RetryAfter = 7 * time.Second
	assert.Equal(t, 7*time.Second, RetryAfterOf(e))
	assert.Equal(t, time.Duration(0), RetryAfterOf(errors.New("plain")))
}

func TestErrorString(t *testing.T) {
	e := WrapError(CodeProviderUnavailable, "cohere", errors.New("dial tcp: refused"))
	assert.Contains(t, e.Error(), "PROVIDER_UNAVAILABLE")
	assert.Contains(t, e.Error(), "cohere")
	assert.Contains(t, e.Error(), "refused")
}
