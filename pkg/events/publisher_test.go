package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(StageCompletePayload{
			Type:    EventTypeStageComplete,
			AuditID: "abc-123",
			Stage:   StageFanOut,
			Status:  "completed",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeStageComplete)
		assert.Contains(t, result, "abc-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(ErrorPayload{
			Type:    EventTypeAuditError,
			AuditID: "abc-123",
			Message: strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(ErrorPayload{
			Type:    EventTypeAuditError,
			AuditID: "audit-789",
			Message: strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeAuditError)
		assert.Contains(t, result, "audit-789")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Measure the fixed-field overhead first; the 20-byte margin keeps
		// the test stable if non-zero-default fields are added later.
		base, _ := json.Marshal(ErrorPayload{Type: "t"})
		payload, _ := json.Marshal(ErrorPayload{
			Type:    "t",
			Message: strings.Repeat("b", 7900-len(base)-20),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(AuditStatusPayload{
			Type:    EventTypeAuditStatus,
			AuditID: "audit-1",
			Status:  "running",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "audit-1")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(ErrorPayload{
			Type:    EventTypeAuditError,
			AuditID: "audit-789",
			Message: strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "audit-789")
	})

	t.Run("rejects non-JSON payload", func(t *testing.T) {
		_, err := injectDBEventIDAndTruncate([]byte("not json"), 1)
		assert.Error(t, err)
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestProgressPayload_JSON(t *testing.T) {
	payload := ProgressPayload{
		Type:             EventTypeProgress,
		AuditID:          "audit-123",
		Stage:            StageFanOut,
		Progress:         37.5,
		QueriesCompleted: 18,
		TotalQueries:     48,
		CostSoFar:        1.25,
		Timestamp:        "2026-08-25T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded ProgressPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeProgress, decoded.Type)
	assert.Equal(t, "audit-123", decoded.AuditID)
	assert.Equal(t, StageFanOut, decoded.Stage)
	assert.Equal(t, 37.5, decoded.Progress)
	assert.Equal(t, 18, decoded.QueriesCompleted)
	assert.Equal(t, 1.25, decoded.CostSoFar)
}

func TestErrorPayload_JSON(t *testing.T) {
	payload := ErrorPayload{
		Type:        EventTypeAuditError,
		AuditID:     "audit-200",
		Stage:       StageFanOut,
		Code:        "RATE_LIMIT_EXCEEDED",
		Message:     "provider openai throttled",
		Recoverable: true,
		RetryAfterS: 30,
		Timestamp:   "2026-08-25T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded ErrorPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "RATE_LIMIT_EXCEEDED", decoded.Code)
	assert.True(t, decoded.Recoverable)
	assert.Equal(t, 30, decoded.RetryAfterS)
}

func TestAuditStatusPayload_OmitsZeroCompletionFields(t *testing.T) {
	payload := AuditStatusPayload{
		Type:    EventTypeAuditStatus,
		AuditID: "audit-1",
		Status:  "running",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "overall_score")
	assert.NotContains(t, string(data), "total_cost")
	assert.NotContains(t, string(data), "verify_warning")
}
