package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuditChannel(t *testing.T) {
	tests := []struct {
		name    string
		auditID string
		want    string
	}{
		{"simple id", "abc-123", "audit:abc-123"},
		{"uuid", "550e8400-e29b-41d4-a716-446655440000", "audit:550e8400-e29b-41d4-a716-446655440000"},
		{"empty id", "", "audit:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AuditChannel(tt.auditID))
		})
	}
}

func TestEventTypesAreDistinct(t *testing.T) {
	types := []string{
		EventTypeStageComplete,
		EventTypeAuditStatus,
		EventTypeAuditError,
		EventTypeProgress,
	}
	seen := make(map[string]bool)
	for _, typ := range types {
		assert.False(t, seen[typ], "duplicate event type %q", typ)
		seen[typ] = true
	}
}

func TestStageNamesMatchPipeline(t *testing.T) {
	stages := []string{
		StageQueryGen, StageFanOut, StageAnalyze,
		StageAggregateL1, StageAggregateL2, StageAggregateL3,
		StageDashboard, StageVerify,
	}
	assert.Len(t, stages, 8)
	seen := make(map[string]bool)
	for _, s := range stages {
		assert.False(t, seen[s], "duplicate stage %q", s)
		seen[s] = true
	}
}

func TestGlobalAuditsChannel(t *testing.T) {
	assert.Equal(t, "audits", GlobalAuditsChannel)
}
