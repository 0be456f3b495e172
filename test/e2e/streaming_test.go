package e2e

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entaudit "github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/pkg/events"
)

// TestWebSocketStreaming subscribes a real WebSocket client to an
// audit's channel and verifies live progress and the terminal status
// arrive over the wire.
func TestWebSocketStreaming(t *testing.T) {
	app := NewTestApp(t, WithMockLatency(50*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, app.WSURL, nil)
	require.NoError(t, err)
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "done") }()

	submitted := app.submitDefaultAudit(t)

	sub, err := json.Marshal(events.ClientMessage{
		Action:  "subscribe",
		Channel: events.AuditChannel(submitted.ID),
	})
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, sub))

	// Status events fire on every lifecycle transition; keep reading
	// until the terminal one.
	seen := make(map[string]bool)
	for {
		_, data, err := conn.Read(ctx)
		require.NoError(t, err, "WebSocket closed before the terminal status arrived")

		var msg map[string]any
		require.NoError(t, json.Unmarshal(data, &msg))
		typ, _ := msg["type"].(string)
		if typ != "" {
			seen[typ] = true
		}
		if typ == events.EventTypeAuditStatus {
			if status, _ := msg["status"].(string); status == string(entaudit.StatusCompleted) {
				break
			}
		}
	}

	assert.True(t, seen[events.EventTypeProgress], "no progress events streamed")
	app.WaitForStatus(t, submitted.ID, entaudit.StatusCompleted, 30*time.Second)
}
