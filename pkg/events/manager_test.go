package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReplaySource implements ReplaySource and records the replay
// position each subscribe asked for.
type stubReplaySource struct {
	events []StoredEvent
	err    error

	mu        sync.Mutex
	lastSince int
}

func (s *stubReplaySource) EventsSince(_ context.Context, _ string, sinceID, limit int) ([]StoredEvent, error) {
	s.mu.Lock()
	s.lastSince = sinceID
	s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	var out []StoredEvent
	for _, evt := range s.events {
		if evt.ID > sinceID {
			out = append(out, evt)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubReplaySource) sinceAsked() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSince
}

func newWSServer(t *testing.T, manager *ConnectionManager) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(server.Close)
	return server
}

func setupTestManager(t *testing.T) (*ConnectionManager, *httptest.Server) {
	t.Helper()
	manager := NewConnectionManager(&stubReplaySource{}, 5*time.Second)
	return manager, newWSServer(t, manager)
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func sendMsg(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestSubscribeConfirmed(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: "audit:test-123"})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "audit:test-123", msg["channel"])
	assert.Equal(t, 1, manager.ActiveConnections())
}

func TestSubscribeReplaysHistory(t *testing.T) {
	// A fresh subscriber gets the channel's persisted events right
	// after the confirmation, oldest first, with db_event_id stamped.
	source := &stubReplaySource{events: []StoredEvent{
		{ID: 10, Payload: map[string]interface{}{"type": EventTypeStageComplete, "stage": StageQueryGen}},
		{ID: 11, Payload: map[string]interface{}{"type": EventTypeStageComplete, "stage": StageFanOut}},
		{ID: 12, Payload: map[string]interface{}{"type": EventTypeAuditStatus, "status": "completed"}},
	}}
	manager := NewConnectionManager(source, 5*time.Second)
	server := newWSServer(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: "audit:replay-test"})
	readJSON(t, conn) // subscription.confirmed

	first := readJSON(t, conn)
	assert.Equal(t, StageQueryGen, first["stage"])
	assert.Equal(t, float64(10), first["db_event_id"])

	second := readJSON(t, conn)
	assert.Equal(t, StageFanOut, second["stage"])

	third := readJSON(t, conn)
	assert.Equal(t, "completed", third["status"])
	assert.Equal(t, float64(12), third["db_event_id"])

	// Nothing else pending — no overflow for a short history.
	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err)
}

func TestSubscribeResumesFromLastEventID(t *testing.T) {
	// A reconnecting client passes the last db_event_id it saw and
	// gets only what followed.
	source := &stubReplaySource{events: []StoredEvent{
		{ID: 10, Payload: map[string]interface{}{"type": EventTypeStageComplete, "stage": StageAnalyze}},
		{ID: 11, Payload: map[string]interface{}{"type": EventTypeAuditStatus, "status": "completed"}},
	}}
	manager := NewConnectionManager(source, 5*time.Second)
	server := newWSServer(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	last := 10
	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: "audit:resume-test", LastEventID: &last})
	readJSON(t, conn) // subscription.confirmed

	msg := readJSON(t, conn)
	assert.Equal(t, "completed", msg["status"])
	assert.Equal(t, float64(11), msg["db_event_id"])
	assert.Equal(t, 10, source.sinceAsked())
}

func TestReplayOverflow(t *testing.T) {
	// More missed events than the replay limit: the client is told to
	// reload over REST instead.
	manyEvents := make([]StoredEvent, replayLimit+5)
	for i := range manyEvents {
		manyEvents[i] = StoredEvent{
			ID: i + 1,
			Payload: map[string]interface{}{
				"type": EventTypeProgress,
				"seq":  i,
			},
		}
	}
	manager := NewConnectionManager(&stubReplaySource{events: manyEvents}, 5*time.Second)
	server := newWSServer(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: "audit:overflow-test"})
	readJSON(t, conn) // subscription.confirmed

	var overflowReceived bool
	for i := 0; i < replayLimit+5; i++ {
		msg := readJSON(t, conn)
		if msg["type"] == "catchup.overflow" {
			overflowReceived = true
			assert.Equal(t, true, msg["has_more"])
			break
		}
	}
	assert.True(t, overflowReceived, "expected catchup.overflow message")
}

func TestReplayErrorKeepsConnectionAlive(t *testing.T) {
	// A replay query failure is logged, not fatal: the subscription
	// stands and live events still flow.
	manager := NewConnectionManager(&stubReplaySource{err: fmt.Errorf("database unreachable")}, 5*time.Second)
	server := newWSServer(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: "audit:err-test"})
	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])

	time.Sleep(100 * time.Millisecond)

	sendMsg(t, conn, ClientMessage{Action: "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestBroadcast(t *testing.T) {
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2)

	channel := "audit:broadcast-test"
	sendMsg(t, conn1, ClientMessage{Action: "subscribe", Channel: channel})
	sendMsg(t, conn2, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn1) // subscription.confirmed
	readJSON(t, conn2)

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 2
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]interface{}{
		"type": EventTypeProgress, "completed": 7, "total": 40,
	})
	manager.Broadcast(channel, payload)

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		msg := readJSON(t, conn)
		assert.Equal(t, EventTypeProgress, msg["type"])
		assert.Equal(t, float64(7), msg["completed"])
	}
}

func TestBroadcastIsolation(t *testing.T) {
	// A subscriber of one audit's channel must not see another audit's
	// events.
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2)

	sendMsg(t, conn1, ClientMessage{Action: "subscribe", Channel: "audit:one"})
	readJSON(t, conn1) // subscription.confirmed
	sendMsg(t, conn2, ClientMessage{Action: "subscribe", Channel: "audit:two"})
	readJSON(t, conn2) // subscription.confirmed

	require.Eventually(t, func() bool {
		return manager.subscriberCount("audit:one") == 1 && manager.subscriberCount("audit:two") == 1
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": EventTypeProgress, "target": "one"})
	manager.Broadcast("audit:one", payload)

	msg := readJSON(t, conn1)
	assert.Equal(t, "one", msg["target"])

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn2.Read(readCtx)
	assert.Error(t, err, "conn2 should not receive audit:one broadcast")
}

func TestBroadcastToUnknownChannel(t *testing.T) {
	manager, _ := setupTestManager(t)

	payload, _ := json.Marshal(map[string]string{"type": EventTypeProgress})
	assert.NotPanics(t, func() {
		manager.Broadcast("audit:nobody-listens", payload)
	})
}

func TestPingPong(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	sendMsg(t, conn, ClientMessage{Action: "ping"})

	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	channel := "audit:unsub-test"
	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn) // subscription.confirmed

	sendMsg(t, conn, ClientMessage{Action: "unsubscribe", Channel: channel})
	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 0
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "should-not-receive"})
	manager.Broadcast(channel, payload)

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive message after unsubscribe")
}

func TestConcurrentBroadcast(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	channel := "audit:concurrent-test"
	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn) // subscription.confirmed

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 1
	}, 2*time.Second, 10*time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			payload, _ := json.Marshal(map[string]interface{}{"type": EventTypeProgress, "idx": idx})
			manager.Broadcast(channel, payload)
		}(i)
	}
	wg.Wait()

	received := 0
	var firstErr error
	for i := 0; i < 20; i++ {
		readCtx, readCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _, err := conn.Read(readCtx)
		readCancel()
		if err != nil {
			firstErr = err
			break
		}
		received++
	}
	assert.Equal(t, 20, received, "should receive all 20 broadcast messages; first error: %v", firstErr)
}

func TestEmptyChannelRejected(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: ""})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	sendMsg(t, conn, ClientMessage{Action: "unsubscribe", Channel: ""})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	// Connection survives validation errors.
	sendMsg(t, conn, ClientMessage{Action: "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestBindListener(t *testing.T) {
	manager := NewConnectionManager(&stubReplaySource{}, 5*time.Second)
	assert.Nil(t, manager.listener)

	listener := NewNotifyListener("host=localhost", manager)
	manager.BindListener(listener)

	manager.listenerMu.RLock()
	assert.Same(t, listener, manager.listener)
	manager.listenerMu.RUnlock()
}

func TestCleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t)

	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)

	_, _, err = conn.Read(ctx) // connection.established
	require.NoError(t, err)

	channel := "audit:cleanup-test"
	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	_, _, err = conn.Read(ctx) // subscription.confirmed
	require.NoError(t, err)

	assert.Equal(t, 1, manager.ActiveConnections())

	conn.Close(websocket.StatusNormalClosure, "")
	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0 && manager.subscriberCount(channel) == 0
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": EventTypeProgress})
	assert.NotPanics(t, func() {
		manager.Broadcast(channel, payload)
	})
}
