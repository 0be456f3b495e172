package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNotifyListener(t *testing.T) {
	manager := NewConnectionManager(&stubReplaySource{}, 0)
	listener := NewNotifyListener("host=localhost dbname=brandlens", manager)

	assert.NotNil(t, listener)
	assert.Equal(t, "host=localhost dbname=brandlens", listener.dsn)
	assert.Same(t, manager, listener.manager)
}

func TestNotifyListenerBeforeStart(t *testing.T) {
	manager := NewConnectionManager(&stubReplaySource{}, 0)
	listener := NewNotifyListener("host=localhost dbname=brandlens", manager)

	t.Run("subscribe fails without a connection", func(t *testing.T) {
		err := listener.Subscribe(t.Context(), "audit:abc-123")
		assert.ErrorContains(t, err, "not established")
	})

	t.Run("unsubscribe is a no-op without a connection", func(t *testing.T) {
		assert.NoError(t, listener.Unsubscribe(t.Context(), "audit:abc-123"))
	})
}
