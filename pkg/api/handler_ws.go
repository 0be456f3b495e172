package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler upgrades HTTP connections to WebSocket and delegates to the
// events.ConnectionManager, which owns subscriptions and replay.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "WebSocket not available"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		// TODO: replace with an OriginPatterns allowlist from server config.
		InsecureSkipVerify: true,
	})
	if err != nil {
		s.log.Warn("WebSocket upgrade failed", "error", err)
		return
	}

	// Blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request.Context(), conn)
}
