// Package api is the thin HTTP ingress: it accepts audit submissions as
// pending queue rows, reports audit status, flags cancellations, and
// exposes health, metrics and the WebSocket event stream. All pipeline
// work happens in the worker pool, never in a request handler.
package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brandlens/brandlens/pkg/database"
	"github.com/brandlens/brandlens/pkg/events"
	"github.com/brandlens/brandlens/pkg/queue"
	"github.com/brandlens/brandlens/pkg/storage"
)

// Server holds the handler dependencies.
type Server struct {
	store       *storage.Store
	dbClient    *database.Client
	workerPool  *queue.WorkerPool
	connManager *events.ConnectionManager
	log         *slog.Logger
}

// Options configures server construction. WorkerPool and ConnManager may
// be nil; the corresponding surfaces degrade gracefully.
type Options struct {
	Store       *storage.Store
	DBClient    *database.Client
	WorkerPool  *queue.WorkerPool
	ConnManager *events.ConnectionManager
}

// NewServer builds the ingress server.
func NewServer(opts Options) *Server {
	return &Server{
		store:       opts.Store,
		dbClient:    opts.DBClient,
		workerPool:  opts.WorkerPool,
		connManager: opts.ConnManager,
		log:         slog.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders())

	router.GET("/health", s.healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/ws", s.wsHandler)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/audits", s.submitAudit)
		v1.GET("/audits/:id", s.getAudit)
		v1.POST("/audits/:id/cancel", s.cancelAudit)
	}

	return router
}
