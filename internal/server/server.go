package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loglens/internal/hub"
)

// Server exposes the current analysis report over HTTP and WebSocket.
type Server struct {
	engine *gin.Engine
	hub    *hub.Hub
	port   string
}

// New creates a report server backed by the given hub.
func New(h *hub.Hub, port string) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine: engine,
		hub:    h,
		port:   port,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check.
	s.engine.GET("/healthz", func(c *gin.Context) {
		_, hasReport := s.hub.Latest()
		c.JSON(http.StatusOK, gin.H{
			"status":          "ok",
			"has_report":      hasReport,
			"dropped_reports": s.hub.Dropped(),
		})
	})

	// Current report.
	s.engine.GET("/api/report", func(c *gin.Context) {
		r, ok := s.hub.Latest()
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no analysis has completed yet"})
			return
		}
		c.JSON(http.StatusOK, r)
	})

	// WebSocket push of fresh reports.
	s.engine.GET("/ws", s.handleWebSocket)
}

// Start runs the server. Blocks until the server is stopped.
func (s *Server) Start() error {
	return s.engine.Run(":" + s.port)
}
