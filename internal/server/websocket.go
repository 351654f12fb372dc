package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleWebSocket upgrades to WebSocket and pushes a report to the client
// after every completed re-analysis.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Send the current report immediately, if one exists.
	if r, ok := s.hub.Latest(); ok {
		if err := conn.WriteJSON(r); err != nil {
			return
		}
	}

	reports := s.hub.Subscribe()
	defer s.hub.Unsubscribe(reports)

	// Read pump — detect client disconnect.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				conn.Close()
				return
			}
		}
	}()

	// Write pump — push each new report as JSON.
	for r := range reports {
		if err := conn.WriteJSON(r); err != nil {
			log.Printf("websocket write failed: %v", err)
			return
		}
	}
}
