package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/ws"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var wsTopics = map[string]bool{
	"hackathons":  true,
	"blog":        true,
	"submissions": true,
}

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Subscribe godoc
// @Summary      Subscribe to live store change events
// @Description  Upgrades to a WebSocket pushing change events for one topic
// @Tags         ws
// @Param        topic path string true "hackathons, blog or submissions"
// @Success      101
// @Failure      400 {object} ErrorResponse
// @Router       /ws/{topic} [get]
func (h *WSHandler) Subscribe(c *gin.Context) {
	topic := c.Param("topic")
	if !wsTopics[topic] {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown topic"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws: upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(topic, conn)

	// Drain the read side so close frames are processed.
	go func() {
		defer h.hub.RemoveConnection(topic, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
