package roomsync

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tapechart/internal/pkg/jwt"
)

// WSHandler upgrades grid views to the room-status WebSocket feed.
type WSHandler struct {
	hub        *Hub
	jwtService *jwt.Service
}

func NewWSHandler(hub *Hub, jwtService *jwt.Service) *WSHandler {
	return &WSHandler{hub: hub, jwtService: jwtService}
}

func (h *WSHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws/rooms", h.HandleWebSocket)
}

// HandleWebSocket upgrades the connection and streams status events.
//
// Endpoint: GET /ws/rooms?token=JWT_TOKEN
//
// Authentication goes through a query parameter because browsers
// cannot set headers on WebSocket upgrades.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Token is required. Use ?token=YOUR_JWT_TOKEN",
		})
		return
	}

	if _, err := h.jwtService.ValidateToken(token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("roomsync: websocket upgrade failed: %v", err)
		return
	}

	h.hub.ServeWS(conn)
}
