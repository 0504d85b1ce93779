package realtime

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, hub *Hub) {
	handler := NewHandler(hub)

	// Open to all viewers; no per-client filtering on the push channel.
	router.GET("/events", handler.Stream)
}
