package realtime

import (
	"io"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
)

// heartbeatInterval keeps idle connections alive through proxies.
const heartbeatInterval = 25 * time.Second

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// @Summary Live report event stream
// @Description Server-sent events: `report:new` carries a full created record, `report:updated` a full updated record.
// @Tags realtime
// @Produce text/event-stream
// @Success 200 {string} string "SSE stream"
// @Router /events [get]
func (h *Handler) Stream(c *gin.Context) {
	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-sub.Events():
			if !ok {
				return false
			}
			sse.Encode(w, sse.Event{Event: ev.Name, Data: ev.Payload})
			return true
		case <-heartbeat.C:
			sse.Encode(w, sse.Event{Event: "ping", Data: time.Now().Unix()})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
