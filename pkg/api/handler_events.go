package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// StreamEvents handles GET /events: a long-lived SSE stream of pipeline
// events. The stream pings periodically and closes on client disconnect.
func (s *Server) StreamEvents(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	sub := s.events.Subscribe()
	defer s.events.Unsubscribe(sub.ID)
	slog.Debug("SSE client connected", "subscriber_id", sub.ID)

	ping := time.NewTicker(s.pingInterval)
	defer ping.Stop()

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			slog.Debug("SSE client disconnected", "subscriber_id", sub.ID)
			return false
		case <-ping.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		case evt, ok := <-sub.C:
			if !ok {
				return false
			}
			data, err := json.Marshal(evt.Data)
			if err != nil {
				slog.Warn("Failed to encode event", "event_type", evt.Type, "error", err)
				return true
			}
			c.SSEvent(evt.Type, string(data))
			return true
		}
	})
}
