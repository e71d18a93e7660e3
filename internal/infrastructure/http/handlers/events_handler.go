package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/realtime"
)

const eventsKeepAlive = 25 * time.Second

// EventsHandler streams realtime events to the caller over Server-Sent Events.
type EventsHandler struct {
	registry ports.ConnectionRegistry
	buffer   int
	log      zerolog.Logger
}

func NewEventsHandler(registry ports.ConnectionRegistry, log zerolog.Logger) *EventsHandler {
	return &EventsHandler{registry: registry, buffer: 32, log: log}
}

func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "streaming unsupported")
		return
	}
	conn := realtime.NewChanConn(h.buffer)
	h.registry.Join(actor.UserID, conn)
	defer h.registry.Leave(actor.UserID, conn)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	ticker := time.NewTicker(eventsKeepAlive)
	defer ticker.Stop()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case ev := <-conn.Events():
			data, err := json.Marshal(ev.Data)
			if err != nil {
				h.log.Warn().Err(err).Str("event", ev.Type).Msg("encode realtime event")
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
