// Package realtime keeps the registry of live user connections and pushes
// events to them.
package realtime

import (
	"context"
	"sync"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// Hub is an in-process ConnectionRegistry. A user may hold several
// connections; Publish reaches all of them.
type Hub struct {
	mu    sync.RWMutex
	conns map[domain.UserID]map[ports.Conn]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[domain.UserID]map[ports.Conn]struct{})}
}

func (h *Hub) Join(userID domain.UserID, conn ports.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.conns[userID]
	if !ok {
		set = make(map[ports.Conn]struct{})
		h.conns[userID] = set
	}
	set[conn] = struct{}{}
}

func (h *Hub) Leave(userID domain.UserID, conn ports.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.conns[userID]
	delete(set, conn)
	if len(set) == 0 {
		delete(h.conns, userID)
	}
}

// Publish delivers ev to every connection of userID. Users with no live
// connection are skipped; slow connections drop the event.
func (h *Hub) Publish(ctx context.Context, userID domain.UserID, ev ports.Event) error {
	h.mu.RLock()
	targets := make([]ports.Conn, 0, len(h.conns[userID]))
	for c := range h.conns[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()
	for _, c := range targets {
		c.Send(ev)
	}
	return nil
}

// Online reports whether userID has at least one live connection.
func (h *Hub) Online(userID domain.UserID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID]) > 0
}

var _ ports.ConnectionRegistry = (*Hub)(nil)

// ChanConn is a buffered connection drained by a transport loop.
type ChanConn struct {
	ch chan ports.Event
}

// NewChanConn returns a connection buffering up to size events.
func NewChanConn(size int) *ChanConn {
	if size <= 0 {
		size = 16
	}
	return &ChanConn{ch: make(chan ports.Event, size)}
}

// Send enqueues ev without blocking; it reports false when the buffer is full.
func (c *ChanConn) Send(ev ports.Event) bool {
	select {
	case c.ch <- ev:
		return true
	default:
		return false
	}
}

// Events is the channel the transport reads from.
func (c *ChanConn) Events() <-chan ports.Event { return c.ch }
