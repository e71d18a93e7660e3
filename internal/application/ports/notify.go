package ports

import (
	"context"

	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// NotificationSink accepts user-facing notifications. Delivery and storage
// are the sink's concern; callers treat errors as best-effort.
type NotificationSink interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// Event is a realtime push to a connected user.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Conn is a live connection that receives events for one user.
type Conn interface {
	Send(ev Event) bool
}

// ConnectionRegistry tracks live connections per user. The core only calls
// Publish; transports call Join and Leave.
type ConnectionRegistry interface {
	Join(userID domain.UserID, conn Conn)
	Leave(userID domain.UserID, conn Conn)
	Publish(ctx context.Context, userID domain.UserID, ev Event) error
}
