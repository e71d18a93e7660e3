// Package notify routes domain notifications from use cases to delivery
// channels: realtime push, webhook and the message broker.
package notify

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// EventNotification is the realtime event type carrying a domain.Notification.
const EventNotification = "notification"

// Dispatcher is the sink handed to use cases. It enqueues the notification
// for asynchronous delivery and logs, but does not surface, enqueue failures.
type Dispatcher struct {
	queue ports.TaskEnqueuer
	log   zerolog.Logger
}

// NewDispatcher returns a sink that hands notifications to queue.
func NewDispatcher(queue ports.TaskEnqueuer, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{queue: queue, log: log}
}

func (d *Dispatcher) Notify(ctx context.Context, n domain.Notification) error {
	if err := d.queue.EnqueueNotification(ctx, n); err != nil {
		d.log.Warn().Err(err).Str("kind", string(n.Kind)).Str("recipient", n.RecipientID.String()).Msg("notification dropped")
		return err
	}
	return nil
}

// Fanout delivers to every sink and joins their errors.
type Fanout []ports.NotificationSink

func (f Fanout) Notify(ctx context.Context, n domain.Notification) error {
	var errs []error
	for _, s := range f {
		if err := s.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Realtime pushes notifications to the recipient's live connections.
type Realtime struct {
	registry ports.ConnectionRegistry
}

// NewRealtime returns a sink publishing through registry.
func NewRealtime(registry ports.ConnectionRegistry) *Realtime {
	return &Realtime{registry: registry}
}

func (r *Realtime) Notify(ctx context.Context, n domain.Notification) error {
	return r.registry.Publish(ctx, n.RecipientID, ports.Event{Type: EventNotification, Data: n})
}

var (
	_ ports.NotificationSink = (*Dispatcher)(nil)
	_ ports.NotificationSink = Fanout(nil)
	_ ports.NotificationSink = (*Realtime)(nil)
)
