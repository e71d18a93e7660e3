package queue

import (
	"context"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// InlineEnqueuer delivers notifications in-process when Redis/Asynq is not configured.
type InlineEnqueuer struct {
	sink ports.NotificationSink
}

func NewInlineEnqueuer(sink ports.NotificationSink) *InlineEnqueuer {
	return &InlineEnqueuer{sink: sink}
}

func (q *InlineEnqueuer) EnqueueNotification(ctx context.Context, n domain.Notification) error {
	return q.sink.Notify(ctx, n)
}

var _ ports.TaskEnqueuer = (*InlineEnqueuer)(nil)
