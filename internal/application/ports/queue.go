package ports

import (
	"context"

	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// TaskEnqueuer enqueues async tasks (notification delivery).
type TaskEnqueuer interface {
	EnqueueNotification(ctx context.Context, n domain.Notification) error
}
