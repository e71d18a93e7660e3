package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// Worker runs Asynq task handlers (notification delivery).
type Worker struct {
	srv     *asynq.Server
	mux     *asynq.ServeMux
	deliver ports.NotificationSink
	log     zerolog.Logger
}

// NewWorker creates an Asynq server and registers handlers. Call Run() to start.
func NewWorker(redisOpt asynq.RedisClientOpt, deliver ports.NotificationSink, log zerolog.Logger) *Worker {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 4,
		LogLevel:    asynq.WarnLevel,
	})
	mux := asynq.NewServeMux()
	w := &Worker{srv: srv, mux: mux, deliver: deliver, log: log}
	mux.HandleFunc(TypeNotification, w.handleNotification)
	return w
}

func (w *Worker) handleNotification(ctx context.Context, t *asynq.Task) error {
	var n domain.Notification
	if err := json.Unmarshal(t.Payload(), &n); err != nil {
		w.log.Error().Err(err).Msg("notification task payload invalid")
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	if err := w.deliver.Notify(ctx, n); err != nil {
		w.log.Warn().Err(err).Str("kind", string(n.Kind)).Msg("notification delivery failed")
		return err
	}
	return nil
}

// Run blocks until shutdown. Use Shutdown for graceful stop.
func (w *Worker) Run() error {
	return w.srv.Run(w.mux)
}

// Shutdown stops the worker.
func (w *Worker) Shutdown() {
	w.srv.Shutdown()
}
