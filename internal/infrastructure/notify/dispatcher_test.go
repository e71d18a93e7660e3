package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

type sinkFunc func(ctx context.Context, n domain.Notification) error

func (f sinkFunc) Notify(ctx context.Context, n domain.Notification) error { return f(ctx, n) }

type enqueuerFunc func(ctx context.Context, n domain.Notification) error

func (f enqueuerFunc) EnqueueNotification(ctx context.Context, n domain.Notification) error {
	return f(ctx, n)
}

type publishRecorder struct {
	user domain.UserID
	ev   ports.Event
}

func (p *publishRecorder) Join(domain.UserID, ports.Conn)  {}
func (p *publishRecorder) Leave(domain.UserID, ports.Conn) {}
func (p *publishRecorder) Publish(ctx context.Context, userID domain.UserID, ev ports.Event) error {
	p.user, p.ev = userID, ev
	return nil
}

func TestFanout_DeliversToAllAndJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	f := Fanout{
		sinkFunc(func(context.Context, domain.Notification) error { calls++; return boom }),
		sinkFunc(func(context.Context, domain.Notification) error { calls++; return nil }),
	}
	err := f.Notify(context.Background(), domain.Notification{})
	if calls != 2 {
		t.Errorf("calls: got %d, want 2", calls)
	}
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want wrapped boom", err)
	}
}

func TestDispatcher_Enqueues(t *testing.T) {
	var got domain.Notification
	d := NewDispatcher(enqueuerFunc(func(_ context.Context, n domain.Notification) error {
		got = n
		return nil
	}), zerolog.Nop())
	n := domain.Notification{Kind: domain.NotifyMilestoneAdded}
	if err := d.Notify(context.Background(), n); err != nil {
		t.Fatal(err)
	}
	if got.Kind != n.Kind {
		t.Errorf("kind: got %s, want %s", got.Kind, n.Kind)
	}
}

func TestRealtime_PublishesToRecipient(t *testing.T) {
	rec := &publishRecorder{}
	uid := domain.NewUserID(uuid.New())
	n := domain.Notification{Kind: domain.NotifyNewMessage, RecipientID: uid}
	if err := NewRealtime(rec).Notify(context.Background(), n); err != nil {
		t.Fatal(err)
	}
	if rec.user != uid {
		t.Errorf("user: got %v, want %v", rec.user, uid)
	}
	if rec.ev.Type != EventNotification {
		t.Errorf("event type: got %q", rec.ev.Type)
	}
}
