package realtime

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

func TestHub_PublishReachesAllUserConnections(t *testing.T) {
	h := NewHub()
	alice := domain.NewUserID(uuid.New())
	bob := domain.NewUserID(uuid.New())
	a1, a2, b := NewChanConn(1), NewChanConn(1), NewChanConn(1)
	h.Join(alice, a1)
	h.Join(alice, a2)
	h.Join(bob, b)

	if err := h.Publish(context.Background(), alice, ports.Event{Type: "ping"}); err != nil {
		t.Fatal(err)
	}
	for i, c := range []*ChanConn{a1, a2} {
		select {
		case ev := <-c.Events():
			if ev.Type != "ping" {
				t.Errorf("conn %d: got %q", i, ev.Type)
			}
		default:
			t.Errorf("conn %d: no event", i)
		}
	}
	select {
	case <-b.Events():
		t.Error("bob should not receive alice's event")
	default:
	}
}

func TestHub_LeaveAndOffline(t *testing.T) {
	h := NewHub()
	u := domain.NewUserID(uuid.New())
	c := NewChanConn(1)
	h.Join(u, c)
	if !h.Online(u) {
		t.Fatal("expected online after join")
	}
	h.Leave(u, c)
	if h.Online(u) {
		t.Error("expected offline after leave")
	}
	if err := h.Publish(context.Background(), u, ports.Event{Type: "x"}); err != nil {
		t.Errorf("publish to offline user: %v", err)
	}
}

func TestChanConn_FullBufferDrops(t *testing.T) {
	c := NewChanConn(1)
	if !c.Send(ports.Event{Type: "a"}) {
		t.Fatal("first send should succeed")
	}
	if c.Send(ports.Event{Type: "b"}) {
		t.Error("send on full buffer should report false")
	}
}

func TestRedisRelay_DeliverToLocalHub(t *testing.T) {
	h := NewHub()
	u := domain.NewUserID(uuid.New())
	c := NewChanConn(1)
	h.Join(u, c)
	r := NewRedisRelay(h, nil, zerolog.Nop())

	body, _ := json.Marshal(envelope{UserID: u, Event: ports.Event{Type: "notification", Data: "hi"}})
	r.deliver(context.Background(), body)
	select {
	case ev := <-c.Events():
		if ev.Type != "notification" {
			t.Errorf("type: got %q", ev.Type)
		}
	default:
		t.Error("relay did not deliver")
	}

	r.deliver(context.Background(), []byte("not json"))
}
