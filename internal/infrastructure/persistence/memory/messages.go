package memory

import (
	"context"
	"sync"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// MessageRepository is an in-memory ports.MessageRepository. Messages are
// kept in send order.
type MessageRepository struct {
	mu   sync.RWMutex
	msgs []domain.Message
}

// NewMessageRepository returns an empty repository.
func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, *m)
	return nil
}

func (r *MessageRepository) Between(ctx context.Context, a, b domain.UserID) ([]*domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Message, 0)
	for i := range r.msgs {
		m := r.msgs[i]
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			out = append(out, &m)
		}
	}
	return out, nil
}

func (r *MessageRepository) Involving(ctx context.Context, user domain.UserID) ([]*domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Message, 0)
	for i := len(r.msgs) - 1; i >= 0; i-- {
		m := r.msgs[i]
		if m.SenderID == user || m.ReceiverID == user {
			out = append(out, &m)
		}
	}
	return out, nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, receiver, sender domain.UserID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for i := range r.msgs {
		m := &r.msgs[i]
		if m.ReceiverID == receiver && m.SenderID == sender && !m.Read {
			m.Read = true
			n++
		}
	}
	return n, nil
}

var _ ports.MessageRepository = (*MessageRepository)(nil)
