package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/persistence/db"
)

type MessageRepository struct {
	q *db.Queries
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{q: db.New(pool)}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	return r.q.CreateMessage(ctx, db.Message{
		ID:         m.ID.UUID,
		SenderID:   m.SenderID.UUID,
		ReceiverID: m.ReceiverID.UUID,
		Content:    m.Content,
		SentAt:     m.SentAt,
		Read:       m.Read,
	})
}

func (r *MessageRepository) Between(ctx context.Context, a, b domain.UserID) ([]*domain.Message, error) {
	rows, err := r.q.ListMessagesBetween(ctx, a.UUID, b.UUID)
	if err != nil {
		return nil, err
	}
	return dbMessagesToDomain(rows), nil
}

func (r *MessageRepository) Involving(ctx context.Context, user domain.UserID) ([]*domain.Message, error) {
	rows, err := r.q.ListMessagesInvolving(ctx, user.UUID)
	if err != nil {
		return nil, err
	}
	return dbMessagesToDomain(rows), nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, receiver, sender domain.UserID) (int, error) {
	n, err := r.q.MarkMessagesRead(ctx, receiver.UUID, sender.UUID)
	return int(n), err
}

func dbMessagesToDomain(rows []db.Message) []*domain.Message {
	out := make([]*domain.Message, 0, len(rows))
	for _, m := range rows {
		out = append(out, &domain.Message{
			ID:         domain.NewMessageID(m.ID),
			SenderID:   domain.NewUserID(m.SenderID),
			ReceiverID: domain.NewUserID(m.ReceiverID),
			Content:    m.Content,
			SentAt:     m.SentAt,
			Read:       m.Read,
		})
	}
	return out
}

// Ensure MessageRepository implements ports.MessageRepository.
var _ ports.MessageRepository = (*MessageRepository)(nil)
