package db

import (
	"context"

	"github.com/google/uuid"
)

const messageColumns = `id, sender_id, receiver_id, content, sent_at, read`

func (q *Queries) listMessages(ctx context.Context, sql string, args ...any) ([]Message, error) {
	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Message
	for rows.Next() {
		var i Message
		if err := rows.Scan(&i.ID, &i.SenderID, &i.ReceiverID, &i.Content, &i.SentAt, &i.Read); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const createMessage = `INSERT INTO messages (` + messageColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`

func (q *Queries) CreateMessage(ctx context.Context, m Message) error {
	_, err := q.db.Exec(ctx, createMessage, m.ID, m.SenderID, m.ReceiverID, m.Content, m.SentAt, m.Read)
	return err
}

const listMessagesBetween = `SELECT ` + messageColumns + ` FROM messages
WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
ORDER BY sent_at ASC`

func (q *Queries) ListMessagesBetween(ctx context.Context, a, b uuid.UUID) ([]Message, error) {
	return q.listMessages(ctx, listMessagesBetween, a, b)
}

const listMessagesInvolving = `SELECT ` + messageColumns + ` FROM messages
WHERE sender_id = $1 OR receiver_id = $1
ORDER BY sent_at DESC`

func (q *Queries) ListMessagesInvolving(ctx context.Context, user uuid.UUID) ([]Message, error) {
	return q.listMessages(ctx, listMessagesInvolving, user)
}

const markMessagesRead = `UPDATE messages SET read = TRUE WHERE receiver_id = $1 AND sender_id = $2 AND NOT read`

func (q *Queries) MarkMessagesRead(ctx context.Context, receiver, sender uuid.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, markMessagesRead, receiver, sender)
	return tag.RowsAffected(), err
}
