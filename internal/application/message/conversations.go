package message

import (
	"context"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// Inbox serves the read side of chat.
type Inbox struct {
	messages ports.MessageRepository
	users    ports.UserRepository
}

// NewInbox builds the read service.
func NewInbox(messages ports.MessageRepository, users ports.UserRepository) *Inbox {
	return &Inbox{messages: messages, users: users}
}

// Thread returns the messages between actor and other, oldest first.
func (in *Inbox) Thread(ctx context.Context, actor domain.Identity, other domain.UserID) ([]*domain.Message, error) {
	return in.messages.Between(ctx, actor.UserID, other)
}

// Conversations lists one entry per counterpart, most recent first, with
// the count of messages from them the actor has not read.
func (in *Inbox) Conversations(ctx context.Context, actor domain.Identity) ([]domain.Conversation, error) {
	msgs, err := in.messages.Involving(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	index := make(map[domain.UserID]int)
	out := make([]domain.Conversation, 0)
	for _, m := range msgs {
		other := m.SenderID
		if other == actor.UserID {
			other = m.ReceiverID
		}
		i, seen := index[other]
		if !seen {
			sentAt := m.SentAt
			c := domain.Conversation{With: other, LastMessage: m.Content, LastMessageTime: &sentAt}
			if u, err := in.users.GetByID(ctx, other); err == nil && u != nil {
				c.Name = u.DisplayName()
				c.Role = u.Role
				c.Email = u.Email
			}
			i = len(out)
			index[other] = i
			out = append(out, c)
		}
		if m.ReceiverID == actor.UserID && !m.Read {
			out[i].UnreadCount++
		}
	}
	return out, nil
}

// MarkRead marks everything other sent to actor as read and returns how many changed.
func (in *Inbox) MarkRead(ctx context.Context, actor domain.Identity, other domain.UserID) (int, error) {
	return in.messages.MarkRead(ctx, actor.UserID, other)
}
