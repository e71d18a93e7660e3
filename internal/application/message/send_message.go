// Package message implements direct chat between students and mentors.
package message

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	domerrors "github.com/Ananya01-bliss/new-student-mentor/internal/domain/errors"
)

// EventMessage is the realtime event type for a delivered chat message.
const EventMessage = "new_message"

type SendMessageInput struct {
	Actor      domain.Identity
	ReceiverID domain.UserID
	Content    string
}

// SendMessage stores a message, pushes it to the receiver's live
// connections and raises a new-message notification.
type SendMessage struct {
	messages ports.MessageRepository
	users    ports.UserRepository
	realtime ports.ConnectionRegistry
	sink     ports.NotificationSink
}

// NewSendMessage builds the use case. realtime and sink may be nil.
func NewSendMessage(messages ports.MessageRepository, users ports.UserRepository, realtime ports.ConnectionRegistry, sink ports.NotificationSink) *SendMessage {
	return &SendMessage{messages: messages, users: users, realtime: realtime, sink: sink}
}

func (uc *SendMessage) Execute(ctx context.Context, input SendMessageInput) (*domain.Message, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domerrors.Validation("message content is required")
	}
	if utf8.RuneCountInString(content) > domain.MaxMessageLength {
		return nil, domerrors.Validation("message is too long (max 5000 characters)")
	}
	if input.ReceiverID == input.Actor.UserID {
		return nil, domerrors.Validation("cannot message yourself")
	}
	receiver, err := uc.users.GetByID(ctx, input.ReceiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, domerrors.ErrUserNotFound
	}
	msg := &domain.Message{
		ID:         domain.NewMessageID(uuid.New()),
		SenderID:   input.Actor.UserID,
		ReceiverID: input.ReceiverID,
		Content:    content,
		SentAt:     time.Now().UTC(),
	}
	if err := uc.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	if uc.realtime != nil {
		// The sender's other sessions see the message too.
		ev := ports.Event{Type: EventMessage, Data: msg}
		_ = uc.realtime.Publish(ctx, msg.ReceiverID, ev)
		_ = uc.realtime.Publish(ctx, msg.SenderID, ev)
	}
	if uc.sink != nil {
		name := ""
		if sender, err := uc.users.GetByID(ctx, msg.SenderID); err == nil && sender != nil {
			name = sender.DisplayName()
		}
		_ = uc.sink.Notify(ctx, domain.NewMessage(msg, name))
	}
	return msg, nil
}
