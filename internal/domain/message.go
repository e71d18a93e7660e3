package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxMessageLength bounds chat message content, in characters.
const MaxMessageLength = 5000

// MessageID is a value object for message identity.
type MessageID struct{ uuid.UUID }

// NewMessageID creates a new MessageID from uuid.
func NewMessageID(id uuid.UUID) MessageID { return MessageID{UUID: id} }

// String returns the canonical string form.
func (m MessageID) String() string { return m.UUID.String() }

// Message is a chat message between two users.
type Message struct {
	ID         MessageID `json:"id"`
	SenderID   UserID    `json:"sender_id"`
	ReceiverID UserID    `json:"receiver_id"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sent_at"`
	Read       bool      `json:"read"`
}

// Conversation summarises the thread with one counterpart.
type Conversation struct {
	With            UserID     `json:"with"`
	Name            string     `json:"name"`
	Role            Role       `json:"role"`
	Email           string     `json:"email"`
	LastMessage     string     `json:"last_message"`
	LastMessageTime *time.Time `json:"last_message_time"`
	UnreadCount     int        `json:"unread_count"`
}
