package db

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID               uuid.UUID
	Email            string
	PasswordHash     string
	Role             string
	Name             string
	Usn              string
	Domain           string
	Specialization   string
	Year             int32
	Expertise        []string
	Summary          string
	ShortDescription string
	ProjectsDone     string
	MaxStudents      int32
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Project struct {
	ID             uuid.UUID
	StudentID      uuid.UUID
	MentorID       *uuid.UUID
	Title          string
	Idea           string
	GuidanceNeeded string
	Keywords       []string
	Status         string
	Progress       int32
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Milestone struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Position    int32
	Title       string
	Description string
	DueDate     *time.Time
	Status      string
	Submission  *string
	Feedback    *string
	UpdatedAt   time.Time
}

type Message struct {
	ID         uuid.UUID
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Content    string
	SentAt     time.Time
	Read       bool
}
