package ports

import (
	"context"

	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// UserRepository defines persistence for students and mentors.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// ListMentors returns every mentor profile; it is the suggestion pool.
	ListMentors(ctx context.Context) ([]domain.MentorProfile, error)
}

// MentorPool supplies the mentor profiles scored by suggestions. A cache may
// sit in front of UserRepository.ListMentors.
type MentorPool interface {
	ListMentors(ctx context.Context) ([]domain.MentorProfile, error)
}

// ProjectRepository defines persistence for projects with their embedded
// milestones. Get-style methods return (nil, nil) when nothing matches.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error)
	// Save overwrites the project record, milestones included.
	Save(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id domain.ProjectID) error
	ListByStudent(ctx context.Context, studentID domain.UserID) ([]*domain.Project, error)
	ListByMentor(ctx context.Context, mentorID domain.UserID, statuses ...domain.ProjectStatus) ([]*domain.Project, error)
	CountByMentor(ctx context.Context, mentorID domain.UserID, statuses ...domain.ProjectStatus) (int, error)
	// WithMentorLock runs fn while holding an exclusive lock on the mentor's
	// intake, so a count followed by a save cannot interleave with another
	// approval for the same mentor. fn must use the repository it is given.
	WithMentorLock(ctx context.Context, mentorID domain.UserID, fn func(ctx context.Context, repo ProjectRepository) error) error
}

// MessageRepository defines persistence for chat messages.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	// Between returns the messages exchanged by a and b, oldest first.
	Between(ctx context.Context, a, b domain.UserID) ([]*domain.Message, error)
	// Involving returns every message sent or received by user, newest first.
	Involving(ctx context.Context, user domain.UserID) ([]*domain.Message, error)
	MarkRead(ctx context.Context, receiver, sender domain.UserID) (int, error)
}
