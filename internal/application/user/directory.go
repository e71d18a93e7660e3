// Package user serves profile lookups for signed-in users.
package user

import (
	"context"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	domerrors "github.com/Ananya01-bliss/new-student-mentor/internal/domain/errors"
)

// Directory looks up users and the mentor catalogue.
type Directory struct {
	users   ports.UserRepository
	mentors ports.MentorPool
}

// NewDirectory builds the service. mentors may be a cache over users.
func NewDirectory(users ports.UserRepository, mentors ports.MentorPool) *Directory {
	return &Directory{users: users, mentors: mentors}
}

// Get returns a user by id.
func (d *Directory) Get(ctx context.Context, id domain.UserID) (*domain.User, error) {
	u, err := d.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domerrors.ErrUserNotFound
	}
	return u, nil
}

// Mentors lists every mentor profile.
func (d *Directory) Mentors(ctx context.Context) ([]domain.MentorProfile, error) {
	return d.mentors.ListMentors(ctx)
}

// Mentor returns one mentor profile.
func (d *Directory) Mentor(ctx context.Context, id domain.UserID) (*domain.MentorProfile, error) {
	u, err := d.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	m, ok := u.Mentor()
	if !ok {
		return nil, domerrors.ErrUserNotFound
	}
	return m, nil
}
