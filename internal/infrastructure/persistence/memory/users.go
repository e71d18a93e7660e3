// Package memory holds map-backed repositories used when no DATABASE_URL is
// configured and as fakes in tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	domerrors "github.com/Ananya01-bliss/new-student-mentor/internal/domain/errors"
)

// UserRepository is an in-memory ports.UserRepository.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[domain.UserID]*domain.User
	byEmail map[string]domain.UserID
}

// NewUserRepository returns an empty repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[domain.UserID]*domain.User),
		byEmail: make(map[string]domain.UserID),
	}
}

func emailKey(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := emailKey(user.Email)
	if _, ok := r.byEmail[k]; ok {
		return domerrors.ErrUserExists
	}
	r.byID[user.ID] = user
	r.byEmail[k] = user.ID
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, nil
	}
	return r.byID[id], nil
}

func (r *UserRepository) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

// ListMentors returns mentor profiles ordered by name.
func (r *UserRepository) ListMentors(ctx context.Context) ([]domain.MentorProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.MentorProfile, 0)
	for _, u := range r.byID {
		if m, ok := u.Mentor(); ok {
			cp := *m
			cp.Expertise = append([]string(nil), m.Expertise...)
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
