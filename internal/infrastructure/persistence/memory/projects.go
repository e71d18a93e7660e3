package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// ProjectRepository is an in-memory ports.ProjectRepository. Stored projects
// are copied in and out so callers never share state with the store.
type ProjectRepository struct {
	mu    sync.RWMutex
	items map[domain.ProjectID]*domain.Project

	locksMu sync.Mutex
	locks   map[domain.UserID]*sync.Mutex
}

// NewProjectRepository returns an empty repository.
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{
		items: make(map[domain.ProjectID]*domain.Project),
		locks: make(map[domain.UserID]*sync.Mutex),
	}
}

func clone(p *domain.Project) *domain.Project {
	cp := *p
	if p.MentorID != nil {
		m := *p.MentorID
		cp.MentorID = &m
	}
	cp.Keywords = append([]string(nil), p.Keywords...)
	cp.Milestones = make([]domain.Milestone, len(p.Milestones))
	for i, m := range p.Milestones {
		if m.DueDate != nil {
			d := *m.DueDate
			m.DueDate = &d
		}
		if m.Submission != nil {
			s := *m.Submission
			m.Submission = &s
		}
		if m.Feedback != nil {
			f := *m.Feedback
			m.Feedback = &f
		}
		cp.Milestones[i] = m
	}
	return &cp
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = clone(p)
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return clone(p), nil
}

func (r *ProjectRepository) Save(ctx context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = clone(p)
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id domain.ProjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *ProjectRepository) ListByStudent(ctx context.Context, studentID domain.UserID) ([]*domain.Project, error) {
	return r.list(func(p *domain.Project) bool { return p.StudentID == studentID }), nil
}

func (r *ProjectRepository) ListByMentor(ctx context.Context, mentorID domain.UserID, statuses ...domain.ProjectStatus) ([]*domain.Project, error) {
	return r.list(mentorFilter(mentorID, statuses)), nil
}

func (r *ProjectRepository) CountByMentor(ctx context.Context, mentorID domain.UserID, statuses ...domain.ProjectStatus) (int, error) {
	return len(r.list(mentorFilter(mentorID, statuses))), nil
}

// WithMentorLock serialises fn against other callers for the same mentor.
func (r *ProjectRepository) WithMentorLock(ctx context.Context, mentorID domain.UserID, fn func(ctx context.Context, repo ports.ProjectRepository) error) error {
	r.locksMu.Lock()
	l, ok := r.locks[mentorID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[mentorID] = l
	}
	r.locksMu.Unlock()

	l.Lock()
	defer l.Unlock()
	return fn(ctx, r)
}

func mentorFilter(mentorID domain.UserID, statuses []domain.ProjectStatus) func(*domain.Project) bool {
	return func(p *domain.Project) bool {
		if !p.HasMentor(mentorID) {
			return false
		}
		if len(statuses) == 0 {
			return true
		}
		for _, s := range statuses {
			if p.Status == s {
				return true
			}
		}
		return false
	}
}

// list returns matching projects, most recently updated first.
func (r *ProjectRepository) list(keep func(*domain.Project) bool) []*domain.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Project, 0)
	for _, p := range r.items {
		if keep(p) {
			out = append(out, clone(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)
