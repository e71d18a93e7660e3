package project

import (
	"context"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	domerrors "github.com/Ananya01-bliss/new-student-mentor/internal/domain/errors"
)

// StudentSummary is the student side of a project as mentors see it.
type StudentSummary struct {
	ID             domain.UserID `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	USN            string        `json:"usn,omitempty"`
	Domain         string        `json:"domain,omitempty"`
	Specialization string        `json:"specialization,omitempty"`
	Year           int           `json:"year,omitempty"`
}

// ProjectView is a project with its participants resolved.
type ProjectView struct {
	*domain.Project
	Student *StudentSummary       `json:"student,omitempty"`
	Mentor  *domain.MentorProfile `json:"mentor,omitempty"`
}

// MentorStats summarises a mentor's dashboard.
type MentorStats struct {
	ActiveMentees     int `json:"active_mentees"`
	PendingRequests   int `json:"pending_requests"`
	CompletedProjects int `json:"completed_projects"`
	MaxStudents       int `json:"max_students"`
}

// Queries serves the read side of projects.
type Queries struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
}

// NewQueries builds the read service.
func NewQueries(projects ports.ProjectRepository, users ports.UserRepository) *Queries {
	return &Queries{projects: projects, users: users}
}

// Get returns a project visible to actor.
func (q *Queries) Get(ctx context.Context, actor domain.Identity, id domain.ProjectID) (*ProjectView, error) {
	p, err := loadProject(ctx, q.projects, id)
	if err != nil {
		return nil, err
	}
	if err := p.AuthorizeView(actor); err != nil {
		return nil, err
	}
	return q.view(ctx, p), nil
}

// StudentProjects lists the actor's own projects, newest first.
func (q *Queries) StudentProjects(ctx context.Context, actor domain.Identity) ([]*ProjectView, error) {
	if actor.Role != domain.RoleStudent {
		return nil, domerrors.NotAuthorized("only students have projects")
	}
	ps, err := q.projects.ListByStudent(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return q.views(ctx, ps), nil
}

// MentorRequests lists pending requests addressed to the actor.
func (q *Queries) MentorRequests(ctx context.Context, actor domain.Identity) ([]*ProjectView, error) {
	return q.mentorList(ctx, actor, domain.StatusPending)
}

// MentorMentees lists the actor's accepted projects, finished ones included.
func (q *Queries) MentorMentees(ctx context.Context, actor domain.Identity) ([]*ProjectView, error) {
	return q.mentorList(ctx, actor, domain.StatusApproved, domain.StatusInProgress, domain.StatusCompleted)
}

// MentorStats counts the actor's mentees, requests and completions.
func (q *Queries) MentorStats(ctx context.Context, actor domain.Identity) (*MentorStats, error) {
	if actor.Role != domain.RoleMentor {
		return nil, domerrors.NotAuthorized("only mentors have stats")
	}
	mentor, err := loadMentor(ctx, q.users, actor.UserID)
	if err != nil {
		return nil, err
	}
	stats := &MentorStats{MaxStudents: mentor.MaxStudents}
	if stats.ActiveMentees, err = q.projects.CountByMentor(ctx, actor.UserID, domain.ActiveStatuses...); err != nil {
		return nil, err
	}
	if stats.PendingRequests, err = q.projects.CountByMentor(ctx, actor.UserID, domain.StatusPending); err != nil {
		return nil, err
	}
	if stats.CompletedProjects, err = q.projects.CountByMentor(ctx, actor.UserID, domain.StatusCompleted); err != nil {
		return nil, err
	}
	return stats, nil
}

func (q *Queries) mentorList(ctx context.Context, actor domain.Identity, statuses ...domain.ProjectStatus) ([]*ProjectView, error) {
	if actor.Role != domain.RoleMentor {
		return nil, domerrors.NotAuthorized("only mentors can list mentees")
	}
	ps, err := q.projects.ListByMentor(ctx, actor.UserID, statuses...)
	if err != nil {
		return nil, err
	}
	return q.views(ctx, ps), nil
}

func (q *Queries) views(ctx context.Context, ps []*domain.Project) []*ProjectView {
	out := make([]*ProjectView, 0, len(ps))
	for _, p := range ps {
		out = append(out, q.view(ctx, p))
	}
	return out
}

// view resolves participants; a missing or unreadable user leaves that side empty.
func (q *Queries) view(ctx context.Context, p *domain.Project) *ProjectView {
	v := &ProjectView{Project: p}
	if u, err := q.users.GetByID(ctx, p.StudentID); err == nil && u != nil {
		if s, ok := u.Student(); ok {
			v.Student = &StudentSummary{
				ID:             u.ID,
				Name:           s.Name,
				Email:          u.Email,
				USN:            s.USN,
				Domain:         s.Domain,
				Specialization: s.Specialization,
				Year:           s.Year,
			}
		}
	}
	if p.MentorID != nil {
		if m, err := loadMentor(ctx, q.users, *p.MentorID); err == nil {
			v.Mentor = m
		}
	}
	return v
}
