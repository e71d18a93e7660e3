package project

import (
	"context"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// UpdateProjectInput edits project fields. A MentorID is treated as a fresh
// mentorship request.
type UpdateProjectInput struct {
	Actor     domain.Identity
	ProjectID domain.ProjectID
	Update    domain.ProjectUpdate
	MentorID  *domain.UserID
}

// UpdateProject applies a student's edits.
type UpdateProject struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	sink     ports.NotificationSink
}

// NewUpdateProject builds the use case.
func NewUpdateProject(projects ports.ProjectRepository, users ports.UserRepository, sink ports.NotificationSink) *UpdateProject {
	return &UpdateProject{projects: projects, users: users, sink: sink}
}

// Execute loads, edits and saves the project.
func (uc *UpdateProject) Execute(ctx context.Context, input UpdateProjectInput) (*domain.Project, error) {
	p, err := loadProject(ctx, uc.projects, input.ProjectID)
	if err != nil {
		return nil, err
	}
	at := now()
	if err := p.Update(input.Actor, input.Update, at); err != nil {
		return nil, err
	}
	var n *domain.Notification
	if m := input.MentorID; m != nil && !(p.Status == domain.StatusPending && p.HasMentor(*m)) {
		req, err := requestMentorship(ctx, uc.users, p, input.Actor, *m, at)
		if err != nil {
			return nil, err
		}
		n = &req
	}
	if err := uc.projects.Save(ctx, p); err != nil {
		return nil, err
	}
	if n != nil {
		notify(ctx, uc.sink, *n)
	}
	return p, nil
}
