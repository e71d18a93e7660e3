package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// CreateProjectInput is the student's new project, optionally addressed to a mentor.
type CreateProjectInput struct {
	Actor          domain.Identity
	Title          string
	Idea           string
	GuidanceNeeded string
	Keywords       []string
	MentorID       *domain.UserID
}

// CreateProject creates a draft project, or a pending request when a mentor is chosen.
type CreateProject struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	sink     ports.NotificationSink
}

// NewCreateProject builds the use case.
func NewCreateProject(projects ports.ProjectRepository, users ports.UserRepository, sink ports.NotificationSink) *CreateProject {
	return &CreateProject{projects: projects, users: users, sink: sink}
}

// Execute validates and stores the project.
func (uc *CreateProject) Execute(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	at := now()
	p, err := domain.NewProject(domain.NewProjectID(uuid.New()), input.Actor, domain.NewProjectInput{
		Title:          input.Title,
		Idea:           input.Idea,
		GuidanceNeeded: input.GuidanceNeeded,
		Keywords:       input.Keywords,
	}, at)
	if err != nil {
		return nil, err
	}
	var n *domain.Notification
	if input.MentorID != nil {
		req, err := requestMentorship(ctx, uc.users, p, input.Actor, *input.MentorID, at)
		if err != nil {
			return nil, err
		}
		n = &req
	}
	if err := uc.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	if n != nil {
		notify(ctx, uc.sink, *n)
	}
	return p, nil
}
