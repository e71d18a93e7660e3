package project

import (
	"context"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// RequestMentorshipInput names the project and the mentor being asked.
type RequestMentorshipInput struct {
	Actor     domain.Identity
	ProjectID domain.ProjectID
	MentorID  domain.UserID
}

// RequestMentorship moves a draft or rejected project to pending for a mentor.
type RequestMentorship struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	sink     ports.NotificationSink
}

// NewRequestMentorship builds the use case.
func NewRequestMentorship(projects ports.ProjectRepository, users ports.UserRepository, sink ports.NotificationSink) *RequestMentorship {
	return &RequestMentorship{projects: projects, users: users, sink: sink}
}

// Execute sends the request and notifies the mentor.
func (uc *RequestMentorship) Execute(ctx context.Context, input RequestMentorshipInput) (*domain.Project, error) {
	p, err := loadProject(ctx, uc.projects, input.ProjectID)
	if err != nil {
		return nil, err
	}
	n, err := requestMentorship(ctx, uc.users, p, input.Actor, input.MentorID, now())
	if err != nil {
		return nil, err
	}
	if err := uc.projects.Save(ctx, p); err != nil {
		return nil, err
	}
	notify(ctx, uc.sink, n)
	return p, nil
}
