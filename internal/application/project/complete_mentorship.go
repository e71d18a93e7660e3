package project

import (
	"context"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// CompleteMentorshipInput identifies the project the mentor is closing.
type CompleteMentorshipInput struct {
	Actor     domain.Identity
	ProjectID domain.ProjectID
}

// CompleteMentorship ends a mentorship early.
type CompleteMentorship struct {
	projects ports.ProjectRepository
	sink     ports.NotificationSink
}

// NewCompleteMentorship builds the use case.
func NewCompleteMentorship(projects ports.ProjectRepository, sink ports.NotificationSink) *CompleteMentorship {
	return &CompleteMentorship{projects: projects, sink: sink}
}

// Execute marks the project completed with full progress. A repeat call
// returns the project without saving or notifying again.
func (uc *CompleteMentorship) Execute(ctx context.Context, input CompleteMentorshipInput) (*domain.Project, error) {
	p, err := loadProject(ctx, uc.projects, input.ProjectID)
	if err != nil {
		return nil, err
	}
	at := now()
	already := p.Status == domain.StatusCompleted
	if err := p.Complete(input.Actor, at); err != nil {
		return nil, err
	}
	if already {
		return p, nil
	}
	if err := uc.projects.Save(ctx, p); err != nil {
		return nil, err
	}
	notify(ctx, uc.sink, domain.MentorshipCompleted(p, at))
	return p, nil
}
