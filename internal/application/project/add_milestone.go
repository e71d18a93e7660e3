package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// AddMilestoneInput describes a new deliverable.
type AddMilestoneInput struct {
	Actor       domain.Identity
	ProjectID   domain.ProjectID
	Title       string
	Description string
	DueDate     *time.Time
}

// MilestoneResult is the project after the change and the milestone it touched.
type MilestoneResult struct {
	Project   *domain.Project   `json:"project"`
	Milestone *domain.Milestone `json:"milestone"`
}

// AddMilestone lets the assigned mentor append a milestone.
type AddMilestone struct {
	projects ports.ProjectRepository
	sink     ports.NotificationSink
}

// NewAddMilestone builds the use case.
func NewAddMilestone(projects ports.ProjectRepository, sink ports.NotificationSink) *AddMilestone {
	return &AddMilestone{projects: projects, sink: sink}
}

// Execute adds the milestone and recomputes progress.
func (uc *AddMilestone) Execute(ctx context.Context, input AddMilestoneInput) (*MilestoneResult, error) {
	p, err := loadProject(ctx, uc.projects, input.ProjectID)
	if err != nil {
		return nil, err
	}
	at := now()
	m, err := p.AddMilestone(input.Actor, domain.Milestone{
		ID:          domain.NewMilestoneID(uuid.New()),
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
	}, at)
	if err != nil {
		return nil, err
	}
	if err := uc.projects.Save(ctx, p); err != nil {
		return nil, err
	}
	notify(ctx, uc.sink, domain.MilestoneAdded(p, m, at))
	return &MilestoneResult{Project: p, Milestone: m}, nil
}
