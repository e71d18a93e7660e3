package project

import (
	"context"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// EvaluateMilestoneInput is the mentor's verdict on a milestone.
type EvaluateMilestoneInput struct {
	Actor       domain.Identity
	ProjectID   domain.ProjectID
	MilestoneID domain.MilestoneID
	Status      domain.MilestoneStatus
	Feedback    string
}

// EvaluateMilestone approves a milestone or sends it back for revision.
type EvaluateMilestone struct {
	projects ports.ProjectRepository
	sink     ports.NotificationSink
}

// NewEvaluateMilestone builds the use case.
func NewEvaluateMilestone(projects ports.ProjectRepository, sink ports.NotificationSink) *EvaluateMilestone {
	return &EvaluateMilestone{projects: projects, sink: sink}
}

// Execute records the evaluation and notifies the student.
func (uc *EvaluateMilestone) Execute(ctx context.Context, input EvaluateMilestoneInput) (*MilestoneResult, error) {
	p, err := loadProject(ctx, uc.projects, input.ProjectID)
	if err != nil {
		return nil, err
	}
	at := now()
	m, err := p.EvaluateMilestone(input.Actor, input.MilestoneID, input.Status, input.Feedback, at)
	if err != nil {
		return nil, err
	}
	if err := uc.projects.Save(ctx, p); err != nil {
		return nil, err
	}
	notify(ctx, uc.sink, domain.MilestoneEvaluated(p, m, at))
	return &MilestoneResult{Project: p, Milestone: m}, nil
}
