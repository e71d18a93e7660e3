package project

import (
	"context"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// CancelSubmissionInput identifies the submission to withdraw.
type CancelSubmissionInput struct {
	Actor       domain.Identity
	ProjectID   domain.ProjectID
	MilestoneID domain.MilestoneID
}

// CancelSubmission withdraws a not-yet-completed submission.
type CancelSubmission struct {
	projects ports.ProjectRepository
}

// NewCancelSubmission builds the use case.
func NewCancelSubmission(projects ports.ProjectRepository) *CancelSubmission {
	return &CancelSubmission{projects: projects}
}

// Execute resets the milestone to pending.
func (uc *CancelSubmission) Execute(ctx context.Context, input CancelSubmissionInput) (*MilestoneResult, error) {
	p, err := loadProject(ctx, uc.projects, input.ProjectID)
	if err != nil {
		return nil, err
	}
	m, err := p.CancelSubmission(input.Actor, input.MilestoneID, now())
	if err != nil {
		return nil, err
	}
	if err := uc.projects.Save(ctx, p); err != nil {
		return nil, err
	}
	return &MilestoneResult{Project: p, Milestone: m}, nil
}
