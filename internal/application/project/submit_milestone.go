package project

import (
	"context"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// SubmitMilestoneInput is a student's submission, inline text or a stored file reference.
type SubmitMilestoneInput struct {
	Actor       domain.Identity
	ProjectID   domain.ProjectID
	MilestoneID domain.MilestoneID
	Submission  string
}

// SubmitMilestone records a submission for review.
type SubmitMilestone struct {
	projects ports.ProjectRepository
	sink     ports.NotificationSink
}

// NewSubmitMilestone builds the use case.
func NewSubmitMilestone(projects ports.ProjectRepository, sink ports.NotificationSink) *SubmitMilestone {
	return &SubmitMilestone{projects: projects, sink: sink}
}

// Execute stores the submission and notifies the mentor.
func (uc *SubmitMilestone) Execute(ctx context.Context, input SubmitMilestoneInput) (*MilestoneResult, error) {
	p, err := loadProject(ctx, uc.projects, input.ProjectID)
	if err != nil {
		return nil, err
	}
	at := now()
	m, err := p.SubmitMilestone(input.Actor, input.MilestoneID, input.Submission, at)
	if err != nil {
		return nil, err
	}
	if err := uc.projects.Save(ctx, p); err != nil {
		return nil, err
	}
	if p.MentorID != nil {
		notify(ctx, uc.sink, domain.SubmissionReceived(p, m, at))
	}
	return &MilestoneResult{Project: p, Milestone: m}, nil
}
