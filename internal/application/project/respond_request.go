package project

import (
	"context"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	domerrors "github.com/Ananya01-bliss/new-student-mentor/internal/domain/errors"
)

// RespondInput carries a mentor's approve or reject decision.
type RespondInput struct {
	Actor     domain.Identity
	ProjectID domain.ProjectID
	Decision  domain.ProjectStatus
}

// RespondToRequest applies a mentor's decision under the mentor's intake lock.
type RespondToRequest struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	sink     ports.NotificationSink
}

// NewRespondToRequest builds the use case.
func NewRespondToRequest(projects ports.ProjectRepository, users ports.UserRepository, sink ports.NotificationSink) *RespondToRequest {
	return &RespondToRequest{projects: projects, users: users, sink: sink}
}

// Execute counts the mentor's active projects and applies the decision
// atomically with that count.
func (uc *RespondToRequest) Execute(ctx context.Context, input RespondInput) (*domain.Project, error) {
	if input.Actor.Role != domain.RoleMentor {
		return nil, domerrors.NotAuthorized("only mentors can respond to requests")
	}
	mentor, err := loadMentor(ctx, uc.users, input.Actor.UserID)
	if err != nil {
		return nil, err
	}
	var p *domain.Project
	at := now()
	err = uc.projects.WithMentorLock(ctx, input.Actor.UserID, func(ctx context.Context, repo ports.ProjectRepository) error {
		var err error
		p, err = loadProject(ctx, repo, input.ProjectID)
		if err != nil {
			return err
		}
		active := 0
		if input.Decision == domain.StatusApproved {
			active, err = repo.CountByMentor(ctx, mentor.ID, domain.ActiveStatuses...)
			if err != nil {
				return err
			}
			// Re-approving an already active project must not count it twice.
			if p.HasMentor(mentor.ID) && (p.Status == domain.StatusApproved || p.Status == domain.StatusInProgress) {
				active--
			}
		}
		if err := p.Respond(input.Actor, mentor, input.Decision, active, at); err != nil {
			return err
		}
		return repo.Save(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	if p.Status == domain.StatusApproved {
		notify(ctx, uc.sink, domain.RequestApproved(p, mentor, at))
	} else {
		notify(ctx, uc.sink, domain.RequestRejected(p, mentor, at))
	}
	return p, nil
}
