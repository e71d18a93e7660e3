package project

import (
	"context"
	"time"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	domerrors "github.com/Ananya01-bliss/new-student-mentor/internal/domain/errors"
)

func now() time.Time { return time.Now().UTC() }

func loadProject(ctx context.Context, repo ports.ProjectRepository, id domain.ProjectID) (*domain.Project, error) {
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domerrors.ErrProjectNotFound
	}
	return p, nil
}

func loadMentor(ctx context.Context, users ports.UserRepository, id domain.UserID) (*domain.MentorProfile, error) {
	u, err := users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m, ok := u.Mentor()
	if !ok {
		return nil, domerrors.ErrUserNotFound
	}
	return m, nil
}

// notify hands n to the sink. Delivery is best-effort: the sink logs its own
// failures and the mutation that triggered it stands either way.
func notify(ctx context.Context, sink ports.NotificationSink, n domain.Notification) {
	if sink == nil {
		return
	}
	_ = sink.Notify(ctx, n)
}

// requestMentorship points p at mentorID after checking the target is a
// mentor, and returns the new-request notification for that mentor.
func requestMentorship(ctx context.Context, users ports.UserRepository, p *domain.Project, actor domain.Identity, mentorID domain.UserID, at time.Time) (domain.Notification, error) {
	if _, err := loadMentor(ctx, users, mentorID); err != nil {
		return domain.Notification{}, err
	}
	if err := p.RequestMentorship(actor, mentorID, at); err != nil {
		return domain.Notification{}, err
	}
	name := ""
	if student, err := users.GetByID(ctx, p.StudentID); err == nil && student != nil {
		name = student.DisplayName()
	}
	return domain.NewRequest(p, name, at), nil
}
