package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	domerrors "github.com/Ananya01-bliss/new-student-mentor/internal/domain/errors"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/persistence/memory"
)

func TestDirectory(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	sid := domain.NewUserID(uuid.New())
	mid := domain.NewUserID(uuid.New())
	_ = users.Create(ctx, domain.NewStudent(sid, "s@example.com", domain.StudentProfile{Name: "S"}))
	_ = users.Create(ctx, domain.NewMentor(mid, "m@example.com", domain.MentorProfile{Name: "M"}))
	d := NewDirectory(users, users)

	ms, err := d.Mentors(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 1 || ms[0].ID != mid {
		t.Errorf("mentors: got %+v", ms)
	}
	if _, err := d.Mentor(ctx, sid); !errors.Is(err, domerrors.ErrNotFound) {
		t.Errorf("student as mentor: got %v, want not found", err)
	}
	if _, err := d.Get(ctx, domain.NewUserID(uuid.New())); !errors.Is(err, domerrors.ErrUserNotFound) {
		t.Errorf("missing: got %v, want user not found", err)
	}
	u, err := d.Get(ctx, sid)
	if err != nil || u.DisplayName() != "S" {
		t.Errorf("get: got %v %v", u, err)
	}
}
