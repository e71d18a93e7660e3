package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

func newProject(student domain.UserID, mentor *domain.UserID, status domain.ProjectStatus) *domain.Project {
	now := time.Now()
	return &domain.Project{
		ID:        domain.NewProjectID(uuid.New()),
		StudentID: student,
		MentorID:  mentor,
		Title:     "t",
		Idea:      "i",
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestProjectRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()
	p := newProject(domain.NewUserID(uuid.New()), nil, domain.StatusDraft)
	p.Milestones = []domain.Milestone{{ID: domain.NewMilestoneID(uuid.New()), Title: "m", Status: domain.MilestonePending}}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatal(err)
	}
	got, _ := repo.GetByID(ctx, p.ID)
	got.Title = "changed"
	got.Milestones[0].Status = domain.MilestoneCompleted

	again, _ := repo.GetByID(ctx, p.ID)
	if again.Title != "t" || again.Milestones[0].Status != domain.MilestonePending {
		t.Error("stored project was mutated through a returned copy")
	}
}

func TestProjectRepository_CountByMentor(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()
	student := domain.NewUserID(uuid.New())
	mentor := domain.NewUserID(uuid.New())
	other := domain.NewUserID(uuid.New())
	for _, s := range []domain.ProjectStatus{domain.StatusApproved, domain.StatusInProgress, domain.StatusPending, domain.StatusCompleted} {
		_ = repo.Create(ctx, newProject(student, &mentor, s))
	}
	_ = repo.Create(ctx, newProject(student, &other, domain.StatusApproved))

	tests := []struct {
		name     string
		statuses []domain.ProjectStatus
		want     int
	}{
		{"active", domain.ActiveStatuses, 2},
		{"pending", []domain.ProjectStatus{domain.StatusPending}, 1},
		{"all", nil, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.CountByMentor(ctx, mentor, tt.statuses...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProjectRepository_WithMentorLockSerialises(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()
	mentor := domain.NewUserID(uuid.New())

	var mu sync.Mutex
	inside, maxInside := 0, 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.WithMentorLock(ctx, mentor, func(ctx context.Context, _ ports.ProjectRepository) error {
				mu.Lock()
				inside++
				if inside > maxInside {
					maxInside = inside
				}
				mu.Unlock()
				time.Sleep(time.Millisecond)
				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()
	if maxInside != 1 {
		t.Errorf("concurrent holders: got %d, want 1", maxInside)
	}
}

func TestMessageRepository_MarkRead(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository()
	a := domain.NewUserID(uuid.New())
	b := domain.NewUserID(uuid.New())
	for i := 0; i < 3; i++ {
		_ = repo.Create(ctx, &domain.Message{ID: domain.NewMessageID(uuid.New()), SenderID: a, ReceiverID: b, Content: "hi", SentAt: time.Now()})
	}
	_ = repo.Create(ctx, &domain.Message{ID: domain.NewMessageID(uuid.New()), SenderID: b, ReceiverID: a, Content: "yo", SentAt: time.Now()})

	n, err := repo.MarkRead(ctx, b, a)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("marked: got %d, want 3", n)
	}
	if n, _ := repo.MarkRead(ctx, b, a); n != 0 {
		t.Errorf("second mark: got %d, want 0", n)
	}
	msgs, _ := repo.Between(ctx, a, b)
	if len(msgs) != 4 {
		t.Fatalf("between: got %d, want 4", len(msgs))
	}
	if msgs[3].Read {
		t.Error("message sent to a should still be unread")
	}
}
