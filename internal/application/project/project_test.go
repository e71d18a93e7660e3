package project

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	domerrors "github.com/Ananya01-bliss/new-student-mentor/internal/domain/errors"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/persistence/memory"
)

type recordingSink struct {
	mu   sync.Mutex
	sent []domain.Notification
	err  error
}

func (s *recordingSink) Notify(ctx context.Context, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, n)
	return s.err
}

func (s *recordingSink) kinds() []domain.NotificationKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.NotificationKind, len(s.sent))
	for i, n := range s.sent {
		out[i] = n.Kind
	}
	return out
}

type fixture struct {
	projects *memory.ProjectRepository
	users    *memory.UserRepository
	sink     *recordingSink
	student  domain.Identity
	mentor   domain.Identity
}

func newFixture(t *testing.T, maxStudents int) *fixture {
	t.Helper()
	f := &fixture{
		projects: memory.NewProjectRepository(),
		users:    memory.NewUserRepository(),
		sink:     &recordingSink{},
	}
	sid := domain.NewUserID(uuid.New())
	mid := domain.NewUserID(uuid.New())
	ctx := context.Background()
	if err := f.users.Create(ctx, domain.NewStudent(sid, "stu@example.com", domain.StudentProfile{Name: "Stu"})); err != nil {
		t.Fatal(err)
	}
	if err := f.users.Create(ctx, domain.NewMentor(mid, "men@example.com", domain.MentorProfile{Name: "Dr. Men", MaxStudents: maxStudents})); err != nil {
		t.Fatal(err)
	}
	f.student = domain.Identity{UserID: sid, Role: domain.RoleStudent}
	f.mentor = domain.Identity{UserID: mid, Role: domain.RoleMentor}
	return f
}

func (f *fixture) create(t *testing.T, withMentor bool) *domain.Project {
	t.Helper()
	in := CreateProjectInput{Actor: f.student, Title: "Chatbot", Idea: "An NLP chatbot", Keywords: []string{"NLP", " Python "}}
	if withMentor {
		m := f.mentor.UserID
		in.MentorID = &m
	}
	p, err := NewCreateProject(f.projects, f.users, f.sink).Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return p
}

func (f *fixture) approve(t *testing.T, id domain.ProjectID) (*domain.Project, error) {
	t.Helper()
	return NewRespondToRequest(f.projects, f.users, f.sink).Execute(context.Background(), RespondInput{
		Actor: f.mentor, ProjectID: id, Decision: domain.StatusApproved,
	})
}

func TestCreateProject(t *testing.T) {
	f := newFixture(t, 5)
	draft := f.create(t, false)
	if draft.Status != domain.StatusDraft {
		t.Errorf("status: got %s, want draft", draft.Status)
	}
	if got := draft.Keywords; len(got) != 2 || got[0] != "nlp" || got[1] != "python" {
		t.Errorf("keywords: got %v", got)
	}
	if len(f.sink.sent) != 0 {
		t.Errorf("draft should not notify, got %v", f.sink.kinds())
	}

	pending := f.create(t, true)
	if pending.Status != domain.StatusPending || !pending.HasMentor(f.mentor.UserID) {
		t.Errorf("got status %s mentor %v, want pending with mentor", pending.Status, pending.MentorID)
	}
	if k := f.sink.kinds(); len(k) != 1 || k[0] != domain.NotifyNewRequest {
		t.Errorf("notifications: got %v, want [new_request]", k)
	}
	if f.sink.sent[0].RecipientID != f.mentor.UserID {
		t.Error("new request should go to the mentor")
	}
}

func TestCreateProject_UnknownMentor(t *testing.T) {
	f := newFixture(t, 5)
	ghost := domain.NewUserID(uuid.New())
	_, err := NewCreateProject(f.projects, f.users, f.sink).Execute(context.Background(), CreateProjectInput{
		Actor: f.student, Title: "t", Idea: "i", MentorID: &ghost,
	})
	if !errors.Is(err, domerrors.ErrNotFound) {
		t.Errorf("got %v, want not found", err)
	}
}

func TestCreateProject_MentorCannotCreate(t *testing.T) {
	f := newFixture(t, 5)
	_, err := NewCreateProject(f.projects, f.users, f.sink).Execute(context.Background(), CreateProjectInput{
		Actor: f.mentor, Title: "t", Idea: "i",
	})
	if !errors.Is(err, domerrors.ErrNotAuthorized) {
		t.Errorf("got %v, want not authorized", err)
	}
}

func TestRespond_CapacityReached(t *testing.T) {
	f := newFixture(t, 2)
	for i := 0; i < 2; i++ {
		p := f.create(t, true)
		if _, err := f.approve(t, p.ID); err != nil {
			t.Fatalf("approve %d: %v", i, err)
		}
	}
	third := f.create(t, true)
	_, err := f.approve(t, third.ID)
	var capErr *domerrors.CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("got %v, want capacity error", err)
	}
	if capErr.Limit != 2 {
		t.Errorf("limit: got %d, want 2", capErr.Limit)
	}
	stored, _ := f.projects.GetByID(context.Background(), third.ID)
	if stored.Status != domain.StatusPending {
		t.Errorf("rejected approval must not change status, got %s", stored.Status)
	}
}

func TestRespond_ConcurrentApprovalsRespectCapacity(t *testing.T) {
	f := newFixture(t, 3)
	ids := make([]domain.ProjectID, 8)
	for i := range ids {
		ids[i] = f.create(t, true).ID
	}
	var wg sync.WaitGroup
	var mu sync.Mutex
	approved := 0
	for _, id := range ids {
		wg.Add(1)
		go func(id domain.ProjectID) {
			defer wg.Done()
			if _, err := f.approve(t, id); err == nil {
				mu.Lock()
				approved++
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()
	if approved != 3 {
		t.Errorf("approved: got %d, want 3", approved)
	}
}

func TestRespond_ReapproveDoesNotCountItself(t *testing.T) {
	f := newFixture(t, 1)
	p := f.create(t, true)
	if _, err := f.approve(t, p.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := f.approve(t, p.ID); err != nil {
		t.Errorf("re-approve: %v", err)
	}
}

func TestRespond_RejectNotifiesStudent(t *testing.T) {
	f := newFixture(t, 5)
	p := f.create(t, true)
	got, err := NewRespondToRequest(f.projects, f.users, f.sink).Execute(context.Background(), RespondInput{
		Actor: f.mentor, ProjectID: p.ID, Decision: domain.StatusRejected,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != domain.StatusRejected {
		t.Errorf("status: got %s, want rejected", got.Status)
	}
	last := f.sink.sent[len(f.sink.sent)-1]
	if last.Kind != domain.NotifyRequestRejected || last.RecipientID != f.student.UserID {
		t.Errorf("got %s to %v, want request_rejected to student", last.Kind, last.RecipientID)
	}
	if last.MentorName != "Dr. Men" {
		t.Errorf("mentor name: got %q", last.MentorName)
	}
}

func TestRespond_StudentForbidden(t *testing.T) {
	f := newFixture(t, 5)
	p := f.create(t, true)
	_, err := NewRespondToRequest(f.projects, f.users, f.sink).Execute(context.Background(), RespondInput{
		Actor: f.student, ProjectID: p.ID, Decision: domain.StatusApproved,
	})
	if !errors.Is(err, domerrors.ErrNotAuthorized) {
		t.Errorf("got %v, want not authorized", err)
	}
}

func TestSinkFailureDoesNotFailMutation(t *testing.T) {
	f := newFixture(t, 5)
	f.sink.err = errors.New("push down")
	p := f.create(t, true)
	if _, err := f.approve(t, p.ID); err != nil {
		t.Errorf("approve with failing sink: %v", err)
	}
}

func TestMilestoneLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 5)
	p := f.create(t, true)
	if _, err := f.approve(t, p.ID); err != nil {
		t.Fatal(err)
	}

	add := NewAddMilestone(f.projects, f.sink)
	r1, err := add.Execute(ctx, AddMilestoneInput{Actor: f.mentor, ProjectID: p.ID, Title: "Design"})
	if err != nil {
		t.Fatal(err)
	}
	r2, err := add.Execute(ctx, AddMilestoneInput{Actor: f.mentor, ProjectID: p.ID, Title: "Build"})
	if err != nil {
		t.Fatal(err)
	}

	sub, err := NewSubmitMilestone(f.projects, f.sink).Execute(ctx, SubmitMilestoneInput{
		Actor: f.student, ProjectID: p.ID, MilestoneID: r1.Milestone.ID, Submission: "https://repo",
	})
	if err != nil {
		t.Fatal(err)
	}
	if sub.Project.Progress != 25 || sub.Project.Status != domain.StatusInProgress {
		t.Errorf("after submit: got %d%% %s, want 25%% in_progress", sub.Project.Progress, sub.Project.Status)
	}

	eval := NewEvaluateMilestone(f.projects, f.sink)
	for _, id := range []domain.MilestoneID{r1.Milestone.ID, r2.Milestone.ID} {
		if _, err := eval.Execute(ctx, EvaluateMilestoneInput{
			Actor: f.mentor, ProjectID: p.ID, MilestoneID: id, Status: domain.MilestoneCompleted, Feedback: "good",
		}); err != nil {
			t.Fatal(err)
		}
	}
	stored, _ := f.projects.GetByID(ctx, p.ID)
	if stored.Progress != 100 || stored.Status != domain.StatusCompleted {
		t.Errorf("after evaluations: got %d%% %s, want 100%% completed", stored.Progress, stored.Status)
	}

	_, err = NewCancelSubmission(f.projects).Execute(ctx, CancelSubmissionInput{
		Actor: f.student, ProjectID: p.ID, MilestoneID: r1.Milestone.ID,
	})
	if !errors.Is(err, domerrors.ErrInvalidStatus) {
		t.Errorf("cancel on completed project: got %v, want invalid status", err)
	}

	want := []domain.NotificationKind{
		domain.NotifyNewRequest,
		domain.NotifyRequestApproved,
		domain.NotifyMilestoneAdded,
		domain.NotifyMilestoneAdded,
		domain.NotifyMilestoneSubmitted,
		domain.NotifyMilestoneApproved,
		domain.NotifyMilestoneApproved,
	}
	got := f.sink.kinds()
	if len(got) != len(want) {
		t.Fatalf("notifications: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCompleteMentorship(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 5)
	p := f.create(t, true)

	uc := NewCompleteMentorship(f.projects, f.sink)
	if _, err := uc.Execute(ctx, CompleteMentorshipInput{Actor: f.mentor, ProjectID: p.ID}); !errors.Is(err, domerrors.ErrInvalidStatus) {
		t.Errorf("complete pending: got %v, want invalid status", err)
	}
	if _, err := f.approve(t, p.ID); err != nil {
		t.Fatal(err)
	}
	got, err := uc.Execute(ctx, CompleteMentorshipInput{Actor: f.mentor, ProjectID: p.ID})
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != domain.StatusCompleted || got.Progress != 100 {
		t.Errorf("got %s %d%%, want completed 100%%", got.Status, got.Progress)
	}

	sent := len(f.sink.kinds())
	if _, err := uc.Execute(ctx, CompleteMentorshipInput{Actor: f.mentor, ProjectID: p.ID}); err != nil {
		t.Fatalf("repeat complete: %v", err)
	}
	if got := len(f.sink.kinds()); got != sent {
		t.Errorf("repeat complete sent %d more notifications, want 0", got-sent)
	}
}

func TestUpdateProject_MentorIDRequests(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 5)
	p := f.create(t, false)
	title := "New title"
	m := f.mentor.UserID
	got, err := NewUpdateProject(f.projects, f.users, f.sink).Execute(ctx, UpdateProjectInput{
		Actor: f.student, ProjectID: p.ID, Update: domain.ProjectUpdate{Title: &title}, MentorID: &m,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != title || got.Status != domain.StatusPending {
		t.Errorf("got %q %s, want updated pending", got.Title, got.Status)
	}
	if k := f.sink.kinds(); len(k) != 1 || k[0] != domain.NotifyNewRequest {
		t.Errorf("notifications: got %v", k)
	}

	// Same mentor again while pending is a plain edit.
	if _, err := NewUpdateProject(f.projects, f.users, f.sink).Execute(ctx, UpdateProjectInput{
		Actor: f.student, ProjectID: p.ID, MentorID: &m,
	}); err != nil {
		t.Fatal(err)
	}
	if len(f.sink.sent) != 1 {
		t.Errorf("repeat request should not notify again, got %v", f.sink.kinds())
	}
}

func TestRequestMentorship_AfterRejection(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 5)
	p := f.create(t, true)
	if _, err := NewRespondToRequest(f.projects, f.users, f.sink).Execute(ctx, RespondInput{
		Actor: f.mentor, ProjectID: p.ID, Decision: domain.StatusRejected,
	}); err != nil {
		t.Fatal(err)
	}
	got, err := NewRequestMentorship(f.projects, f.users, f.sink).Execute(ctx, RequestMentorshipInput{
		Actor: f.student, ProjectID: p.ID, MentorID: f.mentor.UserID,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != domain.StatusPending {
		t.Errorf("status: got %s, want pending", got.Status)
	}
}

func TestDeleteProject(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 5)
	p := f.create(t, false)
	uc := NewDeleteProject(f.projects)
	if err := uc.Execute(ctx, f.mentor, p.ID); !errors.Is(err, domerrors.ErrNotAuthorized) {
		t.Errorf("mentor delete: got %v, want not authorized", err)
	}
	if err := uc.Execute(ctx, f.student, p.ID); err != nil {
		t.Fatal(err)
	}
	if err := uc.Execute(ctx, f.student, p.ID); !errors.Is(err, domerrors.ErrProjectNotFound) {
		t.Errorf("second delete: got %v, want project not found", err)
	}
}

func TestQueries(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 5)
	a := f.create(t, true)
	f.create(t, true)
	f.create(t, false)
	if _, err := f.approve(t, a.ID); err != nil {
		t.Fatal(err)
	}
	q := NewQueries(f.projects, f.users)

	mine, err := q.StudentProjects(ctx, f.student)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 3 {
		t.Errorf("student projects: got %d, want 3", len(mine))
	}

	reqs, err := q.MentorRequests(ctx, f.mentor)
	if err != nil {
		t.Fatal(err)
	}
	if len(reqs) != 1 || reqs[0].Student == nil || reqs[0].Student.Name != "Stu" {
		t.Errorf("requests: got %+v", reqs)
	}

	stats, err := q.MentorStats(ctx, f.mentor)
	if err != nil {
		t.Fatal(err)
	}
	want := MentorStats{ActiveMentees: 1, PendingRequests: 1, CompletedProjects: 0, MaxStudents: 5}
	if *stats != want {
		t.Errorf("stats: got %+v, want %+v", *stats, want)
	}

	stranger := domain.Identity{UserID: domain.NewUserID(uuid.New()), Role: domain.RoleStudent}
	if _, err := q.Get(ctx, stranger, a.ID); !errors.Is(err, domerrors.ErrNotAuthorized) {
		t.Errorf("stranger get: got %v, want not authorized", err)
	}
	v, err := q.Get(ctx, f.mentor, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if v.Mentor == nil || v.Mentor.Name != "Dr. Men" {
		t.Errorf("view mentor: got %+v", v.Mentor)
	}
}
