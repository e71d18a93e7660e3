package domain

import (
	"strings"
	"time"

	domerrors "github.com/Ananya01-bliss/new-student-mentor/internal/domain/errors"
)

// NewProjectInput holds the student-supplied fields for a new project.
type NewProjectInput struct {
	Title          string
	Idea           string
	GuidanceNeeded string
	Keywords       []string
	MentorID       *UserID
}

// NewProject creates a project owned by actor. A pre-selected mentor starts
// the project in pending; otherwise it starts as a draft.
func NewProject(id ProjectID, actor Identity, in NewProjectInput, now time.Time) (*Project, error) {
	if actor.Role != RoleStudent {
		return nil, domerrors.NotAuthorized("only students can create projects")
	}
	title := strings.TrimSpace(in.Title)
	idea := strings.TrimSpace(in.Idea)
	if title == "" || idea == "" {
		return nil, domerrors.Validation("title and idea are required")
	}
	p := &Project{
		ID:             id,
		StudentID:      actor.UserID,
		Title:          title,
		Idea:           idea,
		GuidanceNeeded: strings.TrimSpace(in.GuidanceNeeded),
		Keywords:       NormalizeTags(in.Keywords),
		Status:         StatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.MentorID != nil && !in.MentorID.IsZero() {
		m := *in.MentorID
		p.MentorID = &m
		p.Status = StatusPending
	}
	return p, nil
}

// ProjectUpdate is a partial update; nil fields are left unchanged.
type ProjectUpdate struct {
	Title          *string
	Idea           *string
	GuidanceNeeded *string
	Keywords       []string
}

// Update applies student field edits. It never changes status or mentor.
func (p *Project) Update(actor Identity, u ProjectUpdate, now time.Time) error {
	if !actor.IsStudent(p.StudentID) {
		return domerrors.NotAuthorized("only the owning student can edit this project")
	}
	if u.Title != nil {
		t := strings.TrimSpace(*u.Title)
		if t == "" {
			return domerrors.Validation("title cannot be empty")
		}
		p.Title = t
	}
	if u.Idea != nil {
		i := strings.TrimSpace(*u.Idea)
		if i == "" {
			return domerrors.Validation("idea cannot be empty")
		}
		p.Idea = i
	}
	if u.GuidanceNeeded != nil {
		p.GuidanceNeeded = strings.TrimSpace(*u.GuidanceNeeded)
	}
	if u.Keywords != nil {
		p.Keywords = NormalizeTags(u.Keywords)
	}
	p.UpdatedAt = now
	return nil
}

// RequestMentorship asks mentorID to guide the project. Legal from draft,
// rejected, or pending (re-targeting an open request).
func (p *Project) RequestMentorship(actor Identity, mentorID UserID, now time.Time) error {
	if !actor.IsStudent(p.StudentID) {
		return domerrors.NotAuthorized("only the owning student can request mentorship")
	}
	if mentorID.IsZero() {
		return domerrors.Validation("mentor id is required")
	}
	switch p.Status {
	case StatusDraft, StatusRejected, StatusPending:
	default:
		return domerrors.InvalidStatus("cannot request mentorship for a project in %s", p.Status)
	}
	m := mentorID
	p.MentorID = &m
	p.Status = StatusPending
	p.UpdatedAt = now
	return nil
}

// Respond applies a mentor's decision. activeCount is the number of the
// mentor's projects currently approved or in progress.
func (p *Project) Respond(actor Identity, mentor *MentorProfile, decision ProjectStatus, activeCount int, now time.Time) error {
	if actor.Role != RoleMentor || mentor == nil || mentor.ID != actor.UserID {
		return domerrors.NotAuthorized("only mentors can respond to requests")
	}
	if decision != StatusApproved && decision != StatusRejected {
		return domerrors.InvalidStatus("%q is not a valid response", decision)
	}
	if p.MentorID != nil && !p.HasMentor(actor.UserID) {
		return domerrors.NotAuthorized("this request was sent to another mentor")
	}
	if p.Status.Terminal() {
		return domerrors.InvalidStatus("project is already %s", p.Status)
	}
	if decision == StatusApproved {
		if activeCount >= mentor.MaxStudents {
			return &domerrors.CapacityError{Limit: mentor.MaxStudents}
		}
		m := actor.UserID
		p.MentorID = &m
		p.Status = StatusApproved
	} else {
		p.Status = StatusRejected
	}
	p.UpdatedAt = now
	return nil
}

// AddMilestone appends a pending milestone. Only the assigned mentor may add.
func (p *Project) AddMilestone(actor Identity, m Milestone, now time.Time) (*Milestone, error) {
	if !actor.IsMentor(p.MentorID) {
		return nil, domerrors.NotAuthorized("only the assigned mentor can add milestones")
	}
	if err := p.requireOpen(); err != nil {
		return nil, err
	}
	m.Title = strings.TrimSpace(m.Title)
	if m.Title == "" {
		return nil, domerrors.Validation("milestone title is required")
	}
	m.Description = strings.TrimSpace(m.Description)
	m.Status = MilestonePending
	m.Submission = nil
	m.Feedback = nil
	m.UpdatedAt = now
	p.Milestones = append(p.Milestones, m)
	p.Recompute()
	p.UpdatedAt = now
	return &p.Milestones[len(p.Milestones)-1], nil
}

// SubmitMilestone records a submission, either inline text or a file
// reference; both are stored the same way.
func (p *Project) SubmitMilestone(actor Identity, id MilestoneID, submission string, now time.Time) (*Milestone, error) {
	if !actor.IsStudent(p.StudentID) {
		return nil, domerrors.NotAuthorized("only the owning student can submit milestones")
	}
	if err := p.requireOpen(); err != nil {
		return nil, err
	}
	submission = strings.TrimSpace(submission)
	if submission == "" {
		return nil, domerrors.Validation("submission is required")
	}
	m := p.Milestone(id)
	if m == nil {
		return nil, domerrors.ErrMilestoneNotFound
	}
	m.Submission = &submission
	m.Status = MilestoneSubmitted
	m.UpdatedAt = now
	p.Recompute()
	p.UpdatedAt = now
	return m, nil
}

// CancelSubmission withdraws a submission that has not been completed.
func (p *Project) CancelSubmission(actor Identity, id MilestoneID, now time.Time) (*Milestone, error) {
	if !actor.IsStudent(p.StudentID) {
		return nil, domerrors.NotAuthorized("only the owning student can cancel submissions")
	}
	if err := p.requireOpen(); err != nil {
		return nil, err
	}
	m := p.Milestone(id)
	if m == nil {
		return nil, domerrors.ErrMilestoneNotFound
	}
	if m.Status == MilestoneCompleted {
		return nil, domerrors.Conflict("cannot cancel a completed milestone")
	}
	m.Submission = nil
	m.Status = MilestonePending
	m.UpdatedAt = now
	p.Recompute()
	p.UpdatedAt = now
	return m, nil
}

// EvaluateMilestone marks a milestone completed, or sends it back to pending.
func (p *Project) EvaluateMilestone(actor Identity, id MilestoneID, status MilestoneStatus, feedback string, now time.Time) (*Milestone, error) {
	if !actor.IsMentor(p.MentorID) {
		return nil, domerrors.NotAuthorized("only the assigned mentor can evaluate milestones")
	}
	if err := p.requireOpen(); err != nil {
		return nil, err
	}
	if status != MilestoneCompleted && status != MilestonePending {
		return nil, domerrors.InvalidStatus("%q is not a valid evaluation", status)
	}
	m := p.Milestone(id)
	if m == nil {
		return nil, domerrors.ErrMilestoneNotFound
	}
	m.Status = status
	fb := strings.TrimSpace(feedback)
	m.Feedback = &fb
	m.UpdatedAt = now
	p.Recompute()
	p.UpdatedAt = now
	return m, nil
}

// requireOpen rejects milestone changes once the project is rejected or
// completed, so Recompute cannot move it out of a terminal state.
func (p *Project) requireOpen() error {
	if p.Status.Terminal() {
		return domerrors.InvalidStatus("project is already %s", p.Status)
	}
	return nil
}

// Complete ends the mentorship early regardless of milestone states.
// Completing an already completed project changes nothing.
func (p *Project) Complete(actor Identity, now time.Time) error {
	if !actor.IsMentor(p.MentorID) {
		return domerrors.NotAuthorized("only the assigned mentor can complete this mentorship")
	}
	switch p.Status {
	case StatusCompleted:
		return nil
	case StatusApproved, StatusInProgress:
	default:
		return domerrors.InvalidStatus("cannot complete a project in %s", p.Status)
	}
	p.Status = StatusCompleted
	p.Progress = 100
	p.UpdatedAt = now
	return nil
}

// AuthorizeDelete checks that actor owns the project.
func (p *Project) AuthorizeDelete(actor Identity) error {
	if !actor.IsStudent(p.StudentID) {
		return domerrors.NotAuthorized("only the owning student can delete this project")
	}
	return nil
}

// AuthorizeView allows the owning student and the assigned mentor.
func (p *Project) AuthorizeView(actor Identity) error {
	if actor.IsStudent(p.StudentID) || actor.IsMentor(p.MentorID) {
		return nil
	}
	return domerrors.NotAuthorized("not a participant of this project")
}
