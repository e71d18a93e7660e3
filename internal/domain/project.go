package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProjectID is a value object for project identity.
type ProjectID struct{ uuid.UUID }

// NewProjectID creates a new ProjectID from uuid.
func NewProjectID(id uuid.UUID) ProjectID { return ProjectID{UUID: id} }

// ParseProjectID parses the canonical string form.
func ParseProjectID(s string) (ProjectID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ProjectID{}, err
	}
	return ProjectID{UUID: id}, nil
}

// String returns the canonical string form.
func (p ProjectID) String() string { return p.UUID.String() }

// MilestoneID identifies a milestone within its project.
type MilestoneID struct{ uuid.UUID }

// NewMilestoneID creates a new MilestoneID from uuid.
func NewMilestoneID(id uuid.UUID) MilestoneID { return MilestoneID{UUID: id} }

// ParseMilestoneID parses the canonical string form.
func ParseMilestoneID(s string) (MilestoneID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return MilestoneID{}, err
	}
	return MilestoneID{UUID: id}, nil
}

// String returns the canonical string form.
func (m MilestoneID) String() string { return m.UUID.String() }

// ProjectStatus is the mentorship lifecycle state of a project.
type ProjectStatus string

const (
	StatusDraft      ProjectStatus = "draft"
	StatusPending    ProjectStatus = "pending"
	StatusApproved   ProjectStatus = "approved"
	StatusRejected   ProjectStatus = "rejected"
	StatusInProgress ProjectStatus = "in_progress"
	StatusCompleted  ProjectStatus = "completed"
)

// ActiveStatuses count toward a mentor's intake limit.
var ActiveStatuses = []ProjectStatus{StatusApproved, StatusInProgress}

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further lifecycle transition leaves s.
func (s ProjectStatus) Terminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// MilestoneStatus is the per-milestone state; each milestone moves independently.
type MilestoneStatus string

const (
	MilestonePending   MilestoneStatus = "pending"
	MilestoneSubmitted MilestoneStatus = "submitted"
	MilestoneCompleted MilestoneStatus = "completed"
	// MilestoneRejected is reserved. Evaluation rejects back to pending.
	MilestoneRejected MilestoneStatus = "rejected"
)

// Milestone is a mentor-defined deliverable owned by its project.
type Milestone struct {
	ID          MilestoneID     `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	Status      MilestoneStatus `json:"status"`
	Submission  *string         `json:"submission"`
	Feedback    *string         `json:"feedback"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Project is a student's project and its mentorship state.
type Project struct {
	ID             ProjectID     `json:"id"`
	StudentID      UserID        `json:"student_id"`
	MentorID       *UserID       `json:"mentor_id"`
	Title          string        `json:"title"`
	Idea           string        `json:"idea"`
	GuidanceNeeded string        `json:"guidance_needed"`
	Keywords       []string      `json:"keywords"`
	Status         ProjectStatus `json:"status"`
	Progress       int           `json:"progress"`
	Milestones     []Milestone   `json:"milestones"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Milestone returns a pointer into p.Milestones, or nil.
func (p *Project) Milestone(id MilestoneID) *Milestone {
	for i := range p.Milestones {
		if p.Milestones[i].ID == id {
			return &p.Milestones[i]
		}
	}
	return nil
}

// HasMentor reports whether id is the assigned mentor.
func (p *Project) HasMentor(id UserID) bool {
	return p.MentorID != nil && *p.MentorID == id
}

// NormalizeTags lowercases and trims explicit keyword tags, dropping empties.
// Order and duplicates are preserved.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
