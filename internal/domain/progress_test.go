package domain

import "testing"

func projectWith(statuses ...MilestoneStatus) *Project {
	p := &Project{Status: StatusApproved}
	for _, s := range statuses {
		p.Milestones = append(p.Milestones, Milestone{Status: s})
	}
	return p
}

func TestRecompute(t *testing.T) {
	tests := []struct {
		name         string
		start        ProjectStatus
		milestones   []MilestoneStatus
		wantProgress int
		wantStatus   ProjectStatus
	}{
		{"no milestones keeps status", StatusApproved, nil, 0, StatusApproved},
		{"mixed is in progress", StatusApproved, []MilestoneStatus{MilestoneCompleted, MilestoneSubmitted, MilestonePending}, 50, StatusInProgress},
		{"all completed", StatusInProgress, []MilestoneStatus{MilestoneCompleted, MilestoneCompleted}, 100, StatusCompleted},
		{"all pending does not regress", StatusApproved, []MilestoneStatus{MilestonePending, MilestonePending}, 0, StatusApproved},
		{"pending project with zero progress untouched", StatusPending, []MilestoneStatus{MilestonePending}, 0, StatusPending},
		{"one submitted of three rounds", StatusApproved, []MilestoneStatus{MilestoneSubmitted, MilestonePending, MilestonePending}, 17, StatusInProgress},
		{"half rounds away from zero", StatusApproved, []MilestoneStatus{MilestoneSubmitted, MilestonePending, MilestonePending, MilestonePending}, 13, StatusInProgress},
		{"completed regresses to in progress", StatusCompleted, []MilestoneStatus{MilestoneCompleted, MilestonePending}, 50, StatusInProgress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := projectWith(tt.milestones...)
			p.Status = tt.start
			p.Progress = 42
			p.Recompute()
			if p.Progress != tt.wantProgress {
				t.Errorf("Progress = %d, want %d", p.Progress, tt.wantProgress)
			}
			if p.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", p.Status, tt.wantStatus)
			}
		})
	}
}

func TestRecomputeIdempotent(t *testing.T) {
	p := projectWith(MilestoneCompleted, MilestoneSubmitted, MilestonePending)
	p.Recompute()
	progress, status := p.Progress, p.Status
	p.Recompute()
	if p.Progress != progress || p.Status != status {
		t.Errorf("second Recompute = (%d, %s), want (%d, %s)", p.Progress, p.Status, progress, status)
	}
}
