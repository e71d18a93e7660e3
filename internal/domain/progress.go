package domain

import "math"

// Points a milestone contributes toward its 100-point share.
const (
	pointsCompleted = 100
	pointsSubmitted = 50
)

// Recompute derives Progress from the milestone list and moves Status forward
// when progress is positive. It never regresses a project to an earlier state
// when progress is zero. Calling it twice yields the same result.
func (p *Project) Recompute() {
	if len(p.Milestones) == 0 {
		p.Progress = 0
		return
	}
	total := 100 * len(p.Milestones)
	earned := 0
	for _, m := range p.Milestones {
		switch m.Status {
		case MilestoneCompleted:
			earned += pointsCompleted
		case MilestoneSubmitted:
			earned += pointsSubmitted
		}
	}
	// math.Round rounds half away from zero.
	p.Progress = int(math.Round(100 * float64(earned) / float64(total)))
	switch {
	case p.Progress == 100:
		p.Status = StatusCompleted
	case p.Progress > 0:
		p.Status = StatusInProgress
	}
}
