// Package suggest ranks mentors for a project or a free keyword query.
package suggest

import (
	"context"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	domerrors "github.com/Ananya01-bliss/new-student-mentor/internal/domain/errors"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain/matching"
)

// Result is a ranked list plus the keywords it was scored against.
type Result struct {
	Keywords []string                `json:"keywords"`
	Mentors  []matching.ScoredMentor `json:"mentors"`
}

// ForProject suggests mentors for a project's tags and text.
type ForProject struct {
	projects ports.ProjectRepository
	mentors  ports.MentorPool
	limit    int
}

// NewForProject builds the use case. limit <= 0 uses matching.DefaultLimit.
func NewForProject(projects ports.ProjectRepository, mentors ports.MentorPool, limit int) *ForProject {
	return &ForProject{projects: projects, mentors: mentors, limit: limit}
}

// Execute scores the mentor pool against the project's keywords.
func (uc *ForProject) Execute(ctx context.Context, actor domain.Identity, id domain.ProjectID) (*Result, error) {
	p, err := uc.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domerrors.ErrProjectNotFound
	}
	if err := p.AuthorizeView(actor); err != nil {
		return nil, err
	}
	kws := matching.GatherKeywords(p.Keywords, p.Idea, p.GuidanceNeeded, p.Title)
	return rank(ctx, uc.mentors, kws, uc.limit)
}

// ByKeywords suggests mentors for caller-supplied keywords.
type ByKeywords struct {
	mentors ports.MentorPool
	limit   int
}

// NewByKeywords builds the use case. limit <= 0 uses matching.DefaultLimit.
func NewByKeywords(mentors ports.MentorPool, limit int) *ByKeywords {
	return &ByKeywords{mentors: mentors, limit: limit}
}

// Execute normalises raw (a string, a list, or a decoded JSON array) and
// ranks mentors. An input that yields no keywords returns an empty list.
func (uc *ByKeywords) Execute(ctx context.Context, raw any) (*Result, error) {
	return rank(ctx, uc.mentors, matching.NormalizeKeywordInput(raw), uc.limit)
}

func rank(ctx context.Context, pool ports.MentorPool, kws []string, limit int) (*Result, error) {
	if len(kws) == 0 {
		return &Result{Keywords: []string{}, Mentors: []matching.ScoredMentor{}}, nil
	}
	mentors, err := pool.ListMentors(ctx)
	if err != nil {
		return nil, err
	}
	return &Result{Keywords: kws, Mentors: matching.Suggest(mentors, kws, limit)}, nil
}
