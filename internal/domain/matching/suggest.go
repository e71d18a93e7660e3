package matching

import (
	"sort"

	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// DefaultLimit caps suggestion lists when the caller passes no limit.
const DefaultLimit = 10

// ScoredMentor is a mentor with its relevance to a keyword set.
type ScoredMentor struct {
	Mentor          domain.MentorProfile `json:"mentor"`
	Score           int                  `json:"match_score"`
	MatchedKeywords []string             `json:"matched_keywords"`
}

// Suggest scores every mentor, drops non-matches, sorts by score descending
// (ties keep input order) and truncates to limit. No keywords means no
// suggestions.
func Suggest(mentors []domain.MentorProfile, keywords []string, limit int) []ScoredMentor {
	q := Compile(keywords)
	if q.Len() == 0 {
		return []ScoredMentor{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	out := make([]ScoredMentor, 0, len(mentors))
	for i := range mentors {
		r := q.Score(&mentors[i])
		if r.Score == 0 {
			continue
		}
		out = append(out, ScoredMentor{Mentor: mentors[i], Score: r.Score, MatchedKeywords: r.MatchedKeywords})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
