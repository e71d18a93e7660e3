package matching

import (
	"regexp"
	"strings"

	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// Tier weights. Curated expertise tags outrank fuzzy tag overlap, which
// outranks free-text profile prose.
const (
	WeightExact   = 3
	WeightPartial = 2
	WeightText    = 1
)

// Result is the outcome of scoring one mentor.
type Result struct {
	Score           int
	MatchedKeywords []string
}

type term struct {
	raw   string
	lower string
	word  *regexp.Regexp
}

// Query is a keyword list compiled once and scored against many mentors.
type Query struct {
	terms []term
}

// Compile prepares keywords for scoring. Blank keywords are dropped.
func Compile(keywords []string) *Query {
	q := &Query{terms: make([]term, 0, len(keywords))}
	for _, kw := range keywords {
		lower := strings.ToLower(strings.TrimSpace(kw))
		if lower == "" {
			continue
		}
		q.terms = append(q.terms, term{
			raw:   kw,
			lower: lower,
			word:  regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(lower) + `\b`),
		})
	}
	return q
}

// Len returns the number of usable keywords.
func (q *Query) Len() int { return len(q.terms) }

// Score applies the tiered rules to one mentor. Tiers are exclusive per
// keyword and checked in order: exact or whole-word expertise match, then
// substring overlap with an expertise entry in either direction, then a
// substring of the profile text.
func (q *Query) Score(m *domain.MentorProfile) Result {
	expertise := make([]string, 0, len(m.Expertise))
	for _, e := range m.Expertise {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			expertise = append(expertise, e)
		}
	}
	text := strings.ToLower(strings.Join([]string{m.Summary, m.ShortDescription, m.ProjectsDone}, " "))

	var res Result
	matched := make(map[string]struct{})
	for _, t := range q.terms {
		w := 0
		switch {
		case exactOrWord(expertise, t):
			w = WeightExact
		case partial(expertise, t.lower):
			w = WeightPartial
		case strings.Contains(text, t.lower):
			w = WeightText
		}
		if w == 0 {
			continue
		}
		res.Score += w
		if _, dup := matched[t.raw]; !dup {
			matched[t.raw] = struct{}{}
			res.MatchedKeywords = append(res.MatchedKeywords, t.raw)
		}
	}
	return res
}

// Score is a convenience for scoring a single mentor.
func Score(m *domain.MentorProfile, keywords []string) Result {
	return Compile(keywords).Score(m)
}

func exactOrWord(expertise []string, t term) bool {
	for _, e := range expertise {
		if e == t.lower || t.word.MatchString(e) {
			return true
		}
	}
	return false
}

func partial(expertise []string, kw string) bool {
	for _, e := range expertise {
		if strings.Contains(e, kw) || strings.Contains(kw, e) {
			return true
		}
	}
	return false
}
