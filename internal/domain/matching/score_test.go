package matching

import (
	"reflect"
	"testing"

	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

func TestScoreTiers(t *testing.T) {
	m := &domain.MentorProfile{
		Name:             "Asha",
		Expertise:        []string{" Python ", "Data Science", "ML"},
		Summary:          "Works on AI and artificial intelligence",
		ShortDescription: "Cloud infra",
		ProjectsDone:     "Kubernetes operators",
	}
	tests := []struct {
		name  string
		kw    string
		score int
	}{
		{"exact", "python", WeightExact},
		{"whole word inside entry", "data", WeightExact},
		{"keyword contains entry", "mlops", WeightPartial},
		{"entry contains keyword", "scien", WeightPartial},
		{"text substring", "ai", WeightText},
		{"projects done", "kubernetes", WeightText},
		{"no match", "rust", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Score(m, []string{tt.kw})
			if r.Score != tt.score {
				t.Errorf("Score(%q) = %d, want %d", tt.kw, r.Score, tt.score)
			}
			if matched := len(r.MatchedKeywords) == 1; matched != (tt.score > 0) {
				t.Errorf("MatchedKeywords = %v", r.MatchedKeywords)
			}
		})
	}
}

func TestScoreScenarioPythonAI(t *testing.T) {
	m := &domain.MentorProfile{
		Expertise: []string{"Python", "Data Science"},
		Summary:   "Trains AI models for artificial intelligence research",
	}
	r := Score(m, []string{"python", "ai"})
	if r.Score != 4 {
		t.Errorf("Score = %d, want 4", r.Score)
	}
	if want := []string{"python", "ai"}; !reflect.DeepEqual(r.MatchedKeywords, want) {
		t.Errorf("MatchedKeywords = %v, want %v", r.MatchedKeywords, want)
	}
}

func TestScoreMatchedListDistinct(t *testing.T) {
	m := &domain.MentorProfile{Expertise: []string{"go"}}
	r := Score(m, []string{"go", "go", "java"})
	if len(r.MatchedKeywords) != 1 {
		t.Errorf("MatchedKeywords = %v, want one entry", r.MatchedKeywords)
	}
	if r.Score != 2*WeightExact {
		t.Errorf("Score = %d, want %d", r.Score, 2*WeightExact)
	}
}

func TestScoreIgnoresBlankExpertise(t *testing.T) {
	m := &domain.MentorProfile{Expertise: []string{"", "  "}}
	if r := Score(m, []string{"anything"}); r.Score != 0 {
		t.Errorf("Score = %d, want 0", r.Score)
	}
}

func TestScoreRegexMetacharacters(t *testing.T) {
	m := &domain.MentorProfile{Expertise: []string{"c++", "node.js"}}
	if r := Score(m, []string{"c++"}); r.Score != WeightExact {
		t.Errorf("c++ score = %d, want %d", r.Score, WeightExact)
	}
	if r := Score(m, []string{"node"}); r.Score != WeightExact {
		t.Errorf("node score = %d, want %d", r.Score, WeightExact)
	}
}
