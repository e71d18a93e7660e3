package matching

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"stop words and short tokens", "I need a mentor for my ML project", []string{"mentor", "ml", "project"}},
		{"punctuation becomes space", "Build an API (REST/GraphQL)!", []string{"build", "api", "rest", "graphql"}},
		{"hyphens survive", "real-time chat, real-time", []string{"real-time", "chat"}},
		{"underscore is a word char", "snake_case x", []string{"snake_case"}},
		{"case folded and deduped", "Python python PYTHON", []string{"python"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractKeywords(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractKeywordsIdempotent(t *testing.T) {
	texts := []string{
		"The quick brown fox; jumps over the lazy dog!!",
		"Machine-learning for crop-yield prediction using satellite data",
		"a b c d e",
		"Ünïcödé wörds & symbols #42",
	}
	for _, text := range texts {
		first := ExtractKeywords(text)
		second := ExtractKeywords(strings.Join(first, " "))
		if !reflect.DeepEqual(first, second) {
			t.Errorf("not idempotent for %q: %v then %v", text, first, second)
		}
		for _, k := range first {
			if len(k) <= 1 || IsStopWord(k) {
				t.Errorf("ExtractKeywords(%q) returned %q", text, k)
			}
		}
	}
}

func TestNormalizeKeywordString(t *testing.T) {
	got := NormalizeKeywordString(" ML, Python;;APIs  the ")
	want := []string{"ml", "python", "apis", "the"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := NormalizeKeywordString("  ,; "); len(got) != 0 {
		t.Errorf("blank input = %v, want empty", got)
	}
}

func TestNormalizeKeywordInput(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"string", "Go, Rust", []string{"go", "rust"}},
		{"array keeps duplicates", []any{" Go ", "", "go", 3}, []string{"go", "go"}},
		{"string slice", []string{"AI"}, []string{"ai"}},
		{"unsupported", 42, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeKeywordInput(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGatherKeywords(t *testing.T) {
	got := GatherKeywords([]string{" Python ", "the"}, "A python model", "Need help with deployment", "Crop Yield")
	want := []string{"python", "the", "model", "help", "deployment", "crop", "yield"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
