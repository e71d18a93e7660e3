// Package matching ranks mentors against keywords drawn from a project or a
// search query. Everything here is pure and safe for concurrent use.
package matching

import (
	"regexp"
	"strings"
)

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`a an the and or but in on at to for of with
		by from as is was are were been be have has had
		do does did will would could should may might must
		can need dare ought used i me my we our you your
		it its this that these those am into through during`) {
		stopWords[w] = struct{}{}
	}
}

var (
	reNonWord = regexp.MustCompile(`[^\w\s-]`)
	reSpaces  = regexp.MustCompile(`\s+`)
	reTagSep  = regexp.MustCompile(`[\s,;]+`)
)

// IsStopWord reports whether w is filtered out of extracted keywords.
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// ExtractKeywords lowercases text, strips punctuation other than hyphens and
// returns the distinct tokens longer than one byte that are not stop words,
// in first-seen order.
func ExtractKeywords(text string) []string {
	if text == "" {
		return nil
	}
	s := strings.ToLower(text)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	seen := make(map[string]struct{})
	var out []string
	for _, w := range strings.Split(s, " ") {
		if len(w) <= 1 || IsStopWord(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// NormalizeKeywordList trims and lowercases each entry, dropping empties.
// Order and duplicates are preserved.
func NormalizeKeywordList(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}

// NormalizeKeywordString splits free-form input such as "ML, Python; APIs" on
// runs of whitespace, commas and semicolons. Stop words are kept: tags are
// intentional vocabulary.
func NormalizeKeywordString(input string) []string {
	return NormalizeKeywordList(reTagSep.Split(input, -1))
}

// GatherKeywords unions a project's tags with the keywords extracted from its
// idea, guidance and title.
func GatherKeywords(tags []string, idea, guidanceNeeded, title string) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(k string) {
		if k == "" {
			return
		}
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	for _, t := range tags {
		add(strings.ToLower(strings.TrimSpace(t)))
	}
	for _, text := range []string{idea, guidanceNeeded, title} {
		for _, k := range ExtractKeywords(text) {
			add(k)
		}
	}
	return out
}

// NormalizeKeywordInput accepts either form a JSON body may carry: a string
// or an array of strings. Anything else yields no keywords.
func NormalizeKeywordInput(v any) []string {
	switch in := v.(type) {
	case string:
		return NormalizeKeywordString(in)
	case []string:
		return NormalizeKeywordList(in)
	case []any:
		list := make([]string, 0, len(in))
		for _, e := range in {
			if s, ok := e.(string); ok {
				list = append(list, s)
			}
		}
		return NormalizeKeywordList(list)
	}
	return []string{}
}
