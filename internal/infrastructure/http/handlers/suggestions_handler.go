package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/suggest"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/http/middleware"
)

// SuggestionsHandler ranks mentors for free keyword input.
type SuggestionsHandler struct {
	byKeywords *suggest.ByKeywords
	log        zerolog.Logger
}

func NewSuggestionsHandler(byKeywords *suggest.ByKeywords, log zerolog.Logger) *SuggestionsHandler {
	return &SuggestionsHandler{byKeywords: byKeywords, log: log}
}

// Query handles GET /suggestions?keywords=... (q is accepted as an alias).
func (h *SuggestionsHandler) Query(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("keywords")
	if raw == "" {
		raw = r.URL.Query().Get("q")
	}
	h.rank(w, r, raw)
}

// Body handles POST /suggestions with {"keywords": "a, b"} or {"keywords": ["a", "b"]}.
func (h *SuggestionsHandler) Body(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Keywords interface{} `json:"keywords"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	h.rank(w, r, body.Keywords)
}

func (h *SuggestionsHandler) rank(w http.ResponseWriter, r *http.Request, raw interface{}) {
	res, err := h.byKeywords.Execute(r.Context(), raw)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	middleware.RecordSuggestion("keywords", len(res.Mentors) > 0)
	writeJSON(w, http.StatusOK, res)
}
