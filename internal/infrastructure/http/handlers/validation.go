package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain/matching"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/http/middleware"
)

// Validation limits.
const (
	MaxEmailLength    = 254
	MaxPasswordLength = 128
	MaxJSONBody       = 1 << 20
	MaxUploadSize     = 10 << 20
)

// SanitizeEmail trims and lowercases email; returns empty if invalid length.
func SanitizeEmail(email string) string {
	s := strings.TrimSpace(strings.ToLower(email))
	if len(s) > MaxEmailLength {
		return ""
	}
	return s
}

// SanitizePassword trims password; returns empty if over max length.
func SanitizePassword(password string) string {
	s := strings.TrimSpace(password)
	if len(s) > MaxPasswordLength {
		return ""
	}
	return s
}

// validationMessage flattens validator errors into "field: rule" pairs.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}

// identity returns the caller set by AuthValidator, writing 401 when absent.
func identity(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "unauthorized")
	}
	return id, ok
}

func projectParam(w http.ResponseWriter, r *http.Request) (domain.ProjectID, bool) {
	id, err := domain.ParseProjectID(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid project id")
		return domain.ProjectID{}, false
	}
	return id, true
}

func milestoneParam(w http.ResponseWriter, r *http.Request) (domain.MilestoneID, bool) {
	id, err := domain.ParseMilestoneID(chi.URLParam(r, "mid"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid milestone id")
		return domain.MilestoneID{}, false
	}
	return id, true
}

func userParam(w http.ResponseWriter, r *http.Request, name string) (domain.UserID, bool) {
	id, err := domain.ParseUserID(chi.URLParam(r, name))
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid user id")
		return domain.UserID{}, false
	}
	return id, true
}

// optionalUserID parses an optional id from a body field; "" means unset.
func optionalUserID(s string) (*domain.UserID, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	id, err := domain.ParseUserID(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return &id, nil
}

var dueDateLayouts = []string{"2006-01-02", "02-01-2006", time.RFC3339}

// parseDueDate accepts YYYY-MM-DD, DD-MM-YYYY or RFC 3339. Empty means no date.
func parseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid due date %q", s)
}

// tagList accepts keyword tags as a JSON array or a free-form string split
// the same way search keywords are. A missing value stays nil so updates can
// leave tags untouched.
func tagList(v interface{}) []string {
	if v == nil {
		return nil
	}
	return matching.NormalizeKeywordInput(v)
}
