package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/user"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// UsersHandler handles /users/me and the mentor directory. Requires JWT auth.
type UsersHandler struct {
	directory *user.Directory
	log       zerolog.Logger
}

// NewUsersHandler creates a handler for user resource endpoints.
func NewUsersHandler(directory *user.Directory, log zerolog.Logger) *UsersHandler {
	return &UsersHandler{directory: directory, log: log}
}

// UserResponse is the JSON shape of a user (no password). Only the profile
// matching Role is present.
type UserResponse struct {
	ID        string                 `json:"id"`
	Email     string                 `json:"email"`
	Role      domain.Role            `json:"role"`
	Name      string                 `json:"name"`
	Student   *domain.StudentProfile `json:"student,omitempty"`
	Mentor    *domain.MentorProfile  `json:"mentor,omitempty"`
	CreatedAt string                 `json:"created_at"`
}

func userResponse(u *domain.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Role:      u.Role,
		Name:      u.DisplayName(),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if s, ok := u.Student(); ok {
		resp.Student = s
	}
	if m, ok := u.Mentor(); ok {
		resp.Mentor = m
	}
	return resp
}

// Me returns the current user from the JWT. Requires AuthValidator middleware.
func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	u, err := h.directory.Get(r.Context(), actor.UserID)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse(u))
}

// Mentors lists every mentor profile.
func (h *UsersHandler) Mentors(w http.ResponseWriter, r *http.Request) {
	mentors, err := h.directory.Mentors(r.Context())
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"mentors": mentors})
}

func (h *UsersHandler) Mentor(w http.ResponseWriter, r *http.Request) {
	id, ok := userParam(w, r, "id")
	if !ok {
		return
	}
	m, err := h.directory.Mentor(r.Context(), id)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}
