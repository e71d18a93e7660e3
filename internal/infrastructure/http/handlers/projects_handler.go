package handlers

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/project"
	"github.com/Ananya01-bliss/new-student-mentor/internal/application/suggest"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/http/middleware"
)

// ProjectUseCases groups the project lifecycle use cases served over HTTP.
type ProjectUseCases struct {
	Create     *project.CreateProject
	Update     *project.UpdateProject
	Delete     *project.DeleteProject
	Request    *project.RequestMentorship
	Respond    *project.RespondToRequest
	Complete   *project.CompleteMentorship
	Queries    *project.Queries
	Suggestion *suggest.ForProject
}

// ProjectsHandler serves /projects and /mentor. Requires JWT auth.
type ProjectsHandler struct {
	uc       ProjectUseCases
	validate *validator.Validate
	log      zerolog.Logger
}

func NewProjectsHandler(uc ProjectUseCases, log zerolog.Logger) *ProjectsHandler {
	return &ProjectsHandler{uc: uc, validate: validator.New(), log: log}
}

// fail writes err and counts the failed transition.
func (h *ProjectsHandler) fail(w http.ResponseWriter, transition string, err error) {
	middleware.RecordTransition(transition, writeDomainErr(w, h.log, err))
}

type createProjectRequest struct {
	Title          string      `json:"title" validate:"required,max=200"`
	Idea           string      `json:"idea" validate:"required,max=10000"`
	GuidanceNeeded string      `json:"guidance_needed" validate:"max=5000"`
	Keywords       interface{} `json:"keywords"`
	MentorID       string      `json:"mentor_id"`
}

func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	var body createProjectRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, validationMessage(err))
		return
	}
	mentorID, err := optionalUserID(body.MentorID)
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid mentor id")
		return
	}
	p, err := h.uc.Create.Execute(r.Context(), project.CreateProjectInput{
		Actor:          actor,
		Title:          body.Title,
		Idea:           body.Idea,
		GuidanceNeeded: body.GuidanceNeeded,
		Keywords:       tagList(body.Keywords),
		MentorID:       mentorID,
	})
	if err != nil {
		h.fail(w, "create", err)
		return
	}
	middleware.RecordTransition("create", "ok")
	writeJSON(w, http.StatusCreated, p)
}

// List returns the caller's own projects, newest first.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	views, err := h.uc.Queries.StudentProjects(r.Context(), actor)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"projects": views})
}

func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := projectParam(w, r)
	if !ok {
		return
	}
	view, err := h.uc.Queries.Get(r.Context(), actor, id)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type updateProjectRequest struct {
	Title          *string     `json:"title" validate:"omitempty,max=200"`
	Idea           *string     `json:"idea" validate:"omitempty,max=10000"`
	GuidanceNeeded *string     `json:"guidance_needed" validate:"omitempty,max=5000"`
	Keywords       interface{} `json:"keywords"`
	MentorID       string      `json:"mentor_id"`
}

func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := projectParam(w, r)
	if !ok {
		return
	}
	var body updateProjectRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, validationMessage(err))
		return
	}
	mentorID, err := optionalUserID(body.MentorID)
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid mentor id")
		return
	}
	p, err := h.uc.Update.Execute(r.Context(), project.UpdateProjectInput{
		Actor:     actor,
		ProjectID: id,
		Update: domain.ProjectUpdate{
			Title:          body.Title,
			Idea:           body.Idea,
			GuidanceNeeded: body.GuidanceNeeded,
			Keywords:       tagList(body.Keywords),
		},
		MentorID: mentorID,
	})
	if err != nil {
		h.fail(w, "update", err)
		return
	}
	middleware.RecordTransition("update", "ok")
	writeJSON(w, http.StatusOK, p)
}

func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := projectParam(w, r)
	if !ok {
		return
	}
	if err := h.uc.Delete.Execute(r.Context(), actor, id); err != nil {
		h.fail(w, "delete", err)
		return
	}
	middleware.RecordTransition("delete", "ok")
	w.WriteHeader(http.StatusNoContent)
}

// RequestMentor sends (or re-targets) a mentorship request.
func (h *ProjectsHandler) RequestMentor(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := projectParam(w, r)
	if !ok {
		return
	}
	var body struct {
		MentorID string `json:"mentor_id" validate:"required,uuid"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, validationMessage(err))
		return
	}
	mentorID, err := domain.ParseUserID(body.MentorID)
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid mentor id")
		return
	}
	p, err := h.uc.Request.Execute(r.Context(), project.RequestMentorshipInput{
		Actor:     actor,
		ProjectID: id,
		MentorID:  mentorID,
	})
	if err != nil {
		h.fail(w, "request", err)
		return
	}
	middleware.RecordTransition("request", "ok")
	writeJSON(w, http.StatusOK, p)
}

// Respond applies a mentor's approve/reject decision.
func (h *ProjectsHandler) Respond(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := projectParam(w, r)
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status" validate:"required"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, validationMessage(err))
		return
	}
	p, err := h.uc.Respond.Execute(r.Context(), project.RespondInput{
		Actor:     actor,
		ProjectID: id,
		Decision:  domain.ProjectStatus(strings.TrimSpace(body.Status)),
	})
	if err != nil {
		h.fail(w, "respond", err)
		return
	}
	AuditLog(h.log, r, "project.respond."+string(p.Status), actor.UserID.String(), true, "")
	middleware.RecordTransition("respond", "ok")
	writeJSON(w, http.StatusOK, p)
}

func (h *ProjectsHandler) Complete(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := projectParam(w, r)
	if !ok {
		return
	}
	p, err := h.uc.Complete.Execute(r.Context(), project.CompleteMentorshipInput{Actor: actor, ProjectID: id})
	if err != nil {
		h.fail(w, "complete", err)
		return
	}
	middleware.RecordTransition("complete", "ok")
	writeJSON(w, http.StatusOK, p)
}

// SuggestedMentors ranks mentors against the project's keywords.
func (h *ProjectsHandler) SuggestedMentors(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := projectParam(w, r)
	if !ok {
		return
	}
	res, err := h.uc.Suggestion.Execute(r.Context(), actor, id)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	middleware.RecordSuggestion("project", len(res.Mentors) > 0)
	writeJSON(w, http.StatusOK, res)
}

func (h *ProjectsHandler) MentorRequests(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	views, err := h.uc.Queries.MentorRequests(r.Context(), actor)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"projects": views})
}

func (h *ProjectsHandler) MentorMentees(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	views, err := h.uc.Queries.MentorMentees(r.Context(), actor)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"projects": views})
}

func (h *ProjectsHandler) MentorStats(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	stats, err := h.uc.Queries.MentorStats(r.Context(), actor)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
