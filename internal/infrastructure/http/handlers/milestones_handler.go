package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/application/project"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/http/middleware"
)

// MilestonesHandler serves /projects/{id}/milestones. Requires JWT auth.
type MilestonesHandler struct {
	add      *project.AddMilestone
	submit   *project.SubmitMilestone
	cancel   *project.CancelSubmission
	evaluate *project.EvaluateMilestone
	files    ports.FileStore
	validate *validator.Validate
	log      zerolog.Logger
}

// NewMilestonesHandler creates the handler. files may be nil, which
// disables file submissions.
func NewMilestonesHandler(add *project.AddMilestone, submit *project.SubmitMilestone, cancel *project.CancelSubmission, evaluate *project.EvaluateMilestone, files ports.FileStore, log zerolog.Logger) *MilestonesHandler {
	return &MilestonesHandler{
		add:      add,
		submit:   submit,
		cancel:   cancel,
		evaluate: evaluate,
		files:    files,
		validate: validator.New(),
		log:      log,
	}
}

func (h *MilestonesHandler) respond(w http.ResponseWriter, transition string, code int, res *project.MilestoneResult, err error) {
	if err != nil {
		middleware.RecordTransition(transition, writeDomainErr(w, h.log, err))
		return
	}
	middleware.RecordTransition(transition, "ok")
	writeJSON(w, code, res)
}

func (h *MilestonesHandler) Add(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := projectParam(w, r)
	if !ok {
		return
	}
	var body struct {
		Title       string `json:"title" validate:"required,max=200"`
		Description string `json:"description" validate:"max=5000"`
		DueDate     string `json:"due_date"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, validationMessage(err))
		return
	}
	due, err := parseDueDate(body.DueDate)
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	res, err := h.add.Execute(r.Context(), project.AddMilestoneInput{
		Actor:       actor,
		ProjectID:   id,
		Title:       body.Title,
		Description: body.Description,
		DueDate:     due,
	})
	h.respond(w, "milestone_add", http.StatusCreated, res, err)
}

func (h *MilestonesHandler) Submit(w http.ResponseWriter, r *http.Request) {
	actor, pid, mid, ok := h.params(w, r)
	if !ok {
		return
	}
	var body struct {
		Submission string `json:"submission" validate:"required,max=10000"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, validationMessage(err))
		return
	}
	res, err := h.submit.Execute(r.Context(), project.SubmitMilestoneInput{
		Actor:       actor,
		ProjectID:   pid,
		MilestoneID: mid,
		Submission:  body.Submission,
	})
	h.respond(w, "milestone_submit", http.StatusOK, res, err)
}

// SubmitFile stores a multipart "file" upload and submits its reference.
func (h *MilestonesHandler) SubmitFile(w http.ResponseWriter, r *http.Request) {
	if h.files == nil {
		writeErr(w, http.StatusNotFound, ErrCodeNotFound, "file submissions are disabled")
		return
	}
	actor, pid, mid, ok := h.params(w, r)
	if !ok {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErr(w, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "file too large")
			return
		}
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid multipart body")
		return
	}
	f, hdr, err := r.FormFile("file")
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "file is required")
		return
	}
	defer f.Close()
	contentType := hdr.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ref, err := h.files.Save(r.Context(), hdr.Filename, contentType, f)
	if err != nil {
		h.log.Error().Err(err).Str("project_id", pid.String()).Msg("store submission file")
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "could not store file")
		return
	}
	res, err := h.submit.Execute(r.Context(), project.SubmitMilestoneInput{
		Actor:       actor,
		ProjectID:   pid,
		MilestoneID: mid,
		Submission:  ref,
	})
	h.respond(w, "milestone_submit", http.StatusOK, res, err)
}

func (h *MilestonesHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, pid, mid, ok := h.params(w, r)
	if !ok {
		return
	}
	res, err := h.cancel.Execute(r.Context(), project.CancelSubmissionInput{
		Actor:       actor,
		ProjectID:   pid,
		MilestoneID: mid,
	})
	h.respond(w, "milestone_cancel", http.StatusOK, res, err)
}

func (h *MilestonesHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	actor, pid, mid, ok := h.params(w, r)
	if !ok {
		return
	}
	var body struct {
		Status   string `json:"status" validate:"required"`
		Feedback string `json:"feedback" validate:"max=5000"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, validationMessage(err))
		return
	}
	res, err := h.evaluate.Execute(r.Context(), project.EvaluateMilestoneInput{
		Actor:       actor,
		ProjectID:   pid,
		MilestoneID: mid,
		Status:      domain.MilestoneStatus(strings.TrimSpace(body.Status)),
		Feedback:    body.Feedback,
	})
	h.respond(w, "milestone_evaluate", http.StatusOK, res, err)
}

func (h *MilestonesHandler) params(w http.ResponseWriter, r *http.Request) (domain.Identity, domain.ProjectID, domain.MilestoneID, bool) {
	actor, ok := identity(w, r)
	if !ok {
		return domain.Identity{}, domain.ProjectID{}, domain.MilestoneID{}, false
	}
	pid, ok := projectParam(w, r)
	if !ok {
		return domain.Identity{}, domain.ProjectID{}, domain.MilestoneID{}, false
	}
	mid, ok := milestoneParam(w, r)
	if !ok {
		return domain.Identity{}, domain.ProjectID{}, domain.MilestoneID{}, false
	}
	return actor, pid, mid, true
}
