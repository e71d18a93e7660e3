package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/auth"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/http/middleware"
)

type AuthHandler struct {
	register *auth.RegisterUser
	login    *auth.Login
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthHandler(register *auth.RegisterUser, login *auth.Login, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		validate: validator.New(),
		log:      log,
	}
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}

func tokenResponse(res *auth.LoginResult) TokenResponse {
	return TokenResponse{
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   res.ExpiresIn,
		User:        userResponse(res.User),
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Role     string `json:"role" validate:"required,oneof=student mentor"`
	Name     string `json:"name" validate:"required,max=200"`

	USN            string `json:"usn" validate:"max=64"`
	Domain         string `json:"domain" validate:"max=200"`
	Specialization string `json:"specialization" validate:"max=200"`
	Year           int    `json:"year" validate:"gte=0,lte=10"`

	Expertise        []string `json:"expertise" validate:"max=50,dive,max=100"`
	Summary          string   `json:"summary" validate:"max=5000"`
	ShortDescription string   `json:"short_description" validate:"max=500"`
	ProjectsDone     string   `json:"projects_done" validate:"max=5000"`
	MaxStudents      int      `json:"max_students" validate:"gte=0,lte=100"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, validationMessage(err))
		return
	}
	email := SanitizeEmail(body.Email)
	password := SanitizePassword(body.Password)
	if email == "" || password == "" {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid email or password length")
		return
	}
	result, err := h.register.Execute(r.Context(), auth.RegisterUserInput{
		Email:            email,
		Password:         password,
		Role:             domain.Role(body.Role),
		Name:             body.Name,
		USN:              body.USN,
		Domain:           body.Domain,
		Specialization:   body.Specialization,
		Year:             body.Year,
		Expertise:        body.Expertise,
		Summary:          body.Summary,
		ShortDescription: body.ShortDescription,
		ProjectsDone:     body.ProjectsDone,
		MaxStudents:      body.MaxStudents,
	})
	if err != nil {
		AuditLog(h.log, r, "user.register", "", false, err.Error())
		middleware.RecordAuthAttempt("register", false)
		writeDomainErr(w, h.log, err)
		return
	}
	AuditLog(h.log, r, "user.register", result.User.ID.String(), true, "")
	middleware.RecordAuthAttempt("register", true)
	writeJSON(w, http.StatusCreated, tokenResponse(result))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,max=128"`
		Role     string `json:"role" validate:"omitempty,oneof=student mentor"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, validationMessage(err))
		return
	}
	email := SanitizeEmail(body.Email)
	password := SanitizePassword(body.Password)
	if email == "" || password == "" {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid email or password length")
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{
		Email:    email,
		Password: password,
		Role:     domain.Role(body.Role),
	})
	if err != nil {
		AuditLog(h.log, r, "user.login", "", false, err.Error())
		middleware.RecordAuthAttempt("login", false)
		writeDomainErr(w, h.log, err)
		return
	}
	AuditLog(h.log, r, "user.login", result.User.ID.String(), true, "")
	middleware.RecordAuthAttempt("login", true)
	writeJSON(w, http.StatusOK, tokenResponse(result))
}
