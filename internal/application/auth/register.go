package auth

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	domerrors "github.com/Ananya01-bliss/new-student-mentor/internal/domain/errors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

type RegisterUserInput struct {
	Email    string
	Password string
	Role     domain.Role
	Name     string

	// Student fields.
	USN            string
	Domain         string
	Specialization string
	Year           int

	// Mentor fields.
	Expertise        []string
	Summary          string
	ShortDescription string
	ProjectsDone     string
	MaxStudents      int
}

type RegisterUser struct {
	users          ports.UserRepository
	hasher         ports.PasswordHasher
	login          *Login
	mentorsChanged func(ctx context.Context)
}

// NewRegisterUser builds the use case. Registration signs the new user in
// through login. mentorsChanged, if set, runs after a mentor registers.
func NewRegisterUser(users ports.UserRepository, hasher ports.PasswordHasher, login *Login, mentorsChanged func(ctx context.Context)) *RegisterUser {
	return &RegisterUser{users: users, hasher: hasher, login: login, mentorsChanged: mentorsChanged}
}

func (uc *RegisterUser) Execute(ctx context.Context, input RegisterUserInput) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !emailRegex.MatchString(email) {
		return nil, domerrors.Validation("a valid email is required")
	}
	if len(input.Password) < MinPasswordLength {
		return nil, domerrors.Validation("password must be at least 6 characters")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domerrors.Validation("name is required")
	}
	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domerrors.ErrUserExists
	}
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	id := domain.NewUserID(uuid.New())
	var user *domain.User
	switch input.Role {
	case domain.RoleStudent:
		user = domain.NewStudent(id, email, domain.StudentProfile{
			Name:           name,
			USN:            strings.TrimSpace(input.USN),
			Domain:         strings.TrimSpace(input.Domain),
			Specialization: strings.TrimSpace(input.Specialization),
			Year:           input.Year,
		})
	case domain.RoleMentor:
		if input.MaxStudents < 0 {
			return nil, domerrors.Validation("max students cannot be negative")
		}
		user = domain.NewMentor(id, email, domain.MentorProfile{
			Name:             name,
			Expertise:        domain.NormalizeTags(input.Expertise),
			Summary:          strings.TrimSpace(input.Summary),
			ShortDescription: strings.TrimSpace(input.ShortDescription),
			ProjectsDone:     strings.TrimSpace(input.ProjectsDone),
			MaxStudents:      input.MaxStudents,
		})
	default:
		return nil, domerrors.Validation("role must be student or mentor")
	}
	now := time.Now().UTC()
	user.PasswordHash = hash
	user.CreatedAt = now
	user.UpdatedAt = now
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	if user.Role == domain.RoleMentor && uc.mentorsChanged != nil {
		uc.mentorsChanged(ctx)
	}
	return uc.login.issue(user)
}
