package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	domerrors "github.com/Ananya01-bliss/new-student-mentor/internal/domain/errors"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/lockout"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/persistence/memory"
)

type plainHasher struct{}

func (plainHasher) Hash(pw string) (string, error) { return "h:" + pw, nil }
func (plainHasher) Verify(pw, hash string) bool    { return hash == "h:"+pw }

type stubIssuer struct{}

func (stubIssuer) IssueAccessToken(id domain.UserID, role domain.Role, exp int64) (string, error) {
	return string(role) + ":" + id.String(), nil
}

func (stubIssuer) ValidateAccessToken(string) (domain.Identity, error) {
	return domain.Identity{}, errors.New("unused")
}

func setup(maxAttempts int) (*RegisterUser, *Login, *memory.UserRepository, *int) {
	users := memory.NewUserRepository()
	login := NewLogin(users, plainHasher{}, stubIssuer{}, lockout.NewMemoryStore(maxAttempts, 60), 0)
	changed := 0
	reg := NewRegisterUser(users, plainHasher{}, login, func(context.Context) { changed++ })
	return reg, login, users, &changed
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	reg, _, users, changed := setup(5)

	res, err := reg.Execute(ctx, RegisterUserInput{
		Email: " Mentor@Example.com ", Password: "secret1", Role: domain.RoleMentor, Name: "Dr. M",
		Expertise: []string{" Machine Learning ", ""},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.AccessToken == "" || res.ExpiresIn != DefaultAccessTokenExpiry {
		t.Errorf("token: got %q exp %d", res.AccessToken, res.ExpiresIn)
	}
	m, ok := res.User.Mentor()
	if !ok {
		t.Fatal("expected mentor profile")
	}
	if m.MaxStudents != domain.DefaultMaxStudents {
		t.Errorf("max students: got %d, want default %d", m.MaxStudents, domain.DefaultMaxStudents)
	}
	if len(m.Expertise) != 1 || m.Expertise[0] != "machine learning" {
		t.Errorf("expertise: got %v", m.Expertise)
	}
	if *changed != 1 {
		t.Errorf("mentorsChanged calls: got %d, want 1", *changed)
	}
	if u, _ := users.GetByEmail(ctx, "mentor@example.com"); u == nil {
		t.Error("user not stored under normalised email")
	}
}

func TestRegister_Validation(t *testing.T) {
	ctx := context.Background()
	reg, _, _, _ := setup(5)
	if _, err := reg.Execute(ctx, RegisterUserInput{Email: "s@example.com", Password: "secret1", Role: domain.RoleStudent, Name: "S"}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		input RegisterUserInput
		want  error
	}{
		{"bad email", RegisterUserInput{Email: "nope", Password: "secret1", Role: domain.RoleStudent, Name: "S"}, domerrors.ErrValidation},
		{"short password", RegisterUserInput{Email: "a@example.com", Password: "123", Role: domain.RoleStudent, Name: "S"}, domerrors.ErrValidation},
		{"no name", RegisterUserInput{Email: "a@example.com", Password: "secret1", Role: domain.RoleStudent}, domerrors.ErrValidation},
		{"bad role", RegisterUserInput{Email: "a@example.com", Password: "secret1", Role: "admin", Name: "S"}, domerrors.ErrValidation},
		{"duplicate", RegisterUserInput{Email: "S@example.com", Password: "secret1", Role: domain.RoleStudent, Name: "S"}, domerrors.ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := reg.Execute(ctx, tt.input); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	reg, login, _, _ := setup(3)
	if _, err := reg.Execute(ctx, RegisterUserInput{Email: "s@example.com", Password: "secret1", Role: domain.RoleStudent, Name: "S"}); err != nil {
		t.Fatal(err)
	}

	res, err := login.Execute(ctx, LoginInput{Email: "S@Example.com", Password: "secret1"})
	if err != nil {
		t.Fatal(err)
	}
	if res.User.Role != domain.RoleStudent {
		t.Errorf("role: got %s", res.User.Role)
	}

	if _, err := login.Execute(ctx, LoginInput{Email: "s@example.com", Password: "secret1", Role: domain.RoleMentor}); !errors.Is(err, domerrors.ErrNotAuthorized) {
		t.Errorf("role mismatch: got %v, want not authorized", err)
	}
	if _, err := login.Execute(ctx, LoginInput{Email: "ghost@example.com", Password: "x"}); !errors.Is(err, domerrors.ErrInvalidCredentials) {
		t.Errorf("unknown user: got %v, want invalid credentials", err)
	}
}

func TestLogin_Lockout(t *testing.T) {
	ctx := context.Background()
	reg, login, _, _ := setup(2)
	if _, err := reg.Execute(ctx, RegisterUserInput{Email: "s@example.com", Password: "secret1", Role: domain.RoleStudent, Name: "S"}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		_, _ = login.Execute(ctx, LoginInput{Email: "s@example.com", Password: "wrong"})
	}
	_, err := login.Execute(ctx, LoginInput{Email: "s@example.com", Password: "secret1"})
	var locked *LockedError
	if !errors.As(err, &locked) {
		t.Fatalf("got %v, want LockedError", err)
	}
	if !errors.Is(err, domerrors.ErrAccountLocked) {
		t.Error("LockedError should unwrap to ErrAccountLocked")
	}
	if locked.RetryAfterSeconds <= 0 {
		t.Errorf("retry after: got %d", locked.RetryAfterSeconds)
	}
}
