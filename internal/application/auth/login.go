package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
	domerrors "github.com/Ananya01-bliss/new-student-mentor/internal/domain/errors"
)

const DefaultAccessTokenExpiry = 86400 // 1 day

type LoginInput struct {
	Email    string
	Password string
	// Role, if set, must match the account's role.
	Role domain.Role
}

type LoginResult struct {
	AccessToken string
	ExpiresIn   int64
	User        *domain.User
}

// LockedError reports an account in lockout cooldown.
type LockedError struct {
	RetryAfterSeconds int
}

func (e *LockedError) Error() string { return domerrors.ErrAccountLocked.Error() }

func (e *LockedError) Unwrap() error { return domerrors.ErrAccountLocked }

type Login struct {
	users     ports.UserRepository
	hasher    ports.PasswordHasher
	issuer    ports.TokenIssuer
	lockout   ports.LoginLockoutStore
	accessExp int64
}

// NewLogin builds the use case. lockout may be nil.
func NewLogin(users ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer, lockout ports.LoginLockoutStore, accessExp int64) *Login {
	if accessExp <= 0 {
		accessExp = DefaultAccessTokenExpiry
	}
	return &Login{
		users:     users,
		hasher:    hasher,
		issuer:    issuer,
		lockout:   lockout,
		accessExp: accessExp,
	}
}

func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if uc.lockout != nil {
		if locked, retry := uc.lockout.IsLocked(ctx, email); locked {
			return nil, &LockedError{RetryAfterSeconds: retry}
		}
	}
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.hasher.Verify(input.Password, user.PasswordHash) {
		if uc.lockout != nil {
			uc.lockout.RecordFailure(ctx, email)
		}
		return nil, domerrors.ErrInvalidCredentials
	}
	if input.Role != "" && input.Role != user.Role {
		return nil, domerrors.NotAuthorized(fmt.Sprintf("this account is registered as a %s, not a %s", user.Role, input.Role))
	}
	if uc.lockout != nil {
		uc.lockout.RecordSuccess(ctx, email)
	}
	return uc.issue(user)
}

func (uc *Login) issue(user *domain.User) (*LoginResult, error) {
	token, err := uc.issuer.IssueAccessToken(user.ID, user.Role, uc.accessExp)
	if err != nil {
		return nil, err
	}
	return &LoginResult{AccessToken: token, ExpiresIn: uc.accessExp, User: user}, nil
}
