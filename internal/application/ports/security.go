package ports

import "github.com/Ananya01-bliss/new-student-mentor/internal/domain"

// PasswordHasher hashes and verifies passwords (Argon2id).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuer signs and validates access tokens (RS256) carrying the
// user's id and role.
type TokenIssuer interface {
	IssueAccessToken(userID domain.UserID, role domain.Role, expiresInSeconds int64) (string, error)
	ValidateAccessToken(tokenString string) (domain.Identity, error)
}
