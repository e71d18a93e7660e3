package middleware

import (
	"context"

	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

type contextKey string

const identityContextKey contextKey = "identity"

// WithIdentity injects the authenticated identity into the context.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// IdentityFromContext returns the identity set by AuthValidator.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(domain.Identity)
	return id, ok && !id.UserID.IsZero()
}
