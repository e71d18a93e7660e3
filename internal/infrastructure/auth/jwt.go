package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// TokenIssuer implements ports.TokenIssuer with RS256.
type TokenIssuer struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string
	audience   string
}

type accessClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func NewTokenIssuer(privateKey *rsa.PrivateKey, issuer, audience string) *TokenIssuer {
	return &TokenIssuer{
		privateKey: privateKey,
		publicKey:  &privateKey.PublicKey,
		issuer:     issuer,
		audience:   audience,
	}
}

func (t *TokenIssuer) IssueAccessToken(userID domain.UserID, role domain.Role, expiresInSeconds int64) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Audience:  jwt.ClaimStrings{t.audience},
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiresInSeconds) * time.Second)),
		},
		UserID: userID.String(),
		Role:   string(role),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(t.privateKey)
}

// ValidateAccessToken verifies signature, expiry, issuer and audience and
// returns the identity the token asserts.
func (t *TokenIssuer) ValidateAccessToken(tokenString string) (domain.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.publicKey, nil
	}, jwt.WithIssuer(t.issuer), jwt.WithAudience(t.audience))
	if err != nil {
		return domain.Identity{}, err
	}
	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, errors.New("invalid token claims")
	}
	id, err := domain.ParseUserID(claims.UserID)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("invalid user id claim: %w", err)
	}
	role := domain.Role(claims.Role)
	if !role.Valid() {
		return domain.Identity{}, fmt.Errorf("invalid role claim %q", claims.Role)
	}
	return domain.Identity{UserID: id, Role: role}, nil
}

var _ ports.TokenIssuer = (*TokenIssuer)(nil)
