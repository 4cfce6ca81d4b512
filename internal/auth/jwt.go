// Package auth issues and validates the bearer tokens used by the review API.
// Tokens are HS256 JWTs whose subject is the reviewer's UUID and whose role
// claim decides access to /admin routes.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/prize2pride-backend/internal/domain"
)

// Audience is stamped on every token so credentials minted for other
// services sharing the secret are refused.
const Audience = "prize2pride-review"

// Claims is the payload of a review API token.
type Claims struct {
	jwt.RegisteredClaims
	Role domain.Role `json:"role"`
}

// JWTManager signs and verifies review API tokens.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	parser *jwt.Parser
	now    func() time.Time
}

// NewJWTManager returns a manager for tokens signed with secret. Secret
// length is enforced by config validation.
func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithAudience(Audience),
			jwt.WithExpirationRequired(),
		),
		now: time.Now,
	}
}

// GenerateAccessToken mints a token for userID acting as role.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID, role domain.Role) (string, error) {
	if !role.IsValid() {
		return "", fmt.Errorf("unknown role %q", role)
	}

	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			ID:        uuid.NewString(),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies raw and returns its claims. Every failure wraps
// domain.ErrUnauthorized.
func (m *JWTManager) Parse(raw string) (Claims, error) {
	if raw == "" {
		return Claims{}, fmt.Errorf("%w: token is empty", domain.ErrUnauthorized)
	}

	var claims Claims
	_, err := m.parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, fmt.Errorf("%w: token expired", domain.ErrUnauthorized)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
		return Claims{}, fmt.Errorf("%w: token not issued for this service", domain.ErrUnauthorized)
	case err != nil:
		return Claims{}, fmt.Errorf("%w: parse token: %w", domain.ErrUnauthorized, err)
	}

	if !claims.Role.IsValid() {
		return Claims{}, fmt.Errorf("%w: unknown role %q", domain.ErrUnauthorized, claims.Role)
	}
	return claims, nil
}

// ValidateToken satisfies the HTTP auth middleware.
func (m *JWTManager) ValidateToken(_ context.Context, raw string) (uuid.UUID, string, error) {
	claims, err := m.Parse(raw)
	if err != nil {
		return uuid.Nil, "", err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: subject is not a uuid", domain.ErrUnauthorized)
	}
	return userID, string(claims.Role), nil
}
