package service

import (
	"time"

	"geonote/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService mints and validates the gateway's own access/refresh tokens,
// issued once the session gate has verified an upstream identity token.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for the session.
	GenerateTokens(session *entity.Session) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
