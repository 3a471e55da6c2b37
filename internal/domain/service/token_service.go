package service

import (
	"time"

	"gsync/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles,omitempty"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken signs an API access token for the user.
	GenerateAccessToken(userID uuid.UUID, roles entity.Roles) (string, error)

	// ValidateAccessToken checks an API access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// GenerateOAuthState signs a short-lived state value binding a consent round trip to userID.
	GenerateOAuthState(userID uuid.UUID) (string, error)

	// ParseOAuthState validates a state value and returns the user it was issued for.
	ParseOAuthState(state string) (uuid.UUID, error)

	// StateTTL returns how long a consent round trip may take.
	StateTTL() time.Duration
}
