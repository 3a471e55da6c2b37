// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"gsync/config"
	"gsync/internal/domain/entity"
	domainerrors "gsync/internal/domain/errors"
	"gsync/internal/domain/service"
	"gsync/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenTypeAccess = "access"
	tokenTypeState  = "oauth_state"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing API access tokens.
	stateSecret  []byte        // Secret key for signing OAuth state values.
	accessTTL    time.Duration // Time-to-live for access tokens.
	stateTTL     time.Duration // Time-to-live for a consent round trip.
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.State == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		stateSecret:  []byte(cfg.SecretKey.State),
		accessTTL:    time.Minute * 15,
		stateTTL:     time.Minute * 10,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken signs an API access token carrying the user's roles.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, roles entity.Roles) (string, error) {
	return s.sign(userID, roles.ToStrings(), tokenTypeAccess, s.accessTTL, s.accessSecret)
}

// ValidateAccessToken parses an access token, rejecting state values signed for the consent flow.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	claims, err := s.parse(tokenString, s.accessSecret)
	if err != nil {
		return nil, err
	}
	if claims.Type != tokenTypeAccess {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	return claims, nil
}

// GenerateOAuthState signs the state parameter of a consent redirect.
func (s *jwtService) GenerateOAuthState(userID uuid.UUID) (string, error) {
	return s.sign(userID, nil, tokenTypeState, s.stateTTL, s.stateSecret)
}

// ParseOAuthState returns the user a state value was issued for.
func (s *jwtService) ParseOAuthState(state string) (uuid.UUID, error) {
	claims, err := s.parse(state, s.stateSecret)
	if err != nil || claims.Type != tokenTypeState {
		return uuid.Nil, domainerrors.ErrOAuthStateInvalid
	}

	return claims.UserID, nil
}

func (s *jwtService) StateTTL() time.Duration {
	return s.stateTTL
}

func (s *jwtService) sign(userID uuid.UUID, roles []string, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	now := s.now()
	claims := &service.Claims{
		UserID: userID,
		Roles:  roles,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) parse(tokenString string, secret []byte) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	return claims, nil
}
