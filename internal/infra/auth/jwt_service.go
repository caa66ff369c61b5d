// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"taskhub/config"
	"taskhub/internal/domain/service"
)

// minSecretLength is the minimum accepted signing-secret length.
const minSecretLength = 32

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte        // Secret key for signing access tokens.
	accessTTL time.Duration // Time-to-live for access tokens.
	now       func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.Auth == nil {
		return nil, errors.New("auth config must be provided")
	}
	if len(cfg.Auth.Secret) < minSecretLength {
		return nil, errors.Errorf("jwt secret must be at least %d characters", minSecretLength)
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		return nil, errors.New("access token TTL must be positive")
	}

	return &jwtService{
		secret:    []byte(cfg.Auth.Secret),
		accessTTL: cfg.Auth.AccessTokenTTL,
		now:       time.Now,
	}, nil
}

// Issue creates a signed access token carrying the user's id as subject,
// the username claim, issued-at and expiry.
func (s *jwtService) Issue(userID int64, username string) (string, time.Duration, error) {
	now := s.now()
	claims := service.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, errors.Wrap(err, "failed to sign access token")
	}

	return signed, s.accessTTL, nil
}

// Verify validates the token's signature, structure and expiry and returns
// its claims. All failure modes collapse into service.ErrTokenInvalid.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, service.ErrTokenInvalid
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, service.ErrTokenInvalid
	}
	claims.UserID = userID

	return claims, nil
}

// AccessTokenTTL returns the configured duration for access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
