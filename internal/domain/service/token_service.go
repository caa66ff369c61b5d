package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid is returned for every verification failure: bad
// signature, malformed structure, or expiry. Callers get no oracle
// distinguishing why a token was rejected.
var ErrTokenInvalid = errors.New("invalid token")

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID   int64  `json:"-"` // Parsed from the registered subject claim.
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed,
// time-limited access tokens. Tokens are self-contained: verification
// needs no storage and has no knowledge of whether the subject account
// still exists or is active.
type TokenService interface {
	// Issue creates a signed access token for the given user, along with
	// the duration for which it will remain valid.
	Issue(userID int64, username string) (token string, expiresIn time.Duration, err error)

	// Verify validates a token's signature, structure and expiry, and
	// returns its claims. Every failure mode yields ErrTokenInvalid; the
	// caller cannot distinguish a tampered token from an expired one.
	Verify(token string) (*Claims, error)

	// AccessTokenTTL returns the configured lifetime of issued tokens.
	AccessTokenTTL() time.Duration
}
