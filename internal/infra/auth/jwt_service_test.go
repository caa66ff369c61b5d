package auth

import (
	"strings"
	"testing"
	"time"

	"taskhub/config"
	"taskhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_that_is_long_enough_for_hs256"

func newTestConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		Secret:         testSecret,
		AccessTokenTTL: ttl,
	}

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(15 * time.Minute))
	require.NoError(t, err)
	require.NotNil(t, svc)

	token, expiresIn, err := svc.Issue(42, "testuser")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 15*time.Minute, expiresIn)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(15 * time.Minute))
	require.NoError(t, err)

	token, _, err := svc.Issue(42, "testuser")
	require.NoError(t, err)

	// Move the verifier's clock past the expiry instant.
	impl, ok := svc.(*jwtService)
	require.True(t, ok)
	impl.now = func() time.Time { return time.Now().Add(16 * time.Minute) }

	claims, err := impl.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(15 * time.Minute))
	require.NoError(t, err)

	token, _, err := svc.Issue(42, "testuser")
	require.NoError(t, err)

	// Flip the first byte of the signature segment.
	tampered := []byte(token)
	sigStart := strings.LastIndexByte(token, '.') + 1
	if tampered[sigStart] == 'A' {
		tampered[sigStart] = 'B'
	} else {
		tampered[sigStart] = 'A'
	}

	claims, err := svc.Verify(string(tampered))
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(15 * time.Minute))
	require.NoError(t, err)

	for _, token := range []string{
		"",
		"clearly-not-a-jwt-token-format",
		"a.b",
		"a.b.c",
	} {
		claims, err := svc.Verify(token)
		assert.Nil(t, claims, "token: %s", token)
		assert.ErrorIs(t, err, service.ErrTokenInvalid, "token: %s", token)
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig(15 * time.Minute))
	require.NoError(t, err)

	otherCfg := newTestConfig(15 * time.Minute)
	otherCfg.Auth.Secret = "a_completely_different_secret_of_enough_length"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, _, err := issuer.Issue(42, "testuser")
	require.NoError(t, err)

	// Rotating the secret invalidates all previously issued tokens.
	claims, err := verifier.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_SecretTooShort(t *testing.T) {
	cfg := newTestConfig(15 * time.Minute)
	cfg.Auth.Secret = "too-short"

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestJWTService_MissingConfig(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)

	svc, err = NewJWTService(nil)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_NonPositiveTTL(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(0))
	assert.Error(t, err)
	assert.Nil(t, svc)
}
