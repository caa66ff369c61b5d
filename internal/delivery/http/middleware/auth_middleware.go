package middleware

import (
	"strings"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CurrentUserKey is the echo.Context key under which the authenticated
// account is stored.
const CurrentUserKey = "currentUser"

// AuthMiddleware resolves the Authorization header to a live account. A
// request passes only when it carries a well-formed Bearer token whose
// signature and expiry verify AND whose subject is an existing, active
// account. Every failure mode collapses into the same 401.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the access token and loads its account onto the
// request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "missing authorization header")
		}

		// Scheme comparison is case-insensitive per RFC 9110.
		const bearerPrefix = "bearer "
		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "authorization header is not a bearer token")
		}
		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "token verification failed")
		}

		// The token is self-contained, so the account state is checked
		// here: deletion or deactivation revokes access immediately even
		// for tokens that have not expired.
		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "token subject not found")
		}
		if !user.IsActive {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "account is deactivated")
		}

		c.Set(CurrentUserKey, user)

		return next(c)
	}
}

// CurrentUser returns the account set by Authenticate, or nil when the
// route skipped authentication.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(CurrentUserKey).(*entity.User)

	return user
}
