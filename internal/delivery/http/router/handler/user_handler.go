package handler

import (
	"log/slog"
	"net/http"

	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/response"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for profile handlers. Every route is
// scoped to the authenticated account; there is no cross-user access.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile returns the authenticated account.
func (h *UserHandler) GetProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(profile), "")
}

// UpdateProfile applies partial changes to the authenticated account.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	input := new(usecase.UpdateProfileInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	updated, err := h.uc.UpdateProfile(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(updated), "Profile updated successfully")
}

// DeleteAccount removes the authenticated account and, through the storage
// cascade, every task it owns.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
