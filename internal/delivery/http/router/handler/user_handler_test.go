package handler

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserUsecase struct {
	user       *entity.User
	err        error
	lastUpdate *usecase.UpdateProfileInput
	deleted    []int64
}

func (f *fakeUserUsecase) GetProfile(_ context.Context, _ int64) (*entity.User, error) {
	return f.user, f.err
}

func (f *fakeUserUsecase) UpdateProfile(_ context.Context, _ int64, input *usecase.UpdateProfileInput) (*entity.User, error) {
	f.lastUpdate = input

	return f.user, f.err
}

func (f *fakeUserUsecase) DeleteAccount(_ context.Context, userID int64) error {
	f.deleted = append(f.deleted, userID)

	return f.err
}

func newUserServer(uc *fakeUserUsecase) *echo.Echo {
	e := newTestEcho()
	h := NewUserHandler(uc, slog.New(slog.DiscardHandler))

	group := e.Group("/api/v1/users", asAuthenticated(testUser()))
	group.GET("/me", h.GetProfile)
	group.PUT("/me", h.UpdateProfile)
	group.DELETE("/me", h.DeleteAccount)

	return e
}

func TestUserHandler_GetProfile(t *testing.T) {
	e := newUserServer(&fakeUserUsecase{user: testUser()})

	rec := doJSON(e, http.MethodGet, "/api/v1/users/me", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"username":"alice"`)
	assert.NotContains(t, body, "password")
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	uc := &fakeUserUsecase{user: testUser()}
	e := newUserServer(uc)

	rec := doJSON(e, http.MethodPut, "/api/v1/users/me", `{"full_name":"Alice L."}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastUpdate)
	require.NotNil(t, uc.lastUpdate.FullName)
	assert.Equal(t, "Alice L.", *uc.lastUpdate.FullName)
	assert.Nil(t, uc.lastUpdate.Email)
	assert.Nil(t, uc.lastUpdate.Password)
}

func TestUserHandler_UpdateProfile_BadEmail(t *testing.T) {
	uc := &fakeUserUsecase{user: testUser()}
	e := newUserServer(uc)

	rec := doJSON(e, http.MethodPut, "/api/v1/users/me", `{"email":"not-an-email"}`)

	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Nil(t, uc.lastUpdate)
}

func TestUserHandler_UpdateProfile_EmailTaken(t *testing.T) {
	e := newUserServer(&fakeUserUsecase{err: domainerrors.ErrEmailTaken})

	rec := doJSON(e, http.MethodPut, "/api/v1/users/me", `{"email":"bob@example.com"}`)

	requireErrorCode(t, rec, http.StatusConflict, "DUPLICATE_EMAIL")
}

func TestUserHandler_DeleteAccount(t *testing.T) {
	uc := &fakeUserUsecase{}
	e := newUserServer(uc)

	rec := doJSON(e, http.MethodDelete, "/api/v1/users/me", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []int64{1}, uc.deleted)
}
