package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/response"
	"taskhub/internal/delivery/http/validator"
	"taskhub/internal/domain/entity"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// Fake usecases recording inputs and replaying canned results. The handlers
// under test only translate HTTP to usecase calls and back.

type fakeAuthUsecase struct {
	registerOut *usecase.RegisterOutput
	registerErr error
	loginOut    *usecase.LoginOutput
	loginErr    error

	lastRegister *usecase.RegisterInput
	lastLogin    *usecase.LoginInput
}

func (f *fakeAuthUsecase) Register(_ context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	f.lastRegister = input

	return f.registerOut, f.registerErr
}

func (f *fakeAuthUsecase) Login(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	f.lastLogin = input

	return f.loginOut, f.loginErr
}

func (f *fakeAuthUsecase) Logout(context.Context) error { return nil }

type fakeTaskUsecase struct {
	task       *entity.Task
	tasks      []*entity.Task
	stats      *usecase.TaskStatsOutput
	err        error
	lastList   *usecase.ListTasksInput
	lastUpdate *usecase.UpdateTaskInput
}

func (f *fakeTaskUsecase) CreateTask(_ context.Context, _ int64, _ *usecase.CreateTaskInput) (*entity.Task, error) {
	return f.task, f.err
}

func (f *fakeTaskUsecase) GetTask(_ context.Context, _, _ int64) (*entity.Task, error) {
	return f.task, f.err
}

func (f *fakeTaskUsecase) ListTasks(_ context.Context, _ int64, input *usecase.ListTasksInput) ([]*entity.Task, error) {
	f.lastList = input

	return f.tasks, f.err
}

func (f *fakeTaskUsecase) UpdateTask(_ context.Context, _, _ int64, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	f.lastUpdate = input

	return f.task, f.err
}

func (f *fakeTaskUsecase) DeleteTask(_ context.Context, _, _ int64) error { return f.err }

func (f *fakeTaskUsecase) GetStats(_ context.Context, _ int64) (*usecase.TaskStatsOutput, error) {
	return f.stats, f.err
}

// newTestEcho builds an echo instance wired the way the real server is:
// same validator, same error handler.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError

	return e
}

// asAuthenticated is route middleware placing a fixed account on the
// context, standing in for the auth middleware.
func asAuthenticated(user *entity.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.CurrentUserKey, user)

			return next(c)
		}
	}
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) *response.Response {
	t.Helper()

	envelope := new(response.Response)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), envelope))

	return envelope
}

func testUser() *entity.User {
	return &entity.User{
		ID:       1,
		Email:    "alice@example.com",
		Username: "alice",
		FullName: "Alice Lidell",
		IsActive: true,
	}
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantCode string) {
	t.Helper()

	require.Equal(t, wantStatus, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	require.Equal(t, wantCode, envelope.Error.Code)
}
