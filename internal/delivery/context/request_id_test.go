package context

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestRequestID_EchoRoundTrip(t *testing.T) {
	c := newEchoContext()

	SetRequestID(c, "req-123")
	assert.Equal(t, "req-123", GetRequestID(c))
}

func TestGetRequestID_GeneratesWhenUnset(t *testing.T) {
	c := newEchoContext()

	first := GetRequestID(c)
	assert.NotEmpty(t, first)

	// Without a stored ID every call produces a fresh one.
	assert.NotEqual(t, first, GetRequestID(c))
}

func TestRequestID_ContextRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-456")

	assert.Equal(t, "req-456", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	scoped := slog.New(slog.DiscardHandler).With("requestID", "req-789")

	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}
