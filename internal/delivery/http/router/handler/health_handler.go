// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"taskhub/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is the liveness endpoint. It carries no dependencies on
// purpose: a healthy process answers even when downstream systems are down.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
