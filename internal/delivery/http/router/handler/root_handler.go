package handler

import (
	"net/http"

	"stockroom/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Root answers the unauthenticated landing route.
func Root(c echo.Context) error {
	return response.Message(c, http.StatusOK, "Hello World!")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
