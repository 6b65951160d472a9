package handler

import (
	"marketsync/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck handles the liveness endpoint
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
