package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	appVersion string
)

func status(c echo.Context) error {
	// Describe the integration for operators and uptime checks
	return c.JSON(http.StatusOK, StatusResponse{
		Application: appName,
		Version:     appVersion,
		Description: "Blocks Nookal calendar slots for appointments booked through PPM",
	})
}

func heartbeat(c echo.Context) error {
	// Heartbeat function to assess service status. Immediately return 200
	return c.NoContent(http.StatusOK)
}
