package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var (
	config *Config
)

func init() {
	var err error

	// Load a .env file if one exists, before any environment reads
	_ = godotenv.Load()

	// Extract necessary environment variables
	timeoutEnv := os.Getenv("TIMEOUT")
	appVersion = os.Getenv("APP_VERSION")
	appEnv = os.Getenv("APP_ENV")
	appName = os.Getenv("APP_NAME")
	apmActive = os.Getenv("ELASTIC_APM_ACTIVE")
	elkUrl = os.Getenv("ELK_URL")

	// Set default value if not set
	if timeoutEnv == "" {
		globalTimeout = 30
	} else {
		// Convert timeout to integer
		globalTimeout, err = strconv.Atoi(timeoutEnv)
		if err != nil {
			log.Fatalf("Failed to convert timeout environment variable to integer")
		}
	}

	// Read practitioner map and Nookal endpoint
	config, err = readConfig()
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	// Create new Echo object
	e := echo.New()

	// Add basic middleware to log all requests
	e.Use(middleware.Logger())

	// Configure elastic apm logging
	initAPM(e)

	// Sets CORS headers to allow all origins, but restrict HTTP method type
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))

	// Middleware to provide more control over response status for APM transactions
	// This must go after the Elastic APM middleware
	e.Use(filterError)

	// Adds a heartbeat handler
	e.GET("/heartbeat", heartbeat)

	// Adds a status handler describing the integration
	e.GET("/status", status)

	// Build the integration once; the practitioner map and credential are
	// read-only from here on
	integration := newIntegration(config, os.Getenv("NOOKAL_API_KEY"))

	// Register with Any so non-POST verbs reach the handler's own 405
	// response instead of echo's default
	e.Any("/api/webhook", integration.blockAppointment)

	// Start server
	e.Logger.Fatal(e.Start(":" + getEnv("PORT", "8000")))
}
