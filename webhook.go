package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

// Integration carries the immutable configuration the webhook handler
// needs: the practitioner map and Nookal endpoint from config.json plus
// the API credential. Constructed once at startup and never mutated, so
// concurrent requests can share it freely.
type Integration struct {
	Config *Config
	APIKey string
}

type SyncRequest struct {
	Context     SyncContext
	Appointment Appointment
	Nookal      NookalAppointment
}

type SyncContext struct {
	RequestContext context.Context
	Body           string
}

func newIntegration(config *Config, apiKey string) *Integration {
	return &Integration{
		Config: config,
		APIKey: apiKey,
	}
}

// blockAppointment receives a PPM booking webhook and creates a matching
// blocked appointment in Nookal. Every failure mode maps to a structured
// JSON response; no error escapes to the echo error handler.
func (in *Integration) blockAppointment(c echo.Context) error {

	// Obtains raw http request
	r := c.Request()

	// Obtains http request context
	ctx := r.Context()

	// Only accept POST requests
	if r.Method != http.MethodPost {
		return c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
	}

	// Verify the Nookal credential before doing any work. Without it no
	// outbound call can be made.
	if in.APIKey == "" {
		logger(ctx, errors.New("NOOKAL_API_KEY not found in environment variables"))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Nookal API key not configured"})
	}

	payload, err := parseWebhookPayload(r.Body)
	if err != nil {
		logger(ctx, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Message: err.Error()})
	}
	zapLogger.Info("received PPM webhook", zap.Any("payload", payload))

	// Apply fallback rules to the raw payload
	appointment := extractAppointment(payload)
	zapLogger.Info("mapped appointment data", zap.Any("appointment", appointment))

	// Convert payload back to a string to add as context for logs
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		// Log an error if this fails, but continue to process request
		logger(ctx, fmt.Errorf("failed to marshal webhook payload: %v", err))
	}

	// Initialize sync request struct
	sr := SyncRequest{
		Context: SyncContext{
			RequestContext: ctx,
			Body:           string(payloadBytes),
		},
		Appointment: appointment,
	}

	// Build the blocked appointment in the shape Nookal expects
	sr.Nookal = in.buildNookalAppointment(appointment)
	zapLogger.Info("Nookal appointment data", zap.Any("nookal", sr.Nookal))

	// Submit to the Nookal API
	statusCode, body, err := in.submit(ctx, sr.Nookal)
	if err != nil {
		logger(ctx, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Message: err.Error()})
	}

	// Forward the raw downstream body on rejection so operators can
	// diagnose without access to Nookal logs
	if statusCode >= 400 {
		logger(ctx, fmt.Errorf("Nookal API error (%d): %s", statusCode, string(body)))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to create Nookal appointment",
			Details: string(body),
		})
	}

	// A success body that is not JSON cannot be echoed back as such
	if !json.Valid(body) {
		err := fmt.Errorf("invalid JSON in Nookal response: %s", string(body))
		logger(ctx, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Message: err.Error()})
	}
	zapLogger.Info("Nookal appointment created", zap.ByteString("response", body))

	// Log sync outcome to the web log side channel
	sr.sendWebLog("appointment blocked in Nookal")

	// Return response
	return c.JSON(http.StatusOK, SyncResponse{
		Success:          true,
		Message:          "Appointment blocked in Nookal successfully",
		PPMAppointmentID: nullable(appointment.AppointmentID),
		NookalResponse:   json.RawMessage(body),
	})
}

func (in *Integration) buildNookalAppointment(appointment Appointment) NookalAppointment {
	return NookalAppointment{
		// Map the PPM practitioner display name to a Nookal practitioner
		PractitionerID: in.Config.practitionerID(appointment.PractitionerName),

		// Convert date format from "July 16, 2025" to "2025-07-16"
		AppointmentDate: nullable(formatDate(appointment.StartDate)),

		// Convert time format from "7:00 AM" to "07:00"
		AppointmentTime: nullable(formatTime(appointment.StartTime)),

		// Calculate duration from start and end times
		Duration: calculateDuration(appointment.StartTime, appointment.EndTime),

		// Set as blocked appointment
		AppointmentType: "BLOCKED",
		ClientName:      fmt.Sprintf("PPM Booking - %s", appointment.ContactName),
		Notes:           fmt.Sprintf("Blocked due to PPM appointment ID: %s", appointment.AppointmentID),
		Status:          "confirmed",
	}
}

func (in *Integration) submit(ctx context.Context, nookal NookalAppointment) (int, []byte, error) {
	// Create span for the outbound call
	span, ctx := apm.StartSpan(ctx, "Create Blocked Appointment", "Nookal")
	defer span.End()

	// Build request body
	reqBytes, err := json.Marshal(nookal)
	if err != nil {
		return 0, nil, err
	}

	// Set headers for request
	headers := map[string]string{
		"Authorization": "Bearer " + in.APIKey,
		"Content-Type":  "application/json",
	}

	// Send appointment to Nookal
	resp, err := sendRequest(ctx, "POST", in.Config.NookalAPI, nil, headers, bytes.NewReader(reqBytes))
	if err != nil {
		return 0, nil, err
	}

	// Read the body
	body, err := readBody(resp)
	if err != nil {
		return 0, nil, err
	}

	return resp.StatusCode, body, nil
}
