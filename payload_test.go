package main

import (
	"strings"
	"testing"
)

func TestParseWebhookPayloadMissingSections(t *testing.T) {
	// Neither customData nor contact present
	payload, err := parseWebhookPayload(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	appointment := extractAppointment(payload)
	if appointment.ContactName != "" {
		t.Errorf("expected empty contact name, got %q", appointment.ContactName)
	}
	if appointment.ContactEmail != "" {
		t.Errorf("expected empty contact email, got %q", appointment.ContactEmail)
	}
	if appointment.PractitionerName != "Not specified" {
		t.Errorf("expected practitioner fallback, got %q", appointment.PractitionerName)
	}
}

func TestParseWebhookPayloadInvalidJSON(t *testing.T) {
	if _, err := parseWebhookPayload(strings.NewReader(`{"customData":`)); err == nil {
		t.Fatal("expected error for truncated JSON")
	}
}

func TestExtractAppointmentCustomDataWins(t *testing.T) {
	payload := WebhookPayload{
		CustomData: CustomData{
			AppointmentID:    "ppm-123",
			StartDate:        "July 16, 2025",
			StartTime:        "7:00 AM",
			EndDate:          "July 16, 2025",
			EndTime:          "8:00 AM",
			ContactName:      "Jane Doe",
			ContactEmail:     "jane@example.com",
			PractitionerName: "Dr. Smith",
		},
		Contact: Contact{
			FullName: "Should Lose",
			Email:    "lose@example.com",
		},
	}

	appointment := extractAppointment(payload)
	if appointment.ContactName != "Jane Doe" {
		t.Errorf("customData contact_name should win, got %q", appointment.ContactName)
	}
	if appointment.ContactEmail != "jane@example.com" {
		t.Errorf("customData contact_email should win, got %q", appointment.ContactEmail)
	}
	if appointment.PractitionerName != "Dr. Smith" {
		t.Errorf("customData practitioner_name should win, got %q", appointment.PractitionerName)
	}
	if appointment.AppointmentID != "ppm-123" {
		t.Errorf("unexpected appointment id %q", appointment.AppointmentID)
	}
}

func TestExtractAppointmentContactFallback(t *testing.T) {
	payload := WebhookPayload{
		CustomData: CustomData{
			AppointmentID: "ppm-456",
		},
		Contact: Contact{
			FullName: "John Roe",
			Email:    "john@example.com",
		},
	}

	appointment := extractAppointment(payload)
	if appointment.ContactName != "John Roe" {
		t.Errorf("expected contact fallback for name, got %q", appointment.ContactName)
	}
	if appointment.ContactEmail != "john@example.com" {
		t.Errorf("expected contact fallback for email, got %q", appointment.ContactEmail)
	}
	if appointment.PractitionerName != "Not specified" {
		t.Errorf("expected practitioner fallback, got %q", appointment.PractitionerName)
	}
	// Fields without a fallback stay empty
	if appointment.StartDate != "" || appointment.StartTime != "" {
		t.Errorf("expected empty start fields, got %q %q", appointment.StartDate, appointment.StartTime)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "b", "c"); got != "b" {
		t.Errorf("expected first non-empty value, got %q", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Errorf("expected empty result, got %q", got)
	}
}
