package main

import (
	"encoding/json"
	"fmt"
	"io"
)

func parseWebhookPayload(body io.Reader) (WebhookPayload, error) {

	reqBytes, err := io.ReadAll(body)
	if err != nil {
		return WebhookPayload{}, err
	}

	// Unmarshal request into struct
	var payload WebhookPayload
	if err := json.Unmarshal(reqBytes, &payload); err != nil {
		return WebhookPayload{}, fmt.Errorf("unable to unmarshal webhook payload: %v", err)
	}

	return payload, nil
}

// extractAppointment applies the PPM fallback rules. Fields set in
// customData win; contact name and email fall back to the top-level
// contact object; the practitioner name falls back to a literal so the
// downstream mapping always has something to look up.
func extractAppointment(payload WebhookPayload) Appointment {
	return Appointment{
		AppointmentID:    payload.CustomData.AppointmentID,
		StartDate:        payload.CustomData.StartDate,
		StartTime:        payload.CustomData.StartTime,
		EndDate:          payload.CustomData.EndDate,
		EndTime:          payload.CustomData.EndTime,
		ContactName:      firstNonEmpty(payload.CustomData.ContactName, payload.Contact.FullName),
		ContactEmail:     firstNonEmpty(payload.CustomData.ContactEmail, payload.Contact.Email),
		PractitionerName: firstNonEmpty(payload.CustomData.PractitionerName, "Not specified"),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
