package main

import "encoding/json"

/**************************
 ***** PPM Webhook ********
 **************************/

type WebhookPayload struct {
	CustomData CustomData `json:"customData"`
	Contact    Contact    `json:"contact"`
}

type CustomData struct {
	AppointmentID    string `json:"appointment_id"`
	StartDate        string `json:"start_date"`
	StartTime        string `json:"start_time"`
	EndDate          string `json:"end_date"`
	EndTime          string `json:"end_time"`
	ContactName      string `json:"contact_name"`
	ContactEmail     string `json:"contact_email"`
	PractitionerName string `json:"practitioner_name"`
}

type Contact struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// Appointment holds the PPM booking after fallback rules have been applied.
// An empty string means the field was absent from the webhook.
type Appointment struct {
	AppointmentID    string `json:"appointment_id"`
	StartDate        string `json:"start_date"`
	StartTime        string `json:"start_time"`
	EndDate          string `json:"end_date"`
	EndTime          string `json:"end_time"`
	ContactName      string `json:"contact_name"`
	ContactEmail     string `json:"contact_email"`
	PractitionerName string `json:"practitioner_name"`
}

/**************************
 ***** Nookal Request *****
 **************************/

type NookalAppointment struct {
	PractitionerID  string  `json:"practitioner_id"`
	AppointmentDate *string `json:"appointment_date"`
	AppointmentTime *string `json:"appointment_time"`
	Duration        int     `json:"duration"`
	AppointmentType string  `json:"appointment_type"`
	ClientName      string  `json:"client_name"`
	Notes           string  `json:"notes"`
	Status          string  `json:"status"`
}

/**************************
 ***** API Responses ******
 **************************/

type SyncResponse struct {
	Success          bool            `json:"success"`
	Message          string          `json:"message"`
	PPMAppointmentID *string         `json:"ppm_appointment_id"`
	NookalResponse   json.RawMessage `json:"nookal_response"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Message string `json:"message,omitempty"`
}

type StatusResponse struct {
	Application string `json:"application"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

/********************************
 ********** App Config **********
 ********************************/

type Config struct {
	NookalAPI             string            `json:"nookalAPI"`
	DefaultPractitionerID string            `json:"defaultPractitionerID"`
	Practitioners         map[string]string `json:"practitioners"`
}

// nullable maps the empty string to a JSON null so absent dates and times
// reach Nookal as null rather than "".
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
