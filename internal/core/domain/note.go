package domain

import "time"

const NoteTypeSession = "session"

// Note is a clinical note, optionally tied to an appointment.
type Note struct {
	ID            string     `json:"id"`
	TherapistID   string     `json:"therapist_id"`
	ClientID      string     `json:"client_id"`
	AppointmentID string     `json:"appointment_id,omitempty"`
	Type          string     `json:"type"`
	Content       string     `json:"content"`
	SessionDate   *time.Time `json:"session_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// NoteWithClient carries the client display name for list views.
type NoteWithClient struct {
	Note
	ClientName string `json:"client_name,omitempty"`
}
