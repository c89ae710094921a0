package domain

import "time"

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusNoShow    = "no_show"
)

// Appointment is a scheduled session. ClientID is optional (personal blocks,
// admin time); when present it must reference a client of the same therapist.
type Appointment struct {
	ID          string    `json:"id"`
	TherapistID string    `json:"therapist_id"`
	ClientID    string    `json:"client_id,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Type        string    `json:"type,omitempty"`
	Status      string    `json:"status"`
	Location    string    `json:"location,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AppointmentWithClient is the read-only list projection that carries the
// client display name alongside the appointment row.
type AppointmentWithClient struct {
	Appointment
	ClientName string `json:"client_name,omitempty"`
}
