package handler

import (
	"time"

	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

// appointmentRequest binds scheduling fields. Times arrive as RFC 3339.
type appointmentRequest struct {
	ClientID  string    `json:"client_id"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time"   validate:"required,gtfield=StartTime"`
	Type      string    `json:"type"`
	Status    string    `json:"status"     validate:"omitempty,oneof=scheduled completed cancelled no_show"`
	Location  string    `json:"location"`
	Notes     string    `json:"notes"`
}

func (r appointmentRequest) toInput() ports.AppointmentInput {
	return ports.AppointmentInput{
		ClientID:  r.ClientID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Type:      r.Type,
		Status:    r.Status,
		Location:  r.Location,
		Notes:     r.Notes,
	}
}
