package handler

import (
	"time"

	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

type noteRequest struct {
	ClientID      string     `json:"client_id"      validate:"required"`
	AppointmentID string     `json:"appointment_id"`
	Type          string     `json:"type"`
	Content       string     `json:"content"        validate:"required"`
	SessionDate   *time.Time `json:"session_date"`
}

func (r noteRequest) toInput() ports.NoteInput {
	return ports.NoteInput{
		ClientID:      r.ClientID,
		AppointmentID: r.AppointmentID,
		Type:          r.Type,
		Content:       r.Content,
		SessionDate:   r.SessionDate,
	}
}
