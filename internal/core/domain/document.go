package domain

import "time"

// Document is a reference to an externally stored file. FileURL is opaque —
// this service never fetches or stores file contents.
type Document struct {
	ID          string    `json:"id"`
	TherapistID string    `json:"therapist_id"`
	Title       string    `json:"title"`
	Category    string    `json:"category,omitempty"`
	FileURL     string    `json:"file_url"`
	FileType    string    `json:"file_type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
