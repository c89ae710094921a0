package domain

import "time"

// ClientStatus is the lifecycle state of a client record.
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
	ClientStatusArchived = "archived"
)

// Client is a person in a therapist's caseload. Every client belongs to
// exactly one therapist and is invisible outside that tenant.
type Client struct {
	ID          string    `json:"id"`
	TherapistID string    `json:"therapist_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	DOB         string    `json:"dob,omitempty"`
	Address     string    `json:"address,omitempty"`
	Insurance   string    `json:"insurance,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
