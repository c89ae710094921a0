package domain

import "time"

const (
	RoleTherapist = "therapist"
	RoleAdmin     = "admin"
)

// ValidRole reports whether the given role is accepted at registration.
func ValidRole(role string) bool {
	return role == RoleTherapist || role == RoleAdmin
}

// User models a therapist account — the unit of data ownership.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
