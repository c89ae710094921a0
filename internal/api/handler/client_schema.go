package handler

import "github.com/clinicalcanvas/practice-api/internal/core/ports"

// clientRequest is the caller-editable field set for both create and update.
// Owner and id never appear here; the server stamps them.
type clientRequest struct {
	Name      string `json:"name"      validate:"required"`
	Email     string `json:"email"     validate:"omitempty,email"`
	Phone     string `json:"phone"`
	DOB       string `json:"dob"`
	Address   string `json:"address"`
	Insurance string `json:"insurance"`
	Notes     string `json:"notes"`
	Status    string `json:"status"    validate:"omitempty,oneof=active inactive archived"`
}

func (r clientRequest) toInput() ports.ClientInput {
	return ports.ClientInput{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		DOB:       r.DOB,
		Address:   r.Address,
		Insurance: r.Insurance,
		Notes:     r.Notes,
		Status:    r.Status,
	}
}

type deletedResponse struct {
	Message string `json:"message"`
}
