package domain

import "errors"

// Auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenExpired       = errors.New("token expired")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// Entity lookup errors. A row outside the caller's tenant is reported the same
// as a missing row so cross-tenant probing cannot confirm existence.
var (
	ErrClientNotFound      = errors.New("client not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrNoteNotFound        = errors.New("note not found")
	ErrDocumentNotFound    = errors.New("document not found")
)
