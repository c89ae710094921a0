package ports

import (
	"context"

	"github.com/clinicalcanvas/practice-api/internal/core/domain"
)

// AuthService issues and redeems credentials. Both calls return a signed
// bearer token alongside the account so clients can authenticate immediately.
type AuthService interface {
	Register(ctx context.Context, email, password, name, role string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// LoginLimiter throttles repeated login failures for one caller identity.
type LoginLimiter interface {
	// Allow reports whether another attempt is permitted for the given key.
	Allow(ctx context.Context, key string) (bool, error)
	// Reset clears the attempt counter after a successful login.
	Reset(ctx context.Context, key string) error
}
