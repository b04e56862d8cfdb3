package ports

import (
	"context"
	"time"

	"github.com/campusconnect/campus-api/internal/core/domain"
)

// RegisterInput carries the registration form. Major and Year are
// optional; profile defaults apply when they are absent.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Major    string
	Year     int
}

// AuthService issues and revokes bearer identity tokens.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login returns a signed token and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the given token until its natural expiry.
	Logout(ctx context.Context, token string) error
}

// TokenDenylist records revoked tokens until they would have expired.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
