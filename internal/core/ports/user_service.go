package ports

import (
	"context"

	"github.com/campusconnect/campus-api/internal/core/domain"
)

// UpdateProfileInput describes a partial profile update; nil means
// "unchanged".
type UpdateProfileInput struct {
	Major  *string
	Year   *int
	Bio    *string
	Avatar *string
}

// UserService defines the use cases on user accounts. Mutations are
// self-only: callerID must equal the target user id.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, callerID, userID string, in UpdateProfileInput) (*domain.User, error)
	// DeleteAccount removes the user and then, best effort, every post the
	// user owns.
	DeleteAccount(ctx context.Context, callerID, userID string) error
}
