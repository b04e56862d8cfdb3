package ports

import (
	"context"

	"github.com/campusconnect/campus-api/internal/core/domain"
)

// ProfileUpdate describes a partial update of the profile sub-document.
// Nil pointers mean "leave unchanged".
type ProfileUpdate struct {
	Major  *string
	Year   *int
	Bio    *string
	Avatar *string
}

// UserRepository defines persistence operations for the users collection.
type UserRepository interface {
	// Create inserts the user and returns it with its generated id.
	// A username or email collision yields domain.ErrUserExists.
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIDs returns the users for the given ids keyed by id. Missing
	// ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
	// UpdateProfile writes only the supplied profile fields and returns
	// the resulting user.
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
