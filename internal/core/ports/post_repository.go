package ports

import (
	"context"

	"github.com/campusconnect/campus-api/internal/core/domain"
)

// ListPostsFilter carries the query parameters for listing posts.
// Both filters are ANDed; the search term matches title OR content OR any
// tag, case-insensitively, with substring semantics.
type ListPostsFilter struct {
	Category string // empty or "All" = no category filter
	Search   string // empty = no text filter
}

// PostUpdate describes a partial update of a post's own fields. Nil
// pointers mean "leave unchanged"; this is deliberate so that an empty
// string is a supplied value, not a skipped one.
type PostUpdate struct {
	Title    *string
	Content  *string
	Category *domain.Category
	Tags     *[]string
}

// PostRepository defines persistence operations for the posts collection.
//
// AddComment, RemoveComment and ToggleLike must each be a single atomic
// document update so that concurrent mutations of the same post cannot
// lose each other's writes.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns posts matching filter, newest first.
	List(ctx context.Context, filter ListPostsFilter) ([]*domain.Post, error)
	// Update writes only the supplied fields and refreshes updated_at,
	// returning the resulting document.
	Update(ctx context.Context, id string, upd PostUpdate) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
	// DeleteByAuthor removes every post owned by userID and reports how
	// many were deleted.
	DeleteByAuthor(ctx context.Context, userID string) (int64, error)
	// AddComment appends c to the post's comment list and returns the
	// updated document.
	AddComment(ctx context.Context, postID string, c domain.Comment) (*domain.Post, error)
	// RemoveComment deletes exactly one comment by id, leaving the rest of
	// the list untouched.
	RemoveComment(ctx context.Context, postID, commentID string) error
	// ToggleLike flips userID's membership in the post's like set and
	// returns the updated document.
	ToggleLike(ctx context.Context, postID, userID string) (*domain.Post, error)
}
