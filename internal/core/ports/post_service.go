package ports

import (
	"context"

	"github.com/campusconnect/campus-api/internal/core/domain"
)

// CreatePostInput carries the data needed to create a post. Category
// defaults to General when empty.
type CreatePostInput struct {
	Title    string
	Content  string
	Category string
	Tags     []string
}

// UpdatePostInput describes a partial post update; nil means "unchanged".
type UpdatePostInput struct {
	Title    *string
	Content  *string
	Category *string
	Tags     *[]string
}

// ListPostsInput carries the feed query parameters.
type ListPostsInput struct {
	Category string
	Search   string
}

// PostView is a post together with the author data needed to render it:
// the author's public profile and, per comment, the commenter's username.
// Author is nil when the account behind the post no longer exists.
type PostView struct {
	Post       *domain.Post
	Author     *domain.User
	Commenters map[string]string // comment author id → username
}

// LikeResult reports the outcome of a like toggle.
type LikeResult struct {
	Likes   int
	IsLiked bool
}

// PostService defines the use cases on the posts collection. Every
// operation that mutates a post receives the authenticated caller id and
// enforces ownership where the contract requires it.
type PostService interface {
	Create(ctx context.Context, callerID string, in CreatePostInput) (*PostView, error)
	List(ctx context.Context, in ListPostsInput) ([]PostView, error)
	Get(ctx context.Context, postID string) (*PostView, error)
	// Update is restricted to the post owner.
	Update(ctx context.Context, callerID, postID string, in UpdatePostInput) (*PostView, error)
	// Delete is restricted to the post owner and removes the post with all
	// embedded comments.
	Delete(ctx context.Context, callerID, postID string) error
	// AddComment is open to any authenticated user.
	AddComment(ctx context.Context, callerID, postID, text string) (*PostView, error)
	// DeleteComment is restricted to the comment's author, not the post owner.
	DeleteComment(ctx context.Context, callerID, postID, commentID string) error
	ToggleLike(ctx context.Context, callerID, postID string) (*LikeResult, error)
}
