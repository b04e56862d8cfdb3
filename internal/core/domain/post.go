package domain

import (
	"errors"
	"time"
)

// Category classifies a post on the campus feed.
type Category string

const (
	CategoryGeneral  Category = "General"
	CategoryStudy    Category = "Study"
	CategoryEvents   Category = "Events"
	CategoryProjects Category = "Projects"
	CategoryHelp     Category = "Help"
)

// categories is the closed set of valid post categories.
var categories = map[Category]struct{}{
	CategoryGeneral:  {},
	CategoryStudy:    {},
	CategoryEvents:   {},
	CategoryProjects: {},
	CategoryHelp:     {},
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

// Field limits enforced at creation and update time.
const (
	MaxTitleLen       = 200
	MaxContentLen     = 5000
	MaxCommentTextLen = 500
)

var ErrPostNotFound = errors.New("post not found")
var ErrCommentNotFound = errors.New("comment not found")

// Comment is a sub-document owned by its parent Post. It is created and
// removed only through post mutations and never referenced outside the post.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Post is the aggregate root of the feed. Comments are kept in insertion
// order; Likes holds user ids with set semantics (no duplicates).
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  Category  `json:"category"`
	Tags      []string  `json:"tags"`
	Comments  []Comment `json:"comments"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LikedBy reports whether userID is in the post's like set.
func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// FindComment returns the comment with the given id, or nil when absent.
func (p *Post) FindComment(commentID string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return &p.Comments[i]
		}
	}
	return nil
}
