package handler

import "time"

// --- Request types ---

type createPostRequest struct {
	Title    string   `json:"title"    validate:"required,max=200"`
	Content  string   `json:"content"  validate:"required,max=5000"`
	Category string   `json:"category" validate:"omitempty,oneof=General Study Events Projects Help"`
	Tags     []string `json:"tags"`
}

// updatePostRequest uses pointers so an omitted field is distinguishable
// from a supplied zero value: nil means "leave unchanged".
type updatePostRequest struct {
	Title    *string   `json:"title"    validate:"omitempty,max=200"`
	Content  *string   `json:"content"  validate:"omitempty,max=5000"`
	Category *string   `json:"category" validate:"omitempty,oneof=General Study Events Projects Help"`
	Tags     *[]string `json:"tags"`
}

type addCommentRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}

// --- Response types ---
// Response-only types owned by the transport layer, so the JSON contract
// is not coupled to internal service changes.

type profileResponse struct {
	Major  string `json:"major"`
	Year   int    `json:"year"`
	Bio    string `json:"bio,omitempty"`
	Avatar string `json:"avatar"`
}

// authorResponse is the public slice of a user attached to posts.
type authorResponse struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Profile  profileResponse `json:"profile"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type postResponse struct {
	ID        string            `json:"id"`
	Author    *authorResponse   `json:"author"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Category  string            `json:"category"`
	Tags      []string          `json:"tags"`
	Comments  []commentResponse `json:"comments"`
	Likes     []string          `json:"likes"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type postEnvelope struct {
	Success bool         `json:"success"`
	Post    postResponse `json:"post"`
}

type listPostsEnvelope struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Posts   []postResponse `json:"posts"`
}

type likeEnvelope struct {
	Success bool `json:"success"`
	Likes   int  `json:"likes"`
	IsLiked bool `json:"isLiked"`
}

type messageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
