package handler

import (
	"github.com/campusconnect/campus-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createPostRequest) ports.CreatePostInput {
	return ports.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Tags:     req.Tags,
	}
}

func toUpdateInput(req updatePostRequest) ports.UpdatePostInput {
	return ports.UpdatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Tags:     req.Tags,
	}
}

// --- Service view → HTTP response ---

func toPostResponse(v *ports.PostView) postResponse {
	p := v.Post

	comments := make([]commentResponse, len(p.Comments))
	for i, c := range p.Comments {
		comments[i] = commentResponse{
			ID:        c.ID,
			UserID:    c.UserID,
			Username:  v.Commenters[c.UserID],
			Text:      c.Text,
			CreatedAt: c.CreatedAt.UTC(),
		}
	}

	resp := postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Category:  string(p.Category),
		Tags:      p.Tags,
		Comments:  comments,
		Likes:     p.Likes,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}

	// Author stays null when the account behind the post is gone.
	if v.Author != nil {
		resp.Author = &authorResponse{
			ID:       v.Author.ID,
			Username: v.Author.Username,
			Profile: profileResponse{
				Major:  v.Author.Profile.Major,
				Year:   v.Author.Profile.Year,
				Bio:    v.Author.Profile.Bio,
				Avatar: v.Author.Profile.Avatar,
			},
		}
	}
	return resp
}

func toListResponse(views []ports.PostView) listPostsEnvelope {
	posts := make([]postResponse, len(views))
	for i := range views {
		posts[i] = toPostResponse(&views[i])
	}
	return listPostsEnvelope{Success: true, Count: len(posts), Posts: posts}
}
