package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/campusconnect/campus-api/internal/core/domain"
	"github.com/campusconnect/campus-api/internal/core/ports"
)

type postService struct {
	posts ports.PostRepository
	users ports.UserRepository
	log   zerolog.Logger
}

// NewPostService returns a PostService backed by the given repositories.
// The user repository is only read from, to attach author data to views.
func NewPostService(posts ports.PostRepository, users ports.UserRepository, log zerolog.Logger) ports.PostService {
	return &postService{posts: posts, users: users, log: log}
}

func (s *postService) Create(ctx context.Context, callerID string, in ports.CreatePostInput) (*ports.PostView, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.Validationf("title is required")
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLen {
		return nil, domain.Validationf("title must be at most %d characters", domain.MaxTitleLen)
	}
	if in.Content == "" {
		return nil, domain.Validationf("content is required")
	}
	if utf8.RuneCountInString(in.Content) > domain.MaxContentLen {
		return nil, domain.Validationf("content must be at most %d characters", domain.MaxContentLen)
	}

	category := domain.CategoryGeneral
	if in.Category != "" {
		category = domain.Category(in.Category)
		if !category.Valid() {
			return nil, domain.Validationf("unknown category %q", in.Category)
		}
	}

	now := time.Now().UTC()
	post := &domain.Post{
		UserID:    callerID,
		Title:     title,
		Content:   in.Content,
		Category:  category,
		Tags:      cleanTags(in.Tags),
		Comments:  []domain.Comment{},
		Likes:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", callerID).Msg("failed to create post")
		return nil, err
	}

	s.log.Info().Str("post_id", created.ID).Str("user_id", callerID).Str("category", string(category)).Msg("post created")
	return s.populate(ctx, created)
}

func (s *postService) List(ctx context.Context, in ports.ListPostsInput) ([]ports.PostView, error) {
	posts, err := s.posts.List(ctx, ports.ListPostsFilter{
		Category: in.Category,
		Search:   in.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return s.populateAll(ctx, posts)
}

func (s *postService) Get(ctx context.Context, postID string) (*ports.PostView, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, post)
}

func (s *postService) Update(ctx context.Context, callerID, postID string, in ports.UpdatePostInput) (*ports.PostView, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != callerID {
		return nil, domain.ErrForbidden
	}

	upd := ports.PostUpdate{}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, domain.Validationf("title is required")
		}
		if utf8.RuneCountInString(title) > domain.MaxTitleLen {
			return nil, domain.Validationf("title must be at most %d characters", domain.MaxTitleLen)
		}
		upd.Title = &title
	}
	if in.Content != nil {
		if *in.Content == "" {
			return nil, domain.Validationf("content is required")
		}
		if utf8.RuneCountInString(*in.Content) > domain.MaxContentLen {
			return nil, domain.Validationf("content must be at most %d characters", domain.MaxContentLen)
		}
		upd.Content = in.Content
	}
	if in.Category != nil {
		category := domain.Category(*in.Category)
		if !category.Valid() {
			return nil, domain.Validationf("unknown category %q", *in.Category)
		}
		upd.Category = &category
	}
	if in.Tags != nil {
		tags := cleanTags(*in.Tags)
		upd.Tags = &tags
	}

	updated, err := s.posts.Update(ctx, postID, upd)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", postID).Str("user_id", callerID).Msg("post updated")
	return s.populate(ctx, updated)
}

func (s *postService) Delete(ctx context.Context, callerID, postID string) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != callerID {
		return domain.ErrForbidden
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}

	s.log.Info().Str("post_id", postID).Str("user_id", callerID).Msg("post deleted")
	return nil
}

func (s *postService) AddComment(ctx context.Context, callerID, postID, text string) (*ports.PostView, error) {
	if text == "" {
		return nil, domain.Validationf("comment text is required")
	}
	if utf8.RuneCountInString(text) > domain.MaxCommentTextLen {
		return nil, domain.Validationf("comment text must be at most %d characters", domain.MaxCommentTextLen)
	}

	comment := domain.Comment{
		UserID:    callerID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	updated, err := s.posts.AddComment(ctx, postID, comment)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", postID).Str("user_id", callerID).Msg("comment added")
	return s.populate(ctx, updated)
}

func (s *postService) DeleteComment(ctx context.Context, callerID, postID, commentID string) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}

	comment := post.FindComment(commentID)
	if comment == nil {
		return domain.ErrCommentNotFound
	}
	// Only the comment's author may remove it; the post owner has no say.
	if comment.UserID != callerID {
		return domain.ErrForbidden
	}

	if err := s.posts.RemoveComment(ctx, postID, commentID); err != nil {
		return err
	}

	s.log.Info().Str("post_id", postID).Str("comment_id", commentID).Str("user_id", callerID).Msg("comment deleted")
	return nil
}

func (s *postService) ToggleLike(ctx context.Context, callerID, postID string) (*ports.LikeResult, error) {
	updated, err := s.posts.ToggleLike(ctx, postID, callerID)
	if err != nil {
		return nil, err
	}

	result := &ports.LikeResult{
		Likes:   len(updated.Likes),
		IsLiked: updated.LikedBy(callerID),
	}
	s.log.Debug().Str("post_id", postID).Str("user_id", callerID).Bool("is_liked", result.IsLiked).Msg("like toggled")
	return result, nil
}

// populate attaches the author's user record and the commenter usernames
// to a single post.
func (s *postService) populate(ctx context.Context, post *domain.Post) (*ports.PostView, error) {
	views, err := s.populateAll(ctx, []*domain.Post{post})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// populateAll resolves every author and commenter id across the given
// posts in one user lookup. Deleted accounts resolve to a nil author and
// are simply absent from the commenter map.
func (s *postService) populateAll(ctx context.Context, posts []*domain.Post) ([]ports.PostView, error) {
	idSet := make(map[string]struct{})
	for _, p := range posts {
		idSet[p.UserID] = struct{}{}
		for _, c := range p.Comments {
			idSet[c.UserID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve post authors: %w", err)
	}

	views := make([]ports.PostView, len(posts))
	for i, p := range posts {
		commenters := make(map[string]string, len(p.Comments))
		for _, c := range p.Comments {
			if u, ok := users[c.UserID]; ok {
				commenters[c.UserID] = u.Username
			}
		}
		views[i] = ports.PostView{
			Post:       p,
			Author:     users[p.UserID],
			Commenters: commenters,
		}
	}
	return views, nil
}

// cleanTags trims every tag and drops the ones that end up empty.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
