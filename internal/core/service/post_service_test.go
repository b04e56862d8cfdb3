package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusconnect/campus-api/internal/core/domain"
	"github.com/campusconnect/campus-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubPostRepo struct {
	posts  map[string]*domain.Post
	nextID int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) (*domain.Post, error) {
	r.nextID++
	clone := *p
	clone.ID = fmt.Sprintf("post_%d", r.nextID)
	r.posts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

// List applies the same filters the real Mongo repo would use.
func (r *stubPostRepo) List(_ context.Context, f ports.ListPostsFilter) ([]*domain.Post, error) {
	var matched []*domain.Post
	for _, p := range r.posts {
		if f.Category != "" && f.Category != "All" && string(p.Category) != f.Category {
			continue
		}
		if f.Search != "" {
			needle := strings.ToLower(f.Search)
			hit := strings.Contains(strings.ToLower(p.Title), needle) ||
				strings.Contains(strings.ToLower(p.Content), needle)
			for _, tag := range p.Tags {
				if strings.Contains(strings.ToLower(tag), needle) {
					hit = true
				}
			}
			if !hit {
				continue
			}
		}
		clone := *p
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (r *stubPostRepo) Update(_ context.Context, id string, upd ports.PostUpdate) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.Tags != nil {
		p.Tags = *upd.Tags
	}
	p.UpdatedAt = time.Now().UTC()
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *stubPostRepo) DeleteByAuthor(_ context.Context, userID string) (int64, error) {
	var n int64
	for id, p := range r.posts {
		if p.UserID == userID {
			delete(r.posts, id)
			n++
		}
	}
	return n, nil
}

func (r *stubPostRepo) AddComment(_ context.Context, postID string, c domain.Comment) (*domain.Post, error) {
	p, ok := r.posts[postID]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	r.nextID++
	c.ID = fmt.Sprintf("comment_%d", r.nextID)
	p.Comments = append(p.Comments, c)
	p.UpdatedAt = time.Now().UTC()
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) RemoveComment(_ context.Context, postID, commentID string) error {
	p, ok := r.posts[postID]
	if !ok {
		return domain.ErrPostNotFound
	}
	for i, c := range p.Comments {
		if c.ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return domain.ErrCommentNotFound
}

func (r *stubPostRepo) ToggleLike(_ context.Context, postID, userID string) (*domain.Post, error) {
	p, ok := r.posts[postID]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	for i, id := range p.Likes {
		if id == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			clone := *p
			return &clone, nil
		}
	}
	p.Likes = append(p.Likes, userID)
	clone := *p
	return &clone, nil
}

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	clone := *u
	clone.ID = fmt.Sprintf("user_%d", len(r.users)+1)
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.User, error) {
	out := make(map[string]*domain.User, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			clone := *u
			out[id] = &clone
		}
	}
	return out, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, upd ports.ProfileUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.Major != nil {
		u.Profile.Major = *upd.Major
	}
	if upd.Year != nil {
		u.Profile.Year = *upd.Year
	}
	if upd.Bio != nil {
		u.Profile.Bio = *upd.Bio
	}
	if upd.Avatar != nil {
		u.Profile.Avatar = *upd.Avatar
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func seedUser(users *stubUserRepo, username string) *domain.User {
	u, _ := users.Create(context.Background(), &domain.User{
		Username: username,
		Email:    username + "@campus.edu",
		Profile:  domain.Profile{Major: "CS", Year: 2},
	})
	return u
}

func newPostServiceForTest() (*stubPostRepo, *stubUserRepo, ports.PostService) {
	posts := newStubPostRepo()
	users := newStubUserRepo()
	return posts, users, NewPostService(posts, users, discardLogger)
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestPostService_Create_Success(t *testing.T) {
	_, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")

	view, err := svc.Create(context.Background(), author.ID, ports.CreatePostInput{
		Title:    "Hi",
		Content:  "World",
		Category: "Study",
		Tags:     []string{"cs101"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := view.Post
	if p.UserID != author.ID {
		t.Errorf("owner: want %q, got %q", author.ID, p.UserID)
	}
	if p.Category != domain.CategoryStudy {
		t.Errorf("category: want Study, got %q", p.Category)
	}
	if len(p.Tags) != 1 || p.Tags[0] != "cs101" {
		t.Errorf("tags: want [cs101], got %v", p.Tags)
	}
	if len(p.Comments) != 0 {
		t.Errorf("new post must have no comments, got %d", len(p.Comments))
	}
	if len(p.Likes) != 0 {
		t.Errorf("new post must have no likes, got %d", len(p.Likes))
	}
	if view.Author == nil || view.Author.Username != "alice" {
		t.Errorf("expected populated author, got %+v", view.Author)
	}
}

func TestPostService_Create_DefaultsToGeneral(t *testing.T) {
	_, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")

	view, err := svc.Create(context.Background(), author.ID, ports.CreatePostInput{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Post.Category != domain.CategoryGeneral {
		t.Errorf("category: want General, got %q", view.Post.Category)
	}
}

func TestPostService_Create_Validation(t *testing.T) {
	_, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")

	cases := []struct {
		name string
		in   ports.CreatePostInput
	}{
		{"missing title", ports.CreatePostInput{Content: "c"}},
		{"blank title", ports.CreatePostInput{Title: "   ", Content: "c"}},
		{"missing content", ports.CreatePostInput{Title: "t"}},
		{"title too long", ports.CreatePostInput{Title: strings.Repeat("x", 201), Content: "c"}},
		{"content too long", ports.CreatePostInput{Title: "t", Content: strings.Repeat("x", 5001)}},
		{"bad category", ports.CreatePostInput{Title: "t", Content: "c", Category: "Gossip"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), author.ID, tc.in); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestPostService_Create_TitleAtLimitSucceeds(t *testing.T) {
	_, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")

	if _, err := svc.Create(context.Background(), author.ID, ports.CreatePostInput{
		Title:   strings.Repeat("x", 200),
		Content: "c",
	}); err != nil {
		t.Fatalf("title of exactly 200 chars must be accepted, got %v", err)
	}
}

func TestPostService_Create_LimitsCountCharactersNotBytes(t *testing.T) {
	_, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")

	// 150 two-byte characters: over 200 bytes but well under 200 characters.
	title := strings.Repeat("é", 150)
	if _, err := svc.Create(context.Background(), author.ID, ports.CreatePostInput{
		Title:   title,
		Content: strings.Repeat("ü", 400),
	}); err != nil {
		t.Fatalf("multibyte text within the character limits must be accepted, got %v", err)
	}
}

func TestPostService_AddComment_MultibyteWithinLimit(t *testing.T) {
	_, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")
	post := seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "t", Content: "c"})

	if _, err := svc.AddComment(context.Background(), author.ID, post.ID, strings.Repeat("é", 400)); err != nil {
		t.Fatalf("400 multibyte characters is under the comment limit, got %v", err)
	}
}

func TestPostService_Create_TrimsTags(t *testing.T) {
	_, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")

	view, err := svc.Create(context.Background(), author.ID, ports.CreatePostInput{
		Title:   "t",
		Content: "c",
		Tags:    []string{" cs101 ", "", "  "},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Post.Tags) != 1 || view.Post.Tags[0] != "cs101" {
		t.Errorf("tags: want [cs101], got %v", view.Post.Tags)
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func seedPost(t *testing.T, svc ports.PostService, callerID string, in ports.CreatePostInput) *domain.Post {
	t.Helper()
	view, err := svc.Create(context.Background(), callerID, in)
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return view.Post
}

func TestPostService_List_SearchMatchesTitleContentAndTags(t *testing.T) {
	_, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")

	seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "Midterm Help", Content: "anyone?"})
	seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "Evening", Content: "study group"})
	seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "Lab partners", Content: "x", Tags: []string{"study-buddies"}})
	seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "Unrelated", Content: "y"})

	views, err := svc.List(context.Background(), ports.ListPostsInput{Search: "study"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 matches via content and tag paths, got %d", len(views))
	}
}

func TestPostService_List_CategoryAndSearchAreANDed(t *testing.T) {
	_, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")

	seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "study night", Content: "x", Category: "Events"})
	seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "study group", Content: "y", Category: "General"})

	views, err := svc.List(context.Background(), ports.ListPostsInput{Category: "Events", Search: "study"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 match, got %d", len(views))
	}
	if views[0].Post.Category != domain.CategoryEvents {
		t.Errorf("non-Events post leaked through the category filter")
	}
}

func TestPostService_List_AllCategoryDisablesFilter(t *testing.T) {
	_, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")

	seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "a", Content: "x", Category: "Events"})
	seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "b", Content: "y", Category: "Help"})

	views, err := svc.List(context.Background(), ports.ListPostsInput{Category: "All"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(views))
	}
}

func TestPostService_List_PopulatesCommenterUsernames(t *testing.T) {
	_, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")
	commenter := seedUser(users, "bob")

	post := seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "t", Content: "c"})
	if _, err := svc.AddComment(context.Background(), commenter.ID, post.ID, "hello"); err != nil {
		t.Fatalf("add comment: %v", err)
	}

	views, err := svc.List(context.Background(), ports.ListPostsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := views[0].Commenters[commenter.ID]; got != "bob" {
		t.Errorf("commenter username: want bob, got %q", got)
	}
}

// ---------------------------------------------------------------------------
// Get / Update / Delete tests
// ---------------------------------------------------------------------------

func TestPostService_Get_NotFound(t *testing.T) {
	_, _, svc := newPostServiceForTest()

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_Update_OnlySuppliedFieldsChange(t *testing.T) {
	_, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")
	post := seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "orig", Content: "body", Category: "Study"})

	newTitle := "renamed"
	view, err := svc.Update(context.Background(), author.ID, post.ID, ports.UpdatePostInput{Title: &newTitle})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Post.Title != "renamed" {
		t.Errorf("title not updated: %q", view.Post.Title)
	}
	if view.Post.Content != "body" || view.Post.Category != domain.CategoryStudy {
		t.Errorf("omitted fields must stay unchanged: %+v", view.Post)
	}
}

func TestPostService_Update_SuppliedEmptyTitleIsRejected(t *testing.T) {
	_, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")
	post := seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "orig", Content: "body"})

	empty := ""
	_, err := svc.Update(context.Background(), author.ID, post.ID, ports.UpdatePostInput{Title: &empty})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("an explicitly supplied empty title must fail validation, got %v", err)
	}
}

func TestPostService_Update_NonOwnerForbidden(t *testing.T) {
	_, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")
	other := seedUser(users, "bob")
	post := seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "t", Content: "c"})

	title := "hijack"
	if _, err := svc.Update(context.Background(), other.ID, post.ID, ports.UpdatePostInput{Title: &title}); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestPostService_Delete_NonOwnerForbidden(t *testing.T) {
	posts, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")
	other := seedUser(users, "bob")
	post := seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "t", Content: "c"})

	if err := svc.Delete(context.Background(), other.ID, post.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if _, ok := posts.posts[post.ID]; !ok {
		t.Error("post must survive a forbidden delete")
	}
}

func TestPostService_Delete_OwnerSucceeds(t *testing.T) {
	posts, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")
	post := seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "t", Content: "c"})

	if err := svc.Delete(context.Background(), author.ID, post.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := posts.posts[post.ID]; ok {
		t.Error("post not removed")
	}
}

// ---------------------------------------------------------------------------
// Comment tests
// ---------------------------------------------------------------------------

func TestPostService_AddComment_EmptyTextRejected(t *testing.T) {
	posts, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")
	post := seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "t", Content: "c"})

	if _, err := svc.AddComment(context.Background(), author.ID, post.ID, ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if len(posts.posts[post.ID].Comments) != 0 {
		t.Error("post must be unchanged after a rejected comment")
	}
}

func TestPostService_AddComment_AnyAuthenticatedUser(t *testing.T) {
	_, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")
	stranger := seedUser(users, "bob")
	post := seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "t", Content: "c"})

	view, err := svc.AddComment(context.Background(), stranger.ID, post.ID, "nice post")
	if err != nil {
		t.Fatalf("commenting must not require post ownership: %v", err)
	}
	if len(view.Post.Comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(view.Post.Comments))
	}
	c := view.Post.Comments[0]
	if c.ID == "" {
		t.Error("comment id must be generated")
	}
	if c.UserID != stranger.ID {
		t.Errorf("comment author: want %q, got %q", stranger.ID, c.UserID)
	}
}

func TestPostService_DeleteComment_AuthorOnly(t *testing.T) {
	posts, users, svc := newPostServiceForTest()
	owner := seedUser(users, "alice")
	commenter := seedUser(users, "bob")
	post := seedPost(t, svc, owner.ID, ports.CreatePostInput{Title: "t", Content: "c"})

	view, err := svc.AddComment(context.Background(), commenter.ID, post.ID, "hello")
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	commentID := view.Post.Comments[0].ID

	// The post owner cannot delete someone else's comment.
	if err := svc.DeleteComment(context.Background(), owner.ID, post.ID, commentID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("post owner must not delete another user's comment, got %v", err)
	}

	// The comment's author can.
	if err := svc.DeleteComment(context.Background(), commenter.ID, post.ID, commentID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts.posts[post.ID].Comments) != 0 {
		t.Error("comment not removed")
	}
}

func TestPostService_DeleteComment_RemovesOnlyThatComment(t *testing.T) {
	posts, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")
	post := seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "t", Content: "c"})

	first, _ := svc.AddComment(context.Background(), author.ID, post.ID, "one")
	_, _ = svc.AddComment(context.Background(), author.ID, post.ID, "two")
	_, _ = svc.AddComment(context.Background(), author.ID, post.ID, "three")

	if err := svc.DeleteComment(context.Background(), author.ID, post.ID, first.Post.Comments[0].ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	remaining := posts.posts[post.ID].Comments
	if len(remaining) != 2 {
		t.Fatalf("expected 2 remaining comments, got %d", len(remaining))
	}
	if remaining[0].Text != "two" || remaining[1].Text != "three" {
		t.Errorf("remaining comments out of order: %+v", remaining)
	}
}

// vanishingCommentRepo simulates a comment removed by a concurrent
// request between the service's lookup and the removal itself.
type vanishingCommentRepo struct {
	*stubPostRepo
}

func (r *vanishingCommentRepo) RemoveComment(ctx context.Context, postID, commentID string) error {
	_ = r.stubPostRepo.RemoveComment(ctx, postID, commentID)
	return domain.ErrCommentNotFound
}

func TestPostService_DeleteComment_RemovedConcurrently(t *testing.T) {
	posts := newStubPostRepo()
	users := newStubUserRepo()
	svc := NewPostService(&vanishingCommentRepo{posts}, users, discardLogger)
	author := seedUser(users, "alice")
	post := seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "t", Content: "c"})

	view, err := svc.AddComment(context.Background(), author.ID, post.ID, "hello")
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}

	err = svc.DeleteComment(context.Background(), author.ID, post.ID, view.Post.Comments[0].ID)
	if !errors.Is(err, domain.ErrCommentNotFound) {
		t.Errorf("a comment gone by removal time must not report success, got %v", err)
	}
}

func TestPostService_DeleteComment_UnknownComment(t *testing.T) {
	_, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")
	post := seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "t", Content: "c"})

	if err := svc.DeleteComment(context.Background(), author.ID, post.ID, "nope"); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Errorf("expected ErrCommentNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Like tests
// ---------------------------------------------------------------------------

func TestPostService_ToggleLike_Membership(t *testing.T) {
	_, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")
	liker := seedUser(users, "bob")
	post := seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "t", Content: "c"})

	first, err := svc.ToggleLike(context.Background(), liker.ID, post.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.IsLiked || first.Likes != 1 {
		t.Errorf("first toggle: want liked with count 1, got %+v", first)
	}

	second, err := svc.ToggleLike(context.Background(), liker.ID, post.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.IsLiked || second.Likes != 0 {
		t.Errorf("second toggle: want unliked with count 0, got %+v", second)
	}
}

func TestPostService_ToggleLike_PairIsIdempotent(t *testing.T) {
	posts, users, svc := newPostServiceForTest()
	author := seedUser(users, "alice")
	liker := seedUser(users, "bob")
	post := seedPost(t, svc, author.ID, ports.CreatePostInput{Title: "t", Content: "c"})

	_, _ = svc.ToggleLike(context.Background(), author.ID, post.ID)
	before := len(posts.posts[post.ID].Likes)

	_, _ = svc.ToggleLike(context.Background(), liker.ID, post.ID)
	_, _ = svc.ToggleLike(context.Background(), liker.ID, post.ID)

	if after := len(posts.posts[post.ID].Likes); after != before {
		t.Errorf("like/unlike pair must restore the set: before=%d after=%d", before, after)
	}
}

func TestPostService_ToggleLike_NotFound(t *testing.T) {
	_, users, svc := newPostServiceForTest()
	liker := seedUser(users, "bob")

	if _, err := svc.ToggleLike(context.Background(), liker.ID, "missing"); !errors.Is(err, domain.ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
}
