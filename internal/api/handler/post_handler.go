package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusconnect/campus-api/internal/api/metrics"
	"github.com/campusconnect/campus-api/internal/core/ports"
)

// PostHandler handles HTTP requests for the post feed.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /api/posts.
//
// @Summary      Create a new post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  postEnvelope
// @Failure      400   {object}  errorEnvelope
// @Failure      401   {object}  errorEnvelope
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Create(c.Request().Context(), caller, toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.WithLabelValues(string(view.Post.Category)).Inc()
	return c.JSON(http.StatusCreated, postEnvelope{Success: true, Post: toPostResponse(view)})
}

// List handles GET /api/posts?category=&search=.
//
// @Summary      List posts, newest first
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        category  query     string  false  "Category filter (or All)"
// @Param        search    query     string  false  "Substring match on title, content, or tags"
// @Success      200       {object}  listPostsEnvelope
// @Failure      401       {object}  errorEnvelope
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context(), ports.ListPostsInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(views))
}

// Get handles GET /api/posts/:postId.
//
// @Summary      Get a single post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string  true  "Post id"
// @Success      200     {object}  postEnvelope
// @Failure      404     {object}  errorEnvelope
// @Router       /api/posts/{postId} [get]
func (h *PostHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("postId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, postEnvelope{Success: true, Post: toPostResponse(view)})
}

// Update handles PUT /api/posts/:postId. Only supplied fields change.
//
// @Summary      Update a post (owner only)
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string             true  "Post id"
// @Param        body    body      updatePostRequest  true  "Fields to change"
// @Success      200     {object}  postEnvelope
// @Failure      400     {object}  errorEnvelope
// @Failure      403     {object}  errorEnvelope
// @Failure      404     {object}  errorEnvelope
// @Router       /api/posts/{postId} [put]
func (h *PostHandler) Update(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Update(c.Request().Context(), caller, c.Param("postId"), toUpdateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, postEnvelope{Success: true, Post: toPostResponse(view)})
}

// Delete handles DELETE /api/posts/:postId.
//
// @Summary      Delete a post (owner only)
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string  true  "Post id"
// @Success      200     {object}  messageEnvelope
// @Failure      403     {object}  errorEnvelope
// @Failure      404     {object}  errorEnvelope
// @Router       /api/posts/{postId} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("postId")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageEnvelope{Success: true, Message: "post deleted"})
}

// AddComment handles POST /api/posts/:postId/comments.
//
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string             true  "Post id"
// @Param        body    body      addCommentRequest  true  "Comment text"
// @Success      201     {object}  postEnvelope
// @Failure      400     {object}  errorEnvelope
// @Failure      404     {object}  errorEnvelope
// @Router       /api/posts/{postId}/comments [post]
func (h *PostHandler) AddComment(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.AddComment(c.Request().Context(), caller, c.Param("postId"), req.Text)
	if err != nil {
		return err
	}

	metrics.CommentsAddedTotal.Inc()
	return c.JSON(http.StatusCreated, postEnvelope{Success: true, Post: toPostResponse(view)})
}

// DeleteComment handles DELETE /api/posts/:postId/comments/:commentId.
//
// @Summary      Delete a comment (comment author only)
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        postId     path      string  true  "Post id"
// @Param        commentId  path      string  true  "Comment id"
// @Success      200        {object}  messageEnvelope
// @Failure      403        {object}  errorEnvelope
// @Failure      404        {object}  errorEnvelope
// @Router       /api/posts/{postId}/comments/{commentId} [delete]
func (h *PostHandler) DeleteComment(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteComment(c.Request().Context(), caller, c.Param("postId"), c.Param("commentId")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageEnvelope{Success: true, Message: "comment deleted"})
}

// ToggleLike handles POST /api/posts/:postId/like.
//
// @Summary      Like or unlike a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string  true  "Post id"
// @Success      200     {object}  likeEnvelope
// @Failure      404     {object}  errorEnvelope
// @Router       /api/posts/{postId}/like [post]
func (h *PostHandler) ToggleLike(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	result, err := h.service.ToggleLike(c.Request().Context(), caller, c.Param("postId"))
	if err != nil {
		return err
	}

	action := "unliked"
	if result.IsLiked {
		action = "liked"
	}
	metrics.LikesToggledTotal.WithLabelValues(action).Inc()

	return c.JSON(http.StatusOK, likeEnvelope{Success: true, Likes: result.Likes, IsLiked: result.IsLiked})
}
