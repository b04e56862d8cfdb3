package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusconnect/campus-api/internal/api/metrics"
	"github.com/campusconnect/campus-api/internal/core/domain"
	"github.com/campusconnect/campus-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user profiles and accounts.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Get handles GET /api/users/:userId.
//
// @Summary      Get a user's public profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  userEnvelope
// @Failure      404     {object}  errorEnvelope
// @Router       /api/users/{userId} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetProfile(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userEnvelope{Success: true, User: toUserResponse(user)})
}

// Update handles PUT /api/users/:userId. Self-only.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string                true  "User id"
// @Param        body    body      updateProfileRequest  true  "Profile fields to change"
// @Success      200     {object}  userEnvelope
// @Failure      400     {object}  errorEnvelope
// @Failure      403     {object}  errorEnvelope
// @Failure      404     {object}  errorEnvelope
// @Router       /api/users/{userId} [put]
func (h *UserHandler) Update(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), caller, c.Param("userId"), ports.UpdateProfileInput{
		Major:  req.Major,
		Year:   req.Year,
		Bio:    req.Bio,
		Avatar: req.Avatar,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userEnvelope{Success: true, User: toUserResponse(user)})
}

// Delete handles DELETE /api/users/:userId. Self-only; cascades to the
// user's posts.
//
// @Summary      Delete own account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  messageEnvelope
// @Failure      403     {object}  errorEnvelope
// @Failure      404     {object}  errorEnvelope
// @Router       /api/users/{userId} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteAccount(c.Request().Context(), caller, c.Param("userId")); err != nil {
		return err
	}

	metrics.AccountsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageEnvelope{Success: true, Message: "account deleted"})
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Profile: profileResponse{
			Major:  u.Profile.Major,
			Year:   u.Profile.Year,
			Bio:    u.Profile.Bio,
			Avatar: u.Profile.Avatar,
		},
		CreatedAt: u.CreatedAt.UTC(),
	}
}
