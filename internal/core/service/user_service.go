package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/campusconnect/campus-api/internal/core/domain"
	"github.com/campusconnect/campus-api/internal/core/ports"
)

type userService struct {
	users ports.UserRepository
	posts ports.PostRepository
	log   zerolog.Logger
}

// NewUserService returns a UserService. The post repository is needed for
// the deletion cascade.
func NewUserService(users ports.UserRepository, posts ports.PostRepository, log zerolog.Logger) ports.UserService {
	return &userService{users: users, posts: posts, log: log}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, callerID, userID string, in ports.UpdateProfileInput) (*domain.User, error) {
	if callerID != userID {
		return nil, domain.ErrForbidden
	}

	upd := ports.ProfileUpdate{}
	if in.Major != nil {
		major := strings.TrimSpace(*in.Major)
		if major == "" {
			return nil, domain.Validationf("major cannot be empty")
		}
		upd.Major = &major
	}
	if in.Year != nil {
		if *in.Year < domain.MinYear || *in.Year > domain.MaxYear {
			return nil, domain.Validationf("year must be between %d and %d", domain.MinYear, domain.MaxYear)
		}
		upd.Year = in.Year
	}
	if in.Bio != nil {
		if utf8.RuneCountInString(*in.Bio) > domain.MaxBioLen {
			return nil, domain.Validationf("bio must be at most %d characters", domain.MaxBioLen)
		}
		upd.Bio = in.Bio
	}
	if in.Avatar != nil {
		upd.Avatar = in.Avatar
	}

	updated, err := s.users.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return updated, nil
}

// DeleteAccount removes the user record and then the user's posts. The
// cascade is best effort: likes and comments the user left on other
// people's posts stay where they are.
func (s *userService) DeleteAccount(ctx context.Context, callerID, userID string) error {
	if callerID != userID {
		return domain.ErrForbidden
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}

	deleted, err := s.posts.DeleteByAuthor(ctx, userID)
	if err != nil {
		// The account itself is gone; orphaned posts are logged, not fatal.
		s.log.Error().Err(err).Str("user_id", userID).Msg("post cascade failed after account deletion")
		return nil
	}

	s.log.Info().Str("user_id", userID).Int64("posts_deleted", deleted).Msg("account deleted")
	return nil
}
