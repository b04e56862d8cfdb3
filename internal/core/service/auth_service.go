package service

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusconnect/campus-api/internal/core/domain"
	"github.com/campusconnect/campus-api/internal/core/ports"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type authService struct {
	users    ports.UserRepository
	denylist ports.TokenDenylist
	secret   string
	tokenTTL time.Duration
	log      zerolog.Logger
}

// NewAuthService returns an AuthService issuing HS256 tokens signed with
// secret. tokenTTL falls back to 24h when not positive.
func NewAuthService(users ports.UserRepository, denylist ports.TokenDenylist, secret string, tokenTTL time.Duration, log zerolog.Logger) ports.AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &authService{users: users, denylist: denylist, secret: secret, tokenTTL: tokenTTL, log: log}
}

func (s *authService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if utf8.RuneCountInString(username) < domain.MinUsernameLen {
		return nil, domain.Validationf("username must be at least %d characters", domain.MinUsernameLen)
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !emailPattern.MatchString(email) {
		return nil, domain.Validationf("invalid email address")
	}
	if utf8.RuneCountInString(in.Password) < domain.MinPasswordLen {
		return nil, domain.Validationf("password must be at least %d characters", domain.MinPasswordLen)
	}

	major := strings.TrimSpace(in.Major)
	if major == "" {
		major = domain.DefaultMajor
	}
	year := in.Year
	if year == 0 {
		year = domain.DefaultYear
	}
	if year < domain.MinYear || year > domain.MaxYear {
		return nil, domain.Validationf("year must be between %d and %d", domain.MinYear, domain.MaxYear)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Profile: domain.Profile{
			Major:  major,
			Year:   year,
			Avatar: domain.DefaultAvatarURL(username),
		},
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("username", username).Msg("user registered")
	return created, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the caller.
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

// Logout revokes the token for its remaining lifetime. An already expired
// or unparseable token is a no-op: it can no longer authenticate anyone.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		return nil
	}

	return s.denylist.Revoke(ctx, token, ttl)
}

func (s *authService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}
