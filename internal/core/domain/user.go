package domain

import (
	"errors"
	"net/url"
	"time"
)

const (
	MinUsernameLen = 3
	MinPasswordLen = 6
	MaxBioLen      = 500
	MinYear        = 1
	MaxYear        = 4
)

const (
	DefaultMajor = "Undeclared"
	DefaultYear  = 1
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Profile holds the public, user-editable part of an account.
type Profile struct {
	Major  string `json:"major"`
	Year   int    `json:"year"`
	Bio    string `json:"bio,omitempty"`
	Avatar string `json:"avatar"`
}

// User models a registered member. PasswordHash never crosses the API
// boundary.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
}

// DefaultAvatarURL derives the avatar assigned at registration when the
// user does not supply one.
func DefaultAvatarURL(username string) string {
	return "https://ui-avatars.com/api/?background=667eea&color=fff&name=" + url.QueryEscape(username)
}
