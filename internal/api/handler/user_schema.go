package handler

import "time"

// errorEnvelope is the standard failure envelope returned on all 4xx/5xx
// responses (rendered by the central error handler).
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// updateProfileRequest uses pointers so an omitted field is
// distinguishable from a supplied zero value.
type updateProfileRequest struct {
	Major  *string `json:"major"  validate:"omitempty,min=1"`
	Year   *int    `json:"year"   validate:"omitempty,min=1,max=4"`
	Bio    *string `json:"bio"    validate:"omitempty,max=500"`
	Avatar *string `json:"avatar" validate:"omitempty,url"`
}

// userResponse is the public view of an account; credential material
// never appears here.
type userResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Profile   profileResponse `json:"profile"`
	CreatedAt time.Time       `json:"created_at"`
}

type userEnvelope struct {
	Success bool         `json:"success"`
	User    userResponse `json:"user"`
}
