package handler

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Major    string `json:"major"`
	Year     int    `json:"year"     validate:"omitempty,min=1,max=4"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authEnvelope struct {
	Success bool         `json:"success"`
	Token   string       `json:"token,omitempty"`
	User    userResponse `json:"user"`
}
