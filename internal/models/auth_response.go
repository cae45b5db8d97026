package models

// SignupResponse represents the response after successful signup
type SignupResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// EmailCheckResponse reports whether an email is registered
type EmailCheckResponse struct {
	Exists bool `json:"exists"`
}
