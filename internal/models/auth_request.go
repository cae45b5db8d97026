package models

// SignupRequest represents the multipart form fields for user signup.
// The optional profileImage file part is handled separately by the
// controller.
type SignupRequest struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest represents the request body for password recovery
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// EmailCheckRequest represents the request body for the email existence
// check. Email is validated by the controller so a missing field maps to
// the documented 400 body rather than a binding error.
type EmailCheckRequest struct {
	Email string `json:"email"`
}
