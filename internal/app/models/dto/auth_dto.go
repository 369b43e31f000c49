package dto

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" example:"jane@school.edu"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@school.edu"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

// TokenResponse carries a freshly issued access token.
type TokenResponse struct {
	Token string `json:"token"`
}
