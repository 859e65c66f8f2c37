package dto

// Request DTOs

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type UserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	CanEdit  bool   `json:"can_edit"`
}
