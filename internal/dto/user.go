package dto

import (
	"time"

	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
)

// RegisterRequest defines the data needed to open an account.
type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	BusinessName string `json:"businessName,omitempty"`
}

// LoginRequest defines the credentials for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest replaces the issuer profile. Omitted fields are cleared.
type UpdateProfileRequest struct {
	BusinessName    string `json:"businessName"`
	BusinessAddress string `json:"businessAddress"`
	BusinessPhone   string `json:"businessPhone"`
	BusinessEmail   string `json:"businessEmail" binding:"omitempty,email"`
}

// ToIssuerProfile converts the request into the domain profile.
func (r UpdateProfileRequest) ToIssuerProfile() domain.IssuerProfile {
	return domain.IssuerProfile{
		BusinessName:    r.BusinessName,
		BusinessAddress: r.BusinessAddress,
		BusinessPhone:   r.BusinessPhone,
		BusinessEmail:   r.BusinessEmail,
	}
}

// UserResponse defines the user data returned to clients.
type UserResponse struct {
	UserID          string `json:"userID"`
	Email           string `json:"email"`
	BusinessName    string `json:"businessName"`
	BusinessAddress string `json:"businessAddress"`
	BusinessPhone   string `json:"businessPhone"`
	BusinessEmail   string `json:"businessEmail"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:          u.UserID,
		Email:           u.Email,
		BusinessName:    u.Profile.BusinessName,
		BusinessAddress: u.Profile.BusinessAddress,
		BusinessPhone:   u.Profile.BusinessPhone,
		BusinessEmail:   u.Profile.BusinessEmail,
	}
}
