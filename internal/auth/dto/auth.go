package dto

import (
	"time"

	authdomain "petcare-backend/internal/auth/domain"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Birthday string `json:"birthday" binding:"required"` // YYYY-MM-DD
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public projection of a user. The password hash
// never appears here.
type UserResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Birthday  string          `json:"birthday"`
	Role      authdomain.Role `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// UserSummary is the short projection returned alongside a login token.
type UserSummary struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  authdomain.Role `json:"role"`
}

type TokenResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

func NewUserResponse(user *authdomain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Birthday:  user.Birthday.Format("2006-01-02"),
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func NewUserSummary(user *authdomain.User) UserSummary {
	return UserSummary{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}
