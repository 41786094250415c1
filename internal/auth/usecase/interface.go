package usecase

import (
	authdomain "petcare-backend/internal/auth/domain"
	authdto "petcare-backend/internal/auth/dto"
)

// TokenClaims is the identity a verified token proves. Identity comes from
// the token alone; authoritative role checks go back to the store.
type TokenClaims struct {
	UserID uint
	Role   authdomain.Role
}

// AuthUsecase defines the authentication and user account operations
type AuthUsecase interface {
	// Register creates a new account with a hashed password and role USER
	Register(req *authdto.RegisterRequest) (*authdto.UserResponse, error)

	// Login checks credentials and issues a signed token
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// GetProfile re-fetches the user behind a verified token
	GetProfile(userID uint) (*authdto.UserResponse, error)

	// ListUsers returns every account; the requester must hold the ADMIN
	// role in the store, not merely in the token
	ListUsers(requesterID uint) ([]authdto.UserResponse, error)

	// VerifyToken checks signature and expiry and extracts the claims
	VerifyToken(tokenString string) (*TokenClaims, error)
}
