package usecase

import (
	"errors"
	"time"

	authdomain "petcare-backend/internal/auth/domain"
	authdto "petcare-backend/internal/auth/dto"
	"petcare-backend/internal/auth/repository"
	"petcare-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAdminOnly          = errors.New("admin access required")
	ErrInvalidBirthday    = errors.New("invalid birthday, expected YYYY-MM-DD")
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.UserResponse, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	birthday, err := time.Parse("2006-01-02", req.Birthday)
	if err != nil {
		return nil, ErrInvalidBirthday
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Birthday: birthday,
		Password: hashedPassword,
		Role:     authdomain.RoleUser,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	resp := authdto.NewUserResponse(user)
	return &resp, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := u.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		Token: token,
		User:  authdto.NewUserSummary(user),
	}, nil
}

func (u *authUsecase) GetProfile(userID uint) (*authdto.UserResponse, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := authdto.NewUserResponse(user)
	return &resp, nil
}

func (u *authUsecase) ListUsers(requesterID uint) ([]authdto.UserResponse, error) {
	// The role is read back from the store rather than trusted from the
	// token, so a stale ADMIN claim on a downgraded account is rejected.
	requester, err := u.userRepo.FindByID(requesterID)
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, ErrUserNotFound
	}
	if !requester.IsAdmin() {
		return nil, ErrAdminOnly
	}

	users, err := u.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]authdto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, authdto.NewUserResponse(user))
	}
	return responses, nil
}

func (u *authUsecase) generateToken(user *authdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(u.config.JWTExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) VerifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return nil, ErrInvalidToken
	}

	role, _ := claims["role"].(string)

	return &TokenClaims{
		UserID: uint(userID),
		Role:   authdomain.Role(role),
	}, nil
}
