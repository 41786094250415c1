package usecase

import (
	"testing"
	"time"

	authdomain "petcare-backend/internal/auth/domain"
	authdto "petcare-backend/internal/auth/dto"
	"petcare-backend/internal/auth/repository"
	"petcare-backend/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestUsecase(t *testing.T) (AuthUsecase, repository.UserRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}))

	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: 168 * time.Hour,
	}
	userRepo := repository.NewUserRepository(db)
	return NewAuthUsecase(userRepo, cfg), userRepo
}

func registerRequest(email string) *authdto.RegisterRequest {
	return &authdto.RegisterRequest{
		Name:     "Ana",
		Email:    email,
		Phone:    "1",
		Birthday: "2000-01-01",
		Password: "secret",
	}
}

func TestRegister(t *testing.T) {
	uc, _ := newTestUsecase(t)

	user, err := uc.Register(registerRequest("a@x.com"))
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "2000-01-01", user.Birthday)
	assert.Equal(t, authdomain.RoleUser, user.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.Register(registerRequest("a@x.com"))
	require.NoError(t, err)

	_, err = uc.Register(registerRequest("a@x.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_BadBirthday(t *testing.T) {
	uc, _ := newTestUsecase(t)

	req := registerRequest("a@x.com")
	req.Birthday = "01/01/2000"
	_, err := uc.Register(req)
	assert.ErrorIs(t, err, ErrInvalidBirthday)
}

func TestLogin(t *testing.T) {
	uc, _ := newTestUsecase(t)
	_, err := uc.Register(registerRequest("a@x.com"))
	require.NoError(t, err)

	resp, err := uc.Login(&authdto.LoginRequest{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Ana", resp.User.Name)
	assert.Equal(t, authdomain.RoleUser, resp.User.Role)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.Login(&authdto.LoginRequest{Email: "nobody@x.com", Password: "secret"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _ := newTestUsecase(t)
	_, err := uc.Register(registerRequest("a@x.com"))
	require.NoError(t, err)

	_, err = uc.Login(&authdto.LoginRequest{Email: "a@x.com", Password: "secretx"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyToken_RoundTrip(t *testing.T) {
	uc, _ := newTestUsecase(t)
	registered, err := uc.Register(registerRequest("a@x.com"))
	require.NoError(t, err)

	resp, err := uc.Login(&authdto.LoginRequest{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	claims, err := uc.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, authdomain.RoleUser, claims.Role)
}

func TestVerifyToken_Garbage(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Expired(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}))

	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: -time.Minute}
	uc := NewAuthUsecase(repository.NewUserRepository(db), cfg)

	_, err = uc.Register(registerRequest("a@x.com"))
	require.NoError(t, err)
	resp, err := uc.Login(&authdto.LoginRequest{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	_, err = uc.VerifyToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	uc, _ := newTestUsecase(t)
	_, err := uc.Register(registerRequest("a@x.com"))
	require.NoError(t, err)
	resp, err := uc.Login(&authdto.LoginRequest{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	other := NewAuthUsecase(nil, &config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour})
	_, err = other.VerifyToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetProfile(t *testing.T) {
	uc, _ := newTestUsecase(t)
	registered, err := uc.Register(registerRequest("a@x.com"))
	require.NoError(t, err)

	profile, err := uc.GetProfile(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", profile.Name)
	assert.Equal(t, "2000-01-01", profile.Birthday)
}

func TestGetProfile_UserGone(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.GetProfile(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsers_RequiresStoreAdminRole(t *testing.T) {
	uc, userRepo := newTestUsecase(t)
	registered, err := uc.Register(registerRequest("user@x.com"))
	require.NoError(t, err)

	_, err = uc.ListUsers(registered.ID)
	assert.ErrorIs(t, err, ErrAdminOnly)

	admin := &authdomain.User{
		Name:     "Root",
		Email:    "admin@x.com",
		Phone:    "2",
		Birthday: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Password: "hashed",
		Role:     authdomain.RoleAdmin,
	}
	require.NoError(t, userRepo.Create(admin))

	users, err := uc.ListUsers(admin.ID)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestListUsers_DeletedRequester(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.ListUsers(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
