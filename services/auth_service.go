package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Jead100/restaurant-api/configs"
	"github.com/Jead100/restaurant-api/entity"
	"github.com/Jead100/restaurant-api/repository"
	"github.com/Jead100/restaurant-api/utils"
)

// Demo tokens never outlive the sandbox account or these caps.
const (
	demoAccessMax  = 15 * time.Minute
	demoRefreshMax = time.Hour
)

type AuthService struct {
	Users *repository.UserRepository
	Cfg   *configs.Config
}

func NewAuthService(users *repository.UserRepository, cfg *configs.Config) *AuthService {
	return &AuthService{Users: users, Cfg: cfg}
}

type RegisterIn struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenPairOut struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type UserOut struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     entity.Role `json:"role"`
}

func (s *AuthService) Register(in *RegisterIn) (*UserOut, error) {
	username := strings.TrimSpace(in.Username)

	count, err := s.Users.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fieldError("username", "A user with that username already exists.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: username,
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: string(hashed),
	}
	if err := s.Users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fieldError("username", "A user with that username already exists.")
		}
		return nil, err
	}
	return &UserOut{ID: user.ID, Username: user.Username, Email: user.Email, Role: entity.RoleCustomer}, nil
}

func (s *AuthService) Login(in *LoginIn) (*TokenPairOut, error) {
	user, err := s.Users.FindByUsername(strings.TrimSpace(in.Username))
	if err != nil {
		return nil, ErrInvalidCreds
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCreds
	}
	if user.DemoExpired(time.Now()) {
		return nil, ErrInvalidCreds
	}

	accessTTL, refreshTTL := s.tokenTTLs(user)
	access, refresh, err := utils.TokenPair(user.ID, user.IsDemo, s.Cfg.JWTSecret, accessTTL, refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPairOut{Access: access, Refresh: refresh}, nil
}

// Refresh validates a refresh-typed token and issues a fresh access
// token. Expired demo accounts cannot refresh their way past expiry.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := utils.ParseToken(refreshToken, s.Cfg.JWTSecret)
	if err != nil || claims.TokenType != utils.TokenRefresh {
		return "", ErrInvalidToken
	}

	user, err := s.Users.FindByID(claims.UserID)
	if err != nil {
		return "", ErrInvalidToken
	}
	if user.DemoExpired(time.Now()) {
		return "", ErrInvalidToken
	}

	accessTTL, _ := s.tokenTTLs(user)
	return utils.GenerateToken(user.ID, utils.TokenAccess, user.IsDemo, s.Cfg.JWTSecret, accessTTL)
}

func (s *AuthService) Me(user *entity.User) *UserOut {
	return &UserOut{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     entity.PrimaryRole(user),
	}
}

// tokenTTLs caps demo token lifetimes to the remaining sandbox TTL.
func (s *AuthService) tokenTTLs(user *entity.User) (access, refresh time.Duration) {
	access, refresh = s.Cfg.AccessTTL, s.Cfg.RefreshTTL
	if user.IsDemo && user.DemoExpiresAt != nil {
		remaining := time.Until(*user.DemoExpiresAt)
		access = minDuration(demoAccessMax, remaining)
		refresh = minDuration(demoRefreshMax, remaining)
	}
	return access, refresh
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
