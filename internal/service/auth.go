// Package service contains the business logic of the donation platform.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/models"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/repository"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/revocation"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned when a token fails its integrity or expiry
	// check, or has been revoked.
	ErrInvalidToken = errors.New("invalid token")
)

// LoginResponse is the payload returned on successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
}

// AuthService handles registration, login, token validation and revocation
// for both user and admin accounts.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	RegisterAdmin(ctx context.Context, username, email, password string) (*models.Admin, error)
	LoginAdmin(ctx context.Context, email, password string) (*LoginResponse, error)
	Authenticate(ctx context.Context, token string) (*Claims, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo   repository.UserRepository
	adminRepo  repository.AdminRepository
	jwtService JWTService
	revoked    revocation.Store
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, adminRepo repository.AdminRepository, jwtService JWTService, revoked revocation.Store) AuthService {
	return &authService{
		userRepo:   userRepo,
		adminRepo:  adminRepo,
		jwtService: jwtService,
		revoked:    revoked,
	}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.Generate(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.jwtService.GetExpiry().Seconds()),
		UserID:      user.ID,
		Username:    user.Username,
	}, nil
}

func (s *authService) RegisterAdmin(ctx context.Context, username, email, password string) (*models.Admin, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *authService) LoginAdmin(ctx context.Context, email, password string) (*LoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.Generate(admin.ID, admin.Username, true)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.jwtService.GetExpiry().Seconds()),
		UserID:      admin.ID,
		Username:    admin.Username,
	}, nil
}

// Authenticate validates a token's signature and expiry, then checks its
// identifier against the revocation set.
func (s *authService) Authenticate(ctx context.Context, token string) (*Claims, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Logout adds the token's identifier to the revocation set. Revoking a token
// that is already revoked, expired or unparseable is a no-op, not an error.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	return s.revoked.Revoke(ctx, claims.ID, ttl)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
