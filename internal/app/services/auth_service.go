package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tsepo/luctreport/internal/app/models"
	"github.com/tsepo/luctreport/internal/app/models/dto"
	"github.com/tsepo/luctreport/internal/pkg/apperrors"
	"github.com/tsepo/luctreport/internal/pkg/auth"
)

// UserStore is the user persistence surface the auth service depends on.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(user *models.User) (string, error)
}

// AuthService defines registration, login and profile operations.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (int64, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error)
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	users  UserStore
	tokens TokenIssuer
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserStore, tokens TokenIssuer) AuthService {
	return &authServiceImpl{
		users:  users,
		tokens: tokens,
	}
}

// Register validates the registration form, hashes the password and creates
// the user. Passwords are never stored in plaintext.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (int64, error) {
	if err := validateRegistration(req); err != nil {
		return 0, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:    strings.TrimSpace(req.Email),
		Password: hashed,
		Name:     strings.TrimSpace(req.Name),
		Role:     models.Role(req.Role),
		Stream:   strings.TrimSpace(req.Stream),
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error registering user: %w", err)
	}
	return id, nil
}

// Login authenticates by email and password. A missing user and a wrong
// password produce the same error so callers cannot probe which was wrong.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("error issuing token: %w", err)
	}

	return user, token, nil
}

// GetProfile returns the user a validated token belongs to.
func (s *authServiceImpl) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}
	return user, nil
}

// validateRegistration checks the registration form fields.
func validateRegistration(req *dto.RegisterRequest) error {
	if req == nil {
		return apperrors.NewValidationError("request body is required")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return apperrors.NewValidationError("email is required")
	}
	if !strings.Contains(email, "@") {
		return apperrors.NewValidationError("email is invalid")
	}

	if len(req.Password) < 6 {
		return apperrors.NewValidationError("password must be at least 6 characters")
	}

	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name is required")
	}

	if !models.Role(req.Role).Valid() {
		return apperrors.NewValidationError("role must be one of student, lecturer, principal_lecturer, program_leader")
	}

	return nil
}
