package services

import (
	"context"
	"fmt"

	"github.com/tsepo/luctreport/internal/app/models"
)

// UserLister is the directory surface the user service depends on.
type UserLister interface {
	ListUsers(ctx context.Context) ([]*models.PublicUser, error)
	ListLecturers(ctx context.Context) ([]*models.Lecturer, error)
}

// UserService defines user directory operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]*models.PublicUser, error)
	ListLecturers(ctx context.Context) ([]*models.Lecturer, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	users UserLister
}

// NewUserService creates a new user service instance
func NewUserService(users UserLister) UserService {
	return &userServiceImpl{users: users}
}

// ListUsers retrieves every user without password hashes.
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*models.PublicUser, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// ListLecturers retrieves the lecturer picker list.
func (s *userServiceImpl) ListLecturers(ctx context.Context) ([]*models.Lecturer, error) {
	lecturers, err := s.users.ListLecturers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lecturers: %w", err)
	}
	return lecturers, nil
}
