package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tsepo/luctreport/internal/app/models"
	"github.com/tsepo/luctreport/internal/app/models/dto"
	"github.com/tsepo/luctreport/internal/pkg/apperrors"
)

// ClassStore is the class persistence surface the class service depends on.
type ClassStore interface {
	Create(ctx context.Context, class *models.Class) (int64, error)
	List(ctx context.Context, stream string) ([]*models.Class, error)
}

// ClassService defines class catalog operations.
type ClassService interface {
	Create(ctx context.Context, req *dto.CreateClassRequest) (int64, error)
	List(ctx context.Context, stream string) ([]*models.Class, error)
}

// classServiceImpl implements the ClassService interface
type classServiceImpl struct {
	classes ClassStore
}

// NewClassService creates a new class service instance
func NewClassService(classes ClassStore) ClassService {
	return &classServiceImpl{classes: classes}
}

// Create validates and creates a class catalog entry.
func (s *classServiceImpl) Create(ctx context.Context, req *dto.CreateClassRequest) (int64, error) {
	if req == nil {
		return 0, apperrors.NewValidationError("request body is required")
	}
	if strings.TrimSpace(req.ClassName) == "" {
		return 0, apperrors.NewValidationError("class_name is required")
	}
	if strings.TrimSpace(req.Stream) == "" {
		return 0, apperrors.NewValidationError("stream is required")
	}
	if req.TotalStudents < 0 {
		return 0, apperrors.NewValidationError("total_students cannot be negative")
	}

	class := &models.Class{
		ClassName:     strings.TrimSpace(req.ClassName),
		Stream:        strings.TrimSpace(req.Stream),
		TotalStudents: req.TotalStudents,
		CreatedBy:     req.CreatedBy,
	}

	id, err := s.classes.Create(ctx, class)
	if err != nil {
		return 0, fmt.Errorf("error creating class: %w", err)
	}
	return id, nil
}

// List retrieves classes, optionally narrowed to a stream.
func (s *classServiceImpl) List(ctx context.Context, stream string) ([]*models.Class, error) {
	classes, err := s.classes.List(ctx, strings.TrimSpace(stream))
	if err != nil {
		return nil, fmt.Errorf("error retrieving classes: %w", err)
	}
	return classes, nil
}
