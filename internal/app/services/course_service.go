package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tsepo/luctreport/internal/app/models"
	"github.com/tsepo/luctreport/internal/app/models/dto"
	"github.com/tsepo/luctreport/internal/pkg/apperrors"
)

// CourseStore is the course persistence surface the course service depends on.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	List(ctx context.Context, stream string) ([]*models.Course, error)
}

// CourseService defines course catalog operations.
type CourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest) (int64, error)
	List(ctx context.Context, stream string) ([]*models.Course, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courses CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore) CourseService {
	return &courseServiceImpl{courses: courses}
}

// Create validates and creates a course catalog entry.
func (s *courseServiceImpl) Create(ctx context.Context, req *dto.CreateCourseRequest) (int64, error) {
	if req == nil {
		return 0, apperrors.NewValidationError("request body is required")
	}
	if strings.TrimSpace(req.CourseName) == "" {
		return 0, apperrors.NewValidationError("course_name is required")
	}
	if strings.TrimSpace(req.CourseCode) == "" {
		return 0, apperrors.NewValidationError("course_code is required")
	}
	if strings.TrimSpace(req.Stream) == "" {
		return 0, apperrors.NewValidationError("stream is required")
	}

	course := &models.Course{
		CourseName:         strings.TrimSpace(req.CourseName),
		CourseCode:         strings.TrimSpace(req.CourseCode),
		Stream:             strings.TrimSpace(req.Stream),
		AssignedLecturerID: req.AssignedLecturerID,
		CreatedBy:          req.CreatedBy,
	}

	id, err := s.courses.Create(ctx, course)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseCodeAlreadyExists) {
			return 0, apperrors.ErrCourseCodeAlreadyExists
		}
		return 0, fmt.Errorf("error creating course: %w", err)
	}
	return id, nil
}

// List retrieves courses, optionally narrowed to a stream. Every role sees
// the same stream-filtered catalog.
func (s *courseServiceImpl) List(ctx context.Context, stream string) ([]*models.Course, error) {
	courses, err := s.courses.List(ctx, strings.TrimSpace(stream))
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}
