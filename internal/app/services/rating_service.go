package services

import (
	"context"
	"fmt"

	"github.com/tsepo/luctreport/internal/app/models"
	"github.com/tsepo/luctreport/internal/app/models/dto"
	"github.com/tsepo/luctreport/internal/pkg/apperrors"
)

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// RatingStore is the rating persistence surface the rating service depends on.
type RatingStore interface {
	Create(ctx context.Context, rating *models.Rating) (int64, error)
	List(ctx context.Context) ([]*models.Rating, error)
}

// RatingService defines rating operations.
type RatingService interface {
	Create(ctx context.Context, req *dto.CreateRatingRequest) (int64, error)
	List(ctx context.Context) ([]*models.Rating, error)
}

// ratingServiceImpl implements the RatingService interface
type ratingServiceImpl struct {
	ratings RatingStore
}

// NewRatingService creates a new rating service instance
func NewRatingService(ratings RatingStore) RatingService {
	return &ratingServiceImpl{ratings: ratings}
}

// Create validates and stores a rating. The rating value is bounded 1-5.
func (s *ratingServiceImpl) Create(ctx context.Context, req *dto.CreateRatingRequest) (int64, error) {
	if req == nil {
		return 0, apperrors.NewValidationError("request body is required")
	}
	if req.CourseID <= 0 {
		return 0, apperrors.NewValidationError("course_id is required")
	}
	if req.LecturerID <= 0 {
		return 0, apperrors.NewValidationError("lecturer_id is required")
	}
	if req.StudentID <= 0 {
		return 0, apperrors.NewValidationError("student_id is required")
	}
	if req.Rating < MinRating || req.Rating > MaxRating {
		return 0, apperrors.NewValidationError(fmt.Sprintf("rating must be between %d and %d", MinRating, MaxRating))
	}

	rating := &models.Rating{
		CourseID:   req.CourseID,
		LecturerID: req.LecturerID,
		StudentID:  req.StudentID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	id, err := s.ratings.Create(ctx, rating)
	if err != nil {
		return 0, fmt.Errorf("error creating rating: %w", err)
	}
	return id, nil
}

// List retrieves all ratings with display names resolved.
func (s *ratingServiceImpl) List(ctx context.Context) ([]*models.Rating, error) {
	ratings, err := s.ratings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving ratings: %w", err)
	}
	return ratings, nil
}
