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

// FeedbackStore is the feedback persistence surface the feedback service
// depends on. CreateForReport performs the report-exists and author-role
// checks transactionally.
type FeedbackStore interface {
	CreateForReport(ctx context.Context, feedback *models.Feedback) (*models.Feedback, error)
	ListByReport(ctx context.Context, reportID int64) ([]*models.Feedback, error)
}

// FeedbackService defines feedback operations.
type FeedbackService interface {
	Create(ctx context.Context, req *dto.CreateFeedbackRequest) (*models.Feedback, error)
	ListByReport(ctx context.Context, reportID int64) ([]*models.Feedback, error)
}

// feedbackServiceImpl implements the FeedbackService interface
type feedbackServiceImpl struct {
	feedback FeedbackStore
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedback FeedbackStore) FeedbackService {
	return &feedbackServiceImpl{feedback: feedback}
}

// Create validates and stores a principal lecturer's feedback on a report.
// The storage layer enforces that the report exists and the author holds the
// principal lecturer role.
func (s *feedbackServiceImpl) Create(ctx context.Context, req *dto.CreateFeedbackRequest) (*models.Feedback, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("request body is required")
	}
	if req.ReportID <= 0 {
		return nil, apperrors.NewValidationError("report_id is required")
	}
	if req.PrincipalLecturerID <= 0 {
		return nil, apperrors.NewValidationError("principal_lecturer_id is required")
	}
	if strings.TrimSpace(req.FeedbackText) == "" {
		return nil, apperrors.NewValidationError("feedback_text is required")
	}

	feedback := &models.Feedback{
		ReportID:            req.ReportID,
		PrincipalLecturerID: req.PrincipalLecturerID,
		FeedbackText:        strings.TrimSpace(req.FeedbackText),
	}

	created, err := s.feedback.CreateForReport(ctx, feedback)
	if err != nil {
		if errors.Is(err, apperrors.ErrReportNotFound) || errors.Is(err, apperrors.ErrPermissionDenied) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating feedback: %w", err)
	}
	return created, nil
}

// ListByReport retrieves all feedback for a report, newest first.
func (s *feedbackServiceImpl) ListByReport(ctx context.Context, reportID int64) ([]*models.Feedback, error) {
	if reportID <= 0 {
		return nil, apperrors.NewValidationError("report id must be a positive number")
	}

	feedbackList, err := s.feedback.ListByReport(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}
	return feedbackList, nil
}
