package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tsepo/luctreport/internal/app/models"
	"github.com/tsepo/luctreport/internal/app/models/dto"
	"github.com/tsepo/luctreport/internal/app/policy"
	"github.com/tsepo/luctreport/internal/pkg/apperrors"
)

// Canonical wire formats for report date and time fields.
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// ReportStore is the report persistence surface the report service depends on.
type ReportStore interface {
	Create(ctx context.Context, report *models.Report) (int64, error)
	List(ctx context.Context, query policy.ReportQuery) ([]*models.Report, error)
	GetByID(ctx context.Context, id int64) (*models.Report, error)
}

// FeedbackReader lists feedback attached to a report, newest first.
type FeedbackReader interface {
	ListByReport(ctx context.Context, reportID int64) ([]*models.Feedback, error)
}

// ReportService defines lecture report operations.
type ReportService interface {
	Create(ctx context.Context, req *dto.CreateReportRequest) (int64, error)
	List(ctx context.Context, query policy.ReportQuery) ([]*models.Report, error)
	GetDetail(ctx context.Context, id int64) (*dto.ReportDetail, error)
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	reports  ReportStore
	feedback FeedbackReader
}

// NewReportService creates a new report service instance
func NewReportService(reports ReportStore, feedback FeedbackReader) ReportService {
	return &reportServiceImpl{
		reports:  reports,
		feedback: feedback,
	}
}

// Create validates the full report form and inserts the report. Attendance is
// checked so present never exceeds registered.
func (s *reportServiceImpl) Create(ctx context.Context, req *dto.CreateReportRequest) (int64, error) {
	if err := validateReport(req); err != nil {
		return 0, err
	}

	report := &models.Report{
		FacultyName:             strings.TrimSpace(req.FacultyName),
		ClassName:               strings.TrimSpace(req.ClassName),
		WeekOfReporting:         strings.TrimSpace(req.WeekOfReporting),
		DateOfLecture:           strings.TrimSpace(req.DateOfLecture),
		CourseName:              strings.TrimSpace(req.CourseName),
		CourseCode:              strings.TrimSpace(req.CourseCode),
		LecturerName:            strings.TrimSpace(req.LecturerName),
		ActualStudentsPresent:   req.ActualStudentsPresent,
		TotalRegisteredStudents: req.TotalRegisteredStudents,
		Venue:                   strings.TrimSpace(req.Venue),
		ScheduledTime:           strings.TrimSpace(req.ScheduledTime),
		TopicTaught:             strings.TrimSpace(req.TopicTaught),
		LearningOutcomes:        strings.TrimSpace(req.LearningOutcomes),
		LecturerRecommendations: strings.TrimSpace(req.LecturerRecommendations),
		CreatedBy:               req.CreatedBy,
	}

	id, err := s.reports.Create(ctx, report)
	if err != nil {
		return 0, fmt.Errorf("error creating report: %w", err)
	}
	return id, nil
}

// List retrieves reports visible to the caller per the role filter policy.
func (s *reportServiceImpl) List(ctx context.Context, query policy.ReportQuery) ([]*models.Report, error) {
	reports, err := s.reports.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving reports: %w", err)
	}
	return reports, nil
}

// GetDetail retrieves a report together with its feedback, newest first.
func (s *reportServiceImpl) GetDetail(ctx context.Context, id int64) (*dto.ReportDetail, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("report id must be a positive number")
	}

	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrReportNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("error retrieving report: %w", err)
	}

	feedbackList, err := s.feedback.ListByReport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving report feedback: %w", err)
	}

	return &dto.ReportDetail{
		Report:   *report,
		Feedback: feedbackList,
	}, nil
}

// validateReport checks every required report field and the attendance
// invariant.
func validateReport(req *dto.CreateReportRequest) error {
	if req == nil {
		return apperrors.NewValidationError("request body is required")
	}

	required := []struct {
		name  string
		value string
	}{
		{"faculty_name", req.FacultyName},
		{"class_name", req.ClassName},
		{"week_of_reporting", req.WeekOfReporting},
		{"date_of_lecture", req.DateOfLecture},
		{"course_name", req.CourseName},
		{"course_code", req.CourseCode},
		{"lecturer_name", req.LecturerName},
		{"venue", req.Venue},
		{"scheduled_time", req.ScheduledTime},
		{"topic_taught", req.TopicTaught},
		{"learning_outcomes", req.LearningOutcomes},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.NewValidationError(f.name + " is required")
		}
	}

	if _, err := time.Parse(dateLayout, strings.TrimSpace(req.DateOfLecture)); err != nil {
		return apperrors.NewValidationError("date_of_lecture must be formatted as YYYY-MM-DD")
	}
	if _, err := time.Parse(timeLayout, strings.TrimSpace(req.ScheduledTime)); err != nil {
		return apperrors.NewValidationError("scheduled_time must be formatted as HH:MM:SS")
	}

	if req.ActualStudentsPresent < 0 {
		return apperrors.NewValidationError("actual_students_present cannot be negative")
	}
	if req.TotalRegisteredStudents < 0 {
		return apperrors.NewValidationError("total_registered_students cannot be negative")
	}
	if req.ActualStudentsPresent > req.TotalRegisteredStudents {
		return apperrors.NewValidationError("actual_students_present cannot exceed total_registered_students")
	}

	return nil
}
