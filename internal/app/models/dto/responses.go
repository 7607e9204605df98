package dto

import "github.com/tsepo/luctreport/internal/app/models"

// ErrorResponse is the uniform failure body: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports process and database health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// RegisterResponse returns the identifier of the created user.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// SessionUser is the user shape returned on login.
type SessionUser struct {
	ID     int64       `json:"id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	Stream string      `json:"stream"`
}

// LoginResponse returns the authenticated user and an access token.
type LoginResponse struct {
	Message string      `json:"message"`
	User    SessionUser `json:"user"`
	Token   string      `json:"token"`
}

// CreateCourseResponse returns the identifier of the created course.
type CreateCourseResponse struct {
	Message  string `json:"message"`
	CourseID int64  `json:"courseId"`
}

// CreateClassResponse returns the identifier of the created class.
type CreateClassResponse struct {
	Message string `json:"message"`
	ClassID int64  `json:"classId"`
}

// CreateReportResponse returns the identifier of the created report.
type CreateReportResponse struct {
	Message  string `json:"message"`
	ReportID int64  `json:"reportId"`
}

// CreateFeedbackResponse returns the created feedback row joined with the
// author's display name.
type CreateFeedbackResponse struct {
	Message  string           `json:"message"`
	Feedback *models.Feedback `json:"feedback"`
}

// CreateRatingResponse returns the identifier of the created rating.
type CreateRatingResponse struct {
	Message  string `json:"message"`
	RatingID int64  `json:"ratingId"`
}

// ReportDetail is a report together with its feedback, newest first.
type ReportDetail struct {
	models.Report
	Feedback []*models.Feedback `json:"feedback"`
}
