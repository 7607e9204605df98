package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tsepo/luctreport/internal/app/models"
	"github.com/tsepo/luctreport/internal/app/models/dto"
	"github.com/tsepo/luctreport/internal/pkg/apperrors"
)

// mockFeedbackService is a hand-rolled FeedbackService for controller tests.
type mockFeedbackService struct {
	createFn func(ctx context.Context, req *dto.CreateFeedbackRequest) (*models.Feedback, error)
	listFn   func(ctx context.Context, reportID int64) ([]*models.Feedback, error)
}

func (m *mockFeedbackService) Create(ctx context.Context, req *dto.CreateFeedbackRequest) (*models.Feedback, error) {
	return m.createFn(ctx, req)
}

func (m *mockFeedbackService) ListByReport(ctx context.Context, reportID int64) ([]*models.Feedback, error) {
	return m.listFn(ctx, reportID)
}

func newFeedbackRouter(svc *mockFeedbackService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewFeedbackController(svc)
	router.POST("/api/feedback", ctrl.Create)
	router.GET("/api/feedback/report/:reportId", ctrl.ListByReport)
	return router
}

func TestCreateFeedbackEndpoint(t *testing.T) {
	name := "Prof. PRL User"
	svc := &mockFeedbackService{
		createFn: func(ctx context.Context, req *dto.CreateFeedbackRequest) (*models.Feedback, error) {
			return &models.Feedback{
				ID:                    9,
				ReportID:              req.ReportID,
				PrincipalLecturerID:   req.PrincipalLecturerID,
				FeedbackText:          req.FeedbackText,
				PrincipalLecturerName: &name,
			}, nil
		},
	}
	router := newFeedbackRouter(svc)

	w := performJSON(t, router, http.MethodPost, "/api/feedback", dto.CreateFeedbackRequest{
		ReportID:            1,
		PrincipalLecturerID: 3,
		FeedbackText:        "Good report overall.",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}

	var resp dto.CreateFeedbackResponse
	decodeBody(t, w, &resp)
	if resp.Feedback == nil || resp.Feedback.ID != 9 {
		t.Errorf("feedback = %+v", resp.Feedback)
	}
	if resp.Message != "Feedback added successfully" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestCreateFeedbackEndpointForbidden(t *testing.T) {
	svc := &mockFeedbackService{
		createFn: func(ctx context.Context, req *dto.CreateFeedbackRequest) (*models.Feedback, error) {
			return nil, apperrors.NewForbiddenError("Only principal lecturers can add feedback")
		},
	}
	router := newFeedbackRouter(svc)

	w := performJSON(t, router, http.MethodPost, "/api/feedback", dto.CreateFeedbackRequest{
		ReportID:            1,
		PrincipalLecturerID: 2,
		FeedbackText:        "text",
	})

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}

	var resp dto.ErrorResponse
	decodeBody(t, w, &resp)
	if resp.Error != "Only principal lecturers can add feedback" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestCreateFeedbackEndpointReportMissing(t *testing.T) {
	svc := &mockFeedbackService{
		createFn: func(ctx context.Context, req *dto.CreateFeedbackRequest) (*models.Feedback, error) {
			return nil, apperrors.ErrReportNotFound
		},
	}
	router := newFeedbackRouter(svc)

	w := performJSON(t, router, http.MethodPost, "/api/feedback", dto.CreateFeedbackRequest{
		ReportID:            99,
		PrincipalLecturerID: 3,
		FeedbackText:        "text",
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestListFeedbackEndpoint(t *testing.T) {
	svc := &mockFeedbackService{
		listFn: func(ctx context.Context, reportID int64) ([]*models.Feedback, error) {
			return []*models.Feedback{{ID: 2, ReportID: reportID}, {ID: 1, ReportID: reportID}}, nil
		},
	}
	router := newFeedbackRouter(svc)

	w := performJSON(t, router, http.MethodGet, "/api/feedback/report/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp []*models.Feedback
	decodeBody(t, w, &resp)
	if len(resp) != 2 {
		t.Fatalf("got %d entries, want 2", len(resp))
	}
	if resp[0].ID != 2 {
		t.Errorf("first entry id = %d, want newest first", resp[0].ID)
	}
}

func TestListFeedbackEndpointBadID(t *testing.T) {
	svc := &mockFeedbackService{
		listFn: func(ctx context.Context, reportID int64) ([]*models.Feedback, error) {
			t.Fatal("service must not be called for a non-numeric id")
			return nil, nil
		},
	}
	router := newFeedbackRouter(svc)

	w := performJSON(t, router, http.MethodGet, "/api/feedback/report/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
