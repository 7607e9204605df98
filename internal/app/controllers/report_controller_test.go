package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tsepo/luctreport/internal/app/models"
	"github.com/tsepo/luctreport/internal/app/models/dto"
	"github.com/tsepo/luctreport/internal/app/policy"
	"github.com/tsepo/luctreport/internal/pkg/apperrors"
)

// mockReportService is a hand-rolled ReportService for controller tests.
type mockReportService struct {
	createFn func(ctx context.Context, req *dto.CreateReportRequest) (int64, error)
	listFn   func(ctx context.Context, query policy.ReportQuery) ([]*models.Report, error)
	detailFn func(ctx context.Context, id int64) (*dto.ReportDetail, error)
}

func (m *mockReportService) Create(ctx context.Context, req *dto.CreateReportRequest) (int64, error) {
	return m.createFn(ctx, req)
}

func (m *mockReportService) List(ctx context.Context, query policy.ReportQuery) ([]*models.Report, error) {
	return m.listFn(ctx, query)
}

func (m *mockReportService) GetDetail(ctx context.Context, id int64) (*dto.ReportDetail, error) {
	return m.detailFn(ctx, id)
}

func newReportRouter(svc *mockReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewReportController(svc)
	router.POST("/api/reports", ctrl.Create)
	router.GET("/api/reports", ctrl.List)
	router.GET("/api/reports/:id", ctrl.GetDetail)
	return router
}

func TestCreateReportEndpoint(t *testing.T) {
	svc := &mockReportService{
		createFn: func(ctx context.Context, req *dto.CreateReportRequest) (int64, error) {
			return 11, nil
		},
	}
	router := newReportRouter(svc)

	w := performJSON(t, router, http.MethodPost, "/api/reports", dto.CreateReportRequest{
		FacultyName:             "FICT",
		ClassName:               "BIT-1A",
		WeekOfReporting:         "Week 6",
		DateOfLecture:           "2024-10-15",
		CourseName:              "Web Application Development",
		CourseCode:              "DIWA2110",
		LecturerName:            "Dr. Smith Lecturer",
		ActualStudentsPresent:   35,
		TotalRegisteredStudents: 45,
		Venue:                   "Room 101",
		ScheduledTime:           "10:00:00",
		TopicTaught:             "React",
		LearningOutcomes:        "Hooks",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}

	var resp dto.CreateReportResponse
	decodeBody(t, w, &resp)
	if resp.ReportID != 11 {
		t.Errorf("reportId = %d, want 11", resp.ReportID)
	}
}

func TestCreateReportEndpointValidationFailure(t *testing.T) {
	svc := &mockReportService{
		createFn: func(ctx context.Context, req *dto.CreateReportRequest) (int64, error) {
			return 0, apperrors.NewValidationError("faculty_name is required")
		},
	}
	router := newReportRouter(svc)

	w := performJSON(t, router, http.MethodPost, "/api/reports", dto.CreateReportRequest{})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp dto.ErrorResponse
	decodeBody(t, w, &resp)
	if resp.Error == "" {
		t.Error("expected an error message")
	}
}

func TestListReportsEndpointQueryParsing(t *testing.T) {
	var captured policy.ReportQuery
	svc := &mockReportService{
		listFn: func(ctx context.Context, query policy.ReportQuery) ([]*models.Report, error) {
			captured = query
			return []*models.Report{}, nil
		},
	}
	router := newReportRouter(svc)

	w := performJSON(t, router, http.MethodGet,
		"/api/reports?search=web&userRole=lecturer&userId=2&stream=BIT", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	want := policy.ReportQuery{
		Search: "web",
		Role:   models.RoleLecturer,
		UserID: 2,
		Stream: "BIT",
	}
	if captured != want {
		t.Errorf("query = %+v, want %+v", captured, want)
	}
}

func TestListReportsEndpointBadUserID(t *testing.T) {
	svc := &mockReportService{
		listFn: func(ctx context.Context, query policy.ReportQuery) ([]*models.Report, error) {
			t.Fatal("service must not be called for an invalid userId")
			return nil, nil
		},
	}
	router := newReportRouter(svc)

	w := performJSON(t, router, http.MethodGet, "/api/reports?userId=abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetReportDetailEndpoint(t *testing.T) {
	svc := &mockReportService{
		detailFn: func(ctx context.Context, id int64) (*dto.ReportDetail, error) {
			return &dto.ReportDetail{
				Report:   models.Report{ID: id, CourseCode: "DIWA2110"},
				Feedback: []*models.Feedback{{ID: 1, ReportID: id}},
			}, nil
		},
	}
	router := newReportRouter(svc)

	w := performJSON(t, router, http.MethodGet, "/api/reports/4", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}

	var resp dto.ReportDetail
	decodeBody(t, w, &resp)
	if resp.ID != 4 {
		t.Errorf("id = %d, want 4", resp.ID)
	}
	if len(resp.Feedback) != 1 {
		t.Errorf("got %d feedback entries, want 1", len(resp.Feedback))
	}
}

func TestGetReportDetailEndpointNotFound(t *testing.T) {
	svc := &mockReportService{
		detailFn: func(ctx context.Context, id int64) (*dto.ReportDetail, error) {
			return nil, apperrors.ErrReportNotFound
		},
	}
	router := newReportRouter(svc)

	w := performJSON(t, router, http.MethodGet, "/api/reports/99", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetReportDetailEndpointBadID(t *testing.T) {
	svc := &mockReportService{
		detailFn: func(ctx context.Context, id int64) (*dto.ReportDetail, error) {
			t.Fatal("service must not be called for a non-numeric id")
			return nil, nil
		},
	}
	router := newReportRouter(svc)

	w := performJSON(t, router, http.MethodGet, "/api/reports/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
