package services

import (
	"context"
	"errors"
	"testing"

	"github.com/tsepo/luctreport/internal/app/models"
	"github.com/tsepo/luctreport/internal/app/models/dto"
	"github.com/tsepo/luctreport/internal/pkg/apperrors"
)

// mockCourseStore is a hand-rolled CourseStore for service tests.
type mockCourseStore struct {
	createFn func(ctx context.Context, course *models.Course) (int64, error)
	listFn   func(ctx context.Context, stream string) ([]*models.Course, error)

	created *models.Course
}

func (m *mockCourseStore) Create(ctx context.Context, course *models.Course) (int64, error) {
	m.created = course
	if m.createFn != nil {
		return m.createFn(ctx, course)
	}
	return 1, nil
}

func (m *mockCourseStore) List(ctx context.Context, stream string) ([]*models.Course, error) {
	if m.listFn != nil {
		return m.listFn(ctx, stream)
	}
	return nil, nil
}

func TestCreateCourse(t *testing.T) {
	store := &mockCourseStore{}
	svc := NewCourseService(store)

	lecturerID := int64(2)
	id, err := svc.Create(context.Background(), &dto.CreateCourseRequest{
		CourseName:         "  Web Application Development  ",
		CourseCode:         "DIWA2110",
		Stream:             "BIT",
		AssignedLecturerID: &lecturerID,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d, want 1", id)
	}
	if store.created.CourseName != "Web Application Development" {
		t.Errorf("CourseName = %q, want trimmed value", store.created.CourseName)
	}
}

func TestCreateCourseValidation(t *testing.T) {
	svc := NewCourseService(&mockCourseStore{})

	cases := []*dto.CreateCourseRequest{
		{CourseCode: "DIWA2110", Stream: "BIT"},
		{CourseName: "Web Application Development", Stream: "BIT"},
		{CourseName: "Web Application Development", CourseCode: "DIWA2110"},
	}
	for _, req := range cases {
		if _, err := svc.Create(context.Background(), req); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("request %+v: error = %v, want validation failure", req, err)
		}
	}
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	store := &mockCourseStore{
		createFn: func(ctx context.Context, course *models.Course) (int64, error) {
			return 0, apperrors.ErrCourseCodeAlreadyExists
		},
	}
	svc := NewCourseService(store)

	_, err := svc.Create(context.Background(), &dto.CreateCourseRequest{
		CourseName: "Database Systems",
		CourseCode: "DBSY2110",
		Stream:     "BIT",
	})
	if !errors.Is(err, apperrors.ErrCourseCodeAlreadyExists) {
		t.Errorf("error = %v, want ErrCourseCodeAlreadyExists", err)
	}
}

func TestListCoursesTrimsStream(t *testing.T) {
	var captured string
	store := &mockCourseStore{
		listFn: func(ctx context.Context, stream string) ([]*models.Course, error) {
			captured = stream
			return []*models.Course{{ID: 1}}, nil
		},
	}
	svc := NewCourseService(store)

	courses, err := svc.List(context.Background(), " BIT ")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(courses) != 1 {
		t.Errorf("got %d courses, want 1", len(courses))
	}
	if captured != "BIT" {
		t.Errorf("stream passed to store = %q, want %q", captured, "BIT")
	}
}
