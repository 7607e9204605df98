package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tsepo/luctreport/internal/app/models"
	"github.com/tsepo/luctreport/internal/pkg/apperrors"
	"github.com/tsepo/luctreport/internal/pkg/logger"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new course and returns the generated identifier.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("course_name", "course_code", "stream", "assigned_lecturer_id", "created_by").
		Values(course.CourseName, course.CourseCode, course.Stream, course.AssignedLecturerID, course.CreatedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrCourseCodeAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// List retrieves courses with the assigned lecturer's name resolved.
// A non-empty stream narrows the result to that stream.
func (r *CourseRepository) List(ctx context.Context, stream string) ([]*models.Course, error) {
	q := r.sb.Select(
		"c.id", "c.course_name", "c.course_code", "c.stream",
		"c.assigned_lecturer_id", "c.created_by", "c.created_at",
		"u.name AS lecturer_name",
	).
		From("courses c").
		LeftJoin("users u ON c.assigned_lecturer_id = u.id")

	if stream != "" {
		q = q.Where(squirrel.Eq{"c.stream": stream})
	}

	sql, args, err := q.OrderBy("c.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(
			&course.ID, &course.CourseName, &course.CourseCode, &course.Stream,
			&course.AssignedLecturerID, &course.CreatedBy, &course.CreatedAt,
			&course.LecturerName,
		); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}
