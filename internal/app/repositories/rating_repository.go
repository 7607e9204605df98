package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tsepo/luctreport/internal/app/models"
	"github.com/tsepo/luctreport/internal/pkg/logger"
)

// RatingRepository handles rating database operations
type RatingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRatingRepository creates a new RatingRepository
func NewRatingRepository(db *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new rating and returns the generated identifier.
func (r *RatingRepository) Create(ctx context.Context, rating *models.Rating) (int64, error) {
	sql, args, err := r.sb.Insert("ratings").
		Columns("course_id", "lecturer_id", "student_id", "rating", "comment").
		Values(rating.CourseID, rating.LecturerID, rating.StudentID, rating.Rating, rating.Comment).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create rating query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create rating query")
		return 0, fmt.Errorf("error creating rating: %w", err)
	}

	return id, nil
}

// List retrieves all ratings with course, lecturer and student names resolved.
func (r *RatingRepository) List(ctx context.Context) ([]*models.Rating, error) {
	sql, args, err := r.sb.Select(
		"r.id", "r.course_id", "r.lecturer_id", "r.student_id", "r.rating", "r.comment", "r.created_at",
		"c.course_name", "u.name AS lecturer_name", "s.name AS student_name",
	).
		From("ratings r").
		LeftJoin("courses c ON r.course_id = c.id").
		LeftJoin("users u ON r.lecturer_id = u.id").
		LeftJoin("users s ON r.student_id = s.id").
		OrderBy("r.created_at DESC", "r.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list ratings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list ratings query")
		return nil, fmt.Errorf("error querying ratings: %w", err)
	}
	defer rows.Close()

	ratings := []*models.Rating{}
	for rows.Next() {
		rating := &models.Rating{}
		if err := rows.Scan(
			&rating.ID, &rating.CourseID, &rating.LecturerID, &rating.StudentID,
			&rating.Rating, &rating.Comment, &rating.CreatedAt,
			&rating.CourseName, &rating.LecturerName, &rating.StudentName,
		); err != nil {
			return nil, fmt.Errorf("error scanning rating row: %w", err)
		}
		ratings = append(ratings, rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rating rows: %w", err)
	}

	return ratings, nil
}
