package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/tsepo/luctreport/internal/app/models"
	"github.com/tsepo/luctreport/internal/db"
	"github.com/tsepo/luctreport/internal/pkg/apperrors"
	"github.com/tsepo/luctreport/internal/pkg/logger"
)

// FeedbackRepository handles feedback database operations. It keeps the whole
// PostgresDB handle because feedback creation runs as a single transaction.
type FeedbackRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(database *db.PostgresDB) *FeedbackRepository {
	return &FeedbackRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateForReport verifies the referenced report exists and the author holds
// the principal lecturer role, then inserts the feedback row. The checks and
// the insert run in one transaction so no partial effect can survive a crash.
// The returned feedback carries the author's display name and role.
func (r *FeedbackRepository) CreateForReport(ctx context.Context, feedback *models.Feedback) (*models.Feedback, error) {
	created := *feedback

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		// Report must exist
		existsSQL, existsArgs, err := r.sb.Select("1").
			From("reports").
			Where(squirrel.Eq{"id": feedback.ReportID}).
			Prefix("SELECT EXISTS (").Suffix(")").
			Limit(1).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build report existence query: %w", err)
		}

		var reportExists bool
		if err := tx.QueryRow(ctx, existsSQL, existsArgs...).Scan(&reportExists); err != nil {
			return fmt.Errorf("error checking report existence: %w", err)
		}
		if !reportExists {
			return apperrors.ErrReportNotFound
		}

		// Author must hold the principal lecturer role
		authorSQL, authorArgs, err := r.sb.Select("name", "role").
			From("users").
			Where(squirrel.Eq{"id": feedback.PrincipalLecturerID}).
			Limit(1).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build author lookup query: %w", err)
		}

		var authorName string
		var authorRole models.Role
		err = tx.QueryRow(ctx, authorSQL, authorArgs...).Scan(&authorName, &authorRole)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewForbiddenError("Only principal lecturers can add feedback")
			}
			return fmt.Errorf("error looking up feedback author: %w", err)
		}
		if authorRole != models.RolePrincipalLecturer {
			return apperrors.NewForbiddenError("Only principal lecturers can add feedback")
		}

		insertSQL, insertArgs, err := r.sb.Insert("feedback").
			Columns("report_id", "principal_lecturer_id", "feedback_text").
			Values(feedback.ReportID, feedback.PrincipalLecturerID, feedback.FeedbackText).
			Suffix("RETURNING id, created_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create feedback query: %w", err)
		}

		if err := tx.QueryRow(ctx, insertSQL, insertArgs...).Scan(&created.ID, &created.CreatedAt); err != nil {
			return fmt.Errorf("error creating feedback: %w", err)
		}

		created.PrincipalLecturerName = &authorName
		created.Role = authorRole
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrReportNotFound) && !errors.Is(err, apperrors.ErrPermissionDenied) {
			logger.Error().Err(err).Int64("reportID", feedback.ReportID).Msg("Feedback creation failed")
		}
		return nil, err
	}

	return &created, nil
}

// ListByReport retrieves all feedback for a report, newest first, with the
// author's name and role resolved.
func (r *FeedbackRepository) ListByReport(ctx context.Context, reportID int64) ([]*models.Feedback, error) {
	sql, args, err := r.sb.Select(
		"f.id", "f.report_id", "f.principal_lecturer_id", "f.feedback_text", "f.created_at",
		"u.name AS principal_lecturer_name", "u.role",
	).
		From("feedback f").
		LeftJoin("users u ON f.principal_lecturer_id = u.id").
		Where(squirrel.Eq{"f.report_id": reportID}).
		OrderBy("f.created_at DESC", "f.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list feedback query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("reportID", reportID).Msg("Error executing list feedback query")
		return nil, fmt.Errorf("error querying feedback: %w", err)
	}
	defer rows.Close()

	feedbackList := []*models.Feedback{}
	for rows.Next() {
		feedback := &models.Feedback{}
		var authorRole *models.Role
		if err := rows.Scan(
			&feedback.ID, &feedback.ReportID, &feedback.PrincipalLecturerID,
			&feedback.FeedbackText, &feedback.CreatedAt,
			&feedback.PrincipalLecturerName, &authorRole,
		); err != nil {
			return nil, fmt.Errorf("error scanning feedback row: %w", err)
		}
		if authorRole != nil {
			feedback.Role = *authorRole
		}
		feedbackList = append(feedbackList, feedback)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}

	return feedbackList, nil
}
