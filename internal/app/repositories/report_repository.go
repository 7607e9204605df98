package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tsepo/luctreport/internal/app/models"
	"github.com/tsepo/luctreport/internal/app/policy"
	"github.com/tsepo/luctreport/internal/pkg/apperrors"
	"github.com/tsepo/luctreport/internal/pkg/logger"
)

// reportColumns are the report projection columns shared by List and GetByID.
// Date and time columns are rendered as canonical strings so a fetched report
// matches its submitted payload field for field.
var reportColumns = []string{
	"r.id", "r.faculty_name", "r.class_name", "r.week_of_reporting",
	"to_char(r.date_of_lecture, 'YYYY-MM-DD')",
	"r.course_name", "r.course_code", "r.lecturer_name",
	"r.actual_students_present", "r.total_registered_students", "r.venue",
	"to_char(r.scheduled_time, 'HH24:MI:SS')",
	"r.topic_taught", "r.learning_outcomes", "r.lecturer_recommendations",
	"r.created_by", "r.created_at",
	"u.name AS creator_name",
}

// ReportRepository handles lecture report database operations
type ReportRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new lecture report and returns the generated identifier.
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) (int64, error) {
	sql, args, err := r.sb.Insert("reports").
		Columns(
			"faculty_name", "class_name", "week_of_reporting", "date_of_lecture",
			"course_name", "course_code", "lecturer_name", "actual_students_present",
			"total_registered_students", "venue", "scheduled_time", "topic_taught",
			"learning_outcomes", "lecturer_recommendations", "created_by",
		).
		Values(
			report.FacultyName, report.ClassName, report.WeekOfReporting, report.DateOfLecture,
			report.CourseName, report.CourseCode, report.LecturerName, report.ActualStudentsPresent,
			report.TotalRegisteredStudents, report.Venue, report.ScheduledTime, report.TopicTaught,
			report.LearningOutcomes, report.LecturerRecommendations, report.CreatedBy,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create report query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create report query")
		return 0, fmt.Errorf("error creating report: %w", err)
	}

	return id, nil
}

// List retrieves reports visible to the caller. The policy package decides
// which predicates apply; they are appended in their given order so parameter
// binding follows predicate order.
func (r *ReportRepository) List(ctx context.Context, query policy.ReportQuery) ([]*models.Report, error) {
	q := r.sb.Select(reportColumns...).
		From("reports r").
		LeftJoin("users u ON r.created_by = u.id")

	for _, pred := range policy.ReportPredicates(query) {
		q = q.Where(pred)
	}

	sql, args, err := q.OrderBy("r.created_at DESC", "r.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list reports query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list reports query")
		return nil, fmt.Errorf("error querying reports: %w", err)
	}
	defer rows.Close()

	reports := []*models.Report{}
	for rows.Next() {
		report := &models.Report{}
		if err := scanReport(rows, report); err != nil {
			return nil, fmt.Errorf("error scanning report row: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}

	return reports, nil
}

// GetByID retrieves a single report with the creator's name resolved.
func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*models.Report, error) {
	sql, args, err := r.sb.Select(reportColumns...).
		From("reports r").
		LeftJoin("users u ON r.created_by = u.id").
		Where(squirrel.Eq{"r.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get report query: %w", err)
	}

	report := &models.Report{}
	err = scanReport(r.db.QueryRow(ctx, sql, args...), report)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReportNotFound
		}
		logger.Error().Err(err).Int64("reportID", id).Msg("Error scanning report row")
		return nil, fmt.Errorf("error getting report by ID: %w", err)
	}

	return report, nil
}

// scanReport scans one report projection row.
func scanReport(row pgx.Row, report *models.Report) error {
	return row.Scan(
		&report.ID, &report.FacultyName, &report.ClassName, &report.WeekOfReporting,
		&report.DateOfLecture,
		&report.CourseName, &report.CourseCode, &report.LecturerName,
		&report.ActualStudentsPresent, &report.TotalRegisteredStudents, &report.Venue,
		&report.ScheduledTime,
		&report.TopicTaught, &report.LearningOutcomes, &report.LecturerRecommendations,
		&report.CreatedBy, &report.CreatedAt,
		&report.CreatorName,
	)
}
