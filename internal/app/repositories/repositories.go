package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tsepo/luctreport/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository     *UserRepository
	CourseRepository   *CourseRepository
	ClassRepository    *ClassRepository
	ReportRepository   *ReportRepository
	FeedbackRepository *FeedbackRepository
	RatingRepository   *RatingRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(database.Pool),
		CourseRepository:   NewCourseRepository(database.Pool),
		ClassRepository:    NewClassRepository(database.Pool),
		ReportRepository:   NewReportRepository(database.Pool),
		FeedbackRepository: NewFeedbackRepository(database),
		RatingRepository:   NewRatingRepository(database.Pool),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}
