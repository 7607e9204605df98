// Package schema creates the database tables the API depends on. Statements
// are idempotent so startup is safe against an already-initialized database.
package schema

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tsepo/luctreport/internal/db"
	"github.com/tsepo/luctreport/internal/pkg/logger"
)

// statements run in dependency order: referenced tables first.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		stream TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id BIGSERIAL PRIMARY KEY,
		course_name TEXT NOT NULL,
		course_code TEXT NOT NULL UNIQUE,
		stream TEXT NOT NULL,
		assigned_lecturer_id BIGINT REFERENCES users(id),
		created_by BIGINT REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS classes (
		id BIGSERIAL PRIMARY KEY,
		class_name TEXT NOT NULL,
		stream TEXT NOT NULL,
		total_students INTEGER NOT NULL DEFAULT 0 CHECK (total_students >= 0),
		created_by BIGINT REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS reports (
		id BIGSERIAL PRIMARY KEY,
		faculty_name TEXT NOT NULL,
		class_name TEXT NOT NULL,
		week_of_reporting TEXT NOT NULL,
		date_of_lecture DATE NOT NULL,
		course_name TEXT NOT NULL,
		course_code TEXT NOT NULL,
		lecturer_name TEXT NOT NULL,
		actual_students_present INTEGER NOT NULL CHECK (actual_students_present >= 0),
		total_registered_students INTEGER NOT NULL CHECK (total_registered_students >= 0),
		venue TEXT NOT NULL,
		scheduled_time TIME NOT NULL,
		topic_taught TEXT NOT NULL,
		learning_outcomes TEXT NOT NULL,
		lecturer_recommendations TEXT NOT NULL DEFAULT '',
		created_by BIGINT REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id BIGSERIAL PRIMARY KEY,
		report_id BIGINT NOT NULL REFERENCES reports(id),
		principal_lecturer_id BIGINT NOT NULL REFERENCES users(id),
		feedback_text TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS ratings (
		id BIGSERIAL PRIMARY KEY,
		course_id BIGINT NOT NULL REFERENCES courses(id),
		lecturer_id BIGINT NOT NULL REFERENCES users(id),
		student_id BIGINT NOT NULL REFERENCES users(id),
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Initialize creates all tables inside a single transaction.
func Initialize(ctx context.Context, database *db.PostgresDB) error {
	err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("error creating table: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Msg("Database schema initialized")
	return nil
}
