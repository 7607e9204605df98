// Package seed loads the demo dataset on startup: one account per role,
// a small course catalog and a week of lecture reports with feedback.
// Seeding is idempotent so restarts never duplicate rows.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tsepo/luctreport/internal/app/models"
	"github.com/tsepo/luctreport/internal/db"
	"github.com/tsepo/luctreport/internal/pkg/auth"
	"github.com/tsepo/luctreport/internal/pkg/logger"
)

// demoPassword is the shared password for every seeded account.
const demoPassword = "password"

type seedUser struct {
	email  string
	name   string
	role   models.Role
	stream string
}

var seedUsers = []seedUser{
	{"student@luct.ac.ls", "John Student", models.RoleStudent, "BIT"},
	{"lecturer@luct.ac.ls", "Dr. Smith Lecturer", models.RoleLecturer, "BIT"},
	{"prl@luct.ac.ls", "Prof. PRL User", models.RolePrincipalLecturer, "BIT"},
	{"pl@luct.ac.ls", "Dr. PL User", models.RoleProgramLeader, "BIT"},
}

type seedReport struct {
	facultyName             string
	className               string
	weekOfReporting         string
	dateOfLecture           string
	courseName              string
	courseCode              string
	lecturerName            string
	actualStudentsPresent   int
	totalRegisteredStudents int
	venue                   string
	scheduledTime           string
	topicTaught             string
	learningOutcomes        string
	lecturerRecommendations string
	feedbackText            string
}

var seedReports = []seedReport{
	{
		facultyName:             "Faculty of Information Communication Technology",
		className:               "BIT-1A",
		weekOfReporting:         "Week 6",
		dateOfLecture:           "2024-10-15",
		courseName:              "Web Application Development",
		courseCode:              "DIWA2110",
		lecturerName:            "Dr. Smith Lecturer",
		actualStudentsPresent:   35,
		totalRegisteredStudents: 45,
		venue:                   "Room 101",
		scheduledTime:           "10:00:00",
		topicTaught:             "React Components and State Management",
		learningOutcomes:        "Students learned how to create functional components and manage state using hooks",
		lecturerRecommendations: "More practical examples needed for state management concepts",
		feedbackText:            "Good report overall. The learning outcomes are clearly defined. Consider adding more interactive activities for better student engagement.",
	},
	{
		facultyName:             "Faculty of Information Communication Technology",
		className:               "BIT-1B",
		weekOfReporting:         "Week 6",
		dateOfLecture:           "2024-10-16",
		courseName:              "Database Systems",
		courseCode:              "DBSY2110",
		lecturerName:            "Dr. Smith Lecturer",
		actualStudentsPresent:   38,
		totalRegisteredStudents: 42,
		venue:                   "Lab 3",
		scheduledTime:           "14:00:00",
		topicTaught:             "SQL Queries and Database Normalization",
		learningOutcomes:        "Students understood basic SQL queries and normalization concepts",
		lecturerRecommendations: "Students should practice more complex JOIN queries",
		feedbackText:            "Excellent coverage of SQL concepts. The practical examples were well received by students. Continue with this approach.",
	},
	{
		facultyName:             "Faculty of Information Communication Technology",
		className:               "BIT-2A",
		weekOfReporting:         "Week 6",
		dateOfLecture:           "2024-10-17",
		courseName:              "Network Fundamentals",
		courseCode:              "NTFU2110",
		lecturerName:            "Dr. Smith Lecturer",
		actualStudentsPresent:   32,
		totalRegisteredStudents: 38,
		venue:                   "Room 201",
		scheduledTime:           "09:00:00",
		topicTaught:             "TCP/IP Protocol Suite",
		learningOutcomes:        "Students learned about TCP/IP layers and their functions",
		lecturerRecommendations: "Need more hands-on networking exercises",
		feedbackText:            "Good introduction to TCP/IP. Consider adding more real-world examples to make the concepts more relatable.",
	},
}

// Run loads the demo dataset inside a single transaction.
func Run(ctx context.Context, database *db.PostgresDB) error {
	err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		userIDs, err := seedUserAccounts(ctx, tx)
		if err != nil {
			return err
		}
		if err := seedCourses(ctx, tx, userIDs); err != nil {
			return err
		}
		if err := seedClasses(ctx, tx, userIDs); err != nil {
			return err
		}
		return seedReportsAndFeedback(ctx, tx, userIDs)
	})
	if err != nil {
		return err
	}

	logger.Info().Msg("Demo data seeded")
	return nil
}

// seedUserAccounts inserts the demo accounts and returns their ids keyed by
// email, whether freshly inserted or already present.
func seedUserAccounts(ctx context.Context, tx pgx.Tx) (map[string]int64, error) {
	ids := make(map[string]int64, len(seedUsers))
	for _, u := range seedUsers {
		hashed, err := auth.HashPassword(demoPassword)
		if err != nil {
			return nil, fmt.Errorf("error hashing seed password: %w", err)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO users (email, password, name, role, stream)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (email) DO NOTHING`,
			u.email, hashed, u.name, u.role, u.stream)
		if err != nil {
			return nil, fmt.Errorf("error seeding user %s: %w", u.email, err)
		}

		var id int64
		if err := tx.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, u.email).Scan(&id); err != nil {
			return nil, fmt.Errorf("error resolving seed user %s: %w", u.email, err)
		}
		ids[u.email] = id
	}
	return ids, nil
}

func seedCourses(ctx context.Context, tx pgx.Tx, userIDs map[string]int64) error {
	lecturerID := userIDs["lecturer@luct.ac.ls"]
	leaderID := userIDs["pl@luct.ac.ls"]

	courses := []struct {
		name   string
		code   string
		stream string
	}{
		{"Web Application Development", "DIWA2110", "BIT"},
		{"Database Systems", "DBSY2110", "BIT"},
		{"Network Fundamentals", "NTFU2110", "BIT"},
	}
	for _, c := range courses {
		_, err := tx.Exec(ctx,
			`INSERT INTO courses (course_name, course_code, stream, assigned_lecturer_id, created_by)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (course_code) DO NOTHING`,
			c.name, c.code, c.stream, lecturerID, leaderID)
		if err != nil {
			return fmt.Errorf("error seeding course %s: %w", c.code, err)
		}
	}
	return nil
}

func seedClasses(ctx context.Context, tx pgx.Tx, userIDs map[string]int64) error {
	leaderID := userIDs["pl@luct.ac.ls"]

	classes := []struct {
		name     string
		stream   string
		students int
	}{
		{"BIT-1A", "BIT", 45},
		{"BIT-1B", "BIT", 42},
		{"BIT-2A", "BIT", 38},
	}
	for _, c := range classes {
		// Classes carry no unique constraint, so probe before inserting.
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM classes WHERE class_name = $1)`, c.name).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking seed class %s: %w", c.name, err)
		}
		if exists {
			continue
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO classes (class_name, stream, total_students, created_by)
			 VALUES ($1, $2, $3, $4)`,
			c.name, c.stream, c.students, leaderID)
		if err != nil {
			return fmt.Errorf("error seeding class %s: %w", c.name, err)
		}
	}
	return nil
}

// seedReportsAndFeedback loads the sample reports and their feedback, but
// only into an empty reports table. Reports have no natural key to upsert on.
func seedReportsAndFeedback(ctx context.Context, tx pgx.Tx, userIDs map[string]int64) error {
	var reportCount int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM reports`).Scan(&reportCount); err != nil {
		return fmt.Errorf("error counting reports: %w", err)
	}
	if reportCount > 0 {
		return nil
	}

	lecturerID := userIDs["lecturer@luct.ac.ls"]
	principalID := userIDs["prl@luct.ac.ls"]

	for _, r := range seedReports {
		var reportID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO reports (
				faculty_name, class_name, week_of_reporting, date_of_lecture,
				course_name, course_code, lecturer_name, actual_students_present,
				total_registered_students, venue, scheduled_time, topic_taught,
				learning_outcomes, lecturer_recommendations, created_by
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			RETURNING id`,
			r.facultyName, r.className, r.weekOfReporting, r.dateOfLecture,
			r.courseName, r.courseCode, r.lecturerName, r.actualStudentsPresent,
			r.totalRegisteredStudents, r.venue, r.scheduledTime, r.topicTaught,
			r.learningOutcomes, r.lecturerRecommendations, lecturerID).Scan(&reportID)
		if err != nil {
			return fmt.Errorf("error seeding report for %s: %w", r.className, err)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO feedback (report_id, principal_lecturer_id, feedback_text)
			 VALUES ($1, $2, $3)`,
			reportID, principalID, r.feedbackText)
		if err != nil {
			return fmt.Errorf("error seeding feedback for %s: %w", r.className, err)
		}
	}
	return nil
}
