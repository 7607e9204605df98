package models

import (
	"time"
)

// User defines the user model based on the 'users' table.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Name      string    `json:"name" db:"name"`
	Role      Role      `json:"role" db:"role"`
	Stream    string    `json:"stream" db:"stream"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Course defines the course model based on the 'courses' table.
// LecturerName is resolved through a LEFT JOIN on the assigned lecturer.
type Course struct {
	ID                 int64     `json:"id" db:"id"`
	CourseName         string    `json:"course_name" db:"course_name"`
	CourseCode         string    `json:"course_code" db:"course_code"`
	Stream             string    `json:"stream" db:"stream"`
	AssignedLecturerID *int64    `json:"assigned_lecturer_id" db:"assigned_lecturer_id"`
	CreatedBy          *int64    `json:"created_by" db:"created_by"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	LecturerName       *string   `json:"lecturer_name"`
}

// Class defines the class model based on the 'classes' table.
type Class struct {
	ID            int64     `json:"id" db:"id"`
	ClassName     string    `json:"class_name" db:"class_name"`
	Stream        string    `json:"stream" db:"stream"`
	TotalStudents int       `json:"total_students" db:"total_students"`
	CreatedBy     *int64    `json:"created_by" db:"created_by"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Report defines the lecture report model based on the 'reports' table.
// DateOfLecture and ScheduledTime are carried as canonical strings
// ("2006-01-02" and "15:04:05") so submitted values read back unchanged.
// CreatorName is resolved through a LEFT JOIN on the creating user.
type Report struct {
	ID                      int64     `json:"id" db:"id"`
	FacultyName             string    `json:"faculty_name" db:"faculty_name"`
	ClassName               string    `json:"class_name" db:"class_name"`
	WeekOfReporting         string    `json:"week_of_reporting" db:"week_of_reporting"`
	DateOfLecture           string    `json:"date_of_lecture" db:"date_of_lecture"`
	CourseName              string    `json:"course_name" db:"course_name"`
	CourseCode              string    `json:"course_code" db:"course_code"`
	LecturerName            string    `json:"lecturer_name" db:"lecturer_name"`
	ActualStudentsPresent   int       `json:"actual_students_present" db:"actual_students_present"`
	TotalRegisteredStudents int       `json:"total_registered_students" db:"total_registered_students"`
	Venue                   string    `json:"venue" db:"venue"`
	ScheduledTime           string    `json:"scheduled_time" db:"scheduled_time"`
	TopicTaught             string    `json:"topic_taught" db:"topic_taught"`
	LearningOutcomes        string    `json:"learning_outcomes" db:"learning_outcomes"`
	LecturerRecommendations string    `json:"lecturer_recommendations" db:"lecturer_recommendations"`
	CreatedBy               *int64    `json:"created_by" db:"created_by"`
	CreatedAt               time.Time `json:"created_at" db:"created_at"`
	CreatorName             *string   `json:"creator_name"`
}

// Feedback defines the feedback model based on the 'feedback' table.
// PrincipalLecturerName and Role describe the author and are resolved
// through a LEFT JOIN when feedback is listed.
type Feedback struct {
	ID                    int64     `json:"id" db:"id"`
	ReportID              int64     `json:"report_id" db:"report_id"`
	PrincipalLecturerID   int64     `json:"principal_lecturer_id" db:"principal_lecturer_id"`
	FeedbackText          string    `json:"feedback_text" db:"feedback_text"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
	PrincipalLecturerName *string   `json:"principal_lecturer_name,omitempty"`
	Role                  Role      `json:"role,omitempty"`
}

// Rating defines the rating model based on the 'ratings' table.
// The display names are resolved through LEFT JOINs when ratings are listed.
type Rating struct {
	ID           int64     `json:"id" db:"id"`
	CourseID     int64     `json:"course_id" db:"course_id"`
	LecturerID   int64     `json:"lecturer_id" db:"lecturer_id"`
	StudentID    int64     `json:"student_id" db:"student_id"`
	Rating       int       `json:"rating" db:"rating"`
	Comment      string    `json:"comment" db:"comment"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	CourseName   *string   `json:"course_name,omitempty"`
	LecturerName *string   `json:"lecturer_name,omitempty"`
	StudentName  *string   `json:"student_name,omitempty"`
}

// PublicUser is the user shape returned by listing endpoints (no password hash).
type PublicUser struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Role      Role      `json:"role" db:"role"`
	Stream    string    `json:"stream" db:"stream"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Lecturer is the reduced user shape used for lecturer assignment pickers.
type Lecturer struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}
