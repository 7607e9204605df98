package dto

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Stream   string `json:"stream"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateCourseRequest carries the course creation fields.
type CreateCourseRequest struct {
	CourseName         string `json:"course_name"`
	CourseCode         string `json:"course_code"`
	Stream             string `json:"stream"`
	AssignedLecturerID *int64 `json:"assigned_lecturer_id"`
	CreatedBy          *int64 `json:"created_by"`
}

// CreateClassRequest carries the class creation fields.
type CreateClassRequest struct {
	ClassName     string `json:"class_name"`
	Stream        string `json:"stream"`
	TotalStudents int    `json:"total_students"`
	CreatedBy     *int64 `json:"created_by"`
}

// CreateReportRequest carries the full lecture report form.
type CreateReportRequest struct {
	FacultyName             string `json:"faculty_name"`
	ClassName               string `json:"class_name"`
	WeekOfReporting         string `json:"week_of_reporting"`
	DateOfLecture           string `json:"date_of_lecture"`
	CourseName              string `json:"course_name"`
	CourseCode              string `json:"course_code"`
	LecturerName            string `json:"lecturer_name"`
	ActualStudentsPresent   int    `json:"actual_students_present"`
	TotalRegisteredStudents int    `json:"total_registered_students"`
	Venue                   string `json:"venue"`
	ScheduledTime           string `json:"scheduled_time"`
	TopicTaught             string `json:"topic_taught"`
	LearningOutcomes        string `json:"learning_outcomes"`
	LecturerRecommendations string `json:"lecturer_recommendations"`
	CreatedBy               *int64 `json:"created_by"`
}

// CreateFeedbackRequest carries a principal lecturer's feedback submission.
type CreateFeedbackRequest struct {
	ReportID            int64  `json:"report_id"`
	PrincipalLecturerID int64  `json:"principal_lecturer_id"`
	FeedbackText        string `json:"feedback_text"`
}

// CreateRatingRequest carries a student's course/lecturer rating.
type CreateRatingRequest struct {
	CourseID   int64  `json:"course_id"`
	LecturerID int64  `json:"lecturer_id"`
	StudentID  int64  `json:"student_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}
