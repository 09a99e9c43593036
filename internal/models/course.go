package models

// Course is an entry in the static course catalog. The catalog is seeded at
// startup and never mutated at runtime.
type Course struct {
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
	YearLevel  int    `json:"year_level"`
	Semester   int    `json:"semester"`
	Track      string `json:"track"`
	MaxGrade   int    `json:"max_grade"`
}

// GradeNotSet marks an assignment grade that has not been entered yet.
const GradeNotSet = "N"

// Enrollment links a student to a course. Grade fields are opaque inputs for
// external grading; nothing in this system derives one from another.
type Enrollment struct {
	EnrollmentID int    `json:"enrollment_id"`
	StudentID    int    `json:"student_id"`
	CourseCode   string `json:"course_code"`
	Ass1Grade    string `json:"ass1_grade"`
	Ass2Grade    string `json:"ass2_grade"`
	YearWork     int    `json:"year_work"`
	FinalExam    int    `json:"final_exam"`
	TotalScore   int    `json:"total_score"`
}

// EnrollmentDetail annotates an enrollment with the catalog course name.
// CourseName is nil when the course code is not in the catalog; the row is
// still returned so a dangling reference renders as missing instead of
// failing the whole view.
type EnrollmentDetail struct {
	Enrollment
	CourseName *string `json:"course_name,omitempty"`
}
