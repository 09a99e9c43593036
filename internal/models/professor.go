package models

// Professor owns exactly one User with the professor role.
type Professor struct {
	ProfID   int    `json:"prof_id"`
	UserID   int    `json:"user_id"`
	FullName string `json:"full_name"`
}

// CourseAssignment links a professor to a course. Multiple assignments per
// professor are allowed and the course code is not checked against the
// catalog.
type CourseAssignment struct {
	AssignmentID int    `json:"assignment_id"`
	ProfID       int    `json:"prof_id"`
	CourseCode   string `json:"course_code"`
}

// AssignmentDetail annotates an assignment with the catalog course, when the
// referenced code exists.
type AssignmentDetail struct {
	CourseAssignment
	CourseName *string `json:"course_name,omitempty"`
}
