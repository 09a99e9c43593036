package models

// LectureCount is the number of lectures tracked per enrollment.
const LectureCount = 9

// Attendance encodes presence existentially: a row's existence means the
// student attended that lecture; absence of any matching row means absent.
// Rows are only ever inserted or removed, never updated.
type Attendance struct {
	AttID        int `json:"att_id"`
	EnrollmentID int `json:"enrollment_id"`
	LectureNum   int `json:"lecture_num"`
}

// RosterEntry is one row of a professor's class roster: the enrollment, the
// owning student and the per-lecture presence vector.
type RosterEntry struct {
	Enrollment
	Student  *Student           `json:"student,omitempty"`
	Lectures [LectureCount]bool `json:"lectures"`
}
