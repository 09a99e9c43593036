package store

import (
	"time"

	"github.com/nctu-sis/portal-api/internal/models"
)

// Seed is the initial content of every collection. It stands in for a
// persistent backing store: the process starts from it and nothing survives a
// restart.
type Seed struct {
	Users       []models.User
	Students    []models.Student
	Fees        []models.Fee
	News        []models.News
	Courses     []models.Course
	Enrollments []models.Enrollment
	Professors  []models.Professor
	Assignments []models.CourseAssignment
	Attendance  []models.Attendance
}

// DefaultSeed returns the demo dataset the portal ships with: one account per
// role, one enrolled student and a five-course catalog.
func DefaultSeed() Seed {
	return Seed{
		Users: []models.User{
			{UserID: 1, Username: "Administrator", Password: "Abdallah11#", Role: models.RoleAdmin},
			{UserID: 2, Username: "test", Password: "12345678", Role: models.RoleFinance},
			{UserID: 3, Username: "student1", Password: "123", Role: models.RoleStudent},
			{UserID: 4, Username: "prof1", Password: "123", Role: models.RoleProfessor},
		},
		Students: []models.Student{
			{
				StudentID:    20250001,
				UserID:       3,
				SeatNum:      1,
				FullName:     "Jane Doe",
				AcademicYear: 1,
				Track:        "General",
				NationalID:   "12345678901234",
				DateOfBirth:  "2005-01-01",
			},
		},
		Fees: []models.Fee{
			{StudentID: 20250001, Amount: 15000, IsPaid: false},
		},
		News: []models.News{
			{NewsID: 1, Title: "System Launch", Content: "Welcome to the new Student Information System.", PostDate: time.Now().UTC()},
		},
		Courses: []models.Course{
			{CourseCode: "IT101", CourseName: "Intro. to Cyber Security", YearLevel: 1, Semester: 1, Track: "All", MaxGrade: 150},
			{CourseCode: "IT102", CourseName: "IT Essentials", YearLevel: 1, Semester: 1, Track: "All", MaxGrade: 150},
			{CourseCode: "IT103", CourseName: "Technical English 1", YearLevel: 1, Semester: 1, Track: "All", MaxGrade: 150},
			{CourseCode: "IT106", CourseName: "Programming Essentials in python", YearLevel: 1, Semester: 1, Track: "All", MaxGrade: 150},
			{CourseCode: "IT301", CourseName: "Advanced Programming in C", YearLevel: 3, Semester: 1, Track: "S/W", MaxGrade: 150},
		},
		Enrollments: []models.Enrollment{
			{
				EnrollmentID: 1,
				StudentID:    20250001,
				CourseCode:   "IT101",
				Ass1Grade:    models.GradeNotSet,
				Ass2Grade:    models.GradeNotSet,
			},
		},
		Professors: []models.Professor{
			{ProfID: 1, UserID: 4, FullName: "Dr. John Smith"},
		},
		Assignments: []models.CourseAssignment{
			{AssignmentID: 1, ProfID: 1, CourseCode: "IT101"},
		},
	}
}
