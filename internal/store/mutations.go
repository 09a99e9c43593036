package store

import (
	"time"

	"github.com/nctu-sis/portal-api/internal/models"
)

// Mutation cascades. Each runs under one write-lock hold, so the multi-entity
// writes are atomic from any caller's point of view. None of them validate
// foreign keys or value ranges; that is the input layer's job, and dangling
// references are tolerated throughout.

// Registration carries the registrar's input for a new student. StudentID is
// trusted verbatim and not checked for collision.
type Registration struct {
	StudentID    int
	Username     string
	Password     string
	FullName     string
	AcademicYear int
	Track        string
	NationalID   string
	DateOfBirth  string
}

// RegisterStudent creates the user account, the student record, the fee and
// one enrollment per catalog course whose year level matches the student's
// academic year. It returns the allocated seat number.
func (s *Store) RegisterStudent(reg Registration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID := s.nextUserID
	s.nextUserID++
	seatNum := s.nextSeatNum
	s.nextSeatNum++

	s.users = append(s.users, models.User{
		UserID:   userID,
		Username: reg.Username,
		Password: reg.Password,
		Role:     models.RoleStudent,
	})

	s.students = append(s.students, models.Student{
		StudentID:    reg.StudentID,
		UserID:       userID,
		SeatNum:      seatNum,
		FullName:     reg.FullName,
		AcademicYear: reg.AcademicYear,
		Track:        reg.Track,
		NationalID:   reg.NationalID,
		DateOfBirth:  reg.DateOfBirth,
	})

	amount := 20000
	if reg.AcademicYear <= 2 {
		amount = 15000
	}
	s.fees = append(s.fees, models.Fee{StudentID: reg.StudentID, Amount: amount})

	for _, c := range s.courses {
		if c.YearLevel != reg.AcademicYear {
			continue
		}
		s.enrollments = append(s.enrollments, models.Enrollment{
			EnrollmentID: s.nextEnrollmentID,
			StudentID:    reg.StudentID,
			CourseCode:   c.CourseCode,
			Ass1Grade:    models.GradeNotSet,
			Ass2Grade:    models.GradeNotSet,
		})
		s.nextEnrollmentID++
	}

	return seatNum
}

// Onboarding carries the input for adding a professor. The assigned course
// code is not checked against the catalog.
type Onboarding struct {
	Username   string
	Password   string
	FullName   string
	CourseCode string
}

// AddProfessor creates the user account, the professor record and exactly one
// course assignment for the new professor.
func (s *Store) AddProfessor(on Onboarding) models.Professor {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID := s.nextUserID
	s.nextUserID++

	s.users = append(s.users, models.User{
		UserID:   userID,
		Username: on.Username,
		Password: on.Password,
		Role:     models.RoleProfessor,
	})

	prof := models.Professor{ProfID: s.nextProfID, UserID: userID, FullName: on.FullName}
	s.nextProfID++
	s.professors = append(s.professors, prof)

	s.assignments = append(s.assignments, models.CourseAssignment{
		AssignmentID: s.nextAssignmentID,
		ProfID:       prof.ProfID,
		CourseCode:   on.CourseCode,
	})
	s.nextAssignmentID++

	return prof
}

// PostNews publishes an announcement stamped with the current time.
func (s *Store) PostNews(title, content string) models.News {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := models.News{
		NewsID:   s.nextNewsID,
		Title:    title,
		Content:  content,
		PostDate: time.Now().UTC(),
	}
	s.nextNewsID++
	s.news = append(s.news, post)
	return post
}

// SetFeeStatus rewrites the paid flag on the matching fee. When no fee
// matches it silently does nothing and reports false.
func (s *Store) SetFeeStatus(studentID int, paid bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.fees {
		if s.fees[i].StudentID == studentID {
			s.fees[i].IsPaid = paid
			return true
		}
	}
	return false
}

// SetAttendance marks the pair present or absent. Marking present inserts a
// new row without checking for an existing one: repeated present toggles
// accumulate duplicate rows, which is harmless for the existential presence
// check and matches the observed legacy behaviour. Marking absent removes
// every matching row.
func (s *Store) SetAttendance(enrollmentID, lectureNum int, present bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if present {
		s.attendance = append(s.attendance, models.Attendance{
			AttID:        s.nextAttID,
			EnrollmentID: enrollmentID,
			LectureNum:   lectureNum,
		})
		s.nextAttID++
		return
	}

	kept := s.attendance[:0]
	for _, a := range s.attendance {
		if a.EnrollmentID == enrollmentID && a.LectureNum == lectureNum {
			continue
		}
		kept = append(kept, a)
	}
	s.attendance = kept
}
