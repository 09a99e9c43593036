// Package store holds the portal's entity collections in memory. It is the
// only writer-visible state in the process: everything is seeded at startup
// and lost at shutdown. All reads and mutations go through a single Store
// value constructed once and passed by handle, never through package globals.
package store

import (
	"sync"

	"github.com/nctu-sis/portal-api/internal/models"
)

// Store owns the nine entity collections and the per-kind identifier
// counters. A single RWMutex guards all access: every mutation cascade runs
// inside one write-lock hold, so callers observe each cascade as atomic and
// identifier allocation cannot race even with concurrent HTTP callers.
type Store struct {
	mu sync.RWMutex

	users       []models.User
	students    []models.Student
	fees        []models.Fee
	news        []models.News
	courses     []models.Course
	enrollments []models.Enrollment
	professors  []models.Professor
	assignments []models.CourseAssignment
	attendance  []models.Attendance

	nextUserID       int
	nextSeatNum      int
	nextEnrollmentID int
	nextProfID       int
	nextAssignmentID int
	nextAttID        int
	nextNewsID       int
}

// New builds a store from seed data. Counters start at max(existing)+1, or 1
// for an empty collection, preserving the legacy "max id + 1" sequencing.
func New(seed Seed) *Store {
	s := &Store{
		users:       append([]models.User(nil), seed.Users...),
		students:    append([]models.Student(nil), seed.Students...),
		fees:        append([]models.Fee(nil), seed.Fees...),
		news:        append([]models.News(nil), seed.News...),
		courses:     append([]models.Course(nil), seed.Courses...),
		enrollments: append([]models.Enrollment(nil), seed.Enrollments...),
		professors:  append([]models.Professor(nil), seed.Professors...),
		assignments: append([]models.CourseAssignment(nil), seed.Assignments...),
		attendance:  append([]models.Attendance(nil), seed.Attendance...),
	}

	s.nextUserID = 1
	for _, u := range s.users {
		if u.UserID >= s.nextUserID {
			s.nextUserID = u.UserID + 1
		}
	}
	s.nextSeatNum = 1
	for _, st := range s.students {
		if st.SeatNum >= s.nextSeatNum {
			s.nextSeatNum = st.SeatNum + 1
		}
	}
	s.nextEnrollmentID = 1
	for _, e := range s.enrollments {
		if e.EnrollmentID >= s.nextEnrollmentID {
			s.nextEnrollmentID = e.EnrollmentID + 1
		}
	}
	s.nextProfID = 1
	for _, p := range s.professors {
		if p.ProfID >= s.nextProfID {
			s.nextProfID = p.ProfID + 1
		}
	}
	s.nextAssignmentID = 1
	for _, a := range s.assignments {
		if a.AssignmentID >= s.nextAssignmentID {
			s.nextAssignmentID = a.AssignmentID + 1
		}
	}
	s.nextAttID = 1
	for _, a := range s.attendance {
		if a.AttID >= s.nextAttID {
			s.nextAttID = a.AttID + 1
		}
	}
	s.nextNewsID = 1
	for _, n := range s.news {
		if n.NewsID >= s.nextNewsID {
			s.nextNewsID = n.NewsID + 1
		}
	}

	return s
}
