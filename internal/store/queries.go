package store

import (
	"sort"

	"github.com/nctu-sis/portal-api/internal/models"
)

// Resolver queries. All of them are total: a miss yields a false flag or an
// empty slice, never an error. Results are copies, so callers can hold them
// outside the lock.

// Authenticate scans the user collection for a row matching all three
// credential fields exactly. Passwords compare verbatim.
func (s *Store) Authenticate(username, password string, role models.Role) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username && u.Password == password && u.Role == role {
			return u, true
		}
	}
	return models.User{}, false
}

// StudentByUser returns the first student owning the given user account.
func (s *Store) StudentByUser(userID int) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.students {
		if st.UserID == userID {
			return st, true
		}
	}
	return models.Student{}, false
}

// StudentByID returns the student with the given registrar-issued ID.
func (s *Store) StudentByID(studentID int) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.students {
		if st.StudentID == studentID {
			return st, true
		}
	}
	return models.Student{}, false
}

// FeeByStudent returns the student's fee record.
func (s *Store) FeeByStudent(studentID int) (models.Fee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.fees {
		if f.StudentID == studentID {
			return f, true
		}
	}
	return models.Fee{}, false
}

// EnrollmentsByStudent lists a student's enrollments annotated with the
// catalog course name. A dangling course code leaves CourseName nil rather
// than dropping the row.
func (s *Store) EnrollmentsByStudent(studentID int) []models.EnrollmentDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var details []models.EnrollmentDetail
	for _, e := range s.enrollments {
		if e.StudentID != studentID {
			continue
		}
		details = append(details, models.EnrollmentDetail{
			Enrollment: e,
			CourseName: s.courseNameLocked(e.CourseCode),
		})
	}
	return details
}

// AssignmentsByProfessor lists a professor's course assignments annotated
// with the catalog course name when the code resolves.
func (s *Store) AssignmentsByProfessor(profID int) []models.AssignmentDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var details []models.AssignmentDetail
	for _, a := range s.assignments {
		if a.ProfID != profID {
			continue
		}
		details = append(details, models.AssignmentDetail{
			CourseAssignment: a,
			CourseName:       s.courseNameLocked(a.CourseCode),
		})
	}
	return details
}

// ProfessorByUser returns the professor owning the given user account.
func (s *Store) ProfessorByUser(userID int) (models.Professor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.professors {
		if p.UserID == userID {
			return p, true
		}
	}
	return models.Professor{}, false
}

// EnrollmentsByCourse lists every enrollment in a course together with the
// owning student (nil when the student record is missing) and the lecture
// presence vector.
func (s *Store) EnrollmentsByCourse(courseCode string) []models.RosterEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var roster []models.RosterEntry
	for _, e := range s.enrollments {
		if e.CourseCode != courseCode {
			continue
		}
		entry := models.RosterEntry{Enrollment: e}
		for i := range s.students {
			if s.students[i].StudentID == e.StudentID {
				st := s.students[i]
				entry.Student = &st
				break
			}
		}
		for lecture := 1; lecture <= models.LectureCount; lecture++ {
			entry.Lectures[lecture-1] = s.isPresentLocked(e.EnrollmentID, lecture)
		}
		roster = append(roster, entry)
	}
	return roster
}

// IsPresent reports whether any attendance row exists for the pair.
func (s *Store) IsPresent(enrollmentID, lectureNum int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isPresentLocked(enrollmentID, lectureNum)
}

// Users returns all user rows sorted by role, the order the credentials
// table displays them in.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := append([]models.User(nil), s.users...)
	sort.SliceStable(users, func(i, j int) bool { return users[i].Role < users[j].Role })
	return users
}

// Courses returns the catalog.
func (s *Store) Courses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Course(nil), s.courses...)
}

// CourseByCode looks a course up in the catalog.
func (s *Store) CourseByCode(code string) (models.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courses {
		if c.CourseCode == code {
			return c, true
		}
	}
	return models.Course{}, false
}

// News returns the feed most-recent-first. Insertion order in the backing
// slice is oldest-first; display order is the reverse.
func (s *Store) News() []models.News {
	s.mu.RLock()
	defer s.mu.RUnlock()
	feed := make([]models.News, 0, len(s.news))
	for i := len(s.news) - 1; i >= 0; i-- {
		feed = append(feed, s.news[i])
	}
	return feed
}

func (s *Store) courseNameLocked(code string) *string {
	for _, c := range s.courses {
		if c.CourseCode == code {
			name := c.CourseName
			return &name
		}
	}
	return nil
}

func (s *Store) isPresentLocked(enrollmentID, lectureNum int) bool {
	for _, a := range s.attendance {
		if a.EnrollmentID == enrollmentID && a.LectureNum == lectureNum {
			return true
		}
	}
	return false
}
