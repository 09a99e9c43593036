package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nctu-sis/portal-api/internal/models"
)

func TestAuthenticateMatchesFullTriple(t *testing.T) {
	s := New(DefaultSeed())

	user, ok := s.Authenticate("student1", "123", models.RoleStudent)
	require.True(t, ok)
	assert.Equal(t, 3, user.UserID)
	assert.Equal(t, models.RoleStudent, user.Role)
}

func TestAuthenticateRejectsSingleFieldMismatch(t *testing.T) {
	s := New(DefaultSeed())

	cases := []struct {
		name     string
		username string
		password string
		role     models.Role
	}{
		{"wrong username", "student2", "123", models.RoleStudent},
		{"wrong password", "student1", "1234", models.RoleStudent},
		{"wrong role", "student1", "123", models.RoleAdmin},
		{"empty username", "", "123", models.RoleStudent},
		{"empty password", "student1", "", models.RoleStudent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := s.Authenticate(tc.username, tc.password, tc.role)
			assert.False(t, ok)
		})
	}
}

func TestCountersStartAfterSeedMaxima(t *testing.T) {
	s := New(DefaultSeed())

	assert.Equal(t, 5, s.nextUserID)
	assert.Equal(t, 2, s.nextSeatNum)
	assert.Equal(t, 2, s.nextEnrollmentID)
	assert.Equal(t, 2, s.nextProfID)
	assert.Equal(t, 2, s.nextAssignmentID)
	assert.Equal(t, 1, s.nextAttID)
	assert.Equal(t, 2, s.nextNewsID)
}

func TestCountersStartAtOneOnEmptySeed(t *testing.T) {
	s := New(Seed{})

	assert.Equal(t, 1, s.nextUserID)
	assert.Equal(t, 1, s.nextSeatNum)
	assert.Equal(t, 1, s.nextAttID)
}

func TestStudentByUserMiss(t *testing.T) {
	s := New(DefaultSeed())

	_, ok := s.StudentByUser(999)
	assert.False(t, ok)
}

func TestEnrollmentsByStudentAnnotatesCourseName(t *testing.T) {
	s := New(DefaultSeed())

	rows := s.EnrollmentsByStudent(20250001)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].CourseName)
	assert.Equal(t, "Intro. to Cyber Security", *rows[0].CourseName)
}

func TestEnrollmentsByStudentToleratesDanglingCourseCode(t *testing.T) {
	seed := DefaultSeed()
	seed.Enrollments = append(seed.Enrollments, models.Enrollment{
		EnrollmentID: 2,
		StudentID:    20250001,
		CourseCode:   "GONE999",
		Ass1Grade:    models.GradeNotSet,
		Ass2Grade:    models.GradeNotSet,
	})
	s := New(seed)

	rows := s.EnrollmentsByStudent(20250001)
	require.Len(t, rows, 2)
	assert.Nil(t, rows[1].CourseName)
}

func TestUsersSortedByRole(t *testing.T) {
	s := New(DefaultSeed())

	users := s.Users()
	require.Len(t, users, 4)
	for i := 1; i < len(users); i++ {
		assert.LessOrEqual(t, string(users[i-1].Role), string(users[i].Role))
	}
}

func TestEnrollmentsByCourseResolvesStudent(t *testing.T) {
	s := New(DefaultSeed())

	roster := s.EnrollmentsByCourse("IT101")
	require.Len(t, roster, 1)
	require.NotNil(t, roster[0].Student)
	assert.Equal(t, "Jane Doe", roster[0].Student.FullName)
	for _, present := range roster[0].Lectures {
		assert.False(t, present)
	}
}

func TestEnrollmentsByCourseUnknownCodeEmpty(t *testing.T) {
	s := New(DefaultSeed())

	assert.Empty(t, s.EnrollmentsByCourse("XX000"))
}
