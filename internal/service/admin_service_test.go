package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nctu-sis/portal-api/internal/models"
	"github.com/nctu-sis/portal-api/internal/store"
	appErrors "github.com/nctu-sis/portal-api/pkg/errors"
)

type fakeAdminStore struct {
	lastRegistration store.Registration
	lastOnboarding   store.Onboarding
	seatNum          int
	users            []models.User
}

func (f *fakeAdminStore) RegisterStudent(reg store.Registration) int {
	f.lastRegistration = reg
	return f.seatNum
}

func (f *fakeAdminStore) AddProfessor(on store.Onboarding) models.Professor {
	f.lastOnboarding = on
	return models.Professor{ProfID: 7, UserID: 12, FullName: on.FullName}
}

func (f *fakeAdminStore) Users() []models.User {
	return f.users
}

type fakeRecorder struct {
	counts map[string]int
}

func (f *fakeRecorder) CountMutation(operation string) {
	if f.counts == nil {
		f.counts = make(map[string]int)
	}
	f.counts[operation]++
}

func validRegistration() RegisterStudentRequest {
	return RegisterStudentRequest{
		StudentID:    20250002,
		Username:     "newstudent",
		Password:     "pw",
		FullName:     "New Student",
		AcademicYear: 1,
		Track:        "General",
		NationalID:   "98765432109876",
		DateOfBirth:  "2006-06-06",
	}
}

func TestAdminServiceRegisterStudent(t *testing.T) {
	st := &fakeAdminStore{seatNum: 2}
	recorder := &fakeRecorder{}
	svc := NewAdminService(st, nil, nil, recorder)

	res, err := svc.RegisterStudent(context.Background(), validRegistration())
	require.NoError(t, err)
	assert.Equal(t, 2, res.SeatNum)
	assert.Equal(t, 20250002, res.StudentID)
	assert.Equal(t, 20250002, st.lastRegistration.StudentID)
	assert.Equal(t, 1, recorder.counts["register_student"])
}

func TestAdminServiceRegisterStudentValidation(t *testing.T) {
	svc := NewAdminService(&fakeAdminStore{}, nil, nil, nil)

	cases := []func(*RegisterStudentRequest){
		func(r *RegisterStudentRequest) { r.Username = "" },
		func(r *RegisterStudentRequest) { r.FullName = "" },
		func(r *RegisterStudentRequest) { r.AcademicYear = 0 },
		func(r *RegisterStudentRequest) { r.AcademicYear = 5 },
	}
	for _, mutate := range cases {
		req := validRegistration()
		mutate(&req)
		_, err := svc.RegisterStudent(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}
}

func TestAdminServiceAddProfessor(t *testing.T) {
	st := &fakeAdminStore{}
	recorder := &fakeRecorder{}
	svc := NewAdminService(st, nil, nil, recorder)

	prof, err := svc.AddProfessor(context.Background(), AddProfessorRequest{
		FullName:   "Dr. Ada Example",
		Username:   "prof2",
		Password:   "pw",
		CourseCode: "ZZ999",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, prof.ProfID)
	// The course code passes through unchecked.
	assert.Equal(t, "ZZ999", st.lastOnboarding.CourseCode)
	assert.Equal(t, 1, recorder.counts["add_professor"])
}

func TestAdminServiceAddProfessorValidation(t *testing.T) {
	svc := NewAdminService(&fakeAdminStore{}, nil, nil, nil)

	_, err := svc.AddProfessor(context.Background(), AddProfessorRequest{FullName: "No Creds"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAdminServiceUsers(t *testing.T) {
	st := &fakeAdminStore{users: []models.User{{UserID: 1, Username: "Administrator", Role: models.RoleAdmin}}}
	svc := NewAdminService(st, nil, nil, nil)

	users := svc.Users(context.Background())
	require.Len(t, users, 1)
	assert.Equal(t, "Administrator", users[0].Username)
}
