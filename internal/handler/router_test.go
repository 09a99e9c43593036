package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nctu-sis/portal-api/internal/models"
	"github.com/nctu-sis/portal-api/internal/service"
	"github.com/nctu-sis/portal-api/internal/store"
	"github.com/nctu-sis/portal-api/pkg/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(store.DefaultSeed())
	auth := service.NewAuthService(st, nil, nil, service.AuthConfig{
		Secret:     "test-secret",
		Expiration: time.Hour,
		Issuer:     "portal-api-test",
	})
	students := service.NewStudentService(st, nil)

	r := gin.New()
	Register(r, "/api/v1", Services{
		Auth:      auth,
		Students:  students,
		Exports:   service.NewExportService(students, nil),
		Admin:     service.NewAdminService(st, nil, nil, nil),
		Finance:   service.NewFinanceService(st, nil, nil),
		Prof:      service.NewProfessorService(st, nil, nil, nil),
		News:      service.NewNewsService(st, nil, nil, nil),
		Assistant: service.NewAssistantService(config.AssistantConfig{Timeout: time.Second}, nil),
	})
	return r
}

func performJSON(t *testing.T, r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, r *gin.Engine, username, password string, role models.Role) string {
	t.Helper()
	rec := performJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", models.LoginRequest{
		Username: username,
		Password: password,
		Role:     role,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data models.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.AccessToken)
	return envelope.Data.AccessToken
}

func TestLoginReturnsInitialView(t *testing.T) {
	r := newTestRouter(t)

	rec := performJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", models.LoginRequest{
		Username: "Administrator",
		Password: "Abdallah11#",
		Role:     models.RoleAdmin,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data models.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "admin-register", envelope.Data.InitialView)
	assert.Equal(t, models.RoleAdmin, envelope.Data.User.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r := newTestRouter(t)

	rec := performJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", models.LoginRequest{
		Username: "Administrator",
		Password: "wrong",
		Role:     models.RoleAdmin,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}

func TestLoginRejectsMalformedPayload(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	r := newTestRouter(t)

	rec := performJSON(t, r, http.MethodGet, "/api/v1/news", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStudentProfile(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "student1", "123", models.RoleStudent)

	rec := performJSON(t, r, http.MethodGet, "/api/v1/students/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data service.StudentProfile `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 20250001, envelope.Data.Student.StudentID)
	assert.Equal(t, "Jane Doe", envelope.Data.Student.FullName)
	require.NotNil(t, envelope.Data.Fee)
	assert.Equal(t, 15000, envelope.Data.Fee.Amount)
}

func TestStudentRoutesForbiddenForOtherRoles(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "test", "12345678", models.RoleFinance)

	rec := performJSON(t, r, http.MethodGet, "/api/v1/students/me", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTranscriptExportCSV(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "student1", "123", models.RoleStudent)

	rec := performJSON(t, r, http.MethodGet, "/api/v1/students/me/transcript/export?format=csv", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "transcript.csv")
	assert.Contains(t, rec.Body.String(), "IT101")
}

func TestFinanceLookupAndToggle(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "test", "12345678", models.RoleFinance)

	rec := performJSON(t, r, http.MethodGet, "/api/v1/finance/fees/20250001", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Jane Doe")

	rec = performJSON(t, r, http.MethodPut, "/api/v1/finance/fees/20250001", token, map[string]bool{"paid": true})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = performJSON(t, r, http.MethodGet, "/api/v1/finance/fees/20250001", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_paid":true`)
}

func TestFinanceLookupUnknownStudent(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "test", "12345678", models.RoleFinance)

	rec := performJSON(t, r, http.MethodGet, "/api/v1/finance/fees/999", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFinanceSetStatusRequiresPaidFlag(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "test", "12345678", models.RoleFinance)

	rec := performJSON(t, r, http.MethodPut, "/api/v1/finance/fees/20250001", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminRegisterStudentCascade(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "Administrator", "Abdallah11#", models.RoleAdmin)

	rec := performJSON(t, r, http.MethodPost, "/api/v1/admin/students", token, service.RegisterStudentRequest{
		StudentID:    20250002,
		Username:     "student2",
		Password:     "123",
		FullName:     "John Roe",
		AcademicYear: 1,
		Track:        "cs",
		NationalID:   "30412250101234",
		DateOfBirth:  "2004-12-25",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var envelope struct {
		Data service.RegisterStudentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 20250002, envelope.Data.StudentID)
	assert.Equal(t, 2, envelope.Data.SeatNum)

	// The new account can log in right away.
	login(t, r, "student2", "123", models.RoleStudent)
}

func TestAdminRoutesForbiddenForStudents(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "student1", "123", models.RoleStudent)

	rec := performJSON(t, r, http.MethodGet, "/api/v1/admin/users", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProfessorRosterAndAttendance(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "prof1", "123", models.RoleProfessor)

	rec := performJSON(t, r, http.MethodGet, "/api/v1/professors/me/courses", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "IT101")

	rec = performJSON(t, r, http.MethodPut, "/api/v1/professors/attendance", token, service.AttendanceRequest{
		EnrollmentID: 1,
		LectureNum:   1,
		Present:      true,
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = performJSON(t, r, http.MethodGet, "/api/v1/professors/me/courses/IT101/roster", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []models.RosterEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.True(t, envelope.Data[0].Lectures[0])
}

func TestNewsPostAdminOnlyAndFeedOrdering(t *testing.T) {
	r := newTestRouter(t)
	adminToken := login(t, r, "Administrator", "Abdallah11#", models.RoleAdmin)
	studentToken := login(t, r, "student1", "123", models.RoleStudent)

	rec := performJSON(t, r, http.MethodPost, "/api/v1/news", studentToken, service.PostNewsRequest{Title: "x", Content: "y"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = performJSON(t, r, http.MethodPost, "/api/v1/news", adminToken, service.PostNewsRequest{Title: "First", Content: "a"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = performJSON(t, r, http.MethodPost, "/api/v1/news", adminToken, service.PostNewsRequest{Title: "Second", Content: "b"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = performJSON(t, r, http.MethodGet, "/api/v1/news", studentToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []models.News `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.GreaterOrEqual(t, len(envelope.Data), 2)
	assert.Equal(t, "Second", envelope.Data[0].Title)
	assert.Equal(t, "First", envelope.Data[1].Title)
}

func TestAssistantFallsBackWithoutKey(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "student1", "123", models.RoleStudent)

	rec := performJSON(t, r, http.MethodPost, "/api/v1/assistant/chat", token, map[string]string{"message": "hi"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "trouble connecting")
}

func TestAssistantForbiddenForFinance(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "test", "12345678", models.RoleFinance)

	rec := performJSON(t, r, http.MethodPost, "/api/v1/assistant/chat", token, map[string]string{"message": "hi"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
