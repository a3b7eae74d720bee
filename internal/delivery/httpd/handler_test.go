package httpd

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/config"
	"github.com/alecxander567/Course-Tracker-Api/internal/repository/memory"
	"github.com/alecxander567/Course-Tracker-Api/internal/service"
	"github.com/alecxander567/Course-Tracker-Api/internal/service/integration"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

type testServer struct {
	t      *testing.T
	router http.Handler
	store  *memory.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := zerolog.Nop()
	store := memory.NewStore()
	publisher := integration.NewNoopPublisher(logger)
	session := config.SessionConfig{CookieName: "session_id", TTL: time.Hour}

	handler := NewHandler(
		service.NewAuthService(store.Users(), store.Sessions(), session.TTL, logger),
		service.NewUserService(store.Users(), logger),
		service.NewProfileService(store.Profiles(), integration.NewDisabledAvatarStorage(), 1<<20, logger),
		service.NewSubjectService(store.Subjects(), publisher, logger),
		service.NewCareerService(store.Subjects(), logger),
		service.NewNoteService(store.Notes(), store.Subjects(), logger),
		service.NewProjectService(store.Projects(), logger),
		service.NewTodoService(store.TodoLists(), store.Tasks(), publisher, logger),
		session,
		1<<20,
		logger,
	)

	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	return &testServer{t: t, router: router, store: store}
}

func (s *testServer) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

// login registers username and returns a session token.
func (s *testServer) login(username string) string {
	s.t.Helper()

	rec, _ := s.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "correct-horse",
	})
	require.Equal(s.t, http.StatusCreated, rec.Code)

	rec, env := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": "correct-horse",
	})
	require.Equal(s.t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &resp))
	return resp.Token
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(http.MethodGet, "/api/v1/subjects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", env.Error)

	rec, _ = s.do(http.MethodGet, "/api/v1/subjects", "not-a-session", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginSetsCookieAndLogoutInvalidates(t *testing.T) {
	s := newTestServer(t)
	token := s.login("alice")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: token})
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.NotContains(t, rec.Body.String(), "password")

	rec, _ = s.do(http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterValidationAndConflict(t *testing.T) {
	s := newTestServer(t)
	s.login("alice")

	rec, env := s.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "bad name!",
		"email":    "not-an-email",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Fields, "username")
	assert.Contains(t, env.Fields, "email")
	assert.Contains(t, env.Fields, "password")

	rec, _ = s.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "alice",
		"email":    "fresh@example.com",
		"password": "correct-horse",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, env = s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "alice",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid username or password", env.Message)
}

func TestInvalidCategoryRejectedWithoutWrite(t *testing.T) {
	s := newTestServer(t)
	token := s.login("alice")

	rec, env := s.do(http.MethodPost, "/api/v1/subjects", token, map[string]interface{}{
		"subject_name": "Cooking",
		"category":     "Culinary",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Fields, "category")

	rec, env = s.do(http.MethodGet, "/api/v1/subjects", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeData[struct {
		Total int `json:"total"`
	}](t, env)
	assert.Zero(t, page.Total)
}

func TestCareerRecommendationFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.login("alice")

	rec, env := s.do(http.MethodGet, "/api/v1/career-recommendation", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"has_data":false,"averages":{},"subject_counts":{},"best_category":null,"recommended_career":null}`, string(env.Data))

	for _, s2 := range []map[string]interface{}{
		{"subject_name": "Go", "category": "Programming", "grade": 90},
		{"subject_name": "SQL", "category": "Database", "grade": 70},
	} {
		rec, _ := s.do(http.MethodPost, "/api/v1/subjects", token, s2)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, env = s.do(http.MethodGet, "/api/v1/career-recommendation", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeData[struct {
		HasData           bool               `json:"has_data"`
		Averages          map[string]float64 `json:"averages"`
		BestCategory      string             `json:"best_category"`
		RecommendedCareer string             `json:"recommended_career"`
	}](t, env)
	assert.True(t, resp.HasData)
	assert.Equal(t, "Programming", resp.BestCategory)
	assert.Equal(t, "Software Developer", resp.RecommendedCareer)
	assert.InDelta(t, 70.0, resp.Averages["Database"], 1e-9)
}

func TestTaskToggleThroughHTTP(t *testing.T) {
	s := newTestServer(t)
	token := s.login("alice")

	rec, env := s.do(http.MethodPost, "/api/v1/todo-lists", token, map[string]string{
		"title": "Week 1",
		"date":  "2024-09-02",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	list := decodeData[struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Date   string `json:"date"`
	}](t, env)
	assert.Equal(t, "ONGOING", list.Status)
	assert.Equal(t, "2024-09-02", list.Date)

	rec, env = s.do(http.MethodPost, "/api/v1/todo-lists/"+list.ID+"/tasks", token, map[string]string{"title": "Read chapter 1"})
	require.Equal(t, http.StatusCreated, rec.Code)
	task := decodeData[struct {
		ID string `json:"id"`
	}](t, env)

	rec, env = s.do(http.MethodPatch, "/api/v1/tasks/"+task.ID+"/toggle", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	toggled := decodeData[struct {
		Task struct {
			Completed bool `json:"completed"`
		} `json:"task"`
		ListStatus string `json:"list_status"`
	}](t, env)
	assert.True(t, toggled.Task.Completed)
	assert.Equal(t, "COMPLETED", toggled.ListStatus)

	rec, env = s.do(http.MethodGet, "/api/v1/todo-lists/"+list.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"status":"COMPLETED"`)
}

func TestOtherUsersRecordsAreNotFound(t *testing.T) {
	s := newTestServer(t)
	alice := s.login("alice")
	bob := s.login("bob")

	rec, env := s.do(http.MethodPost, "/api/v1/projects", alice, map[string]string{"title": "Capstone"})
	require.Equal(t, http.StatusCreated, rec.Code)
	project := decodeData[struct {
		ID string `json:"id"`
	}](t, env)

	rec, _ = s.do(http.MethodGet, "/api/v1/projects/"+project.ID, bob, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = s.do(http.MethodDelete, "/api/v1/projects/"+project.ID, bob, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/v1/projects/"+project.ID, alice, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMalformedIDsAndBodies(t *testing.T) {
	s := newTestServer(t)
	token := s.login("alice")

	rec, env := s.do(http.MethodGet, "/api/v1/subjects/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid id", env.Message)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewBufferString("{"))
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rec, _ = s.do(http.MethodPost, "/api/v1/notes", token, map[string]string{
		"subject_id": "00000000-0000-0000-0000-000000000000",
		"title":      "Orphan",
		"content":    "no subject",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHugePageReturnsEmptyList(t *testing.T) {
	s := newTestServer(t)
	token := s.login("alice")

	rec, _ := s.do(http.MethodPost, "/api/v1/subjects", token, map[string]interface{}{
		"subject_name": "Algorithms",
		"grade":        88,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	for _, path := range []string{
		"/api/v1/subjects?page=922337203685477581",
		"/api/v1/notes?page=922337203685477581",
		"/api/v1/projects?page=922337203685477581&limit=100",
		"/api/v1/todo-lists?page=922337203685477581",
	} {
		rec, env := s.do(http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)

		page := decodeData[struct {
			Items []json.RawMessage `json:"items"`
			Total int               `json:"total"`
			Page  int               `json:"page"`
		}](t, env)
		assert.Empty(t, page.Items, path)
		assert.Greater(t, page.Page, 1, path)
	}
}

func TestUploadPictureWithStorageDisabled(t *testing.T) {
	s := newTestServer(t)
	token := s.login("alice")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "me.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/picture", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
