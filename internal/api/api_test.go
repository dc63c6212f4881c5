package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/api"
	"github.com/studio-site-backend/internal/config"
	"github.com/studio-site-backend/internal/mocks"
	"github.com/studio-site-backend/internal/models"
	"github.com/studio-site-backend/internal/service"
)

type testEnv struct {
	router     *gin.Engine
	submission *mocks.MockSubmissionService
	traffic    *mocks.MockTrafficService
	blog       *mocks.MockBlogService
	comment    *mocks.MockCommentService
}

func setupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		submission: mocks.NewMockSubmissionService(),
		traffic:    mocks.NewMockTrafficService(),
		blog:       mocks.NewMockBlogService(),
		comment:    mocks.NewMockCommentService(),
	}
	services := &service.Services{
		Submission: env.submission,
		Traffic:    env.traffic,
		Blog:       env.blog,
		Comment:    env.comment,
	}
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "3000"},
		Storage: config.StorageConfig{
			DataDir: t.TempDir(),
			SiteDir: t.TempDir(),
		},
		Dashboard: config.DashboardConfig{
			Password:      "letmein",
			SessionSecret: "test-secret",
			SessionName:   "dashboard_session",
			SessionMaxAge: 8 * 3600,
		},
		Upload: config.UploadConfig{MaxUploadSize: 1024 * 1024, UploadDir: t.TempDir()},
	}

	env.router = api.NewRouter(services, cfg, zerolog.Nop())
	return env
}

func postJSON(router *gin.Engine, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// login returns the session cookies for an authenticated dashboard user
func login(t *testing.T, router *gin.Engine) []*http.Cookie {
	t.Helper()
	w := postJSON(router, "/api/login", map[string]string{"password": "letmein"})
	if w.Code != http.StatusOK {
		t.Fatalf("Login failed with status %d: %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Login set no session cookie")
	}
	return cookies
}

func authedRequest(router *gin.Engine, method, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	env := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["status"] != "Server is running" {
		t.Errorf("Unexpected status %v", response["status"])
	}
}

func TestDashboardRequiresSession(t *testing.T) {
	env := setupTestRouter(t)

	for _, path := range []string{
		"/api/submissions",
		"/api/email-signups",
		"/api/contact-messages",
		"/api/traffic-stats",
		"/api/blog-posts",
		"/api/download-site",
	} {
		w := authedRequest(env.router, "GET", path, nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("GET %s unauthenticated: expected 403, got %d", path, w.Code)
		}
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	env := setupTestRouter(t)

	w := postJSON(env.router, "/api/login", map[string]string{"password": "wrong"})
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for wrong password, got %d", w.Code)
	}
}

func TestLoginAndListSubmissions(t *testing.T) {
	env := setupTestRouter(t)
	env.submission.Submissions["sub-1"] = &models.Submission{ID: "sub-1", BusinessName: "Acme"}

	cookies := login(t, env.router)
	w := authedRequest(env.router, "GET", "/api/submissions", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var response struct {
		Success     bool                `json:"success"`
		Count       int                 `json:"count"`
		Submissions []models.Submission `json:"submissions"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if !response.Success || response.Count != 1 {
		t.Errorf("Unexpected response: %s", w.Body.String())
	}
}

func TestGetSubmission_InvalidID(t *testing.T) {
	env := setupTestRouter(t)
	cookies := login(t, env.router)

	w := authedRequest(env.router, "GET", "/api/submissions/..%2fescape", cookies)
	if w.Code != http.StatusBadRequest && w.Code != http.StatusNotFound {
		t.Errorf("Traversal id: expected 400/404, got %d", w.Code)
	}
}

func TestGetSubmission_NotFound(t *testing.T) {
	env := setupTestRouter(t)
	cookies := login(t, env.router)

	w := authedRequest(env.router, "GET", "/api/submissions/nope", cookies)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestDeleteSubmission(t *testing.T) {
	env := setupTestRouter(t)
	env.submission.Submissions["sub-1"] = &models.Submission{ID: "sub-1"}
	cookies := login(t, env.router)

	w := authedRequest(env.router, "DELETE", "/api/submissions/sub-1", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if len(env.submission.Submissions) != 0 {
		t.Error("Submission not deleted")
	}
}

func TestContactEndpoint(t *testing.T) {
	env := setupTestRouter(t)

	w := postJSON(env.router, "/api/contact", models.ContactRequest{
		Name: "Jane", Email: "jane@test.com", Message: "Hello",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(env.submission.Contacts) != 1 {
		t.Error("Contact not saved")
	}
}

func TestTrackVisit(t *testing.T) {
	env := setupTestRouter(t)

	w := postJSON(env.router, "/api/track-visit", models.TrackRequest{Page: "/pricing"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if len(env.traffic.Tracked) != 1 || env.traffic.Tracked[0].Page != "/pricing" {
		t.Errorf("Visit not tracked: %+v", env.traffic.Tracked)
	}
}

func TestTrafficStats_BadDays(t *testing.T) {
	env := setupTestRouter(t)
	cookies := login(t, env.router)

	w := authedRequest(env.router, "GET", "/api/traffic-stats?days=zero", cookies)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-numeric days, got %d", w.Code)
	}
}

func TestBlogLifecycleOverHTTP(t *testing.T) {
	env := setupTestRouter(t)
	cookies := login(t, env.router)

	// Create
	w := postJSON(env.router, "/api/blog-posts", models.PostRequest{Title: "My Post", Content: "<p>x</p>"}, cookies...)
	if w.Code != http.StatusCreated {
		t.Fatalf("Create: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// Duplicate slug is a client error
	w = postJSON(env.router, "/api/blog-posts", models.PostRequest{Title: "My Post", Content: "<p>y</p>"}, cookies...)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Duplicate: expected 400, got %d", w.Code)
	}

	// Publish, then publishing again is invalid
	w = postJSON(env.router, "/api/blog-posts/my-post/publish", nil, cookies...)
	if w.Code != http.StatusOK {
		t.Fatalf("Publish: expected 200, got %d", w.Code)
	}
	w = postJSON(env.router, "/api/blog-posts/my-post/publish", nil, cookies...)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Second publish: expected 400, got %d", w.Code)
	}

	// Single-post read needs the session too
	w = authedRequest(env.router, "GET", "/api/blog-posts/my-post", cookies)
	if w.Code != http.StatusOK {
		t.Errorf("Get: expected 200, got %d", w.Code)
	}

	// Unpublish and delete
	w = postJSON(env.router, "/api/blog-posts/my-post/unpublish", nil, cookies...)
	if w.Code != http.StatusOK {
		t.Fatalf("Unpublish: expected 200, got %d", w.Code)
	}
	w = authedRequest(env.router, "DELETE", "/api/blog-posts/my-post", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("Delete: expected 200, got %d", w.Code)
	}
}

func TestDraftPostHiddenWithoutSession(t *testing.T) {
	env := setupTestRouter(t)
	cookies := login(t, env.router)

	w := postJSON(env.router, "/api/blog-posts", models.PostRequest{Title: "Secret Draft", Content: "<p>unreleased</p>"}, cookies...)
	if w.Code != http.StatusCreated {
		t.Fatalf("Create: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = authedRequest(env.router, "GET", "/api/blog-posts/secret-draft", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("Unauthenticated draft read: expected 403, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "unreleased") {
		t.Errorf("Draft content leaked to unauthenticated client: %s", w.Body.String())
	}
}

func TestCommentsEndpoints(t *testing.T) {
	env := setupTestRouter(t)

	w := postJSON(env.router, "/api/comments/my-post", models.CommentRequest{Name: "Ann", Text: "Nice"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	r := httptest.NewRequest("GET", "/api/comments/my-post", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, r)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var response struct {
		Count    int              `json:"count"`
		Comments []models.Comment `json:"comments"`
	}
	json.Unmarshal(rec.Body.Bytes(), &response)
	if response.Count != 1 || response.Comments[0].Name != "Ann" {
		t.Errorf("Unexpected comments: %s", rec.Body.String())
	}
}

func TestStorageDirsForbidden(t *testing.T) {
	env := setupTestRouter(t)

	for _, path := range []string{"/submissions/x.json", "/blog-data/post.json", "/traffic/visits.json", "/data/anything"} {
		r := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, r)
		if w.Code != http.StatusForbidden {
			t.Errorf("GET %s: expected 403, got %d", path, w.Code)
		}
	}
}

func TestLogoutEndsSession(t *testing.T) {
	env := setupTestRouter(t)
	cookies := login(t, env.router)

	w := postJSON(env.router, "/api/logout", nil, cookies...)
	if w.Code != http.StatusOK {
		t.Fatalf("Logout failed: %d", w.Code)
	}
	loggedOut := w.Result().Cookies()

	w2 := authedRequest(env.router, "GET", "/api/submissions", loggedOut)
	if w2.Code != http.StatusForbidden {
		t.Errorf("Expected 403 after logout, got %d", w2.Code)
	}
}
