package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/dmitrijs2005/foliovault/internal/common"
	"github.com/dmitrijs2005/foliovault/internal/cryptox"
	"github.com/dmitrijs2005/foliovault/internal/logging"
	"github.com/dmitrijs2005/foliovault/internal/server/config"
	"github.com/dmitrijs2005/foliovault/internal/server/mail"
	"github.com/dmitrijs2005/foliovault/internal/server/projects"
	"github.com/dmitrijs2005/foliovault/internal/server/sections"
	"github.com/dmitrijs2005/foliovault/internal/server/team"
	"github.com/dmitrijs2005/foliovault/internal/server/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = t.TempDir()
	cfg.UploadsDir = t.TempDir()
	cfg.LoginRatePerMinute = 1000

	log := logging.NewJSONLogger()
	contentKey := cryptox.DeriveKey(cfg.DBEncryptionKey)

	userSvc, err := users.NewService(
		users.NewFileRepository(cfg.DataDir, cryptox.DeriveKey(cfg.AuthEncryptionKey), log),
		cfg, log)
	require.NoError(t, err)

	srv := NewServer(cfg, userSvc,
		projects.NewService(cfg.DataDir, contentKey, log),
		sections.NewService(cfg.DataDir, contentKey, log),
		team.NewService(cfg.DataDir, contentKey, log),
		mail.NewLogMailer(log), log)

	return srv.Routes()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// loginAdmin authenticates with the bootstrap credentials and returns
// the session token.
func loginAdmin(t *testing.T, h http.Handler) string {
	t.Helper()

	w := doJSON(t, h, http.MethodPost, "/api/auth/login", map[string]string{
		"username": common.DefaultAdminUsername,
		"password": common.DefaultAdminPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLogin_SetsCookie(t *testing.T) {
	h := newTestHandler(t)

	w := doJSON(t, h, http.MethodPost, "/api/auth/login", map[string]string{
		"username": common.DefaultAdminUsername,
		"password": common.DefaultAdminPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, common.AccessTokenCookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLogin_WrongPassword(t *testing.T) {
	h := newTestHandler(t)

	w := doJSON(t, h, http.MethodPost, "/api/auth/login", map[string]string{
		"username": common.DefaultAdminUsername,
		"password": "wrong",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLogin_MissingFields(t *testing.T) {
	h := newTestHandler(t)

	w := doJSON(t, h, http.MethodPost, "/api/auth/login", map[string]string{}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMe(t *testing.T) {
	h := newTestHandler(t)
	token := loginAdmin(t, h)

	w := doJSON(t, h, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), common.DefaultAdminUsername)

	w = doJSON(t, h, http.MethodGet, "/api/auth/me", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, h, http.MethodGet, "/api/auth/me", nil, "not.a.token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_ClearsCookie(t *testing.T) {
	h := newTestHandler(t)

	w := doJSON(t, h, http.MethodPost, "/api/auth/logout", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, common.AccessTokenCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAccessGuard(t *testing.T) {
	h := newTestHandler(t)

	body := map[string]any{"title": "X", "description": "y", "category": "web"}

	w := doJSON(t, h, http.MethodPost, "/api/projects", body, "")
	require.Equal(t, http.StatusUnauthorized, w.Code, "no token")

	w = doJSON(t, h, http.MethodPost, "/api/projects", body, "garbage")
	require.Equal(t, http.StatusUnauthorized, w.Code, "invalid token")

	token := loginAdmin(t, h)
	w = doJSON(t, h, http.MethodPost, "/api/projects", body, token)
	require.Equal(t, http.StatusOK, w.Code, "admin token passes")
}

func TestAccessGuard_CookieToken(t *testing.T) {
	h := newTestHandler(t)
	token := loginAdmin(t, h)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(map[string]any{
		"title": "Via Cookie", "description": "d", "category": "web",
	}))
	req := httptest.NewRequest(http.MethodPost, "/api/projects", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: common.AccessTokenCookieName, Value: token})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestProjects_CRUDOverHTTP(t *testing.T) {
	h := newTestHandler(t)
	token := loginAdmin(t, h)

	w := doJSON(t, h, http.MethodPost, "/api/projects", map[string]any{
		"title":       "My App",
		"description": "a thing",
		"category":    "web",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Data projects.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)
	assert.Equal(t, "my-app", created.Data.Slug)

	// public slug lookup needs no token
	w = doJSON(t, h, http.MethodGet, "/api/projects/slug/my-app", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h, http.MethodPut, "/api/projects/"+created.Data.ID, map[string]any{
		"featured": true,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h, http.MethodDelete, "/api/projects/"+created.Data.ID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h, http.MethodDelete, "/api/projects/"+created.Data.ID, nil, token)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjects_ListPagination(t *testing.T) {
	h := newTestHandler(t)
	token := loginAdmin(t, h)

	for i := 1; i <= 12; i++ {
		w := doJSON(t, h, http.MethodPost, "/api/projects", map[string]any{
			"title":       fmt.Sprintf("Project %d", i),
			"description": "d",
			"category":    "web",
		}, token)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, h, http.MethodGet, "/api/projects?page=2&limit=10", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data       []projects.Project `json:"data"`
		Pagination struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
			Total int `json:"total"`
			Pages int `json:"pages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 12, resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.Pages)
}

func TestSections_UpdateAndList(t *testing.T) {
	h := newTestHandler(t)
	token := loginAdmin(t, h)

	w := doJSON(t, h, http.MethodPut, "/api/sections/hero", map[string]any{"title": "Hi"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h, http.MethodPut, "/api/sections/banner", map[string]any{"x": 1}, token)
	require.Equal(t, http.StatusBadRequest, w.Code, "unknown section type")

	w = doJSON(t, h, http.MethodGet, "/api/sections", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "section_hero")
}

func TestTeamMembers_ActiveFilter(t *testing.T) {
	h := newTestHandler(t)
	token := loginAdmin(t, h)

	w := doJSON(t, h, http.MethodPost, "/api/team-members", map[string]any{
		"name": "Alice", "role": "Dev",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Data team.Member `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, h, http.MethodPut, "/api/team-members/"+created.Data.ID, map[string]any{
		"isActive": false,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h, http.MethodGet, "/api/team-members?active=true", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Alice")

	w = doJSON(t, h, http.MethodGet, "/api/team-members", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice")
}

func TestContact_Validation(t *testing.T) {
	h := newTestHandler(t)

	w := doJSON(t, h, http.MethodPost, "/api/contact", map[string]string{
		"name": "Visitor", "email": "v@example.com", "subject": "Hi", "message": "Hello",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Message sent successfully")

	w = doJSON(t, h, http.MethodPost, "/api/contact", map[string]string{
		"name": "Visitor", "email": "v@example.com", "subject": "Hi",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code, "missing message")

	w = doJSON(t, h, http.MethodPost, "/api/contact", map[string]string{
		"name": "Visitor", "email": "not-an-email", "subject": "Hi", "message": "Hello",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code, "bad email")
}

func multipartUpload(t *testing.T, contentType, filename string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename=%q`, filename))
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUpload(t *testing.T) {
	h := newTestHandler(t)
	token := loginAdmin(t, h)

	body, contentType := multipartUpload(t, "image/png", "pic.png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []uploadedFile `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Contains(t, resp.Data[0].URL, "/uploads/")
	assert.Equal(t, int64(len("png-bytes")), resp.Data[0].Size)
}

func TestUpload_RejectsDisallowedType(t *testing.T) {
	h := newTestHandler(t)
	token := loginAdmin(t, h)

	body, contentType := multipartUpload(t, "application/x-msdownload", "evil.exe", []byte("mz"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not allowed")
}

func TestUpload_RequiresAuth(t *testing.T) {
	h := newTestHandler(t)

	body, contentType := multipartUpload(t, "image/png", "pic.png", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCORS_AllowListedOrigin(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.CORSAllowedOrigins = []string{"https://portfolio.example.com"}

	var served bool
	h := CORS(cfg.CORSAllowedOrigins)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Origin", "https://portfolio.example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.True(t, served)
	assert.Equal(t, "https://portfolio.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	req.Header.Set("Origin", "https://portfolio.example.com")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLoginRateLimit(t *testing.T) {
	limiter := NewIPRateLimiter(2)
	h := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	// a different client keeps its own bucket
	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID_Header(t *testing.T) {
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := r.Context().Value(contextKeyRequestID).(string)
		assert.NotEmpty(t, id)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
