package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/inkwave/inkwave-api/internal/config"
	"github.com/inkwave/inkwave-api/internal/model"
	"github.com/inkwave/inkwave-api/internal/testutil"
	"github.com/inkwave/inkwave-api/pkg/session"
)

type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	config.GlobalConfig = &config.Config{
		Comment: config.CommentConfig{MaxReplyDepth: 1},
	}

	db := testutil.NewTestDB(t)
	store := session.NewStore(db, &config.SessionConfig{ExpireHours: 1})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	Setup(r, db, nil, store)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, cookies []*http.Cookie) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func registerAndLogin(t *testing.T, r *gin.Engine, email string) []*http.Cookie {
	t.Helper()
	body := `{"email":"` + email + `","password":"secret123","full_name":"Test User"}`
	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func TestRegisterDuplicateEmailMessage(t *testing.T) {
	r, _ := setupTestRouter(t)

	body := `{"email":"alice@example.com","password":"secret123","full_name":"Alice Zhang"}`
	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/register", body, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered", resp.Message)
}

func TestRegisterValidation(t *testing.T) {
	r, _ := setupTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"email":"not-an-email","password":"secret123","full_name":"X Y"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","full_name":"X Y"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginFlow(t *testing.T) {
	r, _ := setupTestRouter(t)
	registerAndLogin(t, r, "alice@example.com")

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"secret123"}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Result().Cookies())

	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrongpass"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredForMutations(t *testing.T) {
	r, db := setupTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/articles",
		`{"title":"Hello","content":"World"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 未登录的请求不产生任何写入
	var count int64
	require.NoError(t, db.Model(&model.Article{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestMeRequiresSession(t *testing.T) {
	r, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeStripsPassword(t *testing.T) {
	r, _ := setupTestRouter(t)
	cookies := registerAndLogin(t, r, "alice@example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.Contains(t, w.Body.String(), "alice@example.com")
}

func TestArticleCreateAndFetch(t *testing.T) {
	r, _ := setupTestRouter(t)
	cookies := registerAndLogin(t, r, "author@example.com")

	w, resp := doJSON(t, r, http.MethodPost, "/api/articles",
		`{"title":"Hello","content":"World","tags":["go"]}`, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var created model.Article
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	require.NotZero(t, created.ID)

	// 未登录也能读文章列表和详情
	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "Hello")

	req = httptest.NewRequest(http.MethodGet, "/api/articles/9999", nil)
	w2 = httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusNotFound, w2.Code)
}

func TestLogoutDestroysSession(t *testing.T) {
	r, _ := setupTestRouter(t)
	cookies := registerAndLogin(t, r, "alice@example.com")

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/logout", "", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	// 注销后旧会话立即失效
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
}
