package router

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
	"go.uber.org/zap"

	"adoptlink/internal/core/auth"
	"adoptlink/internal/domain"
	"adoptlink/internal/service"
	"adoptlink/internal/testutil"
	"adoptlink/internal/transport/http/handler"
)

func newTestEngine(t *testing.T, m *testutil.MemStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	st := m.Stores()
	j := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "adoptlink", TTL: 24 * time.Hour}

	authSvc := service.NewAuthService(st.Users, st.Profiles, m, j)
	userSvc := service.NewUserService(st.Users, m)
	childSvc := service.NewChildService(st.Children)
	appSvc := service.NewApplicationService(st.Applications, st.Children, m)
	visitSvc := service.NewVisitService(st.Visits)
	docSvc := service.NewDocumentService(st.Documents)
	staffSvc := service.NewStaffService(st.Tasks, st.Documents)
	adminSvc := service.NewAdminService(st.Users, st.Stats, nil)

	return NewAPIEngine(APIDeps{
		Log:          log,
		JWT:          j,
		Users:        st.Users,
		Auth:         handler.NewAuthHandler(authSvc, log),
		User:         handler.NewUserHandler(userSvc, log),
		Children:     handler.NewChildHandler(childSvc, log),
		Applications: handler.NewApplicationHandler(appSvc, log),
		Visits:       handler.NewVisitHandler(visitSvc, log),
		Documents:    handler.NewDocumentHandler(docSvc, t.TempDir(), log),
		Staff:        handler.NewStaffHandler(staffSvc, log),
		Admin:        handler.NewAdminHandler(adminSvc, log),
	})
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

// 注册 → 错角色登录被拒 → 正确登录 → 拉取档案
func TestRegisterLoginProfileFlow(t *testing.T) {
	m := testutil.NewMemStore()
	r := newTestEngine(t, m)

	w, env := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Alice", "email": "alice@x.com", "password": "secret123", "role": "parent",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, env.Success)

	// 用 staff 身份登录 parent 账号
	w, _ = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "alice@x.com", "password": "secret123", "role": "staff",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "alice@x.com", "password": "secret123", "role": "parent",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.Token)
	assert.Equal(t, domain.UserVerified, login.User.Status)

	w, env = doJSON(r, http.MethodGet, "/api/auth/profile", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var profile struct {
		Role       string                `json:"role"`
		Status     string                `json:"status"`
		ParentInfo *domain.ParentProfile `json:"parent_info"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, domain.RoleParent, profile.Role)
	assert.Equal(t, domain.UserVerified, profile.Status)
	assert.NotNil(t, profile.ParentInfo, "parent 档案应随注册创建")
}

func TestRegisterValidation(t *testing.T) {
	m := testutil.NewMemStore()
	r := newTestEngine(t, m)

	w, _ := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "X", "email": "not-an-email", "password": "secret123", "role": "parent",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "X", "email": "x@x.com", "password": "secret123", "role": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 重复邮箱
	w, _ = doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "A", "email": "dup@x.com", "password": "secret123", "role": "parent",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w, env := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "B", "email": "dup@x.com", "password": "secret123", "role": "parent",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, env.Success)
}

func loginAs(t *testing.T, r *gin.Engine, email, password, role string) string {
	t.Helper()
	w, env := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": email, "password": password, "role": role,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	return login.Token
}

func TestApplicationRoutesParentOnly(t *testing.T) {
	m := testutil.NewMemStore()
	r := newTestEngine(t, m)
	m.Children["c-1"] = domain.Child{ID: "c-1", Name: "Mia", Status: domain.ChildAvailable}

	for _, u := range []gin.H{
		{"name": "Alice", "email": "alice@x.com", "password": "secret123", "role": "parent"},
		{"name": "Sam", "email": "sam@x.com", "password": "secret123", "role": "staff"},
	} {
		w, _ := doJSON(r, http.MethodPost, "/api/auth/register", "", u)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	parentTok := loginAs(t, r, "alice@x.com", "secret123", "parent")
	staffTok := loginAs(t, r, "sam@x.com", "secret123", "staff")

	// staff 不能提交领养申请
	w, _ := doJSON(r, http.MethodPost, "/api/applications", staffTok, gin.H{"child_id": "c-1"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doJSON(r, http.MethodPost, "/api/applications", parentTok, gin.H{"child_id": "c-1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, domain.ChildPending, m.Children["c-1"].Status)

	// 重复提交
	w, _ = doJSON(r, http.MethodPost, "/api/applications", parentTok, gin.H{"child_id": "c-1"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// 不存在的儿童
	w, _ = doJSON(r, http.MethodPost, "/api/applications", parentTok, gin.H{"child_id": "nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 管理端看板对非 admin 关闭
	w, _ = doJSON(r, http.MethodGet, "/api/admin/dashboard", parentTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = doJSON(r, http.MethodGet, "/api/admin/dashboard", staffTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
