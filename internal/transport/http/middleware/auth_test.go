package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adoptlink/internal/core/auth"
	"adoptlink/internal/domain"
	"adoptlink/internal/testutil"
	resp "adoptlink/internal/transport/http/response"
)

func newGuardedEngine(j *auth.JWTer, m *testutil.MemStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authed := r.Group("/", Authenticate(j, m.Stores().Users))
	authed.GET("/me", func(c *gin.Context) {
		u, _ := CurrentUser(c)
		resp.OK(c, gin.H{"id": u.ID, "role": u.Role})
	})
	authed.GET("/staff-only", RequireRoles(domain.RoleStaff, domain.RoleAdmin), func(c *gin.Context) {
		resp.OK(c, nil)
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateRequiresBearer(t *testing.T) {
	m := testutil.NewMemStore()
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "adoptlink", TTL: time.Hour}
	r := newGuardedEngine(j, m)

	w := doGet(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doGet(r, "/me", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// token 合法但用户行已不存在，同样 401
func TestAuthenticateDeletedUser(t *testing.T) {
	m := testutil.NewMemStore()
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "adoptlink", TTL: time.Hour}
	m.Users["u-1"] = domain.User{ID: "u-1", Role: domain.RoleParent, Status: domain.UserVerified}
	tok, err := j.Issue("u-1", domain.RoleParent)
	require.NoError(t, err)

	r := newGuardedEngine(j, m)
	w := doGet(r, "/me", tok)
	assert.Equal(t, http.StatusOK, w.Code)

	delete(m.Users, "u-1")
	w = doGet(r, "/me", tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

// 角色闸门比对库里的角色，不信 token 里的
func TestRequireRolesUsesStoredRole(t *testing.T) {
	m := testutil.NewMemStore()
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "adoptlink", TTL: time.Hour}
	m.Users["p-1"] = domain.User{ID: "p-1", Role: domain.RoleParent, Status: domain.UserVerified}
	m.Users["s-1"] = domain.User{ID: "s-1", Role: domain.RoleStaff, Status: domain.UserVerified}
	r := newGuardedEngine(j, m)

	// token 里伪称 staff，库里仍是 parent
	tok, err := j.Issue("p-1", domain.RoleStaff)
	require.NoError(t, err)
	w := doGet(r, "/staff-only", tok)
	assert.Equal(t, http.StatusForbidden, w.Code)

	tok, err = j.Issue("s-1", domain.RoleStaff)
	require.NoError(t, err)
	w = doGet(r, "/staff-only", tok)
	assert.Equal(t, http.StatusOK, w.Code)
}
