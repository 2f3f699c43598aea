package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adoptlink/internal/core/auth"
	"adoptlink/internal/domain"
	"adoptlink/internal/testutil"
	"adoptlink/pkg/utils"
)

func newAuthService(m *testutil.MemStore) *AuthService {
	st := m.Stores()
	j := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "adoptlink", TTL: 24 * time.Hour}
	return NewAuthService(st.Users, st.Profiles, m, j)
}

func TestRegisterCreatesParentWithProfile(t *testing.T) {
	m := testutil.NewMemStore()
	svc := newAuthService(m)

	id, err := svc.Register(context.Background(), RegisterInput{
		Name: "Alice", Email: "alice@x.com", Password: "secret123", Role: domain.RoleParent,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	u := m.Users[id]
	assert.Equal(t, domain.RoleParent, u.Role)
	assert.Equal(t, domain.UserVerified, u.Status)
	assert.NotEqual(t, "secret123", u.PasswordHash) // 只存散列

	p, ok := m.Profiles[id]
	require.True(t, ok, "parent 注册应连带建档")
	assert.Equal(t, id, p.UserID)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	m := testutil.NewMemStore()
	svc := newAuthService(m)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Eve", Email: "eve@x.com", Password: "secret123", Role: domain.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrAdminRegistration)
	assert.Empty(t, m.Users)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	m := testutil.NewMemStore()
	svc := newAuthService(m)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Alice", Email: "alice@x.com", Password: "secret123", Role: domain.RoleParent,
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterInput{
		Name: "Alice Again", Email: "alice@x.com", Password: "other456", Role: domain.RoleStaff,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.Len(t, m.Users, 1)
}

func seedUser(m *testutil.MemStore, id, email, password, role, status string) {
	m.Users[id] = domain.User{
		ID: id, Name: "U-" + id, Email: email,
		PasswordHash: utils.HashPassword(password),
		Role:         role, Status: status,
	}
}

func TestLoginRoleMismatch(t *testing.T) {
	m := testutil.NewMemStore()
	svc := newAuthService(m)
	seedUser(m, "u-1", "alice@x.com", "secret123", domain.RoleParent, domain.UserVerified)

	// 未知邮箱、密码错误、角色不符，对外是同一个错误
	_, err := svc.Login(context.Background(), "alice@x.com", "secret123", domain.RoleStaff)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "alice@x.com", "wrongpass", domain.RoleParent)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@x.com", "secret123", domain.RoleParent)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	m := testutil.NewMemStore()
	svc := newAuthService(m)
	seedUser(m, "u-1", "alice@x.com", "secret123", domain.RoleParent, domain.UserVerified)

	res, err := svc.Login(context.Background(), "alice@x.com", "secret123", domain.RoleParent)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "u-1", res.User.ID)
}

// admin 账号允许以 staff 身份登录，反过来不行
func TestLoginAdminAsStaff(t *testing.T) {
	m := testutil.NewMemStore()
	svc := newAuthService(m)
	seedUser(m, "a-1", "admin@x.com", "secret123", domain.RoleAdmin, domain.UserVerified)
	seedUser(m, "s-1", "staff@x.com", "secret123", domain.RoleStaff, domain.UserVerified)

	res, err := svc.Login(context.Background(), "admin@x.com", "secret123", domain.RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, res.User.Role)

	_, err = svc.Login(context.Background(), "staff@x.com", "secret123", domain.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnverifiedAccount(t *testing.T) {
	m := testutil.NewMemStore()
	svc := newAuthService(m)
	seedUser(m, "u-1", "bob@x.com", "secret123", domain.RoleParent, domain.UserPending)

	_, err := svc.Login(context.Background(), "bob@x.com", "secret123", domain.RoleParent)
	assert.ErrorIs(t, err, domain.ErrAccountNotVerified)
}

func TestProfileIncludesParentInfo(t *testing.T) {
	m := testutil.NewMemStore()
	svc := newAuthService(m)
	seedUser(m, "u-1", "alice@x.com", "secret123", domain.RoleParent, domain.UserVerified)
	m.Profiles["u-1"] = domain.ParentProfile{ID: "p-1", UserID: "u-1", Occupation: "teacher"}

	u := m.Users["u-1"]
	p, err := svc.Profile(context.Background(), &u)
	require.NoError(t, err)
	require.NotNil(t, p.ParentInfo)
	assert.Equal(t, "teacher", p.ParentInfo.Occupation)

	seedUser(m, "s-1", "staff@x.com", "secret123", domain.RoleStaff, domain.UserVerified)
	s := m.Users["s-1"]
	sp, err := svc.Profile(context.Background(), &s)
	require.NoError(t, err)
	assert.Nil(t, sp.ParentInfo)
}
