package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"adoptlink/internal/core/auth"
	"adoptlink/internal/domain"
	resp "adoptlink/internal/transport/http/response"
)

const (
	keyUser   = "currentUser"
	keyUserID = "userId"
)

// Authenticate 两段式校验：token 合法 + 用户行仍然存在。
// 数据库是身份事实来源，token 里的角色只用于日志；
// 用户被删除后即使 token 未过期也一律 401。
func Authenticate(j *auth.JWTer, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Abort(c, http.StatusUnauthorized, "access token required")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.Abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		u, err := users.FindByID(c.Request.Context(), claims.UID)
		if err != nil {
			resp.Abort(c, http.StatusInternalServerError, "internal server error")
			return
		}
		if u == nil {
			resp.Abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		c.Set(keyUser, u)
		c.Set(keyUserID, u.ID)
		c.Next()
	}
}

// RequireRoles 路由级角色闸门；比对的是库里刚查出来的角色，
// 不做 admin→staff 放宽（那只发生在登录角色匹配时）
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			resp.Abort(c, http.StatusUnauthorized, "access token required")
			return
		}
		if _, ok := allowed[u.Role]; !ok {
			resp.Abort(c, http.StatusForbidden, "insufficient permissions")
			return
		}
		c.Next()
	}
}

// CurrentUser Authenticate 之后可用，拿到重新解析过的用户行
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(keyUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*domain.User)
	return u, ok
}
