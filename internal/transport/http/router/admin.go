package router

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adoptlink/internal/core/auth"
	"adoptlink/internal/domain"
	"adoptlink/internal/transport/http/handler"
	mdw "adoptlink/internal/transport/http/middleware"
)

// NewAdminEngine 后台引擎：整组只放行 admin 角色
func NewAdminEngine(l *zap.Logger, jwter *auth.JWTer, users domain.UserRepository, h *handler.AdminHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimitPerIP(50, 100),
		mdw.ConcurrencyLimit(100),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	admin := r.Group("/admin/v1")
	admin.Use(mdw.Authenticate(jwter, users), mdw.RequireRoles(domain.RoleAdmin))
	{
		admin.GET("/users", h.ListUsers)
		admin.PUT("/users/:id/status", h.SetUserStatus)
		admin.POST("/users/:id/ban", h.BanUser)
		admin.GET("/dashboard", h.Dashboard)
	}

	return r
}
