package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"adoptlink/internal/core/auth"
	"adoptlink/internal/domain"
	"adoptlink/internal/transport/http/handler"
	mdw "adoptlink/internal/transport/http/middleware"
)

type APIDeps struct {
	Log   *zap.Logger
	JWT   *auth.JWTer
	Users domain.UserRepository

	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Children     *handler.ChildHandler
	Applications *handler.ApplicationHandler
	Visits       *handler.VisitHandler
	Documents    *handler.DocumentHandler
	Staff        *handler.StaffHandler
	Admin        *handler.AdminHandler
}

func NewAPIEngine(d APIDeps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.Default(),
	)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// 无需登录
	api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	api.POST("/auth/register", d.Auth.Register)
	api.POST("/auth/login", d.Auth.Login)

	// 登录即可（身份从库里重查）
	authed := api.Group("")
	authed.Use(mdw.Authenticate(d.JWT, d.Users))
	{
		authed.GET("/auth/profile", d.Auth.Profile)

		authed.PUT("/users/profile", d.User.UpdateProfile)
		authed.PUT("/users/change-password", d.User.ChangePassword)

		authed.GET("/children", d.Children.List)
		authed.GET("/children/:id", d.Children.Get)

		authed.GET("/visits/my-visits", d.Visits.MyVisits)

		authed.GET("/documents/my-documents", d.Documents.MyDocuments)
		authed.POST("/documents", d.Documents.Upload)
	}

	// parent 专属
	parent := authed.Group("")
	parent.Use(mdw.RequireRoles(domain.RoleParent))
	{
		parent.POST("/applications", d.Applications.Submit)
		parent.GET("/applications/my-applications", d.Applications.MyApplications)
	}

	// staff / admin
	staff := authed.Group("/staff")
	staff.Use(mdw.RequireRoles(domain.RoleStaff, domain.RoleAdmin))
	{
		staff.GET("/tasks", d.Staff.Tasks)
		staff.PUT("/tasks/:id", d.Staff.UpdateTask)
		staff.GET("/documents", d.Staff.PendingDocuments)
		staff.PUT("/documents/:id", d.Staff.ReviewDocument)
	}

	// 仅 admin
	admin := authed.Group("/admin")
	admin.Use(mdw.RequireRoles(domain.RoleAdmin))
	{
		admin.GET("/dashboard", d.Admin.Dashboard)
	}

	return r
}
