package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"adoptlink/internal/core/auth"
	"adoptlink/internal/core/cache"
	"adoptlink/internal/core/config"
	"adoptlink/internal/core/database"
	"adoptlink/internal/core/logger"
	"adoptlink/internal/core/server"
	"adoptlink/internal/domain"
	"adoptlink/internal/repo"
	"adoptlink/internal/service"
	"adoptlink/internal/transport/http/handler"
	"adoptlink/internal/transport/http/router"
	"adoptlink/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	// 数据库（失败直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{}, &domain.ParentProfile{}, &domain.Child{},
			&domain.AdoptionApplication{}, &domain.HomeVisit{},
			&domain.Document{}, &domain.StaffTask{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// JWT
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	// 仓储 + 服务
	stores := repo.NewStores(db)
	tx := repo.NewGormTxRunner(db)

	var c *cache.Cache
	if cfg.Redis.Addr != "" {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}

	authSvc := service.NewAuthService(stores.Users, stores.Profiles, tx, jwter)
	userSvc := service.NewUserService(stores.Users, tx)
	childSvc := service.NewChildService(stores.Children)
	appSvc := service.NewApplicationService(stores.Applications, stores.Children, tx)
	visitSvc := service.NewVisitService(stores.Visits)
	docSvc := service.NewDocumentService(stores.Documents)
	staffSvc := service.NewStaffService(stores.Tasks, stores.Documents)
	adminSvc := service.NewAdminService(stores.Users, stores.Stats, c)

	seedAdmin(stores.Users, cfg, log)

	r := router.NewAPIEngine(router.APIDeps{
		Log:          log,
		JWT:          jwter,
		Users:        stores.Users,
		Auth:         handler.NewAuthHandler(authSvc, log),
		User:         handler.NewUserHandler(userSvc, log),
		Children:     handler.NewChildHandler(childSvc, log),
		Applications: handler.NewApplicationHandler(appSvc, log),
		Visits:       handler.NewVisitHandler(visitSvc, log),
		Documents:    handler.NewDocumentHandler(docSvc, cfg.Upload.Dir, log),
		Staff:        handler.NewStaffHandler(staffSvc, log),
		Admin:        handler.NewAdminHandler(adminSvc, log),
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/api/health"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}

// seedAdmin admin 不开放注册，启动时保证有一个后台账号
func seedAdmin(users domain.UserRepository, cfg *config.Config, l *zap.Logger) {
	email := cfg.Seed.AdminEmail
	if email == "" {
		return
	}
	ctx := context.Background()
	existing, err := users.FindByEmail(ctx, email)
	if err != nil {
		l.Warn("seed admin check failed", zap.Error(err))
		return
	}
	if existing != nil {
		return
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Name:         "Admin User",
		Email:        email,
		PasswordHash: utils.HashPassword(cfg.Seed.AdminPassword),
		Role:         domain.RoleAdmin,
		Status:       domain.UserVerified,
	}
	if err := users.Create(ctx, u); err != nil {
		l.Warn("seed admin failed", zap.Error(err))
		return
	}
	l.Info("admin user seeded", zap.String("email", email))
}
