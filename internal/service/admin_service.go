package service

import (
	"context"
	"time"

	"adoptlink/internal/core/cache"
	"adoptlink/internal/domain"
)

const (
	dashboardCacheKey = "adoptlink:dashboard:stats"
	dashboardCacheTTL = 30 * time.Second
)

type AdminService struct {
	users domain.UserRepository
	stats domain.StatsRepository
	cache *cache.Cache // 可为 nil，直接回源
}

func NewAdminService(users domain.UserRepository, stats domain.StatsRepository, c *cache.Cache) *AdminService {
	return &AdminService{users: users, stats: stats, cache: c}
}

func (s *AdminService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	if s.cache == nil {
		return s.stats.DashboardStats(ctx)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, dashboardCacheKey, dashboardCacheTTL,
		func(ctx context.Context) (*domain.DashboardStats, error) {
			return s.stats.DashboardStats(ctx)
		})
}

func (s *AdminService) ListUsers(ctx context.Context, q domain.ListUsersQuery) ([]domain.User, int64, error) {
	return s.users.List(ctx, q)
}

func (s *AdminService) SetUserStatus(ctx context.Context, id, status string) error {
	return s.users.UpdateStatus(ctx, id, status)
}

// BanUser 软删；被封禁用户未过期的 token 在下次请求被 Access 校验挡下
func (s *AdminService) BanUser(ctx context.Context, id string) error {
	return s.users.SoftDelete(ctx, id)
}
