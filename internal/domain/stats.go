package domain

import "context"

// DashboardStats 管理端首页聚合统计
type DashboardStats struct {
	TotalChildren       int64 `json:"total_children"`
	AdoptedChildren     int64 `json:"adopted_children"`
	VerifiedParents     int64 `json:"verified_parents"`
	PendingDocuments    int64 `json:"pending_documents"`
	PendingApplications int64 `json:"pending_applications"`
}

type StatsRepository interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}
