package repo

import (
	"context"

	"gorm.io/gorm"

	"adoptlink/internal/domain"
)

type StatsRepo struct{ db *gorm.DB }

func NewStatsRepo(db *gorm.DB) *StatsRepo { return &StatsRepo{db: db} }

func (r *StatsRepo) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	db := r.db.WithContext(ctx)
	var s domain.DashboardStats

	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&s.TotalChildren, db.Model(&domain.Child{})},
		{&s.AdoptedChildren, db.Model(&domain.Child{}).Where("status = ?", domain.ChildAdopted)},
		{&s.VerifiedParents, db.Model(&domain.User{}).Where("role = ? AND status = ?", domain.RoleParent, domain.UserVerified)},
		{&s.PendingDocuments, db.Model(&domain.Document{}).Where("status = ?", domain.DocumentPending)},
		{&s.PendingApplications, db.Model(&domain.AdoptionApplication{}).Where("status = ?", domain.ApplicationPending)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &s, nil
}
