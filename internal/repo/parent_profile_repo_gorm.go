package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"adoptlink/internal/domain"
)

type ParentProfileRepo struct{ db *gorm.DB }

func NewParentProfileRepo(db *gorm.DB) *ParentProfileRepo { return &ParentProfileRepo{db: db} }

func (r *ParentProfileRepo) Create(ctx context.Context, p *domain.ParentProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ParentProfileRepo) FindByUserID(ctx context.Context, userID string) (*domain.ParentProfile, error) {
	var p domain.ParentProfile
	err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ParentProfileRepo) Update(ctx context.Context, p *domain.ParentProfile) error {
	return r.db.WithContext(ctx).Model(&domain.ParentProfile{}).
		Where("user_id = ?", p.UserID).
		Updates(map[string]any{
			"marital_status":    p.MaritalStatus,
			"spouse_name":       p.SpouseName,
			"children_count":    p.ChildrenCount,
			"occupation":        p.Occupation,
			"annual_income":     p.AnnualIncome,
			"home_type":         p.HomeType,
			"family_background": p.FamilyBackground,
		}).Error
}
