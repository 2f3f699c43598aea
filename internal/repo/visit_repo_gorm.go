package repo

import (
	"context"

	"gorm.io/gorm"

	"adoptlink/internal/domain"
)

type VisitRepo struct{ db *gorm.DB }

func NewVisitRepo(db *gorm.DB) *VisitRepo { return &VisitRepo{db: db} }

func (r *VisitRepo) ListByParent(ctx context.Context, parentID string) ([]domain.VisitDetail, error) {
	var items []domain.VisitDetail
	err := r.db.WithContext(ctx).
		Table("home_visits hv").
		Select("hv.*, u.name AS staff_name, c.name AS child_name").
		Joins("JOIN adoption_applications a ON a.id = hv.application_id").
		Joins("JOIN users u ON u.id = hv.staff_id").
		Joins("JOIN children c ON c.id = a.child_id").
		Where("a.parent_id = ?", parentID).
		Order("hv.scheduled_date DESC").
		Scan(&items).Error
	return items, err
}

func (r *VisitRepo) ListByStaff(ctx context.Context, staffID string) ([]domain.VisitDetail, error) {
	var items []domain.VisitDetail
	err := r.db.WithContext(ctx).
		Table("home_visits hv").
		Select("hv.*, u.name AS parent_name, c.name AS child_name").
		Joins("JOIN adoption_applications a ON a.id = hv.application_id").
		Joins("JOIN users u ON u.id = a.parent_id").
		Joins("JOIN children c ON c.id = a.child_id").
		Where("hv.staff_id = ?", staffID).
		Order("hv.scheduled_date DESC").
		Scan(&items).Error
	return items, err
}
