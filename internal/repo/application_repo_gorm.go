package repo

import (
	"context"

	"gorm.io/gorm"

	"adoptlink/internal/domain"
)

type ApplicationRepo struct{ db *gorm.DB }

func NewApplicationRepo(db *gorm.DB) *ApplicationRepo { return &ApplicationRepo{db: db} }

func (r *ApplicationRepo) Exists(ctx context.Context, parentID, childID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.AdoptionApplication{}).
		Where("parent_id = ? AND child_id = ?", parentID, childID).
		Count(&n).Error
	return n > 0, err
}

func (r *ApplicationRepo) Create(ctx context.Context, a *domain.AdoptionApplication) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if isDupKey(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *ApplicationRepo) ListByParent(ctx context.Context, parentID string) ([]domain.ApplicationDetail, error) {
	var items []domain.ApplicationDetail
	err := r.db.WithContext(ctx).
		Table("adoption_applications a").
		Select(`a.*, c.name AS child_name, c.date_of_birth AS child_date_of_birth,
			c.gender AS child_gender, c.photo_url AS child_photo_url,
			u.name AS assigned_staff_name`).
		Joins("JOIN children c ON c.id = a.child_id").
		Joins("LEFT JOIN users u ON u.id = a.assigned_staff_id").
		Where("a.parent_id = ?", parentID).
		Order("a.created_at DESC").
		Scan(&items).Error
	return items, err
}
