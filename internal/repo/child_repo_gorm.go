package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"adoptlink/internal/domain"
)

type ChildRepo struct{ db *gorm.DB }

func NewChildRepo(db *gorm.DB) *ChildRepo { return &ChildRepo{db: db} }

func (r *ChildRepo) ListVisible(ctx context.Context, viewerID string) ([]domain.ChildListItem, error) {
	var items []domain.ChildListItem
	err := r.db.WithContext(ctx).
		Table("children c").
		Select("c.*, a.id AS application_id, a.status AS application_status").
		Joins("LEFT JOIN adoption_applications a ON a.child_id = c.id AND a.parent_id = ?", viewerID).
		Where("c.status <> ? OR a.parent_id = ?", domain.ChildAdopted, viewerID).
		Order("c.created_at DESC").
		Scan(&items).Error
	return items, err
}

func (r *ChildRepo) FindByID(ctx context.Context, id string) (*domain.Child, error) {
	var c domain.Child
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChildRepo) FindDetail(ctx context.Context, id, viewerID string) (*domain.ChildListItem, error) {
	var item domain.ChildListItem
	res := r.db.WithContext(ctx).
		Table("children c").
		Select("c.*, a.id AS application_id, a.status AS application_status").
		Joins("LEFT JOIN adoption_applications a ON a.child_id = c.id AND a.parent_id = ?", viewerID).
		Where("c.id = ?", id).
		Limit(1).
		Scan(&item)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &item, nil
}

func (r *ChildRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).Model(&domain.Child{}).Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
