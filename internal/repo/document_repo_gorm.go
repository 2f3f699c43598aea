package repo

import (
	"context"

	"gorm.io/gorm"

	"adoptlink/internal/domain"
)

type DocumentRepo struct{ db *gorm.DB }

func NewDocumentRepo(db *gorm.DB) *DocumentRepo { return &DocumentRepo{db: db} }

func (r *DocumentRepo) Create(ctx context.Context, d *domain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepo) ListByUser(ctx context.Context, userID string) ([]domain.Document, error) {
	var docs []domain.Document
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&docs).Error
	return docs, err
}

func (r *DocumentRepo) ListPending(ctx context.Context) ([]domain.PendingDocument, error) {
	var items []domain.PendingDocument
	err := r.db.WithContext(ctx).
		Table("documents d").
		Select("d.*, u.name AS parent_name").
		Joins("JOIN users u ON u.id = d.user_id").
		Where("d.status = ?", domain.DocumentPending).
		Order("d.submitted_at DESC").
		Scan(&items).Error
	return items, err
}

func (r *DocumentRepo) Review(ctx context.Context, id, status, reviewerID, notes string) error {
	res := r.db.WithContext(ctx).Model(&domain.Document{}).
		Where("id = ? AND status = ?", id, domain.DocumentPending).
		Updates(map[string]any{"status": status, "verified_by": reviewerID, "review_notes": notes})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
