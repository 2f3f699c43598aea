package repo

import (
	"context"

	"gorm.io/gorm"

	"adoptlink/internal/domain"
)

type TaskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) *TaskRepo { return &TaskRepo{db: db} }

func (r *TaskRepo) ListByStaff(ctx context.Context, staffID string) ([]domain.TaskDetail, error) {
	var items []domain.TaskDetail
	err := r.db.WithContext(ctx).
		Table("staff_tasks st").
		Select("st.*, u.name AS assigned_by_name").
		Joins("LEFT JOIN users u ON u.id = st.assigned_by").
		Where("st.staff_id = ?", staffID).
		Order("st.due_date ASC").
		Scan(&items).Error
	return items, err
}

func (r *TaskRepo) UpdateStatus(ctx context.Context, id, staffID, status, notes string) error {
	res := r.db.WithContext(ctx).Model(&domain.StaffTask{}).
		Where("id = ? AND staff_id = ?", id, staffID).
		Updates(map[string]any{"status": status, "notes": notes})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
