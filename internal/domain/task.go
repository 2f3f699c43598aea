package domain

import (
	"context"
	"time"
)

const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
	TaskOnHold     = "on_hold"
)

type StaffTask struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	StaffID       string    `gorm:"size:36;not null;index" json:"staff_id"`
	AssignedBy    string    `gorm:"size:36;not null" json:"assigned_by"`
	ApplicationID *string   `gorm:"size:36" json:"application_id,omitempty"`
	Title         string    `gorm:"size:128;not null" json:"title"`
	Description   string    `gorm:"size:1000" json:"description,omitempty"`
	Status        string    `gorm:"size:16;not null;default:pending" json:"status"`
	DueDate       time.Time `json:"due_date"`
	Notes         string    `gorm:"size:1000" json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (StaffTask) TableName() string { return "staff_tasks" }

type TaskDetail struct {
	StaffTask
	AssignedByName string `json:"assigned_by_name"`
}

type TaskRepository interface {
	ListByStaff(ctx context.Context, staffID string) ([]TaskDetail, error)
	// UpdateStatus 仅允许任务归属者更新，未命中返回 ErrNotFound
	UpdateStatus(ctx context.Context, id, staffID, status, notes string) error
}
