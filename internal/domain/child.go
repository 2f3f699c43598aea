package domain

import (
	"context"
	"time"
)

const (
	ChildAvailable = "available"
	ChildPending   = "pending"
	ChildAdopted   = "adopted"
)

type Child struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:64;not null" json:"name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `gorm:"size:16" json:"gender"`
	PhotoURL    string    `gorm:"size:255" json:"photo_url,omitempty"`
	Background  string    `gorm:"size:2000" json:"background,omitempty"`
	Status      string    `gorm:"size:16;not null;default:available" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Child) TableName() string { return "children" }

// ChildListItem 列表行附带查看者自己的申请（如有）
type ChildListItem struct {
	Child
	ApplicationID     *string `json:"application_id,omitempty"`
	ApplicationStatus *string `json:"application_status,omitempty"`
}

type ChildRepository interface {
	// ListVisible 已被领养的儿童只对提交过申请的查看者可见
	ListVisible(ctx context.Context, viewerID string) ([]ChildListItem, error)
	FindByID(ctx context.Context, id string) (*Child, error)
	// FindDetail 详情行附带查看者自己的申请
	FindDetail(ctx context.Context, id, viewerID string) (*ChildListItem, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
