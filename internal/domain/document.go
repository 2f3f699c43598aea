package domain

import (
	"context"
	"time"
)

const (
	DocumentPending  = "pending"
	DocumentVerified = "verified"
	DocumentRejected = "rejected"
)

type Document struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36;not null;index" json:"user_id"`
	Type        string    `gorm:"size:64;not null" json:"type"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	FilePath    string    `gorm:"size:255;not null" json:"-"`
	Status      string    `gorm:"size:16;not null;default:pending" json:"status"`
	VerifiedBy  *string   `gorm:"size:36" json:"verified_by,omitempty"`
	ReviewNotes string    `gorm:"size:1000" json:"review_notes,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Document) TableName() string { return "documents" }

type PendingDocument struct {
	Document
	ParentName string `json:"parent_name"`
}

type DocumentRepository interface {
	Create(ctx context.Context, d *Document) error
	ListByUser(ctx context.Context, userID string) ([]Document, error)
	// ListPending 待审核文档（staff 侧），附提交人姓名
	ListPending(ctx context.Context) ([]PendingDocument, error)
	Review(ctx context.Context, id, status, reviewerID, notes string) error
}
