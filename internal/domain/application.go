package domain

import (
	"context"
	"time"
)

const (
	ApplicationPending     = "pending"
	ApplicationUnderReview = "under_review"
	ApplicationApproved    = "approved"
	ApplicationRejected    = "rejected"
)

// AdoptionApplication 同一 (parent, child) 只允许一条
type AdoptionApplication struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	ParentID        string    `gorm:"size:36;not null;uniqueIndex:uniq_parent_child" json:"parent_id"`
	ChildID         string    `gorm:"size:36;not null;uniqueIndex:uniq_parent_child" json:"child_id"`
	AssignedStaffID *string   `gorm:"size:36" json:"assigned_staff_id,omitempty"`
	Status          string    `gorm:"size:16;not null;default:pending" json:"status"`
	ApplicationDate time.Time `json:"application_date"`
	Notes           string    `gorm:"size:1000" json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (AdoptionApplication) TableName() string { return "adoption_applications" }

type ApplicationDetail struct {
	AdoptionApplication
	ChildName         string    `json:"child_name"`
	ChildDateOfBirth  time.Time `json:"date_of_birth"`
	ChildGender       string    `json:"gender"`
	ChildPhotoURL     string    `json:"photo_url,omitempty"`
	AssignedStaffName string    `json:"assigned_staff_name,omitempty"`
}

type ApplicationRepository interface {
	Exists(ctx context.Context, parentID, childID string) (bool, error)
	Create(ctx context.Context, a *AdoptionApplication) error
	ListByParent(ctx context.Context, parentID string) ([]ApplicationDetail, error)
}
