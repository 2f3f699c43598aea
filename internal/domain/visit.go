package domain

import (
	"context"
	"time"
)

const (
	VisitScheduled   = "scheduled"
	VisitCompleted   = "completed"
	VisitCancelled   = "cancelled"
	VisitRescheduled = "rescheduled"
)

type HomeVisit struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	ApplicationID string    `gorm:"size:36;not null;index" json:"application_id"`
	StaffID       string    `gorm:"size:36;not null;index" json:"staff_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Status        string    `gorm:"size:16;not null;default:scheduled" json:"status"`
	Notes         string    `gorm:"size:1000" json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (HomeVisit) TableName() string { return "home_visits" }

// VisitDetail parent 视角带 staff_name，staff 视角带 parent_name
type VisitDetail struct {
	HomeVisit
	StaffName  string `json:"staff_name,omitempty"`
	ParentName string `json:"parent_name,omitempty"`
	ChildName  string `json:"child_name"`
}

type VisitRepository interface {
	ListByParent(ctx context.Context, parentID string) ([]VisitDetail, error)
	ListByStaff(ctx context.Context, staffID string) ([]VisitDetail, error)
}
