package domain

import "context"

// ParentProfile parent 角色用户的 1:1 扩展信息，注册时一并创建
type ParentProfile struct {
	ID               string  `gorm:"primaryKey;size:36" json:"id"`
	UserID           string  `gorm:"uniqueIndex;size:36;not null" json:"userId"`
	MaritalStatus    string  `gorm:"size:32" json:"marital_status,omitempty"`
	SpouseName       string  `gorm:"size:64" json:"spouse_name,omitempty"`
	ChildrenCount    int     `json:"children_count"`
	Occupation       string  `gorm:"size:64" json:"occupation,omitempty"`
	AnnualIncome     float64 `json:"annual_income"`
	HomeType         string  `gorm:"size:32" json:"home_type,omitempty"`
	FamilyBackground string  `gorm:"size:1000" json:"family_background,omitempty"`
}

func (ParentProfile) TableName() string { return "parent_profiles" }

type ParentProfileRepository interface {
	Create(ctx context.Context, p *ParentProfile) error
	FindByUserID(ctx context.Context, userID string) (*ParentProfile, error)
	Update(ctx context.Context, p *ParentProfile) error
}
