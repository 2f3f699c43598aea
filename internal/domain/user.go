package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// 角色 / 账号状态取值
const (
	RoleParent = "parent"
	RoleStaff  = "staff"
	RoleAdmin  = "admin"

	UserPending  = "pending"
	UserVerified = "verified"
	UserApproved = "approved"
	UserRejected = "rejected"
)

type User struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	Name         string         `gorm:"size:64;not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string         `gorm:"size:100;not null" json:"-"`
	Role         string         `gorm:"size:16;not null" json:"role"`
	Status       string         `gorm:"size:16;not null;default:pending" json:"status"`
	Phone        string         `gorm:"size:32" json:"phone,omitempty"`
	Address      string         `gorm:"size:255" json:"address,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// CanLogin 仅 verified / approved 允许登录
func (u *User) CanLogin() bool {
	return u.Status == UserVerified || u.Status == UserApproved
}

type ListUsersQuery struct {
	Offset      int
	Limit       int
	Search      string // email / name 模糊搜
	WithDeleted bool
}

// UserRepository 约定：未命中返回 (nil, nil)
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, q ListUsersQuery) ([]User, int64, error)
	UpdateProfile(ctx context.Context, id, name, phone, address string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateStatus(ctx context.Context, id, status string) error
	SoftDelete(ctx context.Context, id string) error
}
