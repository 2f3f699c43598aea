package service

import (
	"context"

	"adoptlink/internal/domain"
	"adoptlink/pkg/utils"
)

type UserService struct {
	users domain.UserRepository
	tx    domain.TxRunner
}

func NewUserService(users domain.UserRepository, tx domain.TxRunner) *UserService {
	return &UserService{users: users, tx: tx}
}

type UpdateProfileInput struct {
	Name    string
	Phone   string
	Address string

	// parent 扩展字段，非 parent 忽略
	MaritalStatus    string
	SpouseName       string
	ChildrenCount    int
	Occupation       string
	AnnualIncome     float64
	HomeType         string
	FamilyBackground string
}

// UpdateProfile 用户基础信息与 parent 档案一次事务内更新
func (s *UserService) UpdateProfile(ctx context.Context, u *domain.User, in UpdateProfileInput) error {
	return s.tx.InTx(ctx, func(st domain.Stores) error {
		if err := st.Users.UpdateProfile(ctx, u.ID, in.Name, in.Phone, in.Address); err != nil {
			return err
		}
		if u.Role != domain.RoleParent {
			return nil
		}
		return st.Profiles.Update(ctx, &domain.ParentProfile{
			UserID:           u.ID,
			MaritalStatus:    in.MaritalStatus,
			SpouseName:       in.SpouseName,
			ChildrenCount:    in.ChildrenCount,
			Occupation:       in.Occupation,
			AnnualIncome:     in.AnnualIncome,
			HomeType:         in.HomeType,
			FamilyBackground: in.FamilyBackground,
		})
	})
}

// ChangePassword 先校验旧密码；旧密码错误按 InvalidCredentials 处理
func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	if !utils.CheckPassword(current, u.PasswordHash) {
		return domain.ErrInvalidCredentials
	}
	return s.users.UpdatePassword(ctx, userID, utils.HashPassword(next))
}
