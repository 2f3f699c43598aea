package service

import (
	"context"
	"time"

	"adoptlink/internal/core/auth"
	"adoptlink/internal/domain"
	"adoptlink/pkg/utils"
)

type AuthService struct {
	users    domain.UserRepository
	profiles domain.ParentProfileRepository
	tx       domain.TxRunner
	jwter    *auth.JWTer
}

func NewAuthService(users domain.UserRepository, profiles domain.ParentProfileRepository, tx domain.TxRunner, jwter *auth.JWTer) *AuthService {
	return &AuthService{users: users, profiles: profiles, tx: tx, jwter: jwter}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
	Address  string
}

// Register 不自动登录；parent 用户连带建档，同一事务
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	if in.Role == domain.RoleAdmin {
		return "", domain.ErrAdminRegistration
	}
	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrDuplicateEmail
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: utils.HashPassword(in.Password),
		Role:         in.Role,
		Status:       domain.UserVerified,
		Phone:        in.Phone,
		Address:      in.Address,
	}
	err = s.tx.InTx(ctx, func(st domain.Stores) error {
		if err := st.Users.Create(ctx, u); err != nil {
			return err
		}
		if u.Role == domain.RoleParent {
			return st.Profiles.Create(ctx, &domain.ParentProfile{
				ID:     utils.NewID(),
				UserID: u.ID,
			})
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return u.ID, nil
}

type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login 未知邮箱、密码错误、角色不符一律返回同一个错误，避免账号枚举。
// 例外：admin 账号允许按 staff 身份登录。
func (s *AuthService) Login(ctx context.Context, email, password, declaredRole string) (*LoginResult, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if declaredRole != u.Role &&
		!(declaredRole == domain.RoleStaff && u.Role == domain.RoleAdmin) {
		return nil, domain.ErrInvalidCredentials
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if !u.CanLogin() {
		return nil, domain.ErrAccountNotVerified
	}
	tok, err := s.jwter.Issue(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: tok, User: u}, nil
}

type Profile struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	Role       string                `json:"role"`
	Status     string                `json:"status"`
	Phone      string                `json:"phone,omitempty"`
	Address    string                `json:"address,omitempty"`
	CreatedAt  time.Time             `json:"createdAt"`
	ParentInfo *domain.ParentProfile `json:"parent_info,omitempty"`
}

// Profile parent 角色附带扩展档案
func (s *AuthService) Profile(ctx context.Context, u *domain.User) (*Profile, error) {
	p := &Profile{
		ID: u.ID, Name: u.Name, Email: u.Email,
		Role: u.Role, Status: u.Status,
		Phone: u.Phone, Address: u.Address,
		CreatedAt: u.CreatedAt,
	}
	if u.Role == domain.RoleParent {
		info, err := s.profiles.FindByUserID(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		if info == nil {
			info = &domain.ParentProfile{UserID: u.ID}
		}
		p.ParentInfo = info
	}
	return p, nil
}
