package service

import (
	"context"

	"adoptlink/internal/domain"
)

type ChildService struct {
	children domain.ChildRepository
}

func NewChildService(children domain.ChildRepository) *ChildService {
	return &ChildService{children: children}
}

func (s *ChildService) List(ctx context.Context, viewerID string) ([]domain.ChildListItem, error) {
	return s.children.ListVisible(ctx, viewerID)
}

// Get 详情附带查看者自己的申请（如有）
func (s *ChildService) Get(ctx context.Context, id, viewerID string) (*domain.ChildListItem, error) {
	c, err := s.children.FindDetail(ctx, id, viewerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}
