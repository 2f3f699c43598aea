package service

import (
	"context"

	"adoptlink/internal/domain"
)

type VisitService struct {
	visits domain.VisitRepository
}

func NewVisitService(visits domain.VisitRepository) *VisitService {
	return &VisitService{visits: visits}
}

// MyVisits parent 看自己申请关联的家访，staff/admin 看分配给自己的
func (s *VisitService) MyVisits(ctx context.Context, u *domain.User) ([]domain.VisitDetail, error) {
	if u.Role == domain.RoleParent {
		return s.visits.ListByParent(ctx, u.ID)
	}
	return s.visits.ListByStaff(ctx, u.ID)
}
