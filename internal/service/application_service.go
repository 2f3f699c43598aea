package service

import (
	"context"
	"time"

	"adoptlink/internal/domain"
	"adoptlink/pkg/utils"
)

type ApplicationService struct {
	applications domain.ApplicationRepository
	children     domain.ChildRepository
	tx           domain.TxRunner
}

func NewApplicationService(applications domain.ApplicationRepository, children domain.ChildRepository, tx domain.TxRunner) *ApplicationService {
	return &ApplicationService{applications: applications, children: children, tx: tx}
}

// Submit 申请行创建与儿童状态流转必须同时生效：
// 任一语句失败则整体回滚，不留半截写入
func (s *ApplicationService) Submit(ctx context.Context, parentID, childID string) (string, error) {
	child, err := s.children.FindByID(ctx, childID)
	if err != nil {
		return "", err
	}
	if child == nil {
		return "", domain.ErrNotFound
	}
	exists, err := s.applications.Exists(ctx, parentID, childID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrConflict
	}

	app := &domain.AdoptionApplication{
		ID:              utils.NewID(),
		ParentID:        parentID,
		ChildID:         childID,
		Status:          domain.ApplicationPending,
		ApplicationDate: time.Now(),
	}
	err = s.tx.InTx(ctx, func(st domain.Stores) error {
		if err := st.Applications.Create(ctx, app); err != nil {
			return err
		}
		return st.Children.UpdateStatus(ctx, childID, domain.ChildPending)
	})
	if err != nil {
		return "", err
	}
	return app.ID, nil
}

func (s *ApplicationService) MyApplications(ctx context.Context, parentID string) ([]domain.ApplicationDetail, error) {
	return s.applications.ListByParent(ctx, parentID)
}
