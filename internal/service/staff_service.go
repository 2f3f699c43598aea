package service

import (
	"context"

	"adoptlink/internal/domain"
)

type StaffService struct {
	tasks     domain.TaskRepository
	documents domain.DocumentRepository
}

func NewStaffService(tasks domain.TaskRepository, documents domain.DocumentRepository) *StaffService {
	return &StaffService{tasks: tasks, documents: documents}
}

func (s *StaffService) Tasks(ctx context.Context, staffID string) ([]domain.TaskDetail, error) {
	return s.tasks.ListByStaff(ctx, staffID)
}

// UpdateTask 只能更新自己名下的任务，归属不符按 NotFound 返回
func (s *StaffService) UpdateTask(ctx context.Context, staffID, taskID, status, notes string) error {
	return s.tasks.UpdateStatus(ctx, taskID, staffID, status, notes)
}

func (s *StaffService) PendingDocuments(ctx context.Context) ([]domain.PendingDocument, error) {
	return s.documents.ListPending(ctx)
}

// ReviewDocument 审核结论写入时记录审核人
func (s *StaffService) ReviewDocument(ctx context.Context, reviewerID, docID, status, notes string) error {
	return s.documents.Review(ctx, docID, status, reviewerID, notes)
}
