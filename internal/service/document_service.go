package service

import (
	"context"
	"time"

	"adoptlink/internal/domain"
	"adoptlink/pkg/utils"
)

type DocumentService struct {
	documents domain.DocumentRepository
}

func NewDocumentService(documents domain.DocumentRepository) *DocumentService {
	return &DocumentService{documents: documents}
}

func (s *DocumentService) MyDocuments(ctx context.Context, userID string) ([]domain.Document, error) {
	return s.documents.ListByUser(ctx, userID)
}

// Upload 文件已落盘，这里只登记元数据
func (s *DocumentService) Upload(ctx context.Context, userID, docType, fileName, filePath string) (*domain.Document, error) {
	d := &domain.Document{
		ID:          utils.NewID(),
		UserID:      userID,
		Type:        docType,
		FileName:    fileName,
		FilePath:    filePath,
		Status:      domain.DocumentPending,
		SubmittedAt: time.Now(),
	}
	if err := s.documents.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
