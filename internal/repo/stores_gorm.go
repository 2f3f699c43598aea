package repo

import (
	"context"

	"gorm.io/gorm"

	"adoptlink/internal/domain"
)

// NewStores 在同一个 *gorm.DB 上构建全部仓储
func NewStores(db *gorm.DB) domain.Stores {
	return domain.Stores{
		Users:        NewUserRepo(db),
		Profiles:     NewParentProfileRepo(db),
		Children:     NewChildRepo(db),
		Applications: NewApplicationRepo(db),
		Visits:       NewVisitRepo(db),
		Documents:    NewDocumentRepo(db),
		Tasks:        NewTaskRepo(db),
		Stats:        NewStatsRepo(db),
	}
}

type GormTxRunner struct{ db *gorm.DB }

func NewGormTxRunner(db *gorm.DB) *GormTxRunner { return &GormTxRunner{db: db} }

// InTx fn 内所有仓储绑定同一事务，出错整体回滚
func (t *GormTxRunner) InTx(ctx context.Context, fn func(s domain.Stores) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStores(tx))
	})
}
