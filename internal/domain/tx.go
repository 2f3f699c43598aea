package domain

import "context"

// Stores 一组同库仓储；事务内拿到的是绑定同一 tx 的副本
type Stores struct {
	Users        UserRepository
	Profiles     ParentProfileRepository
	Children     ChildRepository
	Applications ApplicationRepository
	Visits       VisitRepository
	Documents    DocumentRepository
	Tasks        TaskRepository
	Stats        StatsRepository
}

// TxRunner 多语句写入的原子性边界：fn 返回错误即整体回滚
type TxRunner interface {
	InTx(ctx context.Context, fn func(s Stores) error) error
}
