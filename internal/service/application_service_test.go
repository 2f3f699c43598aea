package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adoptlink/internal/domain"
	"adoptlink/internal/testutil"
)

func newApplicationService(m *testutil.MemStore) *ApplicationService {
	st := m.Stores()
	return NewApplicationService(st.Applications, st.Children, m)
}

func seedChild(m *testutil.MemStore, id, status string) {
	m.Children[id] = domain.Child{
		ID: id, Name: "C-" + id, Gender: "female",
		DateOfBirth: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:      status,
	}
}

func TestSubmitCreatesApplicationAndFlipsChild(t *testing.T) {
	m := testutil.NewMemStore()
	svc := newApplicationService(m)
	seedChild(m, "c-1", domain.ChildAvailable)

	id, err := svc.Submit(context.Background(), "parent-1", "c-1")
	require.NoError(t, err)

	a := m.Applications[id]
	assert.Equal(t, "parent-1", a.ParentID)
	assert.Equal(t, domain.ApplicationPending, a.Status)
	assert.Equal(t, domain.ChildPending, m.Children["c-1"].Status)
}

func TestSubmitUnknownChild(t *testing.T) {
	m := testutil.NewMemStore()
	svc := newApplicationService(m)

	_, err := svc.Submit(context.Background(), "parent-1", "no-such-child")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// 同一 (parent, child) 第二次提交冲突，且不产生第二条记录
func TestSubmitDuplicateConflict(t *testing.T) {
	m := testutil.NewMemStore()
	svc := newApplicationService(m)
	seedChild(m, "c-1", domain.ChildAvailable)

	_, err := svc.Submit(context.Background(), "parent-1", "c-1")
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), "parent-1", "c-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, m.Applications, 1)

	// 另一位家长仍可对同一儿童提交
	_, err = svc.Submit(context.Background(), "parent-2", "c-1")
	assert.NoError(t, err)
	assert.Len(t, m.Applications, 2)
}

// 儿童状态写失败时申请行必须一并回滚
func TestSubmitRollsBackOnChildUpdateFailure(t *testing.T) {
	m := testutil.NewMemStore()
	svc := newApplicationService(m)
	seedChild(m, "c-1", domain.ChildAvailable)
	m.FailChildUpdate = errors.New("write failed")

	_, err := svc.Submit(context.Background(), "parent-1", "c-1")
	require.Error(t, err)
	assert.Empty(t, m.Applications, "申请行不应残留")
	assert.Equal(t, domain.ChildAvailable, m.Children["c-1"].Status)
}

func TestMyApplicationsScopedToParent(t *testing.T) {
	m := testutil.NewMemStore()
	svc := newApplicationService(m)
	seedChild(m, "c-1", domain.ChildAvailable)
	seedChild(m, "c-2", domain.ChildAvailable)

	_, err := svc.Submit(context.Background(), "parent-1", "c-1")
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "parent-2", "c-2")
	require.NoError(t, err)

	mine, err := svc.MyApplications(context.Background(), "parent-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "c-1", mine[0].ChildID)
	assert.Equal(t, "C-c-1", mine[0].ChildName)
}
