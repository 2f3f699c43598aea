package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adoptlink/internal/domain"
	"adoptlink/internal/testutil"
)

func newStaffService(m *testutil.MemStore) *StaffService {
	st := m.Stores()
	return NewStaffService(st.Tasks, st.Documents)
}

// 任务归属不符按 NotFound，不暴露存在性
func TestUpdateTaskScopedToOwner(t *testing.T) {
	m := testutil.NewMemStore()
	svc := newStaffService(m)
	m.Tasks["t-1"] = domain.StaffTask{
		ID: "t-1", StaffID: "s-1", AssignedBy: "a-1",
		Title: "schedule home visit", Status: domain.TaskPending,
		DueDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	err := svc.UpdateTask(context.Background(), "s-2", "t-1", domain.TaskCompleted, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.TaskPending, m.Tasks["t-1"].Status)

	err = svc.UpdateTask(context.Background(), "s-1", "t-1", domain.TaskInProgress, "visit booked")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, m.Tasks["t-1"].Status)
	assert.Equal(t, "visit booked", m.Tasks["t-1"].Notes)
}

func TestTasksSortedByDueDate(t *testing.T) {
	m := testutil.NewMemStore()
	svc := newStaffService(m)
	m.Users["a-1"] = domain.User{ID: "a-1", Name: "Ada", Role: domain.RoleAdmin}
	m.Tasks["t-late"] = domain.StaffTask{
		ID: "t-late", StaffID: "s-1", AssignedBy: "a-1",
		DueDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	m.Tasks["t-soon"] = domain.StaffTask{
		ID: "t-soon", StaffID: "s-1", AssignedBy: "a-1",
		DueDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	m.Tasks["t-other"] = domain.StaffTask{ID: "t-other", StaffID: "s-2", AssignedBy: "a-1"}

	tasks, err := svc.Tasks(context.Background(), "s-1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "t-soon", tasks[0].ID)
	assert.Equal(t, "Ada", tasks[0].AssignedByName)
}

func TestReviewDocumentRecordsReviewer(t *testing.T) {
	m := testutil.NewMemStore()
	svc := newStaffService(m)
	m.Users["p-1"] = domain.User{ID: "p-1", Name: "Alice", Role: domain.RoleParent}
	m.Documents["d-1"] = domain.Document{
		ID: "d-1", UserID: "p-1", Type: "income_proof", Status: domain.DocumentPending,
	}

	pending, err := svc.PendingDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Alice", pending[0].ParentName)

	err = svc.ReviewDocument(context.Background(), "s-1", "d-1", domain.DocumentVerified, "looks good")
	require.NoError(t, err)
	d := m.Documents["d-1"]
	assert.Equal(t, domain.DocumentVerified, d.Status)
	require.NotNil(t, d.VerifiedBy)
	assert.Equal(t, "s-1", *d.VerifiedBy)

	// 已审结的文档不能再审
	err = svc.ReviewDocument(context.Background(), "s-2", "d-1", domain.DocumentRejected, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
