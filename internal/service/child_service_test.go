package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adoptlink/internal/domain"
	"adoptlink/internal/testutil"
)

// 已被领养的儿童只对提交过申请的查看者可见
func TestListHidesAdoptedFromStrangers(t *testing.T) {
	m := testutil.NewMemStore()
	svc := NewChildService(m.Stores().Children)
	seedChild(m, "c-1", domain.ChildAvailable)
	seedChild(m, "c-2", domain.ChildAdopted)
	m.Applications["a-1"] = domain.AdoptionApplication{
		ID: "a-1", ParentID: "parent-1", ChildID: "c-2", Status: domain.ApplicationApproved,
	}

	// parent-1 申请过 c-2，两个都能看到，且附带自己的申请
	items, err := svc.List(context.Background(), "parent-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, it := range items {
		if it.ID == "c-2" {
			require.NotNil(t, it.ApplicationID)
			assert.Equal(t, "a-1", *it.ApplicationID)
			assert.Equal(t, domain.ApplicationApproved, *it.ApplicationStatus)
		}
	}

	// 无关用户看不到 c-2
	items, err = svc.List(context.Background(), "parent-2")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "c-1", items[0].ID)
}

func TestGetAttachesViewerApplication(t *testing.T) {
	m := testutil.NewMemStore()
	svc := NewChildService(m.Stores().Children)
	seedChild(m, "c-1", domain.ChildPending)
	m.Applications["a-1"] = domain.AdoptionApplication{
		ID: "a-1", ParentID: "parent-1", ChildID: "c-1", Status: domain.ApplicationPending,
	}

	item, err := svc.Get(context.Background(), "c-1", "parent-1")
	require.NoError(t, err)
	require.NotNil(t, item.ApplicationID)
	assert.Equal(t, "a-1", *item.ApplicationID)

	item, err = svc.Get(context.Background(), "c-1", "parent-2")
	require.NoError(t, err)
	assert.Nil(t, item.ApplicationID)

	_, err = svc.Get(context.Background(), "nope", "parent-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
