package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourwise/tourcrm/internal/domain"
)

func newActivityRepo(t *testing.T) *ActivityRepository {
	t.Helper()
	r, err := NewActivityRepository(openTestStore(t))
	require.NoError(t, err)
	return r
}

func TestActivityStartsEmpty(t *testing.T) {
	r := newActivityRepo(t)
	assert.Empty(t, r.Recent(10))
}

func TestActivityAppendAssignsID(t *testing.T) {
	r := newActivityRepo(t)

	require.NoError(t, r.Append(domain.ActivityLog{
		Domain:   domain.DomainCustomers,
		Action:   ActionCreated,
		EntityID: "1",
		OptTime:  time.Now(),
	}))

	entries := r.Recent(1)
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ID)
}

func TestActivityRecentReturnsNewestLast(t *testing.T) {
	r := newActivityRepo(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, r.Append(domain.ActivityLog{
			Domain:   domain.DomainTours,
			Action:   ActionUpdated,
			EntityID: fmt.Sprintf("e%d", i),
		}))
	}

	entries := r.Recent(2)
	require.Len(t, entries, 2)
	assert.Equal(t, "e3", entries[0].EntityID)
	assert.Equal(t, "e4", entries[1].EntityID)
}

func TestActivityFeedCapDropsOldest(t *testing.T) {
	r := newActivityRepo(t)

	for i := 0; i < 250; i++ {
		require.NoError(t, r.Append(domain.ActivityLog{
			Domain:   domain.DomainBookings,
			Action:   ActionCreated,
			EntityID: fmt.Sprintf("e%d", i),
		}))
	}

	entries := r.Recent(0)
	require.Len(t, entries, maxActivityEntries)
	assert.Equal(t, "e50", entries[0].EntityID, "oldest entries are dropped first")
	assert.Equal(t, "e249", entries[len(entries)-1].EntityID)
}

func TestActivityCapSurvivesReload(t *testing.T) {
	s := openTestStore(t)
	r1, err := NewActivityRepository(s)
	require.NoError(t, err)
	for i := 0; i < 210; i++ {
		require.NoError(t, r1.Append(domain.ActivityLog{
			Domain:   domain.DomainCustomers,
			Action:   ActionDeleted,
			EntityID: fmt.Sprintf("e%d", i),
		}))
	}

	r2, err := NewActivityRepository(s)
	require.NoError(t, err)
	entries := r2.Recent(0)
	require.Len(t, entries, maxActivityEntries)
	assert.Equal(t, "e10", entries[0].EntityID)
}
