package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourwise/tourcrm/internal/domain"
)

func newCommissionRepo(t *testing.T) *CommissionRepository {
	t.Helper()
	r, err := NewCommissionRepository(openTestStore(t), nil)
	require.NoError(t, err)
	return r
}

func TestCommissionSeedAndList(t *testing.T) {
	r := newCommissionRepo(t)
	ledger := r.List()
	require.Len(t, ledger, 4)
	assert.Equal(t, 22.5, ledger[0].CommissionAmount)
	require.NotNil(t, ledger[0].PaidDate)
	assert.Nil(t, ledger[1].PaidDate)
}

func TestCommissionSearch(t *testing.T) {
	r := newCommissionRepo(t)

	// denormalized name snapshots drive the match
	hits := r.Search("sarah", "all")
	require.Len(t, hits, 2)

	hits = r.Search("heritage", "")
	require.Len(t, hits, 1)
	assert.Equal(t, "Michael Chen", hits[0].CustomerName)

	assert.Len(t, r.Search("", domain.CommissionStatusPaid), 2)
	assert.Len(t, r.Search("sarah", domain.CommissionStatusPending), 1)
	assert.Empty(t, r.Search("nobody", "all"))
}

func TestCommissionMarkOverdue(t *testing.T) {
	r := newCommissionRepo(t)

	// both pending entries are dated March 2024
	changed, err := r.MarkOverdue(time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, changed)

	assert.Empty(t, r.Search("", domain.CommissionStatusPending))
	assert.Len(t, r.Search("", domain.CommissionStatusOverdue), 2)

	// paid entries are never touched
	assert.Len(t, r.Search("", domain.CommissionStatusPaid), 2)

	// a second sweep finds nothing to change
	changed, err = r.MarkOverdue(time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestCommissionMarkOverdueBeforeCutoffOnly(t *testing.T) {
	r := newCommissionRepo(t)

	changed, err := r.MarkOverdue(time.Date(2024, 3, 22, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, changed, "entry dated on the cutoff stays pending")
}

func TestCommissionResetToDefault(t *testing.T) {
	r := newCommissionRepo(t)

	_, err := r.MarkOverdue(time.Now())
	require.NoError(t, err)

	seq, err := r.ResetToDefault()
	require.NoError(t, err)
	require.Len(t, seq, 4)
	assert.Equal(t, domain.CommissionStatusPending, seq[1].Status)
}
