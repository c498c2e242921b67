package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/tourwise/tourcrm/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "tourcrm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadAbsent(t *testing.T) {
	s := openTestStore(t)

	var customers []domain.Customer
	found, err := s.Load(domain.DomainCustomers, &customers)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, customers)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	want := domain.DefaultBookings()
	require.NoError(t, s.Save(domain.DomainBookings, want))

	var got []domain.Booking
	found, err := s.Load(domain.DomainBookings, &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].TotalPrice, got[i].TotalPrice)
		assert.True(t, want[i].Date.Equal(got[i].Date), "date should survive the round trip")
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
	}
}

func TestRoundTripCommissionPaidDate(t *testing.T) {
	s := openTestStore(t)

	want := domain.DefaultCommissions()
	require.NoError(t, s.Save(domain.DomainCommissions, want))

	var got []domain.Commission
	found, err := s.Load(domain.DomainCommissions, &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got, len(want))
	require.NotNil(t, got[0].PaidDate)
	assert.True(t, want[0].PaidDate.Equal(*got[0].PaidDate))
	assert.Nil(t, got[1].PaidDate)
}

func TestLoadMalformedValueIsAbsent(t *testing.T) {
	s := openTestStore(t)

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(domain.DomainTours), []byte("{not json"))
	})
	require.NoError(t, err)

	var tours []domain.Tour
	found, err := s.Load(domain.DomainTours, &tours)
	require.NoError(t, err)
	assert.False(t, found, "malformed data must fall back to absent")
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Save(domain.DomainCustomers, domain.DefaultCustomers()))
	require.NoError(t, s.Delete(domain.DomainCustomers))
	require.NoError(t, s.Delete(domain.DomainCustomers))

	var customers []domain.Customer
	found, err := s.Load(domain.DomainCustomers, &customers)
	require.NoError(t, err)
	assert.False(t, found)
}
