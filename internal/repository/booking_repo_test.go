package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourwise/tourcrm/internal/domain"
	"github.com/tourwise/tourcrm/internal/store"
)

func newBookingFixture(t *testing.T) (*BookingRepository, *TourRepository, *CustomerRepository, *store.Store) {
	t.Helper()
	s := openTestStore(t)
	customers, err := NewCustomerRepository(s, nil)
	require.NoError(t, err)
	tours, err := NewTourRepository(s, nil)
	require.NoError(t, err)
	bookings, err := NewBookingRepository(s, nil, tours, customers)
	require.NoError(t, err)
	return bookings, tours, customers, s
}

func TestBookingSeedAndList(t *testing.T) {
	bookings, _, _, _ := newBookingFixture(t)
	seq := bookings.List()
	require.Len(t, seq, 5)
	assert.Equal(t, 150.0, seq[0].TotalPrice)
}

func TestBookingAddPricesAgainstTour(t *testing.T) {
	bookings, _, _, _ := newBookingFixture(t)

	// Mountain Adventure Hike is 75 per head
	created, err := bookings.Add(BookingDraft{
		CustomerID:   "1",
		TourID:       "2",
		Date:         "2024-05-10",
		Participants: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 150.0, created.TotalPrice)
	assert.Equal(t, domain.BookingStatusPending, created.Status, "status defaults to pending")
	assert.Equal(t, 10, created.Date.Day())
	assert.False(t, created.CreatedAt.IsZero())
	assert.Len(t, bookings.List(), 6)
}

func TestBookingAddDanglingTourPricesZero(t *testing.T) {
	bookings, _, _, _ := newBookingFixture(t)

	created, err := bookings.Add(BookingDraft{
		CustomerID:   "1",
		TourID:       "deleted-tour",
		Date:         "2024-05-10",
		Participants: 3,
	})
	require.NoError(t, err, "cross-domain integrity is not enforced")
	assert.Equal(t, 0.0, created.TotalPrice)
}

func TestBookingAddValidation(t *testing.T) {
	bookings, _, _, _ := newBookingFixture(t)
	var verr *ValidationError

	_, err := bookings.Add(BookingDraft{TourID: "1", Date: "2024-05-10", Participants: 1})
	require.ErrorAs(t, err, &verr)

	_, err = bookings.Add(BookingDraft{CustomerID: "1", Date: "2024-05-10", Participants: 1})
	require.ErrorAs(t, err, &verr)

	_, err = bookings.Add(BookingDraft{CustomerID: "1", TourID: "1", Participants: 1})
	require.ErrorAs(t, err, &verr)

	_, err = bookings.Add(BookingDraft{CustomerID: "1", TourID: "1", Date: "not a date", Participants: 1})
	require.ErrorAs(t, err, &verr)

	_, err = bookings.Add(BookingDraft{CustomerID: "1", TourID: "1", Date: "2024-05-10", Participants: 0})
	require.ErrorAs(t, err, &verr)

	assert.Len(t, bookings.List(), 5)
}

func TestBookingTotalPriceFrozenUntilEdit(t *testing.T) {
	bookings, tours, _, _ := newBookingFixture(t)

	created, err := bookings.Add(BookingDraft{
		CustomerID:   "1",
		TourID:       "1",
		Date:         "2024-06-01",
		Participants: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 90.0, created.TotalPrice) // 45 x 2

	// raising the tour price does not touch the stored booking
	_, err = tours.Update("1", map[string]interface{}{"price": 100})
	require.NoError(t, err)
	got, found := bookings.Find(created.ID)
	require.True(t, found)
	assert.Equal(t, 90.0, got.TotalPrice)

	// the next edit reprices against the tour's current price
	updated, err := bookings.Update(created.ID, map[string]interface{}{"participants": 3})
	require.NoError(t, err)
	assert.Equal(t, 300.0, updated.TotalPrice)
}

func TestBookingUpdateMergesPatch(t *testing.T) {
	bookings, _, _, _ := newBookingFixture(t)

	updated, err := bookings.Update("2", map[string]interface{}{
		"status":          domain.BookingStatusConfirmed,
		"specialRequests": "Window seats",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, updated.Status)
	assert.Equal(t, "Window seats", updated.SpecialRequests)
	assert.Equal(t, "2", updated.CustomerID, "unpatched fields stay put")
	assert.Equal(t, 4, updated.Participants)

	_, err = bookings.Update("missing", map[string]interface{}{"status": "confirmed"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingStatusTransitionsUnconstrained(t *testing.T) {
	bookings, _, _, _ := newBookingFixture(t)

	// booking 5 is cancelled in the seed data; moving it straight back to
	// confirmed is allowed
	updated, err := bookings.Update("5", map[string]interface{}{"status": domain.BookingStatusConfirmed})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, updated.Status)
}

func TestBookingRemoveIsIdempotent(t *testing.T) {
	bookings, _, _, _ := newBookingFixture(t)

	require.NoError(t, bookings.Remove("3"))
	require.NoError(t, bookings.Remove("3"))
	assert.Len(t, bookings.List(), 4)
	_, found := bookings.Find("3")
	assert.False(t, found)
}

func TestBookingSearchJoinsNames(t *testing.T) {
	bookings, _, customers, _ := newBookingFixture(t)

	// Sarah Johnson holds bookings 1 and 4
	hits := bookings.Search("sarah", "all")
	require.Len(t, hits, 2)

	// tour name matches too
	hits = bookings.Search("photography", "")
	require.Len(t, hits, 1)
	assert.Equal(t, "5", hits[0].ID)

	// conjoined with status
	hits = bookings.Search("sarah", domain.BookingStatusConfirmed)
	assert.Len(t, hits, 2)
	hits = bookings.Search("sarah", domain.BookingStatusPending)
	assert.Empty(t, hits)

	// a deleted customer leaves the booking unmatched, not broken
	require.NoError(t, customers.Remove("1"))
	assert.Empty(t, bookings.Search("sarah", "all"))
}

func TestBookingResetToDefault(t *testing.T) {
	bookings, _, _, s := newBookingFixture(t)

	require.NoError(t, bookings.Remove("1"))
	seq, err := bookings.ResetToDefault()
	require.NoError(t, err)
	assert.Len(t, seq, 5)

	var persisted []domain.Booking
	found, err := s.Load(domain.DomainBookings, &persisted)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, persisted, 5)
	assert.Equal(t, 240.0, persisted[1].TotalPrice)
}
