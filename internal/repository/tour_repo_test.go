package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourwise/tourcrm/internal/domain"
)

func newTourRepo(t *testing.T) *TourRepository {
	t.Helper()
	r, err := NewTourRepository(openTestStore(t), nil)
	require.NoError(t, err)
	return r
}

func TestTourSeedAndList(t *testing.T) {
	r := newTourRepo(t)
	tours := r.List()
	require.Len(t, tours, 5)
	assert.Equal(t, "City Explorer Walking Tour", tours[0].Name)
}

func TestTourAdd(t *testing.T) {
	r := newTourRepo(t)

	created, err := r.Add(TourDraft{
		Name:        "Sunset Kayak Trip",
		Description: "Paddle the bay at golden hour.",
		Duration:    "2 hours",
		Price:       55,
		MaxCapacity: 6,
		Location:    "Harbor",
		Category:    domain.TourCategoryAdventure,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive, "new tours default to active")

	tours := r.List()
	require.Len(t, tours, 6)
	assert.Equal(t, created.ID, tours[5].ID)
}

func TestTourAddValidation(t *testing.T) {
	r := newTourRepo(t)
	var verr *ValidationError

	_, err := r.Add(TourDraft{Description: "d", Price: 10, MaxCapacity: 5, Category: "city"})
	require.ErrorAs(t, err, &verr)

	_, err = r.Add(TourDraft{Name: "n", Price: 10, MaxCapacity: 5, Category: "city"})
	require.ErrorAs(t, err, &verr)

	_, err = r.Add(TourDraft{Name: "n", Description: "d", Price: -1, MaxCapacity: 5, Category: "city"})
	require.ErrorAs(t, err, &verr)

	_, err = r.Add(TourDraft{Name: "n", Description: "d", Price: 10, MaxCapacity: 0, Category: "city"})
	require.ErrorAs(t, err, &verr)

	_, err = r.Add(TourDraft{Name: "n", Description: "d", Price: 10, MaxCapacity: 5, Category: "space"})
	require.ErrorAs(t, err, &verr)

	assert.Len(t, r.List(), 5)
}

func TestTourUpdate(t *testing.T) {
	r := newTourRepo(t)

	updated, err := r.Update("2", map[string]interface{}{
		"price":    80,
		"isActive": false,
	})
	require.NoError(t, err)
	assert.Equal(t, 80.0, updated.Price)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Mountain Adventure Hike", updated.Name)

	_, err = r.Update("missing", map[string]interface{}{"price": 10})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTourSearch(t *testing.T) {
	r := newTourRepo(t)

	hits := r.Search("mountain", "all")
	require.Len(t, hits, 1)
	assert.Equal(t, "2", hits[0].ID)

	// description matches too
	hits = r.Search("vineyards", "")
	require.Len(t, hits, 1)
	assert.Equal(t, "Food & Wine Tasting", hits[0].Name)

	assert.Len(t, r.Search("", domain.TourCategoryCultural), 1)
	assert.Empty(t, r.Search("mountain", domain.TourCategoryFood))
}

func TestTourRemoveAndReset(t *testing.T) {
	r := newTourRepo(t)

	require.NoError(t, r.Remove("3"))
	require.NoError(t, r.Remove("3"))
	assert.Len(t, r.List(), 4)

	seq, err := r.ResetToDefault()
	require.NoError(t, err)
	assert.Len(t, seq, 5)
}
