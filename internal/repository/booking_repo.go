package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/araddon/dateparse"
	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/tourwise/tourcrm/internal/domain"
	"github.com/tourwise/tourcrm/internal/store"
)

// TourFinder resolves tour references when pricing a booking.
type TourFinder interface {
	Find(id string) (domain.Tour, bool)
}

// CustomerFinder resolves customer references for search joins.
type CustomerFinder interface {
	Find(id string) (domain.Customer, bool)
}

// BookingDraft is the caller-supplied field set for creating a booking. Date
// arrives as a form string and is parsed into a timestamp.
type BookingDraft struct {
	CustomerID      string `json:"customerId" form:"customerId"`
	TourID          string `json:"tourId" form:"tourId"`
	Date            string `json:"date" form:"date"`
	Participants    int    `json:"participants" form:"participants"`
	SpecialRequests string `json:"specialRequests" form:"specialRequests"`
	Status          string `json:"status" form:"status"`
}

// BookingRepository owns the booking sequence. TotalPrice is derived from the
// referenced tour's price at add/update time and then stored as-is; a later
// change of the tour price does not touch existing bookings.
type BookingRepository struct {
	mu        sync.Mutex
	store     *store.Store
	bus       EventBus.Bus
	tours     TourFinder
	customers CustomerFinder
	seq       []domain.Booking
}

func NewBookingRepository(s *store.Store, bus EventBus.Bus, tours TourFinder, customers CustomerFinder) (*BookingRepository, error) {
	r := &BookingRepository{store: s, bus: bus, tours: tours, customers: customers}
	var seq []domain.Booking
	found, err := s.Load(domain.DomainBookings, &seq)
	if err != nil {
		return nil, err
	}
	if !found {
		seq = domain.DefaultBookings()
		if err := s.Save(domain.DomainBookings, seq); err != nil {
			return nil, err
		}
		zap.L().Info("seeded default dataset", zap.String("domain", domain.DomainBookings))
	}
	r.seq = seq
	return r, nil
}

// List returns the current sequence in insertion order.
func (r *BookingRepository) List() []domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Booking(nil), r.seq...)
}

// Find returns the booking with the given id.
func (r *BookingRepository) Find(id string) (domain.Booking, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.seq {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Booking{}, false
}

// Add validates the draft, prices it against the referenced tour, appends and
// persists. A draft referencing a missing tour is accepted with a total of
// zero; cross-domain integrity is deliberately not enforced.
func (r *BookingRepository) Add(draft BookingDraft) (domain.Booking, error) {
	if strings.TrimSpace(draft.CustomerID) == "" {
		return domain.Booking{}, validationf("booking customer is required")
	}
	if strings.TrimSpace(draft.TourID) == "" {
		return domain.Booking{}, validationf("booking tour is required")
	}
	if strings.TrimSpace(draft.Date) == "" {
		return domain.Booking{}, validationf("booking date is required")
	}
	date, err := dateparse.ParseAny(draft.Date)
	if err != nil {
		return domain.Booking{}, validationf("invalid booking date %q", draft.Date)
	}
	if draft.Participants <= 0 {
		return domain.Booking{}, validationf("participants must be a positive integer")
	}
	status := draft.Status
	if status == "" {
		status = domain.BookingStatusPending
	}
	if !oneOf(status, domain.BookingStatuses) {
		return domain.Booking{}, validationf("invalid booking status %q", status)
	}

	b := domain.Booking{
		ID:              nextID(),
		CustomerID:      draft.CustomerID,
		TourID:          draft.TourID,
		Date:            date,
		Participants:    draft.Participants,
		TotalPrice:      r.priceFor(draft.TourID, draft.Participants),
		Status:          status,
		SpecialRequests: draft.SpecialRequests,
		CreatedAt:       time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	next := append(append([]domain.Booking(nil), r.seq...), b)
	if err := r.store.Save(domain.DomainBookings, next); err != nil {
		return domain.Booking{}, err
	}
	r.seq = next
	r.publish(ActionCreated, b.ID)
	return b, nil
}

// Update merges patch fields into the matching record and reprices it against
// the tour it references after the merge. Returns ErrNotFound when no record
// carries the id.
func (r *BookingRepository) Update(id string, patch map[string]interface{}) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.seq {
		if r.seq[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Booking{}, ErrNotFound
	}

	updated := r.seq[idx]
	if err := applyPatch(&updated, patch); err != nil {
		return domain.Booking{}, err
	}
	updated.ID = r.seq[idx].ID
	updated.CreatedAt = r.seq[idx].CreatedAt
	if strings.TrimSpace(updated.CustomerID) == "" {
		return domain.Booking{}, validationf("booking customer is required")
	}
	if strings.TrimSpace(updated.TourID) == "" {
		return domain.Booking{}, validationf("booking tour is required")
	}
	if updated.Date.IsZero() {
		return domain.Booking{}, validationf("booking date is required")
	}
	if updated.Participants <= 0 {
		return domain.Booking{}, validationf("participants must be a positive integer")
	}
	if !oneOf(updated.Status, domain.BookingStatuses) {
		return domain.Booking{}, validationf("invalid booking status %q", updated.Status)
	}
	updated.TotalPrice = r.priceFor(updated.TourID, updated.Participants)

	next := append([]domain.Booking(nil), r.seq...)
	next[idx] = updated
	if err := r.store.Save(domain.DomainBookings, next); err != nil {
		return domain.Booking{}, err
	}
	r.seq = next
	r.publish(ActionUpdated, id)
	return updated, nil
}

// Remove deletes the matching record. Removing an absent id is a silent
// no-op.
func (r *BookingRepository) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]domain.Booking, 0, len(r.seq))
	for _, b := range r.seq {
		if b.ID != id {
			next = append(next, b)
		}
	}
	if len(next) == len(r.seq) {
		return nil
	}
	if err := r.store.Save(domain.DomainBookings, next); err != nil {
		return err
	}
	r.seq = next
	r.publish(ActionDeleted, id)
	return nil
}

// ResetToDefault discards persisted and in-memory state and reseeds the
// default dataset.
func (r *BookingRepository) ResetToDefault() ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(domain.DomainBookings); err != nil {
		return nil, err
	}
	seq := domain.DefaultBookings()
	if err := r.store.Save(domain.DomainBookings, seq); err != nil {
		return nil, err
	}
	r.seq = seq
	r.publish(ActionReset, "")
	return append([]domain.Booking(nil), seq...), nil
}

// Search matches term against the names of the referenced customer and tour
// (case-insensitive), narrowed by status unless it is empty or "all".
// Dangling references simply never match the term.
func (r *BookingRepository) Search(term, status string) []domain.Booking {
	term = strings.ToLower(strings.TrimSpace(term))
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Booking, 0, len(r.seq))
	for _, b := range r.seq {
		if term != "" && !r.matchesNames(b, term) {
			continue
		}
		if status != "" && status != "all" && b.Status != status {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (r *BookingRepository) matchesNames(b domain.Booking, term string) bool {
	if r.customers != nil {
		if c, ok := r.customers.Find(b.CustomerID); ok && containsFold(c.Name, term) {
			return true
		}
	}
	if r.tours != nil {
		if t, ok := r.tours.Find(b.TourID); ok && containsFold(t.Name, term) {
			return true
		}
	}
	return false
}

func (r *BookingRepository) priceFor(tourID string, participants int) float64 {
	if r.tours == nil {
		return 0
	}
	t, ok := r.tours.Find(tourID)
	if !ok {
		return 0
	}
	return t.Price * float64(participants)
}

func (r *BookingRepository) publish(action, id string) {
	if r.bus == nil {
		return
	}
	r.bus.Publish(TopicChange, ChangeEvent{
		Domain:   domain.DomainBookings,
		Action:   action,
		EntityID: id,
		At:       time.Now(),
	})
}
