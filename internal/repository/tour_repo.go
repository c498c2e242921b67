package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/tourwise/tourcrm/internal/domain"
	"github.com/tourwise/tourcrm/internal/store"
)

// TourDraft is the caller-supplied field set for creating a tour.
type TourDraft struct {
	Name        string  `json:"name" form:"name"`
	Description string  `json:"description" form:"description"`
	Duration    string  `json:"duration" form:"duration"`
	Price       float64 `json:"price" form:"price"`
	MaxCapacity int     `json:"maxCapacity" form:"maxCapacity"`
	Location    string  `json:"location" form:"location"`
	Category    string  `json:"category" form:"category"`
	IsActive    *bool   `json:"isActive" form:"isActive"`
}

// TourRepository owns the tour catalog sequence.
type TourRepository struct {
	mu    sync.Mutex
	store *store.Store
	bus   EventBus.Bus
	seq   []domain.Tour
}

func NewTourRepository(s *store.Store, bus EventBus.Bus) (*TourRepository, error) {
	r := &TourRepository{store: s, bus: bus}
	var seq []domain.Tour
	found, err := s.Load(domain.DomainTours, &seq)
	if err != nil {
		return nil, err
	}
	if !found {
		seq = domain.DefaultTours()
		if err := s.Save(domain.DomainTours, seq); err != nil {
			return nil, err
		}
		zap.L().Info("seeded default dataset", zap.String("domain", domain.DomainTours))
	}
	r.seq = seq
	return r, nil
}

// List returns the current sequence in insertion order.
func (r *TourRepository) List() []domain.Tour {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Tour(nil), r.seq...)
}

// Find returns the tour with the given id.
func (r *TourRepository) Find(id string) (domain.Tour, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.seq {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Tour{}, false
}

// Add validates the draft, assigns identity, appends and persists. New tours
// default to active unless the draft says otherwise.
func (r *TourRepository) Add(draft TourDraft) (domain.Tour, error) {
	name := strings.TrimSpace(draft.Name)
	description := strings.TrimSpace(draft.Description)
	if name == "" {
		return domain.Tour{}, validationf("tour name is required")
	}
	if description == "" {
		return domain.Tour{}, validationf("tour description is required")
	}
	if draft.Price < 0 {
		return domain.Tour{}, validationf("tour price must not be negative")
	}
	if draft.MaxCapacity <= 0 {
		return domain.Tour{}, validationf("tour capacity must be a positive integer")
	}
	if !oneOf(draft.Category, domain.TourCategories) {
		return domain.Tour{}, validationf("invalid tour category %q", draft.Category)
	}
	active := true
	if draft.IsActive != nil {
		active = *draft.IsActive
	}

	t := domain.Tour{
		ID:          nextID(),
		Name:        name,
		Description: description,
		Duration:    strings.TrimSpace(draft.Duration),
		Price:       draft.Price,
		MaxCapacity: draft.MaxCapacity,
		Location:    strings.TrimSpace(draft.Location),
		Category:    draft.Category,
		IsActive:    active,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	next := append(append([]domain.Tour(nil), r.seq...), t)
	if err := r.store.Save(domain.DomainTours, next); err != nil {
		return domain.Tour{}, err
	}
	r.seq = next
	r.publish(ActionCreated, t.ID)
	return t, nil
}

// Update merges patch fields into the matching record. Returns ErrNotFound
// when no record carries the id.
func (r *TourRepository) Update(id string, patch map[string]interface{}) (domain.Tour, error) {
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
		return domain.Tour{}, ErrNotFound
	}

	updated := r.seq[idx]
	if err := applyPatch(&updated, patch); err != nil {
		return domain.Tour{}, err
	}
	updated.ID = r.seq[idx].ID
	if strings.TrimSpace(updated.Name) == "" {
		return domain.Tour{}, validationf("tour name is required")
	}
	if strings.TrimSpace(updated.Description) == "" {
		return domain.Tour{}, validationf("tour description is required")
	}
	if updated.Price < 0 {
		return domain.Tour{}, validationf("tour price must not be negative")
	}
	if updated.MaxCapacity <= 0 {
		return domain.Tour{}, validationf("tour capacity must be a positive integer")
	}
	if !oneOf(updated.Category, domain.TourCategories) {
		return domain.Tour{}, validationf("invalid tour category %q", updated.Category)
	}

	next := append([]domain.Tour(nil), r.seq...)
	next[idx] = updated
	if err := r.store.Save(domain.DomainTours, next); err != nil {
		return domain.Tour{}, err
	}
	r.seq = next
	r.publish(ActionUpdated, id)
	return updated, nil
}

// Remove deletes the matching record without cascading to bookings that
// reference it; those keep a dangling reference. Removing an absent id is a
// silent no-op.
func (r *TourRepository) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]domain.Tour, 0, len(r.seq))
	for _, t := range r.seq {
		if t.ID != id {
			next = append(next, t)
		}
	}
	if len(next) == len(r.seq) {
		return nil
	}
	if err := r.store.Save(domain.DomainTours, next); err != nil {
		return err
	}
	r.seq = next
	r.publish(ActionDeleted, id)
	return nil
}

// ResetToDefault discards persisted and in-memory state and reseeds the
// default catalog.
func (r *TourRepository) ResetToDefault() ([]domain.Tour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(domain.DomainTours); err != nil {
		return nil, err
	}
	seq := domain.DefaultTours()
	if err := r.store.Save(domain.DomainTours, seq); err != nil {
		return nil, err
	}
	r.seq = seq
	r.publish(ActionReset, "")
	return append([]domain.Tour(nil), seq...), nil
}

// Search returns tours whose name or description contains term
// (case-insensitive), narrowed by category unless it is empty or "all".
func (r *TourRepository) Search(term, category string) []domain.Tour {
	term = strings.ToLower(strings.TrimSpace(term))
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Tour, 0, len(r.seq))
	for _, t := range r.seq {
		if term != "" && !containsFold(t.Name, term) && !containsFold(t.Description, term) {
			continue
		}
		if category != "" && category != "all" && t.Category != category {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (r *TourRepository) publish(action, id string) {
	if r.bus == nil {
		return
	}
	r.bus.Publish(TopicChange, ChangeEvent{
		Domain:   domain.DomainTours,
		Action:   action,
		EntityID: id,
		At:       time.Now(),
	})
}
