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

// CustomerDraft is the caller-supplied field set for creating a customer.
// Identity and timestamps are assigned by the repository.
type CustomerDraft struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Address string `json:"address" form:"address"`
	Status  string `json:"status" form:"status"`
	Notes   string `json:"notes" form:"notes"`
}

// CustomerRepository owns the customer sequence.
type CustomerRepository struct {
	mu    sync.Mutex
	store *store.Store
	bus   EventBus.Bus
	seq   []domain.Customer
}

// NewCustomerRepository hydrates the repository from the store, seeding the
// default dataset when nothing usable is persisted.
func NewCustomerRepository(s *store.Store, bus EventBus.Bus) (*CustomerRepository, error) {
	r := &CustomerRepository{store: s, bus: bus}
	var seq []domain.Customer
	found, err := s.Load(domain.DomainCustomers, &seq)
	if err != nil {
		return nil, err
	}
	if !found {
		seq = domain.DefaultCustomers()
		if err := s.Save(domain.DomainCustomers, seq); err != nil {
			return nil, err
		}
		zap.L().Info("seeded default dataset", zap.String("domain", domain.DomainCustomers))
	}
	r.seq = seq
	return r, nil
}

// List returns the current sequence in insertion order.
func (r *CustomerRepository) List() []domain.Customer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Customer(nil), r.seq...)
}

// Find returns the customer with the given id.
func (r *CustomerRepository) Find(id string) (domain.Customer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.seq {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Customer{}, false
}

// Add validates the draft, assigns identity and timestamps, appends and
// persists. An empty status defaults to prospect.
func (r *CustomerRepository) Add(draft CustomerDraft) (domain.Customer, error) {
	name := strings.TrimSpace(draft.Name)
	email := strings.TrimSpace(draft.Email)
	if name == "" {
		return domain.Customer{}, validationf("customer name is required")
	}
	if email == "" {
		return domain.Customer{}, validationf("customer email is required")
	}
	status := draft.Status
	if status == "" {
		status = domain.CustomerStatusProspect
	}
	if !oneOf(status, domain.CustomerStatuses) {
		return domain.Customer{}, validationf("invalid customer status %q", status)
	}

	now := time.Now()
	c := domain.Customer{
		ID:          nextID(),
		Name:        name,
		Email:       email,
		Phone:       strings.TrimSpace(draft.Phone),
		Address:     strings.TrimSpace(draft.Address),
		Status:      status,
		Notes:       draft.Notes,
		CreatedAt:   now,
		LastContact: now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	next := append(append([]domain.Customer(nil), r.seq...), c)
	if err := r.store.Save(domain.DomainCustomers, next); err != nil {
		return domain.Customer{}, err
	}
	r.seq = next
	r.publish(ActionCreated, c.ID)
	return c, nil
}

// Update merges patch fields into the matching record and stamps LastContact.
// Returns ErrNotFound when no record carries the id.
func (r *CustomerRepository) Update(id string, patch map[string]interface{}) (domain.Customer, error) {
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
		return domain.Customer{}, ErrNotFound
	}

	updated := r.seq[idx]
	if err := applyPatch(&updated, patch); err != nil {
		return domain.Customer{}, err
	}
	updated.ID = r.seq[idx].ID
	updated.CreatedAt = r.seq[idx].CreatedAt
	updated.LastContact = time.Now()
	if strings.TrimSpace(updated.Name) == "" {
		return domain.Customer{}, validationf("customer name is required")
	}
	if strings.TrimSpace(updated.Email) == "" {
		return domain.Customer{}, validationf("customer email is required")
	}
	if !oneOf(updated.Status, domain.CustomerStatuses) {
		return domain.Customer{}, validationf("invalid customer status %q", updated.Status)
	}

	next := append([]domain.Customer(nil), r.seq...)
	next[idx] = updated
	if err := r.store.Save(domain.DomainCustomers, next); err != nil {
		return domain.Customer{}, err
	}
	r.seq = next
	r.publish(ActionUpdated, id)
	return updated, nil
}

// Remove deletes the matching record. Removing an absent id is a silent
// no-op.
func (r *CustomerRepository) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]domain.Customer, 0, len(r.seq))
	for _, c := range r.seq {
		if c.ID != id {
			next = append(next, c)
		}
	}
	if len(next) == len(r.seq) {
		return nil
	}
	if err := r.store.Save(domain.DomainCustomers, next); err != nil {
		return err
	}
	r.seq = next
	r.publish(ActionDeleted, id)
	return nil
}

// ResetToDefault discards persisted and in-memory state and reseeds the
// default dataset. The presentation layer owns the confirmation gate.
func (r *CustomerRepository) ResetToDefault() ([]domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(domain.DomainCustomers); err != nil {
		return nil, err
	}
	seq := domain.DefaultCustomers()
	if err := r.store.Save(domain.DomainCustomers, seq); err != nil {
		return nil, err
	}
	r.seq = seq
	r.publish(ActionReset, "")
	return append([]domain.Customer(nil), seq...), nil
}

// Search returns customers whose name or email contains term
// (case-insensitive), narrowed by status unless it is empty or "all".
// The underlying sequence is never mutated.
func (r *CustomerRepository) Search(term, status string) []domain.Customer {
	term = strings.ToLower(strings.TrimSpace(term))
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Customer, 0, len(r.seq))
	for _, c := range r.seq {
		if term != "" && !containsFold(c.Name, term) && !containsFold(c.Email, term) {
			continue
		}
		if status != "" && status != "all" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (r *CustomerRepository) publish(action, id string) {
	if r.bus == nil {
		return
	}
	r.bus.Publish(TopicChange, ChangeEvent{
		Domain:   domain.DomainCustomers,
		Action:   action,
		EntityID: id,
		At:       time.Now(),
	})
}
