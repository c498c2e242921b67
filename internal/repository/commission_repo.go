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

// CommissionRepository owns the commission ledger. The ledger is an
// independently stored sequence of snapshots, not a live derivation from
// bookings: entries are read-only through the API, and only the overdue sweep
// and ResetToDefault mutate them.
type CommissionRepository struct {
	mu    sync.Mutex
	store *store.Store
	bus   EventBus.Bus
	seq   []domain.Commission
}

func NewCommissionRepository(s *store.Store, bus EventBus.Bus) (*CommissionRepository, error) {
	r := &CommissionRepository{store: s, bus: bus}
	var seq []domain.Commission
	found, err := s.Load(domain.DomainCommissions, &seq)
	if err != nil {
		return nil, err
	}
	if !found {
		seq = domain.DefaultCommissions()
		if err := s.Save(domain.DomainCommissions, seq); err != nil {
			return nil, err
		}
		zap.L().Info("seeded default dataset", zap.String("domain", domain.DomainCommissions))
	}
	r.seq = seq
	return r, nil
}

// List returns the current ledger in insertion order.
func (r *CommissionRepository) List() []domain.Commission {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Commission(nil), r.seq...)
}

// Search matches term against the denormalized tour and customer name
// snapshots (case-insensitive), narrowed by status unless it is empty or
// "all".
func (r *CommissionRepository) Search(term, status string) []domain.Commission {
	term = strings.ToLower(strings.TrimSpace(term))
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Commission, 0, len(r.seq))
	for _, c := range r.seq {
		if term != "" && !containsFold(c.TourName, term) && !containsFold(c.CustomerName, term) {
			continue
		}
		if status != "" && status != "all" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	return out
}

// MarkOverdue flips pending entries dated before the cutoff to overdue and
// persists the ledger. It returns how many entries changed.
func (r *CommissionRepository) MarkOverdue(cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := append([]domain.Commission(nil), r.seq...)
	changed := 0
	for i := range next {
		if next[i].Status == domain.CommissionStatusPending && next[i].Date.Before(cutoff) {
			next[i].Status = domain.CommissionStatusOverdue
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	if err := r.store.Save(domain.DomainCommissions, next); err != nil {
		return 0, err
	}
	r.seq = next
	r.publish(ActionUpdated, "")
	return changed, nil
}

// ResetToDefault discards persisted and in-memory state and reseeds the
// default ledger.
func (r *CommissionRepository) ResetToDefault() ([]domain.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(domain.DomainCommissions); err != nil {
		return nil, err
	}
	seq := domain.DefaultCommissions()
	if err := r.store.Save(domain.DomainCommissions, seq); err != nil {
		return nil, err
	}
	r.seq = seq
	r.publish(ActionReset, "")
	return append([]domain.Commission(nil), seq...), nil
}

func (r *CommissionRepository) publish(action, id string) {
	if r.bus == nil {
		return
	}
	r.bus.Publish(TopicChange, ChangeEvent{
		Domain:   domain.DomainCommissions,
		Action:   action,
		EntityID: id,
		At:       time.Now(),
	})
}
