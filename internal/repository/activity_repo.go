package repository

import (
	"sync"

	"github.com/tourwise/tourcrm/internal/domain"
	"github.com/tourwise/tourcrm/internal/store"
)

// maxActivityEntries caps the persisted activity feed; older entries are
// dropped from the front.
const maxActivityEntries = 200

// ActivityRepository keeps the activity feed fed by repository change events.
// Unlike the other repositories it is append-only and starts empty when
// nothing is persisted.
type ActivityRepository struct {
	mu    sync.Mutex
	store *store.Store
	seq   []domain.ActivityLog
}

func NewActivityRepository(s *store.Store) (*ActivityRepository, error) {
	r := &ActivityRepository{store: s}
	var seq []domain.ActivityLog
	if _, err := s.Load(domain.DomainActivity, &seq); err != nil {
		return nil, err
	}
	r.seq = seq
	return r, nil
}

// Append records one entry, assigning its id, and persists the feed.
func (r *ActivityRepository) Append(entry domain.ActivityLog) error {
	entry.ID = nextID()

	r.mu.Lock()
	defer r.mu.Unlock()
	next := append(append([]domain.ActivityLog(nil), r.seq...), entry)
	if len(next) > maxActivityEntries {
		next = next[len(next)-maxActivityEntries:]
	}
	if err := r.store.Save(domain.DomainActivity, next); err != nil {
		return err
	}
	r.seq = next
	return nil
}

// Recent returns up to n entries, newest last.
func (r *ActivityRepository) Recent(n int) []domain.ActivityLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n <= 0 || n > len(r.seq) {
		n = len(r.seq)
	}
	return append([]domain.ActivityLog(nil), r.seq[len(r.seq)-n:]...)
}
