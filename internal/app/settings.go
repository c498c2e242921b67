package app

import (
	"sort"
	"sync"

	"github.com/spf13/cast"

	"github.com/tourwise/tourcrm/internal/domain"
	"github.com/tourwise/tourcrm/internal/store"
)

// Setting keys, addressed as "category.name".
const (
	SettingCompanyName           = "system.company_name"
	SettingCurrency              = "system.currency"
	SettingDefaultCommissionRate = "commission.default_rate"
	SettingCommissionOverdueDays = "commission.overdue_days"
	SettingNotifyOnBooking       = "notify.on_booking"
)

var defaultSettings = map[string]string{
	SettingCompanyName:           "TourWise Operator",
	SettingCurrency:              "USD",
	SettingDefaultCommissionRate: "0.12",
	SettingCommissionOverdueDays: "30",
	SettingNotifyOnBooking:       "true",
}

// SettingsManager keeps the operator preferences as a persisted string map
// with typed accessors. Missing keys fall back to their defaults.
type SettingsManager struct {
	mu    sync.RWMutex
	store *store.Store
	data  map[string]string
}

func NewSettingsManager(s *store.Store) (*SettingsManager, error) {
	m := &SettingsManager{store: s, data: map[string]string{}}
	found, err := s.Load(domain.DomainSettings, &m.data)
	if err != nil {
		return nil, err
	}
	changed := !found
	if m.data == nil {
		m.data = map[string]string{}
	}
	for k, v := range defaultSettings {
		if _, ok := m.data[k]; !ok {
			m.data[k] = v
			changed = true
		}
	}
	if changed {
		if err := s.Save(domain.DomainSettings, m.data); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// GetString retrieves a string setting by category and name.
func (m *SettingsManager) GetString(category, name string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[category+"."+name]
}

// GetInt64 retrieves an integer setting by category and name.
func (m *SettingsManager) GetInt64(category, name string) int64 {
	return cast.ToInt64(m.GetString(category, name))
}

// GetBool retrieves a boolean setting by category and name.
func (m *SettingsManager) GetBool(category, name string) bool {
	return cast.ToBool(m.GetString(category, name))
}

// GetFloat64 retrieves a float setting by category and name.
func (m *SettingsManager) GetFloat64(category, name string) float64 {
	return cast.ToFloat64(m.GetString(category, name))
}

// Set stores one setting and persists the whole map. Unknown keys are
// rejected so typos do not silently create dead entries.
func (m *SettingsManager) Set(key string, value interface{}) error {
	if _, ok := defaultSettings[key]; !ok {
		return errUnknownSetting(key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	next := make(map[string]string, len(m.data))
	for k, v := range m.data {
		next[k] = v
	}
	next[key] = cast.ToString(value)
	if err := m.store.Save(domain.DomainSettings, next); err != nil {
		return err
	}
	m.data = next
	return nil
}

// All returns every setting, sorted by key.
func (m *SettingsManager) All() []SettingEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]SettingEntry, 0, len(m.data))
	for k, v := range m.data {
		out = append(out, SettingEntry{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// SettingEntry is one settings row as served to the presentation layer.
type SettingEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type errUnknownSetting string

func (e errUnknownSetting) Error() string {
	return "unknown setting key: " + string(e)
}

// IsUnknownSetting reports whether err came from Set rejecting the key.
func IsUnknownSetting(err error) bool {
	_, ok := err.(errUnknownSetting)
	return ok
}
