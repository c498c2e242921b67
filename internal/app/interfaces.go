package app

import (
	"github.com/robfig/cron/v3"

	"github.com/tourwise/tourcrm/config"
	"github.com/tourwise/tourcrm/internal/repository"
	"github.com/tourwise/tourcrm/internal/store"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides access to the persistent store
type StoreProvider interface {
	Store() *store.Store
}

// SettingsProvider provides operator settings access
type SettingsProvider interface {
	Settings() *SettingsManager
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// DataProvider provides the domain repositories
type DataProvider interface {
	Customers() *repository.CustomerRepository
	Tours() *repository.TourRepository
	Bookings() *repository.BookingRepository
	Commissions() *repository.CommissionRepository
	Activity() *repository.ActivityRepository
}

// AppContext combines all provider interfaces for full application context.
// Handlers should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	StoreProvider
	SettingsProvider
	SchedulerProvider
	DataProvider

	// ResetAll reseeds every data domain from the default datasets
	ResetAll() error
	// SchedCommissionOverdueTask runs the overdue sweep immediately
	SchedCommissionOverdueTask()
}
