package app

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tourwise/tourcrm/config"
	"github.com/tourwise/tourcrm/internal/repository"
	"github.com/tourwise/tourcrm/internal/store"
)

// Application wires the persistent store, the domain repositories, the
// settings manager, the event bus and the scheduler together. One instance
// owns one store file; the design assumes a single active session mutating
// it.
type Application struct {
	appConfig   *config.AppConfig
	store       *store.Store
	bus         EventBus.Bus
	sched       *cron.Cron
	settings    *SettingsManager
	customers   *repository.CustomerRepository
	tours       *repository.TourRepository
	bookings    *repository.BookingRepository
	commissions *repository.CommissionRepository
	activity    *repository.ActivityRepository
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ StoreProvider     = (*Application)(nil)
	_ SettingsProvider  = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ DataProvider      = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig  { return a.appConfig }
func (a *Application) Store() *store.Store        { return a.store }
func (a *Application) Bus() EventBus.Bus          { return a.bus }
func (a *Application) Scheduler() *cron.Cron      { return a.sched }
func (a *Application) Settings() *SettingsManager { return a.settings }

func (a *Application) Customers() *repository.CustomerRepository     { return a.customers }
func (a *Application) Tours() *repository.TourRepository             { return a.tours }
func (a *Application) Bookings() *repository.BookingRepository       { return a.bookings }
func (a *Application) Commissions() *repository.CommissionRepository { return a.commissions }
func (a *Application) Activity() *repository.ActivityRepository      { return a.activity }

// Init builds the logger, opens the store, hydrates every repository (seeding
// defaults on first run), and starts the background jobs.
func (a *Application) Init() error {
	cfg := a.appConfig

	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger()

	if err := os.MkdirAll(cfg.System.Workdir, 0755); err != nil {
		return errors.Wrap(err, "create workdir")
	}

	a.store, err = store.Open(cfg.StorePath())
	if err != nil {
		return err
	}
	zap.S().Infof("store opened: %s", cfg.StorePath())

	a.bus = EventBus.New()

	a.activity, err = repository.NewActivityRepository(a.store)
	if err != nil {
		return err
	}
	if err := a.subscribeActivity(); err != nil {
		return err
	}

	a.customers, err = repository.NewCustomerRepository(a.store, a.bus)
	if err != nil {
		return err
	}
	a.tours, err = repository.NewTourRepository(a.store, a.bus)
	if err != nil {
		return err
	}
	a.bookings, err = repository.NewBookingRepository(a.store, a.bus, a.tours, a.customers)
	if err != nil {
		return err
	}
	a.commissions, err = repository.NewCommissionRepository(a.store, a.bus)
	if err != nil {
		return err
	}

	a.settings, err = NewSettingsManager(a.store)
	if err != nil {
		return err
	}

	a.initJob()
	return nil
}

func (a *Application) initLogger() {
	cfg := a.appConfig

	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

// ResetAll reseeds every data domain at once. The HTTP layer gates it behind
// an explicit confirmation, same as the per-domain resets.
func (a *Application) ResetAll() error {
	if _, err := a.customers.ResetToDefault(); err != nil {
		return err
	}
	if _, err := a.tours.ResetToDefault(); err != nil {
		return err
	}
	if _, err := a.bookings.ResetToDefault(); err != nil {
		return err
	}
	if _, err := a.commissions.ResetToDefault(); err != nil {
		return err
	}
	return nil
}

// Release stops background jobs and closes the store.
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.store != nil {
		_ = a.store.Close()
	}
	_ = zap.L().Sync()
}
