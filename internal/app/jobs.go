package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	if loc == nil {
		loc = time.Local
	}
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	_, err := a.sched.AddFunc("@daily", func() {
		a.SchedCommissionOverdueTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedCommissionOverdueTask flips pending commission entries past the
// configured overdue window to overdue. Also callable on demand from the
// admin API.
func (a *Application) SchedCommissionOverdueTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	days := a.settings.GetInt64("commission", "overdue_days")
	if days <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -int(days))
	changed, err := a.commissions.MarkOverdue(cutoff)
	if err != nil {
		zap.L().Error("commission overdue sweep failed", zap.Error(err))
		return
	}
	if changed > 0 {
		zap.L().Info("commission overdue sweep",
			zap.Int("changed", changed), zap.Time("cutoff", cutoff))
	}
}
