package app

import (
	"go.uber.org/zap"

	"github.com/tourwise/tourcrm/internal/domain"
	"github.com/tourwise/tourcrm/internal/repository"
)

// subscribeActivity feeds the activity log from repository change events.
// Events are delivered synchronously on the mutating call, so the feed is
// current by the time the mutation returns.
func (a *Application) subscribeActivity() error {
	return a.bus.Subscribe(repository.TopicChange, func(ev repository.ChangeEvent) {
		err := a.activity.Append(domain.ActivityLog{
			Domain:   ev.Domain,
			Action:   ev.Action,
			EntityID: ev.EntityID,
			OptTime:  ev.At,
		})
		if err != nil {
			zap.L().Error("failed to record activity", zap.Error(err))
		}
	})
}
