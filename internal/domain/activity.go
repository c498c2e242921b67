package domain

import "time"

// ActivityLog records a single repository mutation for the activity feed.
type ActivityLog struct {
	ID       string    `json:"id"`
	Domain   string    `json:"domain"`
	Action   string    `json:"action"` // created, updated, deleted, reset
	EntityID string    `json:"entityId"`
	OptTime  time.Time `json:"optTime"`
}
