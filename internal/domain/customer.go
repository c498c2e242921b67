package domain

import "time"

const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
	CustomerStatusProspect = "prospect"
)

// CustomerStatuses lists the accepted customer status values.
var CustomerStatuses = []string{
	CustomerStatusActive,
	CustomerStatusInactive,
	CustomerStatusProspect,
}

// Customer represents a CRM contact record
type Customer struct {
	ID          string    `json:"id" form:"id"`
	Name        string    `json:"name" form:"name"`
	Email       string    `json:"email" form:"email"`
	Phone       string    `json:"phone" form:"phone"`
	Address     string    `json:"address" form:"address"`
	Status      string    `json:"status" form:"status"`
	Notes       string    `json:"notes" form:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	LastContact time.Time `json:"lastContact"`
}
