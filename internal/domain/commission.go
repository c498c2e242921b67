package domain

import "time"

const (
	CommissionStatusPaid    = "paid"
	CommissionStatusPending = "pending"
	CommissionStatusOverdue = "overdue"
)

// Commission is a ledger entry recording the operator's cut of a booking.
// Tour and customer names are denormalized snapshots taken when the entry was
// written, so the ledger stays readable even after the referenced records are
// deleted or renamed. Entries are not editable through the API; only the
// overdue sweep and a ledger reset mutate them.
type Commission struct {
	ID               string     `json:"id"`
	BookingID        string     `json:"bookingId"`
	TourID           string     `json:"tourId"`
	CustomerID       string     `json:"customerId"`
	TourName         string     `json:"tourName"`
	CustomerName     string     `json:"customerName"`
	CommissionRate   float64    `json:"commissionRate"`
	BookingAmount    float64    `json:"bookingAmount"`
	CommissionAmount float64    `json:"commissionAmount"`
	Status           string     `json:"status"`
	Date             time.Time  `json:"date"`
	PaidDate         *time.Time `json:"paidDate"`
}
