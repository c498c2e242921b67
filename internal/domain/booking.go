package domain

import "time"

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// BookingStatuses lists the accepted booking status values. Transitions
// between them are unconstrained direct writes.
var BookingStatuses = []string{
	BookingStatusConfirmed,
	BookingStatusPending,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

// Booking represents a customer's reservation on a tour. CustomerID and
// TourID are references, not ownership: deleting the referenced record leaves
// the booking in place with a dangling reference.
//
// TotalPrice is computed as tour price times participants when the booking is
// created or edited and then frozen as stored data. It is never recomputed
// when the tour's price changes later.
type Booking struct {
	ID              string    `json:"id" form:"id"`
	CustomerID      string    `json:"customerId" form:"customerId"`
	TourID          string    `json:"tourId" form:"tourId"`
	Date            time.Time `json:"date" form:"date"`
	Participants    int       `json:"participants" form:"participants"`
	TotalPrice      float64   `json:"totalPrice"`
	Status          string    `json:"status" form:"status"`
	SpecialRequests string    `json:"specialRequests" form:"specialRequests"`
	CreatedAt       time.Time `json:"createdAt"`
}
