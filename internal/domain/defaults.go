package domain

import "time"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

// DefaultCustomers returns the seed customer dataset. Callers own the
// returned slice; a fresh copy is built on every call.
func DefaultCustomers() []Customer {
	return []Customer{
		{
			ID:          "1",
			Name:        "Sarah Johnson",
			Email:       "sarah.johnson@email.com",
			Phone:       "+1 (555) 123-4567",
			Address:     "123 Main St, New York, NY 10001",
			CreatedAt:   day(2024, 1, 15),
			LastContact: day(2024, 3, 20),
			Status:      CustomerStatusActive,
			Notes:       "Interested in adventure tours, prefers morning departures",
		},
		{
			ID:          "2",
			Name:        "Michael Chen",
			Email:       "michael.chen@email.com",
			Phone:       "+1 (555) 234-5678",
			Address:     "456 Oak Ave, Los Angeles, CA 90210",
			CreatedAt:   day(2024, 2, 10),
			LastContact: day(2024, 3, 18),
			Status:      CustomerStatusActive,
			Notes:       "Family of 4, interested in cultural tours",
		},
		{
			ID:          "3",
			Name:        "Emily Rodriguez",
			Email:       "emily.rodriguez@email.com",
			Phone:       "+1 (555) 345-6789",
			Address:     "789 Pine St, Miami, FL 33101",
			CreatedAt:   day(2024, 1, 28),
			LastContact: day(2024, 3, 15),
			Status:      CustomerStatusProspect,
			Notes:       "Looking for food tours, budget-conscious",
		},
		{
			ID:          "4",
			Name:        "David Thompson",
			Email:       "david.thompson@email.com",
			Phone:       "+1 (555) 456-7890",
			Address:     "321 Elm St, Chicago, IL 60601",
			CreatedAt:   day(2024, 3, 1),
			LastContact: day(2024, 3, 22),
			Status:      CustomerStatusActive,
			Notes:       "Solo traveler, prefers small group tours",
		},
		{
			ID:          "5",
			Name:        "Lisa Wang",
			Email:       "lisa.wang@email.com",
			Phone:       "+1 (555) 567-8901",
			Address:     "654 Maple Dr, Seattle, WA 98101",
			CreatedAt:   day(2024, 2, 20),
			LastContact: day(2024, 3, 19),
			Status:      CustomerStatusInactive,
			Notes:       "Last booking was 6 months ago",
		},
	}
}

// DefaultTours returns the seed tour catalog.
func DefaultTours() []Tour {
	return []Tour{
		{
			ID:          "1",
			Name:        "City Explorer Walking Tour",
			Description: "Discover the hidden gems and historical landmarks of downtown with our expert guides.",
			Duration:    "3 hours",
			Price:       45,
			MaxCapacity: 15,
			Location:    "Downtown",
			Category:    TourCategoryCity,
			IsActive:    true,
		},
		{
			ID:          "2",
			Name:        "Mountain Adventure Hike",
			Description: "Experience breathtaking views and challenging trails in the nearby mountain range.",
			Duration:    "6 hours",
			Price:       75,
			MaxCapacity: 12,
			Location:    "Mountain Range",
			Category:    TourCategoryAdventure,
			IsActive:    true,
		},
		{
			ID:          "3",
			Name:        "Cultural Heritage Tour",
			Description: "Immerse yourself in local culture, visit museums, and learn about traditional customs.",
			Duration:    "4 hours",
			Price:       60,
			MaxCapacity: 20,
			Location:    "Cultural District",
			Category:    TourCategoryCultural,
			IsActive:    true,
		},
		{
			ID:          "4",
			Name:        "Nature Photography Safari",
			Description: "Capture stunning wildlife and landscapes with professional photography guidance.",
			Duration:    "8 hours",
			Price:       120,
			MaxCapacity: 8,
			Location:    "National Park",
			Category:    TourCategoryNature,
			IsActive:    true,
		},
		{
			ID:          "5",
			Name:        "Food & Wine Tasting",
			Description: "Savor local cuisine and fine wines at the best restaurants and vineyards.",
			Duration:    "5 hours",
			Price:       90,
			MaxCapacity: 10,
			Location:    "Wine Country",
			Category:    TourCategoryFood,
			IsActive:    true,
		},
	}
}

// DefaultBookings returns the seed booking dataset.
func DefaultBookings() []Booking {
	return []Booking{
		{
			ID:              "1",
			CustomerID:      "1",
			TourID:          "2",
			Date:            day(2024, 4, 15),
			Participants:    2,
			TotalPrice:      150,
			Status:          BookingStatusConfirmed,
			SpecialRequests: "Vegetarian lunch option",
			CreatedAt:       day(2024, 3, 20),
		},
		{
			ID:              "2",
			CustomerID:      "2",
			TourID:          "3",
			Date:            day(2024, 4, 20),
			Participants:    4,
			TotalPrice:      240,
			Status:          BookingStatusPending,
			SpecialRequests: "Wheelchair accessible route",
			CreatedAt:       day(2024, 3, 21),
		},
		{
			ID:              "3",
			CustomerID:      "4",
			TourID:          "1",
			Date:            day(2024, 4, 10),
			Participants:    1,
			TotalPrice:      45,
			Status:          BookingStatusCompleted,
			SpecialRequests: "None",
			CreatedAt:       day(2024, 3, 15),
		},
		{
			ID:              "4",
			CustomerID:      "1",
			TourID:          "5",
			Date:            day(2024, 4, 25),
			Participants:    2,
			TotalPrice:      180,
			Status:          BookingStatusConfirmed,
			SpecialRequests: "Allergic to shellfish",
			CreatedAt:       day(2024, 3, 22),
		},
		{
			ID:              "5",
			CustomerID:      "3",
			TourID:          "4",
			Date:            day(2024, 4, 12),
			Participants:    1,
			TotalPrice:      120,
			Status:          BookingStatusCancelled,
			SpecialRequests: "None",
			CreatedAt:       day(2024, 3, 18),
		},
	}
}

// DefaultCommissions returns the seed commission ledger.
func DefaultCommissions() []Commission {
	return []Commission{
		{
			ID:               "1",
			BookingID:        "1",
			TourID:           "2",
			CustomerID:       "1",
			TourName:         "Mountain Adventure Hike",
			CustomerName:     "Sarah Johnson",
			CommissionRate:   0.15,
			BookingAmount:    150,
			CommissionAmount: 22.5,
			Status:           CommissionStatusPaid,
			Date:             day(2024, 3, 20),
			PaidDate:         dayPtr(2024, 3, 25),
		},
		{
			ID:               "2",
			BookingID:        "2",
			TourID:           "3",
			CustomerID:       "2",
			TourName:         "Cultural Heritage Tour",
			CustomerName:     "Michael Chen",
			CommissionRate:   0.12,
			BookingAmount:    240,
			CommissionAmount: 28.8,
			Status:           CommissionStatusPending,
			Date:             day(2024, 3, 21),
		},
		{
			ID:               "3",
			BookingID:        "3",
			TourID:           "1",
			CustomerID:       "4",
			TourName:         "City Explorer Walking Tour",
			CustomerName:     "David Thompson",
			CommissionRate:   0.10,
			BookingAmount:    45,
			CommissionAmount: 4.5,
			Status:           CommissionStatusPaid,
			Date:             day(2024, 3, 15),
			PaidDate:         dayPtr(2024, 3, 18),
		},
		{
			ID:               "4",
			BookingID:        "4",
			TourID:           "5",
			CustomerID:       "1",
			TourName:         "Food & Wine Tasting",
			CustomerName:     "Sarah Johnson",
			CommissionRate:   0.18,
			BookingAmount:    180,
			CommissionAmount: 32.4,
			Status:           CommissionStatusPending,
			Date:             day(2024, 3, 22),
		},
	}
}
