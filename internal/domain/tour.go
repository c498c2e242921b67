package domain

const (
	TourCategoryAdventure = "adventure"
	TourCategoryCultural  = "cultural"
	TourCategoryNature    = "nature"
	TourCategoryCity      = "city"
	TourCategoryFood      = "food"
)

// TourCategories lists the accepted tour category values.
var TourCategories = []string{
	TourCategoryAdventure,
	TourCategoryCultural,
	TourCategoryNature,
	TourCategoryCity,
	TourCategoryFood,
}

// Tour represents a bookable tour product
type Tour struct {
	ID          string  `json:"id" form:"id"`
	Name        string  `json:"name" form:"name"`
	Description string  `json:"description" form:"description"`
	Duration    string  `json:"duration" form:"duration"` // free-text label, e.g. "3 hours"
	Price       float64 `json:"price" form:"price"`
	MaxCapacity int     `json:"maxCapacity" form:"maxCapacity"`
	Location    string  `json:"location" form:"location"`
	Category    string  `json:"category" form:"category"`
	IsActive    bool    `json:"isActive" form:"isActive"`
}
