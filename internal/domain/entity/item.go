package entity

import (
	"time"
)

type ItemStatus string

const (
	StatusActive      ItemStatus = "active"
	StatusSold        ItemStatus = "sold"
	StatusRented      ItemStatus = "rented"
	StatusUnavailable ItemStatus = "unavailable"
)

// Top-level listing categories. Category-specific satellite fields on Item
// are only meaningful for the matching category.
const (
	CategoryForSale  = "For Sale"
	CategoryForRent  = "For Rent"
	CategoryJobs     = "Jobs"
	CategoryServices = "Services"
)

type Item struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PhotoUrl    string    `json:"photoUrl,omitempty"`
	Price       float64   `json:"price"`
	ListedDate  time.Time `json:"listedDate"`
	Category    string    `json:"category"`

	JobType       string     `json:"jobType,omitempty"`
	ServiceType   string     `json:"serviceType,omitempty"`
	RentalPeriod  string     `json:"rentalPeriod,omitempty"`
	AvailableFrom *time.Time `json:"availableFrom,omitempty"`
	AvailableTo   *time.Time `json:"availableTo,omitempty"`

	// Job-specific fields
	JobCategory  string `json:"jobCategory,omitempty"`
	CompanyName  string `json:"companyName,omitempty"`
	JobLocation  string `json:"jobLocation,omitempty"`
	ApplyMethod  string `json:"applyMethod,omitempty"`
	ApplyContact string `json:"applyContact,omitempty"`

	// Service-specific fields
	ServiceCategory     string   `json:"serviceCategory,omitempty"`
	ServiceAvailability string   `json:"serviceAvailability,omitempty"`
	YearsOfExperience   *int     `json:"yearsOfExperience,omitempty"`
	NumberOfEmployees   *int     `json:"numberOfEmployees,omitempty"`
	ServiceLocation     string   `json:"serviceLocation,omitempty"`
	AverageRating       *float64 `json:"averageRating,omitempty"`

	// Location fields. Latitude and Longitude are set together or not at all.
	State     *AlState `json:"state,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	ForSaleCategory string `json:"forSaleCategory,omitempty"`
	ForRentCategory string `json:"forRentCategory,omitempty"`

	PostedByUserID int `json:"postedByUserId"`
	// PostedByUser is a point-in-time snapshot taken when the item is
	// written; later edits to the user do not rewrite it.
	PostedByUser *User `json:"postedByUser,omitempty"`

	Status           ItemStatus  `json:"status"`
	FavoritedByUsers []User      `json:"favoritedByUsers,omitempty"`
	Photos           []ItemPhoto `json:"photos,omitempty"`

	ImageUrl string `json:"imageUrl,omitempty"`
}

// HasLocation reports whether the item carries a complete coordinate pair.
func (i *Item) HasLocation() bool {
	return i.Latitude != nil && i.Longitude != nil
}

// IsFavoritedBy reports whether userID is in the item's favorite list.
func (i *Item) IsFavoritedBy(userID int) bool {
	for _, u := range i.FavoritedByUsers {
		if u.ID == userID {
			return true
		}
	}
	return false
}
