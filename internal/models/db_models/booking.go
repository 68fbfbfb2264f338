package db_models

import "time"

// Booking snapshots the service details at booking time so later catalog
// edits do not rewrite history.
type Booking struct {
	BaseModel
	ServiceID            string `gorm:"index;size:64"`
	ServiceName          string
	ServicePrice         float64
	ServiceProviderName  string
	ServiceProviderEmail string

	CustomerID    string `gorm:"index;size:64"`
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	BookingDate     time.Time `gorm:"index"`
	BookingTime     string    // "15:00"
	SessionDuration int       // minutes
	SessionType     string    // "video", "phone", "in_person"
	SessionPlatform string
	SpecialRequests string

	Status        string `gorm:"default:pending;index"` // pending, confirmed, completed, cancelled
	PaymentStatus string `gorm:"default:pending"`
}
