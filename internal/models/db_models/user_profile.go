package db_models

import "time"

type CartItem struct {
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"imageUrl"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

type WishlistItem struct {
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"imageUrl"`
	AddedAt   time.Time `json:"addedAt"`
}

// UserProfile keeps display preferences plus cart and wishlist state.
// Product references are string ids, same decoupling as Recommendation.
type UserProfile struct {
	BaseModel
	UserID      string `gorm:"uniqueIndex;size:64"`
	DisplayName string
	Avatar      string
	Cart        []CartItem     `gorm:"serializer:json"`
	Wishlist    []WishlistItem `gorm:"serializer:json"`
}
