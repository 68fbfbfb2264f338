package response_models

import "github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"

type ProfileResponse struct {
	DisplayName string                   `json:"displayName"`
	Avatar      string                   `json:"avatar,omitempty"`
	Cart        []db_models.CartItem     `json:"cart"`
	Wishlist    []db_models.WishlistItem `json:"wishlist"`
}
