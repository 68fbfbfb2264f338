package services

import (
	"context"
	"time"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/response_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, userID string) (*response_models.ProfileResponse, error)
	AddToCart(ctx context.Context, userID string, req request_models.CartItemRequest) (*response_models.ProfileResponse, error)
	RemoveFromCart(ctx context.Context, userID string, productID string) (*response_models.ProfileResponse, error)
	AddToWishlist(ctx context.Context, userID string, req request_models.WishlistItemRequest) (*response_models.ProfileResponse, error)
	RemoveFromWishlist(ctx context.Context, userID string, productID string) (*response_models.ProfileResponse, error)
}

type ProfileService struct {
	profileRepo repositories.UserProfileRepository
	now         func() time.Time
}

func NewProfileService(profileRepo repositories.UserProfileRepository) ProfileServiceInterface {
	return &ProfileService{
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

// loadOrCreate lazily creates an empty profile on first access so callers
// never see a missing-profile state for a valid user.
func (p *ProfileService) loadOrCreate(ctx context.Context, userID string) (*db_models.UserProfile, error) {
	profile, err := p.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile != nil {
		return profile, nil
	}

	profile = &db_models.UserProfile{
		UserID:   userID,
		Cart:     []db_models.CartItem{},
		Wishlist: []db_models.WishlistItem{},
	}
	if err := p.profileRepo.Insert(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return profile, nil
}

func profileResponse(profile db_models.UserProfile) *response_models.ProfileResponse {
	cart := profile.Cart
	if cart == nil {
		cart = []db_models.CartItem{}
	}
	wishlist := profile.Wishlist
	if wishlist == nil {
		wishlist = []db_models.WishlistItem{}
	}
	return &response_models.ProfileResponse{
		DisplayName: profile.DisplayName,
		Avatar:      profile.Avatar,
		Cart:        cart,
		Wishlist:    wishlist,
	}
}

func (p *ProfileService) GetProfile(ctx context.Context, userID string) (*response_models.ProfileResponse, error) {
	profile, err := p.loadOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profileResponse(*profile), nil
}

func (p *ProfileService) AddToCart(ctx context.Context, userID string, req request_models.CartItemRequest) (*response_models.ProfileResponse, error) {
	profile, err := p.loadOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	found := false
	for i := range profile.Cart {
		if profile.Cart[i].ProductID == req.ProductID {
			profile.Cart[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		profile.Cart = append(profile.Cart, db_models.CartItem{
			ProductID: req.ProductID,
			Name:      req.Name,
			Price:     req.Price,
			ImageURL:  req.ImageURL,
			Quantity:  quantity,
			AddedAt:   p.now(),
		})
	}

	if err := p.profileRepo.Save(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return profileResponse(*profile), nil
}

func (p *ProfileService) RemoveFromCart(ctx context.Context, userID string, productID string) (*response_models.ProfileResponse, error) {
	profile, err := p.loadOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := profile.Cart[:0]
	removed := false
	for _, item := range profile.Cart {
		if item.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return nil, utils.ErrCartItemNotFound
	}
	profile.Cart = kept

	if err := p.profileRepo.Save(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return profileResponse(*profile), nil
}

func (p *ProfileService) AddToWishlist(ctx context.Context, userID string, req request_models.WishlistItemRequest) (*response_models.ProfileResponse, error) {
	profile, err := p.loadOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, item := range profile.Wishlist {
		if item.ProductID == req.ProductID {
			return profileResponse(*profile), nil
		}
	}
	profile.Wishlist = append(profile.Wishlist, db_models.WishlistItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		ImageURL:  req.ImageURL,
		AddedAt:   p.now(),
	})

	if err := p.profileRepo.Save(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return profileResponse(*profile), nil
}

func (p *ProfileService) RemoveFromWishlist(ctx context.Context, userID string, productID string) (*response_models.ProfileResponse, error) {
	profile, err := p.loadOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := profile.Wishlist[:0]
	removed := false
	for _, item := range profile.Wishlist {
		if item.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return nil, utils.ErrCartItemNotFound
	}
	profile.Wishlist = kept

	if err := p.profileRepo.Save(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return profileResponse(*profile), nil
}
