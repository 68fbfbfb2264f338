package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

type fakeProfileRepo struct {
	profiles map[string]*db_models.UserProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*db_models.UserProfile)}
}

func (f *fakeProfileRepo) FindByUserID(ctx context.Context, userID string) (*db_models.UserProfile, error) {
	return f.profiles[userID], nil
}

func (f *fakeProfileRepo) Insert(ctx context.Context, profile *db_models.UserProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) Save(ctx context.Context, profile *db_models.UserProfile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func TestGetProfileCreatesOnFirstAccess(t *testing.T) {
	repo := newFakeProfileRepo()
	service := NewProfileService(repo)

	got, err := service.GetProfile(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.Cart == nil || got.Wishlist == nil {
		t.Error("cart/wishlist must be empty slices, not nil")
	}
	if repo.profiles["user-1"] == nil {
		t.Error("profile not created on first access")
	}
}

func TestCartAddMergesQuantity(t *testing.T) {
	service := NewProfileService(newFakeProfileRepo())
	ctx := context.Background()

	item := request_models.CartItemRequest{ProductID: "p1", Name: "Amethyst", Price: 35}

	if _, err := service.AddToCart(ctx, "user-1", item); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	got, err := service.AddToCart(ctx, "user-1", item)
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	if len(got.Cart) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(got.Cart))
	}
	if got.Cart[0].Quantity != 2 {
		t.Errorf("Quantity = %d, want 2", got.Cart[0].Quantity)
	}
}

func TestCartRemove(t *testing.T) {
	service := NewProfileService(newFakeProfileRepo())
	ctx := context.Background()

	if _, err := service.AddToCart(ctx, "user-1", request_models.CartItemRequest{ProductID: "p1", Name: "Amethyst"}); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	got, err := service.RemoveFromCart(ctx, "user-1", "p1")
	if err != nil {
		t.Fatalf("RemoveFromCart: %v", err)
	}
	if len(got.Cart) != 0 {
		t.Errorf("cart not empty after removal: %v", got.Cart)
	}

	if _, err := service.RemoveFromCart(ctx, "user-1", "p1"); !errors.Is(err, utils.ErrCartItemNotFound) {
		t.Errorf("missing item err = %v, want ErrCartItemNotFound", err)
	}
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	service := NewProfileService(newFakeProfileRepo())
	ctx := context.Background()

	item := request_models.WishlistItemRequest{ProductID: "p1", Name: "Amethyst"}
	if _, err := service.AddToWishlist(ctx, "user-1", item); err != nil {
		t.Fatalf("AddToWishlist: %v", err)
	}
	got, err := service.AddToWishlist(ctx, "user-1", item)
	if err != nil {
		t.Fatalf("AddToWishlist: %v", err)
	}
	if len(got.Wishlist) != 1 {
		t.Errorf("wishlist has %d entries, want 1", len(got.Wishlist))
	}

	if _, err := service.RemoveFromWishlist(ctx, "user-1", "p1"); err != nil {
		t.Fatalf("RemoveFromWishlist: %v", err)
	}
	if _, err := service.RemoveFromWishlist(ctx, "user-1", "p1"); !errors.Is(err, utils.ErrCartItemNotFound) {
		t.Errorf("missing item err = %v, want ErrCartItemNotFound", err)
	}
}
