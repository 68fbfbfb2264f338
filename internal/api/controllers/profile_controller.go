package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/services"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

func (p *ProfileController) Get(c *gin.Context) {
	profile, err := p.profileService.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Profile retrieved successfully")
}

func (p *ProfileController) AddToCart(c *gin.Context) {
	var req request_models.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := p.profileService.AddToCart(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Item added to cart")
}

func (p *ProfileController) RemoveFromCart(c *gin.Context) {
	profile, err := p.profileService.RemoveFromCart(c.Request.Context(), c.GetString("user_id"), c.Param("productId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Item removed from cart")
}

func (p *ProfileController) AddToWishlist(c *gin.Context) {
	var req request_models.WishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := p.profileService.AddToWishlist(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Item added to wishlist")
}

func (p *ProfileController) RemoveFromWishlist(c *gin.Context) {
	profile, err := p.profileService.RemoveFromWishlist(c.Request.Context(), c.GetString("user_id"), c.Param("productId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Item removed from wishlist")
}
