package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/services"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// Create godoc
// @Summary Book a service session
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Booking payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /bookings [post]
func (b *BookingController) Create(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	booking, err := b.bookingService.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, booking, "Booking created successfully")
}

func (b *BookingController) ListMine(c *gin.Context) {
	userID := c.GetString("user_id")

	bookings, err := b.bookingService.ListMyBookings(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Bookings retrieved successfully")
}

func (b *BookingController) Cancel(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := b.bookingService.CancelBooking(c.Request.Context(), userID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Booking cancelled successfully")
}

// Availability godoc
// @Summary Available time slots for a service on a date
// @Tags Bookings
// @Produce json
// @Param id path string true "Service id"
// @Param date query string true "Date (2006-01-02)"
// @Success 200 {object} utils.APIResponse
// @Router /bookings/availability/{id} [get]
func (b *BookingController) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.RespondError(c, http.StatusBadRequest, "date query parameter is required")
		return
	}

	availability, err := b.bookingService.GetAvailability(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, availability, "Availability retrieved successfully")
}
