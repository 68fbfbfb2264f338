package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/response_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

const (
	bookingDateLayout = "2006-01-02"
	firstSlotHour     = 9
	lastSlotHour      = 17
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, userID string, req request_models.CreateBookingRequest) (*response_models.BookingResponse, error)
	ListMyBookings(ctx context.Context, userID string) ([]response_models.BookingResponse, error)
	CancelBooking(ctx context.Context, userID string, bookingID string) error
	GetAvailability(ctx context.Context, serviceID string, date string) (*response_models.AvailabilityResponse, error)
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
	serviceRepo repositories.ServiceRepository
	mail        IMailService
	audit       AuditServiceInterface
	now         func() time.Time
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	serviceRepo repositories.ServiceRepository,
	mail IMailService,
	audit AuditServiceInterface,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		mail:        mail,
		audit:       audit,
		now:         time.Now,
	}
}

func bookingResponse(booking db_models.Booking) response_models.BookingResponse {
	return response_models.BookingResponse{
		ID:                  booking.ID.String(),
		ServiceID:           booking.ServiceID,
		ServiceName:         booking.ServiceName,
		ServicePrice:        booking.ServicePrice,
		ServiceProviderName: booking.ServiceProviderName,
		BookingDate:         booking.BookingDate.Format(bookingDateLayout),
		BookingTime:         booking.BookingTime,
		SessionDuration:     booking.SessionDuration,
		SessionType:         booking.SessionType,
		Status:              booking.Status,
		SpecialRequests:     booking.SpecialRequests,
	}
}

func (b *BookingService) CreateBooking(ctx context.Context, userID string, req request_models.CreateBookingRequest) (*response_models.BookingResponse, error) {
	service, err := b.serviceRepo.FindByID(ctx, req.ServiceID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if service == nil {
		return nil, utils.ErrServiceNotFound
	}

	bookingDate, err := time.Parse(bookingDateLayout, req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: bookingDate", utils.ErrInvalidInput)
	}
	slotTime, err := time.Parse("15:04", req.BookingTime)
	if err != nil {
		return nil, fmt.Errorf("%w: bookingTime", utils.ErrInvalidInput)
	}

	slotStart := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(),
		slotTime.Hour(), slotTime.Minute(), 0, 0, time.UTC)
	if !slotStart.After(b.now().UTC()) {
		return nil, utils.ErrBookingInPast
	}

	blocking, err := b.bookingRepo.FindBlockingBooking(ctx, req.ServiceID, bookingDate, req.BookingTime)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if blocking != nil {
		return nil, utils.ErrTimeSlotTaken
	}

	duration := req.SessionDuration
	if duration <= 0 {
		duration = 60
	}
	sessionType := req.SessionType
	if sessionType == "" {
		sessionType = "video"
	}

	booking := &db_models.Booking{
		ServiceID:            req.ServiceID,
		ServiceName:          service.Name,
		ServicePrice:         service.Price,
		ServiceProviderName:  service.ServiceProviderName,
		ServiceProviderEmail: service.ServiceProviderEmail,
		CustomerID:           userID,
		CustomerName:         req.CustomerName,
		CustomerEmail:        req.CustomerEmail,
		CustomerPhone:        req.CustomerPhone,
		BookingDate:          bookingDate,
		BookingTime:          req.BookingTime,
		SessionDuration:      duration,
		SessionType:          sessionType,
		SessionPlatform:      req.SessionPlatform,
		SpecialRequests:      req.SpecialRequests,
		Status:               "pending",
		PaymentStatus:        "pending",
	}
	if err := b.bookingRepo.Insert(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if service.ServiceProviderEmail != "" {
		if err := b.mail.SendBookingNotification(service.ServiceProviderEmail, service.Name, req.BookingDate, req.BookingTime); err != nil {
			log.Printf("Error sending booking notification for %s: %v", booking.ID, err)
		}
	}

	b.audit.Record(ctx, db_models.AuditLog{
		UserID:   userID,
		Action:   "CREATE",
		Resource: "SERVICES",
		Details:  fmt.Sprintf("booking %s for service %s", booking.ID, req.ServiceID),
	})

	resp := bookingResponse(*booking)
	return &resp, nil
}

func (b *BookingService) ListMyBookings(ctx context.Context, userID string) ([]response_models.BookingResponse, error) {
	bookings, err := b.bookingRepo.ListByCustomer(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		out = append(out, bookingResponse(booking))
	}
	return out, nil
}

func (b *BookingService) CancelBooking(ctx context.Context, userID string, bookingID string) error {
	booking, err := b.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	// Hide other users' bookings behind not-found.
	if booking == nil || booking.CustomerID != userID {
		return utils.ErrBookingNotFound
	}
	if booking.Status == "cancelled" {
		return nil
	}

	if err := b.bookingRepo.UpdateStatus(ctx, bookingID, "cancelled"); err != nil {
		return utils.ErrDatabaseError
	}

	b.audit.Record(ctx, db_models.AuditLog{
		UserID:   userID,
		Action:   "UPDATE",
		Resource: "SERVICES",
		Details:  fmt.Sprintf("cancelled booking %s", bookingID),
	})
	return nil
}

// GetAvailability lists the hourly slots between 09:00 and 17:00 not held by
// a confirmed or completed booking on the given date.
func (b *BookingService) GetAvailability(ctx context.Context, serviceID string, date string) (*response_models.AvailabilityResponse, error) {
	service, err := b.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if service == nil {
		return nil, utils.ErrServiceNotFound
	}

	day, err := time.Parse(bookingDateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: date", utils.ErrInvalidInput)
	}

	bookings, err := b.bookingRepo.ListForServiceOnDate(ctx, serviceID, day)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	taken := make(map[string]bool, len(bookings))
	for _, booking := range bookings {
		taken[booking.BookingTime] = true
	}

	var slots []string
	for hour := firstSlotHour; hour <= lastSlotHour; hour++ {
		slot := fmt.Sprintf("%02d:00", hour)
		if !taken[slot] {
			slots = append(slots, slot)
		}
	}

	return &response_models.AvailabilityResponse{
		ServiceID:      serviceID,
		Date:           date,
		AvailableSlots: slots,
	}, nil
}
