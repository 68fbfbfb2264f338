package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *db_models.Booking) error
	FindByID(ctx context.Context, id string) (*db_models.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]db_models.Booking, error)
	// FindBlockingBooking reports an existing confirmed or completed booking
	// occupying the slot, nil when the slot is free.
	FindBlockingBooking(ctx context.Context, serviceID string, date time.Time, timeSlot string) (*db_models.Booking, error)
	ListForServiceOnDate(ctx context.Context, serviceID string, date time.Time) ([]db_models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Insert(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("booking_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindBlockingBooking(ctx context.Context, serviceID string, date time.Time, timeSlot string) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.db.WithContext(ctx).
		Where("service_id = ? AND booking_date = ? AND booking_time = ? AND status IN ?",
			serviceID, date, timeSlot, []string{"confirmed", "completed"}).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListForServiceOnDate(ctx context.Context, serviceID string, date time.Time) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := r.db.WithContext(ctx).
		Where("service_id = ? AND booking_date = ? AND status IN ?",
			serviceID, date, []string{"confirmed", "completed"}).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}
