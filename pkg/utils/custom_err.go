package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidInput       = errors.New("invalid input")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")

	// ErrEmptyCatalog signals a configuration problem: the quiz recommender
	// found zero rows in a catalog it depends on. Distinct from
	// ErrDatabaseError so an operator can tell "nothing seeded" apart from
	// "storage unavailable".
	ErrEmptyCatalog = errors.New("catalog is empty")

	ErrSessionNotFound = errors.New("quiz session not found")

	ErrServiceNotFound  = errors.New("service not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrPodcastNotFound  = errors.New("podcast not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrTimeSlotTaken    = errors.New("time slot already booked")
	ErrBookingInPast    = errors.New("booking date must be in the future")
	ErrNotSubscribed    = errors.New("email is not subscribed")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)
