package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sahyadritrails/trails-api/internal/domain"
	"github.com/sahyadritrails/trails-api/internal/repository/ports"
	"github.com/sahyadritrails/trails-api/internal/util"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingValidation = errors.New("booking validation failed")
)

const maxTravelers = 20

type BookingService struct {
	bookings ports.BookingRepository
	tours    ports.TourRepository
}

func NewBookingService(bookings ports.BookingRepository, tours ports.TourRepository) *BookingService {
	return &BookingService{bookings: bookings, tours: tours}
}

// Submit creates a booking from the public form. The status is always forced
// to pending; whatever the client sent is ignored. When the referenced tour
// still exists the total is recomputed from its current price, otherwise the
// submitted total is kept as-is (the tour may have been deleted since the
// visitor loaded the page).
func (s *BookingService) Submit(ctx context.Context, sub domain.BookingSubmission) (*domain.Booking, error) {
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}

	total := sub.TotalAmount
	if sub.TourID != nil {
		if tour, err := s.tours.FindByID(ctx, *sub.TourID); err == nil {
			total = util.ComputeTotal(tour.Price, sub.NumTravelers)
		} else if !isNotFound(err) {
			return nil, err
		}
	}

	booking := &domain.Booking{
		TourID:               sub.TourID,
		TourName:             strings.TrimSpace(sub.TourName),
		FullName:             strings.TrimSpace(sub.FullName),
		Email:                strings.TrimSpace(sub.Email),
		Phone:                strings.TrimSpace(sub.Phone),
		EmergencyContact:     sub.EmergencyContact,
		NumTravelers:         sub.NumTravelers,
		Address:              sub.Address,
		TotalAmount:          total,
		PaymentScreenshotURL: sub.PaymentScreenshotURL,
		TransactionID:        sub.TransactionID,
		Status:               domain.BookingStatusPending,
	}

	return s.bookings.Create(ctx, booking)
}

// List returns bookings newest first. An empty or "all" status returns every
// row; anything else must parse to a valid status.
func (s *BookingService) List(ctx context.Context, rawStatus string) ([]domain.Booking, error) {
	trimmed := strings.ToLower(strings.TrimSpace(rawStatus))
	if trimmed == "" || trimmed == "all" {
		return s.bookings.List(ctx, nil)
	}
	status, err := domain.ParseBookingStatus(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBookingValidation, err)
	}
	return s.bookings.List(ctx, &status)
}

func (s *BookingService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

// UpdateStatus sets a booking's status. Any status is reachable from any
// other; there is deliberately no transition guard, so a cancelled booking
// can be reopened.
func (s *BookingService) UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*domain.Booking, error) {
	status, err := domain.ParseBookingStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBookingValidation, err)
	}
	booking, err := s.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func validateSubmission(sub domain.BookingSubmission) error {
	for field, value := range map[string]string{
		"tour_name": sub.TourName,
		"full_name": sub.FullName,
		"email":     sub.Email,
		"phone":     sub.Phone,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", ErrBookingValidation, field)
		}
	}
	if sub.NumTravelers < 1 || sub.NumTravelers > maxTravelers {
		return fmt.Errorf("%w: num_travelers must be between 1 and %d", ErrBookingValidation, maxTravelers)
	}
	if sub.TotalAmount < 0 {
		return fmt.Errorf("%w: total_amount cannot be negative", ErrBookingValidation)
	}
	return nil
}
