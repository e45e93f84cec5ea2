package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/sahyadritrails/trails-api/internal/domain"
)

type BookingRepository interface {
	// List returns bookings newest first; a nil status means no filter.
	List(ctx context.Context, status *domain.BookingStatus) ([]domain.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.Booking, error)
}
