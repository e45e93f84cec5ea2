package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/sahyadritrails/trails-api/internal/domain"
)

type TourRepository interface {
	List(ctx context.Context, includeInactive bool) ([]domain.Tour, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Tour, error)
	Create(ctx context.Context, fields domain.TourFields) (*domain.Tour, error)
	Update(ctx context.Context, id uuid.UUID, fields domain.TourFields) (*domain.Tour, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}
