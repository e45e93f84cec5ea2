package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/sahyadritrails/trails-api/internal/domain"
)

type BlogRepository interface {
	List(ctx context.Context, includeInactive bool) ([]domain.Blog, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error)
	Create(ctx context.Context, fields domain.BlogFields) (*domain.Blog, error)
	Update(ctx context.Context, id uuid.UUID, fields domain.BlogFields) (*domain.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
