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
	ErrTourNotFound   = errors.New("tour not found")
	ErrTourValidation = errors.New("tour validation failed")
	ErrSlugTaken      = errors.New("slug already in use")
)

type TourService struct {
	tours ports.TourRepository
}

func NewTourService(tours ports.TourRepository) *TourService {
	return &TourService{tours: tours}
}

func (s *TourService) List(ctx context.Context, includeInactive bool) ([]domain.Tour, error) {
	return s.tours.List(ctx, includeInactive)
}

// GetByID returns a single tour with the trip info grid fully populated:
// keys absent from the stored map come back as their fallback values.
func (s *TourService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	tour, err := s.tours.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	tour.TripInfo = tour.TripInfo.WithDefaults()
	return tour, nil
}

func (s *TourService) GetBySlug(ctx context.Context, slug string) (*domain.Tour, error) {
	tour, err := s.tours.FindBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	tour.TripInfo = tour.TripInfo.WithDefaults()
	return tour, nil
}

func (s *TourService) Create(ctx context.Context, fields domain.TourFields) (*domain.Tour, error) {
	if err := normalizeTourFields(&fields, true); err != nil {
		return nil, err
	}
	tour, err := s.tours.Create(ctx, fields)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return tour, nil
}

func (s *TourService) Update(ctx context.Context, id uuid.UUID, fields domain.TourFields) (*domain.Tour, error) {
	if err := normalizeTourFields(&fields, false); err != nil {
		return nil, err
	}
	tour, err := s.tours.Update(ctx, id, fields)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrTourNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return tour, nil
}

func (s *TourService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.tours.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrTourNotFound
		}
		return err
	}
	return nil
}

// normalizeTourFields applies the defaulting rules at the boundary: slug
// derived from name when absent, price_display derived from price when
// blank, gallery capped at the detail-page slot count.
func normalizeTourFields(fields *domain.TourFields, creating bool) error {
	if creating {
		name := strings.TrimSpace(valueOr(fields.Name))
		if name == "" {
			return fmt.Errorf("%w: name is required", ErrTourValidation)
		}
		if strings.TrimSpace(valueOr(fields.Image)) == "" {
			return fmt.Errorf("%w: image is required", ErrTourValidation)
		}
	}

	if fields.Name != nil && strings.TrimSpace(*fields.Name) == "" {
		return fmt.Errorf("%w: name cannot be blank", ErrTourValidation)
	}

	if fields.Price != nil && *fields.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrTourValidation)
	}

	// Auto-derive the slug from the name unless the admin supplied one.
	if fields.Slug == nil || strings.TrimSpace(*fields.Slug) == "" {
		if fields.Name != nil {
			derived := util.Slugify(*fields.Name)
			fields.Slug = &derived
		}
	} else {
		normalized := util.Slugify(*fields.Slug)
		if normalized == "" {
			return fmt.Errorf("%w: slug must contain letters or digits", ErrTourValidation)
		}
		fields.Slug = &normalized
	}
	if creating && (fields.Slug == nil || *fields.Slug == "") {
		return fmt.Errorf("%w: slug could not be derived", ErrTourValidation)
	}

	if fields.PriceDisplay == nil || strings.TrimSpace(*fields.PriceDisplay) == "" {
		if fields.Price != nil {
			display := util.DisplayPrice(*fields.Price)
			fields.PriceDisplay = &display
		}
	}

	if fields.Gallery != nil && len(*fields.Gallery) > domain.GalleryMax {
		trimmed := append([]string(nil), (*fields.Gallery)[:domain.GalleryMax]...)
		fields.Gallery = &trimmed
	}

	return nil
}

func valueOr(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}
