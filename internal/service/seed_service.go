package service

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/sahyadritrails/trails-api/internal/domain"
	"github.com/sahyadritrails/trails-api/internal/repository/ports"
)

//go:embed seed_catalog.yaml
var seedCatalogYAML []byte

type seedCatalog struct {
	Tours []seedTour `json:"tours"`
	Blogs []seedBlog `json:"blogs"`
}

type seedTour struct {
	Name              string                    `json:"name"`
	Image             string                    `json:"image"`
	Duration          string                    `json:"duration"`
	Description       string                    `json:"description"`
	Price             int64                     `json:"price"`
	PriceDisplay      string                    `json:"price_display"`
	Date              string                    `json:"date"`
	Inclusions        []string                  `json:"inclusions"`
	ItineraryTitle    string                    `json:"itinerary_title"`
	ItineraryDays     []domain.ItinerarySection `json:"itinerary_days"`
	ItinerarySections []domain.ItinerarySection `json:"itinerary_sections"`
}

type seedBlog struct {
	Title    string `json:"title"`
	Image    string `json:"image"`
	Tag      string `json:"tag"`
	Category string `json:"category"`
	Date     string `json:"date"`
	ReadTime string `json:"read_time"`
}

// SeedResult reports what a seed run did. Seeded is false when the catalog
// was skipped because tours already exist.
type SeedResult struct {
	Seeded bool
	Tours  int
	Blogs  int
}

// SeedService loads the embedded starter catalog into an empty database.
// The run is idempotent: any existing tour makes it a no-op, so repeated
// calls never duplicate rows.
type SeedService struct {
	repo  ports.TourRepository
	tours *TourService
	blogs *BlogService
}

func NewSeedService(repo ports.TourRepository, tours *TourService, blogs *BlogService) *SeedService {
	return &SeedService{repo: repo, tours: tours, blogs: blogs}
}

func (s *SeedService) Run(ctx context.Context) (*SeedResult, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count tours: %w", err)
	}
	if count > 0 {
		return &SeedResult{Seeded: false}, nil
	}

	var catalog seedCatalog
	if err := yaml.Unmarshal(seedCatalogYAML, &catalog); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}

	result := &SeedResult{Seeded: true}
	for i, tour := range catalog.Tours {
		order := i
		fields := domain.TourFields{
			Name:        &tour.Name,
			Image:       &tour.Image,
			Duration:    &tour.Duration,
			Description: &tour.Description,
			Price:       &tour.Price,
			SortOrder:   &order,
		}
		if tour.PriceDisplay != "" {
			fields.PriceDisplay = &tour.PriceDisplay
		}
		if tour.Date != "" {
			fields.Date = &tour.Date
		}
		if len(tour.Inclusions) > 0 {
			fields.Inclusions = &tour.Inclusions
		}
		if tour.ItineraryTitle != "" {
			fields.ItineraryTitle = &tour.ItineraryTitle
		}
		if len(tour.ItineraryDays) > 0 {
			fields.ItineraryDays = &tour.ItineraryDays
		}
		if len(tour.ItinerarySections) > 0 {
			fields.ItinerarySections = &tour.ItinerarySections
		}
		if _, err := s.tours.Create(ctx, fields); err != nil {
			return nil, fmt.Errorf("seed tour %q: %w", tour.Name, err)
		}
		result.Tours++
	}

	for i, blog := range catalog.Blogs {
		order := i
		fields := domain.BlogFields{
			Title:     &blog.Title,
			Image:     &blog.Image,
			Tag:       &blog.Tag,
			Category:  &blog.Category,
			Date:      &blog.Date,
			ReadTime:  &blog.ReadTime,
			SortOrder: &order,
		}
		if _, err := s.blogs.Create(ctx, fields); err != nil {
			return nil, fmt.Errorf("seed blog %q: %w", blog.Title, err)
		}
		result.Blogs++
	}

	return result, nil
}
