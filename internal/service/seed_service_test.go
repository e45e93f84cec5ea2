package service

import (
	"context"
	"testing"
)

func newSeedService(tours *fakeTourRepo, blogs *fakeBlogRepo) *SeedService {
	return NewSeedService(tours, NewTourService(tours), NewBlogService(blogs))
}

func TestSeedSkipsPopulatedDatabase(t *testing.T) {
	tours := &fakeTourRepo{countResult: 9}
	blogs := &fakeBlogRepo{}
	svc := newSeedService(tours, blogs)

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Seeded {
		t.Fatal("expected seed to be skipped when tours exist")
	}
	if len(tours.createInputs) != 0 || len(blogs.createInputs) != 0 {
		t.Fatalf("expected no writes, got %d tours %d blogs", len(tours.createInputs), len(blogs.createInputs))
	}
}

func TestSeedLoadsStarterCatalog(t *testing.T) {
	tours := &fakeTourRepo{}
	blogs := &fakeBlogRepo{}
	svc := newSeedService(tours, blogs)

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !result.Seeded {
		t.Fatal("expected seed to run on an empty database")
	}
	if result.Tours != 9 || len(tours.createInputs) != 9 {
		t.Fatalf("expected 9 tours seeded, got %d (calls %d)", result.Tours, len(tours.createInputs))
	}
	if result.Blogs != 4 || len(blogs.createInputs) != 4 {
		t.Fatalf("expected 4 blogs seeded, got %d (calls %d)", result.Blogs, len(blogs.createInputs))
	}

	first := tours.createInputs[0]
	if first.Name == nil || *first.Name != "Harihar Fort Trek" {
		t.Fatalf("expected first seeded tour to be Harihar Fort Trek, got %v", first.Name)
	}
	if first.Slug == nil || *first.Slug != "harihar-fort-trek" {
		t.Fatalf("expected derived slug, got %v", first.Slug)
	}
	if first.Price == nil || *first.Price != 1666 {
		t.Fatalf("expected price 1666, got %v", first.Price)
	}
	if first.ItineraryDays == nil || len(*first.ItineraryDays) == 0 {
		t.Fatal("expected itinerary days to be seeded")
	}

	for i, fields := range tours.createInputs {
		if fields.SortOrder == nil || *fields.SortOrder != i {
			t.Fatalf("tour %d: expected sort order %d, got %v", i, i, fields.SortOrder)
		}
	}
}
