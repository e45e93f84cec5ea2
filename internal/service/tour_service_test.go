package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sahyadritrails/trails-api/internal/domain"
)

type fakeTourRepo struct {
	listIncludeInactive bool
	listResult          []domain.Tour
	listErr             error

	findByIDInput  uuid.UUID
	findByIDResult *domain.Tour
	findByIDErr    error

	findBySlugInput  string
	findBySlugResult *domain.Tour
	findBySlugErr    error

	createInputs []domain.TourFields
	createResult *domain.Tour
	createErr    error

	updateID     uuid.UUID
	updateFields domain.TourFields
	updateResult *domain.Tour
	updateErr    error

	deleteInput uuid.UUID
	deleteErr   error

	countResult int
	countErr    error
}

func (f *fakeTourRepo) List(ctx context.Context, includeInactive bool) ([]domain.Tour, error) {
	f.listIncludeInactive = includeInactive
	return f.listResult, f.listErr
}

func (f *fakeTourRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	f.findByIDInput = id
	return f.findByIDResult, f.findByIDErr
}

func (f *fakeTourRepo) FindBySlug(ctx context.Context, slug string) (*domain.Tour, error) {
	f.findBySlugInput = slug
	return f.findBySlugResult, f.findBySlugErr
}

func (f *fakeTourRepo) Create(ctx context.Context, fields domain.TourFields) (*domain.Tour, error) {
	f.createInputs = append(f.createInputs, fields)
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createResult != nil {
		return f.createResult, nil
	}
	tour := &domain.Tour{ID: uuid.New()}
	if fields.Name != nil {
		tour.Name = *fields.Name
	}
	if fields.Slug != nil {
		tour.Slug = *fields.Slug
	}
	return tour, nil
}

func (f *fakeTourRepo) Update(ctx context.Context, id uuid.UUID, fields domain.TourFields) (*domain.Tour, error) {
	f.updateID = id
	f.updateFields = fields
	return f.updateResult, f.updateErr
}

func (f *fakeTourRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleteInput = id
	return f.deleteErr
}

func (f *fakeTourRepo) Count(ctx context.Context) (int, error) {
	return f.countResult, f.countErr
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestTourCreateDerivesSlugFromName(t *testing.T) {
	repo := &fakeTourRepo{}
	svc := NewTourService(repo)

	_, err := svc.Create(context.Background(), domain.TourFields{
		Name:  strPtr("Harihar Fort Trek"),
		Image: strPtr("https://example.com/a.jpg"),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(repo.createInputs) != 1 {
		t.Fatalf("expected 1 create call, got %d", len(repo.createInputs))
	}
	got := repo.createInputs[0]
	if got.Slug == nil || *got.Slug != "harihar-fort-trek" {
		t.Fatalf("expected derived slug %q, got %v", "harihar-fort-trek", got.Slug)
	}
}

func TestTourCreateNormalizesSuppliedSlug(t *testing.T) {
	repo := &fakeTourRepo{}
	svc := NewTourService(repo)

	_, err := svc.Create(context.Background(), domain.TourFields{
		Name:  strPtr("Kalsubai Peak Trek"),
		Image: strPtr("https://example.com/a.jpg"),
		Slug:  strPtr("  Kalsubai--2026!  "),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	got := repo.createInputs[0]
	if got.Slug == nil || *got.Slug != "kalsubai-2026" {
		t.Fatalf("expected normalized slug %q, got %v", "kalsubai-2026", got.Slug)
	}
}

func TestTourCreateRequiresNameAndImage(t *testing.T) {
	svc := NewTourService(&fakeTourRepo{})

	if _, err := svc.Create(context.Background(), domain.TourFields{Image: strPtr("x.jpg")}); !errors.Is(err, ErrTourValidation) {
		t.Fatalf("expected validation error for missing name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), domain.TourFields{Name: strPtr("Rajmachi")}); !errors.Is(err, ErrTourValidation) {
		t.Fatalf("expected validation error for missing image, got %v", err)
	}
}

func TestTourCreateDerivesPriceDisplay(t *testing.T) {
	repo := &fakeTourRepo{}
	svc := NewTourService(repo)

	_, err := svc.Create(context.Background(), domain.TourFields{
		Name:  strPtr("Rajmachi Fort Trek"),
		Image: strPtr("https://example.com/a.jpg"),
		Price: int64Ptr(150000),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	got := repo.createInputs[0]
	if got.PriceDisplay == nil || *got.PriceDisplay != "1,50,000 Rs/-" {
		t.Fatalf("expected derived price display %q, got %v", "1,50,000 Rs/-", got.PriceDisplay)
	}
}

func TestTourCreateKeepsExplicitPriceDisplay(t *testing.T) {
	repo := &fakeTourRepo{}
	svc := NewTourService(repo)

	_, err := svc.Create(context.Background(), domain.TourFields{
		Name:         strPtr("Rajmachi Fort Trek"),
		Image:        strPtr("https://example.com/a.jpg"),
		Price:        int64Ptr(1800),
		PriceDisplay: strPtr("Early bird 1,500 Rs/-"),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	got := repo.createInputs[0]
	if got.PriceDisplay == nil || *got.PriceDisplay != "Early bird 1,500 Rs/-" {
		t.Fatalf("explicit price display was overridden: %v", got.PriceDisplay)
	}
}

func TestTourCreateRejectsNegativePrice(t *testing.T) {
	svc := NewTourService(&fakeTourRepo{})

	_, err := svc.Create(context.Background(), domain.TourFields{
		Name:  strPtr("Triund Trek"),
		Image: strPtr("https://example.com/a.jpg"),
		Price: int64Ptr(-1),
	})
	if !errors.Is(err, ErrTourValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTourCreateCapsGallery(t *testing.T) {
	repo := &fakeTourRepo{}
	svc := NewTourService(repo)

	gallery := []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg"}
	_, err := svc.Create(context.Background(), domain.TourFields{
		Name:    strPtr("Kedarkantha Trek"),
		Image:   strPtr("https://example.com/a.jpg"),
		Gallery: &gallery,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	got := repo.createInputs[0]
	if got.Gallery == nil || len(*got.Gallery) != domain.GalleryMax {
		t.Fatalf("expected gallery capped at %d, got %v", domain.GalleryMax, got.Gallery)
	}
	if (*got.Gallery)[2] != "c.jpg" {
		t.Fatalf("expected first %d images kept, got %v", domain.GalleryMax, *got.Gallery)
	}
}

func TestTourCreateSlugConflict(t *testing.T) {
	repo := &fakeTourRepo{createErr: &pgconn.PgError{Code: "23505"}}
	svc := NewTourService(repo)

	_, err := svc.Create(context.Background(), domain.TourFields{
		Name:  strPtr("Harihar Fort Trek"),
		Image: strPtr("https://example.com/a.jpg"),
	})
	if !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
}

func TestTourUpdateNotFound(t *testing.T) {
	repo := &fakeTourRepo{updateErr: sql.ErrNoRows}
	svc := NewTourService(repo)

	_, err := svc.Update(context.Background(), uuid.New(), domain.TourFields{Price: int64Ptr(500)})
	if !errors.Is(err, ErrTourNotFound) {
		t.Fatalf("expected ErrTourNotFound, got %v", err)
	}
}

func TestTourGetBySlugNotFound(t *testing.T) {
	repo := &fakeTourRepo{findBySlugErr: sql.ErrNoRows}
	svc := NewTourService(repo)

	_, err := svc.GetBySlug(context.Background(), "missing-trek")
	if !errors.Is(err, ErrTourNotFound) {
		t.Fatalf("expected ErrTourNotFound, got %v", err)
	}
	if repo.findBySlugInput != "missing-trek" {
		t.Fatalf("expected slug passthrough, got %q", repo.findBySlugInput)
	}
}

func TestTourGetByIDFillsTripInfoDefaults(t *testing.T) {
	id := uuid.New()
	repo := &fakeTourRepo{findByIDResult: &domain.Tour{
		ID:       id,
		TripInfo: domain.TripInfo{"departure": "Mumbai"},
	}}
	svc := NewTourService(repo)

	tour, err := svc.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if tour.TripInfo["departure"] != "Mumbai" {
		t.Fatalf("stored value overridden: %q", tour.TripInfo["departure"])
	}
	if tour.TripInfo["arrival"] != "Pune" {
		t.Fatalf("expected default arrival Pune, got %q", tour.TripInfo["arrival"])
	}
	if tour.TripInfo["trek_lead"] != "Expert Guide" {
		t.Fatalf("expected default trek lead, got %q", tour.TripInfo["trek_lead"])
	}
}

func TestTourDelete(t *testing.T) {
	repo := &fakeTourRepo{}
	svc := NewTourService(repo)

	id := uuid.New()
	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if repo.deleteInput != id {
		t.Fatalf("expected delete for %s, got %s", id, repo.deleteInput)
	}
}
