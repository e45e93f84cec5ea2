package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sahyadritrails/trails-api/internal/domain"
	"github.com/sahyadritrails/trails-api/internal/repository/ports"
)

const tourColumns = `id, name, slug, image, gallery, duration, description, price,
       price_display, date, inclusions, itinerary_title, itinerary_days,
       itinerary_sections, qr_image, trip_info, is_active, sort_order,
       created_at, updated_at`

type TourRepository struct {
	db *sqlx.DB
}

func NewTourRepo(db *sqlx.DB) *TourRepository {
	return &TourRepository{db: db}
}

func (r *TourRepository) List(ctx context.Context, includeInactive bool) ([]domain.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours`
	if !includeInactive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order ASC, created_at ASC`

	tours := make([]domain.Tour, 0)
	if err := r.db.SelectContext(ctx, &tours, query); err != nil {
		return nil, err
	}
	return tours, nil
}

func (r *TourRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours WHERE id = $1`
	var tour domain.Tour
	if err := r.db.GetContext(ctx, &tour, query, id); err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *TourRepository) FindBySlug(ctx context.Context, slug string) (*domain.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours WHERE slug = $1`
	var tour domain.Tour
	if err := r.db.GetContext(ctx, &tour, query, slug); err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *TourRepository) Create(ctx context.Context, fields domain.TourFields) (*domain.Tour, error) {
	query := `
		INSERT INTO tours (
			name, slug, image, gallery, duration, description, price,
			price_display, date, inclusions, itinerary_title, itinerary_days,
			itinerary_sections, qr_image, trip_info, is_active, sort_order
		) VALUES (
			:name, :slug, :image, :gallery, :duration, :description, :price,
			:price_display, :date, :inclusions, :itinerary_title, :itinerary_days,
			:itinerary_sections, :qr_image, :trip_info, :is_active, :sort_order
		)
		RETURNING ` + tourColumns

	args := map[string]any{
		"name":               stringOr(fields.Name, ""),
		"slug":               stringOr(fields.Slug, ""),
		"image":              stringOr(fields.Image, ""),
		"gallery":            stringArray(fields.Gallery),
		"duration":           stringOr(fields.Duration, ""),
		"description":        stringOr(fields.Description, ""),
		"price":              int64Or(fields.Price, 0),
		"price_display":      stringOr(fields.PriceDisplay, ""),
		"date":               nullString(fields.Date),
		"inclusions":         stringArray(fields.Inclusions),
		"itinerary_title":    nullString(fields.ItineraryTitle),
		"itinerary_days":     itineraryValue(fields.ItineraryDays),
		"itinerary_sections": itineraryValue(fields.ItinerarySections),
		"qr_image":           nullString(fields.QRImage),
		"trip_info":          tripInfoValue(fields.TripInfo),
		"is_active":          boolOr(fields.IsActive, true),
		"sort_order":         intOr(fields.SortOrder, 0),
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		var tour domain.Tour
		if err = rows.StructScan(&tour); err != nil {
			return nil, err
		}
		return &tour, nil
	}
	return nil, sql.ErrNoRows
}

func (r *TourRepository) Update(ctx context.Context, id uuid.UUID, fields domain.TourFields) (*domain.Tour, error) {
	setParts := []string{"updated_at = NOW()"}
	args := []any{}
	idx := 1

	set := func(column string, value any) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if fields.Name != nil {
		set("name", strings.TrimSpace(*fields.Name))
	}
	if fields.Slug != nil {
		set("slug", strings.TrimSpace(*fields.Slug))
	}
	if fields.Image != nil {
		set("image", strings.TrimSpace(*fields.Image))
	}
	if fields.Gallery != nil {
		set("gallery", stringArray(fields.Gallery))
	}
	if fields.Duration != nil {
		set("duration", *fields.Duration)
	}
	if fields.Description != nil {
		set("description", *fields.Description)
	}
	if fields.Price != nil {
		set("price", *fields.Price)
	}
	if fields.PriceDisplay != nil {
		set("price_display", *fields.PriceDisplay)
	}
	if fields.Date != nil {
		set("date", nullString(fields.Date))
	}
	if fields.Inclusions != nil {
		set("inclusions", stringArray(fields.Inclusions))
	}
	if fields.ItineraryTitle != nil {
		set("itinerary_title", nullString(fields.ItineraryTitle))
	}
	if fields.ItineraryDays != nil {
		set("itinerary_days", itineraryValue(fields.ItineraryDays))
	}
	if fields.ItinerarySections != nil {
		set("itinerary_sections", itineraryValue(fields.ItinerarySections))
	}
	if fields.QRImage != nil {
		set("qr_image", nullString(fields.QRImage))
	}
	if fields.TripInfo != nil {
		set("trip_info", tripInfoValue(fields.TripInfo))
	}
	if fields.IsActive != nil {
		set("is_active", *fields.IsActive)
	}
	if fields.SortOrder != nil {
		set("sort_order", *fields.SortOrder)
	}

	query := fmt.Sprintf(`
		UPDATE tours
		SET %s
		WHERE id = $%d
		RETURNING `+tourColumns, strings.Join(setParts, ", "), idx)
	args = append(args, id)

	var tour domain.Tour
	if err := r.db.GetContext(ctx, &tour, query, args...); err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *TourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tours WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *TourRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM tours`); err != nil {
		return 0, err
	}
	return count, nil
}

func stringOr(ptr *string, fallback string) string {
	if ptr == nil {
		return fallback
	}
	return strings.TrimSpace(*ptr)
}

func int64Or(ptr *int64, fallback int64) int64 {
	if ptr == nil {
		return fallback
	}
	return *ptr
}

func intOr(ptr *int, fallback int) int {
	if ptr == nil {
		return fallback
	}
	return *ptr
}

func boolOr(ptr *bool, fallback bool) bool {
	if ptr == nil {
		return fallback
	}
	return *ptr
}

func nullString(ptr *string) sql.NullString {
	if ptr == nil {
		return sql.NullString{Valid: false}
	}
	v := strings.TrimSpace(*ptr)
	if v == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: v, Valid: true}
}

func stringArray(ptr *[]string) pq.StringArray {
	if ptr == nil {
		return pq.StringArray{}
	}
	return append(pq.StringArray(nil), (*ptr)...)
}

func itineraryValue(ptr *[]domain.ItinerarySection) domain.ItineraryList {
	if ptr == nil {
		return domain.ItineraryList{}
	}
	return append(domain.ItineraryList(nil), (*ptr)...)
}

func tripInfoValue(ptr *domain.TripInfo) domain.TripInfo {
	if ptr == nil {
		return domain.TripInfo{}
	}
	return *ptr
}

var _ ports.TourRepository = (*TourRepository)(nil)
