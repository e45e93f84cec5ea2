package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sahyadritrails/trails-api/internal/domain"
	"github.com/sahyadritrails/trails-api/internal/repository/ports"
)

const bookingColumns = `id, tour_id, tour_name, full_name, email, phone,
       emergency_contact, num_travelers, address, total_amount,
       payment_screenshot_url, transaction_id, status, created_at, updated_at`

type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepo(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) List(ctx context.Context, status *domain.BookingStatus) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	bookings := make([]domain.Booking, 0)
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	var booking domain.Booking
	if err := r.db.GetContext(ctx, &booking, query, id); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	const query = `
		INSERT INTO bookings (
			tour_id, tour_name, full_name, email, phone, emergency_contact,
			num_travelers, address, total_amount, payment_screenshot_url,
			transaction_id, status
		) VALUES (
			:tour_id, :tour_name, :full_name, :email, :phone, :emergency_contact,
			:num_travelers, :address, :total_amount, :payment_screenshot_url,
			:transaction_id, :status
		)
		RETURNING ` + bookingColumns

	rows, err := r.db.NamedQueryContext(ctx, query, booking)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		var stored domain.Booking
		if err = rows.StructScan(&stored); err != nil {
			return nil, err
		}
		return &stored, nil
	}
	return nil, sql.ErrNoRows
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.Booking, error) {
	const query = `
		UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + bookingColumns

	var booking domain.Booking
	if err := r.db.GetContext(ctx, &booking, query, status, id); err != nil {
		return nil, err
	}
	return &booking, nil
}

var _ ports.BookingRepository = (*BookingRepository)(nil)
