package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus normalizes and validates a raw status value.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return BookingStatusPending, nil
	case "confirmed":
		return BookingStatusConfirmed, nil
	case "cancelled":
		return BookingStatusCancelled, nil
	default:
		return "", errors.New("invalid booking status")
	}
}

// Booking is a customer's reservation request against a tour. TourName is a
// denormalized snapshot so the row stays readable after the tour is deleted.
type Booking struct {
	ID                   uuid.UUID     `db:"id" json:"id"`
	TourID               *uuid.UUID    `db:"tour_id" json:"tour_id"`
	TourName             string        `db:"tour_name" json:"tour_name"`
	FullName             string        `db:"full_name" json:"full_name"`
	Email                string        `db:"email" json:"email"`
	Phone                string        `db:"phone" json:"phone"`
	EmergencyContact     *string       `db:"emergency_contact" json:"emergency_contact"`
	NumTravelers         int           `db:"num_travelers" json:"num_travelers"`
	Address              *string       `db:"address" json:"address"`
	TotalAmount          int64         `db:"total_amount" json:"total_amount"`
	PaymentScreenshotURL *string       `db:"payment_screenshot_url" json:"payment_screenshot_url"`
	TransactionID        *string       `db:"transaction_id" json:"transaction_id"`
	Status               BookingStatus `db:"status" json:"status"`
	CreatedAt            time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time     `db:"updated_at" json:"updated_at"`
}

// BookingSubmission is the public booking-form payload. Any client-supplied
// status is ignored; bookings always start out pending.
type BookingSubmission struct {
	TourID               *uuid.UUID `json:"tour_id"`
	TourName             string     `json:"tour_name"`
	FullName             string     `json:"full_name"`
	Email                string     `json:"email"`
	Phone                string     `json:"phone"`
	EmergencyContact     *string    `json:"emergency_contact"`
	NumTravelers         int        `json:"num_travelers"`
	Address              *string    `json:"address"`
	TotalAmount          int64      `json:"total_amount"`
	PaymentScreenshotURL *string    `json:"payment_screenshot_url"`
	TransactionID        *string    `json:"transaction_id"`
}
