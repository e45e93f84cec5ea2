package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// GalleryMax is the number of detail-page gallery slots a tour exposes.
const GalleryMax = 3

// ItinerarySection is one titled block of free-text activity lines.
type ItinerarySection struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// ItineraryList is stored as a JSONB column.
type ItineraryList []ItinerarySection

func (l ItineraryList) Value() (driver.Value, error) {
	if l == nil {
		l = ItineraryList{}
	}
	return json.Marshal(l)
}

func (l *ItineraryList) Scan(value any) error {
	if value == nil {
		*l = ItineraryList{}
		return nil
	}
	data, ok := value.([]byte)
	if !ok {
		return errors.New("itinerary must be []byte")
	}
	return json.Unmarshal(data, l)
}

// TripInfo is a sparse key-value map rendered as the info grid on the
// booking page. Absent keys fall back to the defaults below.
type TripInfo map[string]string

var tripInfoDefaults = map[string]string{
	"departure":   "Pune",
	"arrival":     "Pune",
	"best_season": "Oct – Mar",
	"trek_lead":   "Expert Guide",
	"language":    "Hindi, English",
	"meals":       "Included",
	"transport":   "Included",
	"difficulty":  "Moderate",
	"walking":     "5–8 Hours",
	"group_size":  "Max 25",
}

// WithDefaults returns a copy with every fallback key present. Keys set on
// the tour win over the defaults.
func (t TripInfo) WithDefaults() TripInfo {
	out := make(TripInfo, len(tripInfoDefaults))
	for k, v := range tripInfoDefaults {
		out[k] = v
	}
	for k, v := range t {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

func (t TripInfo) Value() (driver.Value, error) {
	if t == nil {
		t = TripInfo{}
	}
	return json.Marshal(t)
}

func (t *TripInfo) Scan(value any) error {
	if value == nil {
		*t = TripInfo{}
		return nil
	}
	data, ok := value.([]byte)
	if !ok {
		return errors.New("trip info must be []byte")
	}
	return json.Unmarshal(data, t)
}

// Tour is a bookable trip package with pricing, itinerary, and media.
type Tour struct {
	ID                uuid.UUID      `db:"id" json:"id"`
	Name              string         `db:"name" json:"name"`
	Slug              string         `db:"slug" json:"slug"`
	Image             string         `db:"image" json:"image"`
	Gallery           pq.StringArray `db:"gallery" json:"gallery"`
	Duration          string         `db:"duration" json:"duration"`
	Description       string         `db:"description" json:"description"`
	Price             int64          `db:"price" json:"price"`
	PriceDisplay      string         `db:"price_display" json:"price_display"`
	Date              *string        `db:"date" json:"date"`
	Inclusions        pq.StringArray `db:"inclusions" json:"inclusions"`
	ItineraryTitle    *string        `db:"itinerary_title" json:"itinerary_title"`
	ItineraryDays     ItineraryList  `db:"itinerary_days" json:"itinerary_days"`
	ItinerarySections ItineraryList  `db:"itinerary_sections" json:"itinerary_sections"`
	QRImage           *string        `db:"qr_image" json:"qr_image"`
	TripInfo          TripInfo       `db:"trip_info" json:"trip_info"`
	IsActive          bool           `db:"is_active" json:"is_active"`
	SortOrder         int            `db:"sort_order" json:"sort_order"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updated_at"`
}

// TourFields carries a partial tour for create and update requests. Nil
// means "leave unchanged" on update and "use the default" on create.
type TourFields struct {
	Name              *string            `json:"name,omitempty"`
	Slug              *string            `json:"slug,omitempty"`
	Image             *string            `json:"image,omitempty"`
	Gallery           *[]string          `json:"gallery,omitempty"`
	Duration          *string            `json:"duration,omitempty"`
	Description       *string            `json:"description,omitempty"`
	Price             *int64             `json:"price,omitempty"`
	PriceDisplay      *string            `json:"price_display,omitempty"`
	Date              *string            `json:"date,omitempty"`
	Inclusions        *[]string          `json:"inclusions,omitempty"`
	ItineraryTitle    *string            `json:"itinerary_title,omitempty"`
	ItineraryDays     *[]ItinerarySection `json:"itinerary_days,omitempty"`
	ItinerarySections *[]ItinerarySection `json:"itinerary_sections,omitempty"`
	QRImage           *string            `json:"qr_image,omitempty"`
	TripInfo          *TripInfo          `json:"trip_info,omitempty"`
	IsActive          *bool              `json:"is_active,omitempty"`
	SortOrder         *int               `json:"sort_order,omitempty"`
}
