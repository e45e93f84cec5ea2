package domain

import (
	"time"

	"github.com/google/uuid"
)

// Blog is a standalone marketing post; it has no relationships to other
// entities.
type Blog struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Image     string    `db:"image" json:"image"`
	Tag       string    `db:"tag" json:"tag"`
	Category  string    `db:"category" json:"category"`
	Date      string    `db:"date" json:"date"`
	ReadTime  string    `db:"read_time" json:"read_time"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// BlogFields carries a partial blog for create and update requests.
type BlogFields struct {
	Title     *string `json:"title,omitempty"`
	Image     *string `json:"image,omitempty"`
	Tag       *string `json:"tag,omitempty"`
	Category  *string `json:"category,omitempty"`
	Date      *string `json:"date,omitempty"`
	ReadTime  *string `json:"read_time,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
}
