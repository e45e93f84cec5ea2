package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sahyadritrails/trails-api/internal/domain"
	"github.com/sahyadritrails/trails-api/internal/repository/ports"
)

const blogColumns = `id, title, image, tag, category, date, read_time,
       is_active, sort_order, created_at, updated_at`

type BlogRepository struct {
	db *sqlx.DB
}

func NewBlogRepo(db *sqlx.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) List(ctx context.Context, includeInactive bool) ([]domain.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs`
	if !includeInactive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order ASC, created_at ASC`

	blogs := make([]domain.Blog, 0)
	if err := r.db.SelectContext(ctx, &blogs, query); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`
	var blog domain.Blog
	if err := r.db.GetContext(ctx, &blog, query, id); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepository) Create(ctx context.Context, fields domain.BlogFields) (*domain.Blog, error) {
	query := `
		INSERT INTO blogs (title, image, tag, category, date, read_time, is_active, sort_order)
		VALUES (:title, :image, :tag, :category, :date, :read_time, :is_active, :sort_order)
		RETURNING ` + blogColumns

	args := map[string]any{
		"title":      stringOr(fields.Title, ""),
		"image":      stringOr(fields.Image, ""),
		"tag":        stringOr(fields.Tag, ""),
		"category":   stringOr(fields.Category, ""),
		"date":       stringOr(fields.Date, ""),
		"read_time":  stringOr(fields.ReadTime, ""),
		"is_active":  boolOr(fields.IsActive, true),
		"sort_order": intOr(fields.SortOrder, 0),
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		var blog domain.Blog
		if err = rows.StructScan(&blog); err != nil {
			return nil, err
		}
		return &blog, nil
	}
	return nil, sql.ErrNoRows
}

func (r *BlogRepository) Update(ctx context.Context, id uuid.UUID, fields domain.BlogFields) (*domain.Blog, error) {
	setParts := []string{"updated_at = NOW()"}
	args := []any{}
	idx := 1

	set := func(column string, value any) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if fields.Title != nil {
		set("title", strings.TrimSpace(*fields.Title))
	}
	if fields.Image != nil {
		set("image", strings.TrimSpace(*fields.Image))
	}
	if fields.Tag != nil {
		set("tag", *fields.Tag)
	}
	if fields.Category != nil {
		set("category", *fields.Category)
	}
	if fields.Date != nil {
		set("date", *fields.Date)
	}
	if fields.ReadTime != nil {
		set("read_time", *fields.ReadTime)
	}
	if fields.IsActive != nil {
		set("is_active", *fields.IsActive)
	}
	if fields.SortOrder != nil {
		set("sort_order", *fields.SortOrder)
	}

	query := fmt.Sprintf(`
		UPDATE blogs
		SET %s
		WHERE id = $%d
		RETURNING `+blogColumns, strings.Join(setParts, ", "), idx)
	args = append(args, id)

	var blog domain.Blog
	if err := r.db.GetContext(ctx, &blog, query, args...); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
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

var _ ports.BlogRepository = (*BlogRepository)(nil)
