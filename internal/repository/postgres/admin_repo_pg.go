package postgres

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sahyadritrails/trails-api/internal/domain"
	"github.com/sahyadritrails/trails-api/internal/repository/ports"
)

const adminColumns = `id, email, full_name, password_hash, password_salt, created_at, updated_at`

type AdminUserRepository struct {
	db *sqlx.DB
}

func NewAdminUserRepo(db *sqlx.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	const query = `SELECT ` + adminColumns + ` FROM admin_users WHERE lower(email) = lower($1)`
	var admin domain.AdminUser
	if err := r.db.GetContext(ctx, &admin, query, strings.TrimSpace(email)); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminUserRepository) UpsertByEmail(ctx context.Context, email string, fullName *string) (*domain.AdminUser, error) {
	const query = `
		INSERT INTO admin_users (email, full_name)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE
		SET full_name = COALESCE(EXCLUDED.full_name, admin_users.full_name),
		    updated_at = NOW()
		RETURNING ` + adminColumns

	var admin domain.AdminUser
	if err := r.db.GetContext(ctx, &admin, query, strings.ToLower(strings.TrimSpace(email)), fullName); err != nil {
		return nil, err
	}
	return &admin, nil
}

var _ ports.AdminUserRepository = (*AdminUserRepository)(nil)
