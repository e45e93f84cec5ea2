package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sahyadritrails/trails-api/internal/domain"
)

type AdminUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	// UpsertByEmail backs the Google sign-in path: it creates the admin on
	// first login and refreshes the display name afterwards.
	UpsertByEmail(ctx context.Context, email string, fullName *string) (*domain.AdminUser, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, adminID uuid.UUID, token string, expiresAt time.Time) (*domain.Session, error)
	FindActiveSession(ctx context.Context, token string) (*domain.Session, error)
	DeactivateSession(ctx context.Context, token string) error
}
