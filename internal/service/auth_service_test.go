package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sahyadritrails/trails-api/internal/domain"
	"github.com/sahyadritrails/trails-api/internal/repository/ports"
	"github.com/sahyadritrails/trails-api/internal/util"
)

type fakeAdminRepo struct {
	findByEmailInput  string
	findByEmailResult *domain.AdminUser
	findByEmailErr    error

	upsertEmail  string
	upsertName   *string
	upsertResult *domain.AdminUser
	upsertErr    error
}

func (f *fakeAdminRepo) FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	f.findByEmailInput = email
	return f.findByEmailResult, f.findByEmailErr
}

func (f *fakeAdminRepo) UpsertByEmail(ctx context.Context, email string, fullName *string) (*domain.AdminUser, error) {
	f.upsertEmail = email
	f.upsertName = fullName
	return f.upsertResult, f.upsertErr
}

type fakeSessionRepo struct {
	created *domain.Session

	findInput  string
	findResult *domain.Session
	findErr    error

	deactivated string
}

func (f *fakeSessionRepo) CreateSession(ctx context.Context, adminID uuid.UUID, token string, expiresAt time.Time) (*domain.Session, error) {
	f.created = &domain.Session{AdminID: adminID, Token: token, ExpiresAt: expiresAt, IsActive: true}
	return f.created, nil
}

func (f *fakeSessionRepo) FindActiveSession(ctx context.Context, token string) (*domain.Session, error) {
	f.findInput = token
	return f.findResult, f.findErr
}

func (f *fakeSessionRepo) DeactivateSession(ctx context.Context, token string) error {
	f.deactivated = token
	return nil
}

var _ ports.AdminUserRepository = (*fakeAdminRepo)(nil)
var _ ports.SessionRepository = (*fakeSessionRepo)(nil)

func testAdmin(t *testing.T, password string) *domain.AdminUser {
	t.Helper()
	hash, salt, err := util.DerivePassword(password)
	if err != nil {
		t.Fatalf("derive password: %v", err)
	}
	return &domain.AdminUser{
		ID:           uuid.New(),
		Email:        "ops@sahyadritrails.in",
		PasswordHash: hash,
		PasswordSalt: salt,
	}
}

func newAuthService(admins *fakeAdminRepo, sessions *fakeSessionRepo) *AuthService {
	jwt := util.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(admins, sessions, jwt, "")
}

func TestLoginSuccessCreatesSession(t *testing.T) {
	admin := testAdmin(t, "tr3k-s3cret")
	admins := &fakeAdminRepo{findByEmailResult: admin}
	sessions := &fakeSessionRepo{}
	svc := newAuthService(admins, sessions)

	result, err := svc.Login(context.Background(), "  Ops@SahyadriTrails.in ", "tr3k-s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if admins.findByEmailInput != "ops@sahyadritrails.in" {
		t.Fatalf("expected normalized email lookup, got %q", admins.findByEmailInput)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
	if sessions.created == nil || sessions.created.Token != result.Token {
		t.Fatal("expected session persisted for the issued token")
	}
	if sessions.created.AdminID != admin.ID {
		t.Fatalf("session bound to wrong admin: %s", sessions.created.AdminID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	admins := &fakeAdminRepo{findByEmailResult: testAdmin(t, "correct")}
	svc := newAuthService(admins, &fakeSessionRepo{})

	if _, err := svc.Login(context.Background(), "ops@sahyadritrails.in", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	admins := &fakeAdminRepo{findByEmailErr: sql.ErrNoRows}
	svc := newAuthService(admins, &fakeSessionRepo{})

	if _, err := svc.Login(context.Background(), "nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateRoundTrip(t *testing.T) {
	admin := testAdmin(t, "tr3k-s3cret")
	admins := &fakeAdminRepo{findByEmailResult: admin}
	sessions := &fakeSessionRepo{}
	svc := newAuthService(admins, sessions)

	result, err := svc.Login(context.Background(), admin.Email, "tr3k-s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	sessions.findResult = sessions.created
	claims, err := svc.Authenticate(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if claims.AdminID != admin.ID || claims.Email != admin.Email {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthenticateRejectsRevokedSession(t *testing.T) {
	admin := testAdmin(t, "tr3k-s3cret")
	admins := &fakeAdminRepo{findByEmailResult: admin}
	sessions := &fakeSessionRepo{findErr: sql.ErrNoRows}
	svc := newAuthService(admins, sessions)

	result, err := svc.Login(context.Background(), admin.Email, "tr3k-s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	// Valid JWT, but the session row is gone.
	if _, err := svc.Authenticate(context.Background(), result.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthenticateGarbageToken(t *testing.T) {
	svc := newAuthService(&fakeAdminRepo{}, &fakeSessionRepo{})

	if _, err := svc.Authenticate(context.Background(), "not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestLogoutDeactivatesSession(t *testing.T) {
	sessions := &fakeSessionRepo{}
	svc := newAuthService(&fakeAdminRepo{}, sessions)

	if err := svc.Logout(context.Background(), "some-token"); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if sessions.deactivated != "some-token" {
		t.Fatalf("expected session deactivated, got %q", sessions.deactivated)
	}
}

func TestLoginWithGoogleDisabled(t *testing.T) {
	svc := newAuthService(&fakeAdminRepo{}, &fakeSessionRepo{})

	if _, err := svc.LoginWithGoogle(context.Background(), "an-id-token"); !errors.Is(err, ErrGoogleDisabled) {
		t.Fatalf("expected ErrGoogleDisabled, got %v", err)
	}
}
