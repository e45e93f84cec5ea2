package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/api/idtoken"

	"github.com/sahyadritrails/trails-api/internal/domain"
	"github.com/sahyadritrails/trails-api/internal/repository/ports"
	"github.com/sahyadritrails/trails-api/internal/util"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrGoogleDisabled     = errors.New("google sign-in is not configured")
	ErrGoogleToken        = errors.New("invalid google token")
)

// LoginResult carries the issued bearer token alongside the admin it
// belongs to.
type LoginResult struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	Admin     *domain.AdminUser `json:"admin"`
}

// AuthService issues and validates admin bearer tokens. A token is only
// honoured while its session row is active, so logout revokes it
// immediately even though the JWT itself has not expired.
type AuthService struct {
	admins   ports.AdminUserRepository
	sessions ports.SessionRepository
	jwt      *util.JWTManager
	aud      string
}

func NewAuthService(admins ports.AdminUserRepository, sessions ports.SessionRepository, jwt *util.JWTManager, googleAud string) *AuthService {
	return &AuthService{admins: admins, sessions: sessions, jwt: jwt, aud: googleAud}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !util.VerifyPassword(password, admin.PasswordSalt, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(ctx, admin)
}

// LoginWithGoogle validates a Google ID token and provisions the admin on
// first sign-in. Disabled unless an OAuth audience is configured.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idTok string) (*LoginResult, error) {
	if s.aud == "" {
		return nil, ErrGoogleDisabled
	}
	payload, err := idtoken.Validate(ctx, idTok, s.aud)
	if err != nil {
		return nil, ErrGoogleToken
	}
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, ErrGoogleToken
	}
	var fullName *string
	if name, _ := payload.Claims["name"].(string); name != "" {
		fullName = &name
	}
	admin, err := s.admins.UpsertByEmail(ctx, strings.ToLower(email), fullName)
	if err != nil {
		return nil, err
	}
	return s.issueToken(ctx, admin)
}

// Authenticate resolves a bearer token to its admin claims, rejecting
// tokens whose session has been deactivated or has lapsed.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*util.Claims, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	session, err := s.sessions.FindActiveSession(ctx, token)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.DeactivateSession(ctx, token)
}

func (s *AuthService) issueToken(ctx context.Context, admin *domain.AdminUser) (*LoginResult, error) {
	token, expiresAt, err := s.jwt.Generate(admin.ID, admin.Email)
	if err != nil {
		return nil, err
	}
	if _, err := s.sessions.CreateSession(ctx, admin.ID, token, expiresAt); err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Admin: admin}, nil
}
