package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/everestwc/everest-backend/internal/config"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")
)

// AuthService handles password verification and the admin session store.
// Sessions live in Redis keyed by an opaque UUID; the client only ever sees
// that UUID in an HTTP-only cookie.
type AuthService struct {
	cfg *config.Config
	rdb *redis.Client
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, rdb *redis.Client) *AuthService {
	return &AuthService{cfg: cfg, rdb: rdb}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// CreateSession stores a new session for the admin and returns its ID.
// The entry expires after the configured session TTL; Redis owns expiry.
func (s *AuthService) CreateSession(ctx context.Context, adminID string) (string, error) {
	sessionID := uuid.New().String()
	if err := s.rdb.Set(ctx, sessionKey(sessionID), adminID, s.cfg.SessionTTL).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return sessionID, nil
}

// AdminID resolves a session ID to the admin it was established for.
// Returns ErrNoSession for unknown or expired sessions.
func (s *AuthService) AdminID(ctx context.Context, sessionID string) (string, error) {
	adminID, err := s.rdb.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("check session: %w", err)
	}
	return adminID, nil
}

// DestroySession removes a session from the store. Destroying a session that
// no longer exists is not an error.
func (s *AuthService) DestroySession(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, sessionKey(sessionID)).Err()
}

// SessionTTL exposes the configured session lifetime, used to size the cookie.
func (s *AuthService) SessionTTL() time.Duration {
	return s.cfg.SessionTTL
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
