package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// SessionDuration is how long a session lives without a fresh sign-in.
	SessionDuration = 7 * 24 * time.Hour

	sessionKeyPrefix     = "session:"
	userSessionKeyPrefix = "user-session:"
)

// SessionService stores opaque bearer tokens in Redis with a TTL. One session
// per user: a new sign-in invalidates the previous token so the expiry clock
// always starts at the latest login.
type SessionService struct {
	client *redis.Client
}

func NewSessionService(client *redis.Client) *SessionService {
	return &SessionService{client: client}
}

// Create mints a session token for the user and stores both directions of the
// mapping with a 7-day expiry.
func (s *SessionService) Create(ctx context.Context, userID string) (string, error) {
	s.invalidateUserSession(ctx, userID)

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)

	if err := s.client.Set(ctx, sessionKeyPrefix+token, userID, SessionDuration).Err(); err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, userSessionKeyPrefix+userID, token, SessionDuration).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Validate resolves a token to its user ID. An unknown or expired token is
// (_, false, nil), not an error.
func (s *SessionService) Validate(ctx context.Context, token string) (string, bool, error) {
	if token == "" {
		return "", false, nil
	}
	userID, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return userID, true, nil
}

// Invalidate removes a session token and its user mapping.
func (s *SessionService) Invalidate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	userID, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err == nil && userID != "" {
		s.client.Del(ctx, userSessionKeyPrefix+userID)
	}
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}

func (s *SessionService) invalidateUserSession(ctx context.Context, userID string) {
	token, err := s.client.Get(ctx, userSessionKeyPrefix+userID).Result()
	if err == nil && token != "" {
		s.client.Del(ctx, sessionKeyPrefix+token)
	}
	s.client.Del(ctx, userSessionKeyPrefix+userID)
}
