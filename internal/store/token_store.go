package store

import (
	"sync"
	"time"

	"github.com/mountainmixology/cocktail-catering/internal/model"
)

// TokenStore holds refresh tokens for admin sessions, keyed by the
// SHA-256 hash of the raw token. Raw tokens are never stored.
type TokenStore struct {
	mu     sync.Mutex
	byHash map[string]model.RefreshToken
}

// NewTokenStore constructs an empty TokenStore.
func NewTokenStore() *TokenStore {
	return &TokenStore{byHash: make(map[string]model.RefreshToken)}
}

// StoreRefresh records a refresh token hash for a user.
func (s *TokenStore) StoreRefresh(userID int, tokenHash string, exp time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byHash[tokenHash] = model.RefreshToken{UserID: userID, TokenHash: tokenHash, ExpiresAt: exp}
}

// ValidateRefresh returns the owning user's id when a non-revoked,
// non-expired token with this hash exists, ErrTokenNotFound otherwise.
func (s *TokenStore) ValidateRefresh(tokenHash string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.byHash[tokenHash]
	if !ok || t.RevokedAt != nil || time.Now().UTC().After(t.ExpiresAt) {
		return 0, ErrTokenNotFound
	}
	return t.UserID, nil
}

// RevokeByHash marks a token revoked. Revoking an unknown or already
// revoked token is a no-op.
func (s *TokenStore) RevokeByHash(tokenHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.byHash[tokenHash]
	if !ok || t.RevokedAt != nil {
		return
	}
	now := time.Now().UTC()
	t.RevokedAt = &now
	s.byHash[tokenHash] = t
}

// RevokeAllForUser revokes every active token belonging to a user.
func (s *TokenStore) RevokeAllForUser(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	for h, t := range s.byHash {
		if t.UserID == userID && t.RevokedAt == nil {
			t.RevokedAt = &now
			s.byHash[h] = t
		}
	}
}
