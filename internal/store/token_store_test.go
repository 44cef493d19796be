package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStore_ValidateRefresh(t *testing.T) {
	s := NewTokenStore()
	exp := time.Now().UTC().Add(time.Hour)
	s.StoreRefresh(7, "hash-a", exp)

	uid, err := s.ValidateRefresh("hash-a")
	require.NoError(t, err)
	assert.Equal(t, 7, uid)

	_, err = s.ValidateRefresh("unknown")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestTokenStore_ExpiredToken(t *testing.T) {
	s := NewTokenStore()
	s.StoreRefresh(7, "hash-a", time.Now().UTC().Add(-time.Minute))

	_, err := s.ValidateRefresh("hash-a")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestTokenStore_Revoke(t *testing.T) {
	s := NewTokenStore()
	exp := time.Now().UTC().Add(time.Hour)
	s.StoreRefresh(7, "hash-a", exp)

	s.RevokeByHash("hash-a")
	_, err := s.ValidateRefresh("hash-a")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// Revoking again or revoking an unknown hash is harmless.
	s.RevokeByHash("hash-a")
	s.RevokeByHash("unknown")
}

func TestTokenStore_RevokeAllForUser(t *testing.T) {
	s := NewTokenStore()
	exp := time.Now().UTC().Add(time.Hour)
	s.StoreRefresh(7, "hash-a", exp)
	s.StoreRefresh(7, "hash-b", exp)
	s.StoreRefresh(8, "hash-c", exp)

	s.RevokeAllForUser(7)

	_, err := s.ValidateRefresh("hash-a")
	assert.ErrorIs(t, err, ErrTokenNotFound)
	_, err = s.ValidateRefresh("hash-b")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	uid, err := s.ValidateRefresh("hash-c")
	require.NoError(t, err)
	assert.Equal(t, 8, uid)
}
