package store

import (
	"strings"
	"sync"

	"github.com/mountainmixology/cocktail-catering/internal/model"
)

// UserStore keeps admin accounts in memory. Usernames are unique and
// compared case-insensitively.
type UserStore struct {
	mu         sync.Mutex
	byID       map[int]model.User
	byUsername map[string]int
	nextID     int
}

// NewUserStore constructs an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{
		byID:       make(map[int]model.User),
		byUsername: make(map[string]int),
		nextID:     1,
	}
}

// Create stores a new user with the given bcrypt password hash.
// Returns ErrUsernameTaken when the username already exists.
func (s *UserStore) Create(username, passwordHash string) (model.User, error) {
	key := strings.ToLower(strings.TrimSpace(username))
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byUsername[key]; exists {
		return model.User{}, ErrUsernameTaken
	}
	u := model.User{ID: s.nextID, Username: username, PasswordHash: passwordHash}
	s.nextID++
	s.byID[u.ID] = u
	s.byUsername[key] = u.ID
	return u, nil
}

// GetByID returns the user with the given id or ErrUserNotFound.
func (s *UserStore) GetByID(id int) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return u, nil
}

// GetByUsername looks a user up by username, ignoring case.
func (s *UserStore) GetByUsername(username string) (model.User, error) {
	key := strings.ToLower(strings.TrimSpace(username))
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byUsername[key]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return s.byID[id], nil
}
