package store

import (
	"sync"

	"github.com/mountainmixology/cocktail-catering/internal/model"
)

// CocktailStore holds the signature cocktail catalogue. It is seeded
// once at startup and read-only through the public API; Create exists
// for the seed routine and tests.
type CocktailStore struct {
	mu     sync.Mutex
	byID   map[int]model.Cocktail
	order  []int
	nextID int
}

// NewCocktailStore constructs an empty CocktailStore.
func NewCocktailStore() *CocktailStore {
	return &CocktailStore{byID: make(map[int]model.Cocktail), nextID: 1}
}

// Create assigns the next id and stores the cocktail.
func (s *CocktailStore) Create(in model.InsertCocktail) model.Cocktail {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := model.Cocktail{
		ID:          s.nextID,
		Name:        in.Name,
		Description: in.Description,
		BaseSpirit:  in.BaseSpirit,
		ImageURL:    in.ImageURL,
		Featured:    in.Featured,
	}
	s.nextID++
	s.byID[c.ID] = c
	s.order = append(s.order, c.ID)
	return c
}

// GetByID returns the cocktail with the given id or ErrCocktailNotFound.
func (s *CocktailStore) GetByID(id int) (model.Cocktail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[id]
	if !ok {
		return model.Cocktail{}, ErrCocktailNotFound
	}
	return c, nil
}

// GetAll returns the full catalogue in insertion order.
func (s *CocktailStore) GetAll() []model.Cocktail {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Cocktail, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// GetFeatured returns the subset of the catalogue flagged as featured,
// in insertion order.
func (s *CocktailStore) GetFeatured() []model.Cocktail {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Cocktail, 0, len(s.order))
	for _, id := range s.order {
		if c := s.byID[id]; c.Featured {
			out = append(out, c)
		}
	}
	return out
}
