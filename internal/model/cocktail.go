package model

// Cocktail is a signature drink shown on the marketing site. The
// collection is seeded once at store initialization and is read-only
// through the public API.
type Cocktail struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BaseSpirit  string `json:"baseSpirit"`
	ImageURL    string `json:"imageUrl"`
	Featured    bool   `json:"featured"`
}

// InsertCocktail is a Cocktail without its server-assigned id. Used by
// the seed routine.
type InsertCocktail struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	BaseSpirit  string `json:"baseSpirit"`
	ImageURL    string `json:"imageUrl"`
	Featured    bool   `json:"featured"`
}
