// Package handler exposes the HTTP handlers for both the public site
// API and the JWT-protected admin surface. Handlers are stateless:
// they validate input, delegate to the stores and map outcomes to
// response codes. Internal failure details never reach the client.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mountainmixology/cocktail-catering/internal/store"
)

// CocktailHandler serves the read-only signature cocktail catalogue.
type CocktailHandler struct {
	Cocktails *store.CocktailStore
}

// NewCocktailHandler constructs a CocktailHandler.
func NewCocktailHandler(cocktails *store.CocktailStore) *CocktailHandler {
	if cocktails == nil {
		panic("nil store passed to NewCocktailHandler")
	}
	return &CocktailHandler{Cocktails: cocktails}
}

// GetAll handles GET /api/cocktails and returns the full catalogue.
func (h *CocktailHandler) GetAll(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Cocktails.GetAll())
}

// GetFeatured handles GET /api/cocktails/featured and returns the
// subset flagged as featured.
func (h *CocktailHandler) GetFeatured(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Cocktails.GetFeatured())
}

// GetByID handles GET /api/cocktails/:id. A non-numeric id is a 400,
// a numeric id with no record is a 404.
func (h *CocktailHandler) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid cocktail id"})
	}
	cocktail, err := h.Cocktails.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrCocktailNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cocktail not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch cocktail"})
	}
	return c.JSON(http.StatusOK, cocktail)
}
