package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mountainmixology/cocktail-catering/internal/model"
	"github.com/mountainmixology/cocktail-catering/internal/store"
)

func setupCocktailAPI() *echo.Echo {
	s := store.NewCocktailStore()
	store.SeedCocktails(s)
	h := NewCocktailHandler(s)
	e := echo.New()
	e.GET("/api/cocktails", h.GetAll)
	e.GET("/api/cocktails/featured", h.GetFeatured)
	e.GET("/api/cocktails/:id", h.GetByID)
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetCocktails_All(t *testing.T) {
	e := setupCocktailAPI()

	rec := get(e, "/api/cocktails")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []model.Cocktail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 6)
}

func TestGetCocktails_FeaturedSubset(t *testing.T) {
	e := setupCocktailAPI()

	var all, featured []model.Cocktail
	require.NoError(t, json.Unmarshal(get(e, "/api/cocktails").Body.Bytes(), &all))

	rec := get(e, "/api/cocktails/featured")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &featured))

	assert.NotEmpty(t, featured)
	ids := make(map[int]bool, len(all))
	for _, c := range all {
		ids[c.ID] = true
	}
	for _, c := range featured {
		assert.True(t, c.Featured)
		assert.True(t, ids[c.ID])
	}
}

func TestGetCocktail_ByID(t *testing.T) {
	e := setupCocktailAPI()

	rec := get(e, "/api/cocktails/1")
	require.Equal(t, http.StatusOK, rec.Code)
	var c model.Cocktail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "Alpine Botanist", c.Name)

	// Reads are idempotent.
	again := get(e, "/api/cocktails/1")
	assert.Equal(t, rec.Body.String(), again.Body.String())
}

func TestGetCocktail_BadAndMissingIDs(t *testing.T) {
	e := setupCocktailAPI()

	assert.Equal(t, http.StatusBadRequest, get(e, "/api/cocktails/abc").Code)
	assert.Equal(t, http.StatusNotFound, get(e, "/api/cocktails/9999").Code)
}
