// Package router defines how HTTP routes are registered for the API
// and the static marketing site.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mountainmixology/cocktail-catering/internal/handler"
	"github.com/mountainmixology/cocktail-catering/internal/middleware"
)

// RegisterRoutes registers routes that carry no middleware at all.
// Currently that is only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the five public API endpoints the site
// consumes. The cache middleware wraps the read-only cocktail routes;
// the rate limiter wraps the two lead-capture forms. Either middleware
// may be a pass-through when Redis is unavailable.
func RegisterPublic(e *echo.Echo, cocktails *handler.CocktailHandler, bookings *handler.BookingHandler, contact *handler.ContactHandler, cache, limit echo.MiddlewareFunc) {
	api := e.Group("/api")

	catalogue := api.Group("/cocktails", cache)
	catalogue.GET("", cocktails.GetAll)
	// Echo matches static segments ahead of :id, so /featured is never
	// swallowed by the id route.
	catalogue.GET("/featured", cocktails.GetFeatured)
	catalogue.GET("/:id", cocktails.GetByID)

	api.POST("/bookings", bookings.Create, limit)
	api.POST("/contact", contact.Create, limit)
}

// RegisterAuth registers the admin authentication endpoints under
// /api/auth. None of them require an existing session.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)
}

// RegisterAdmin registers the lead-review endpoints under /api/admin.
// Every route requires a valid access token.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/api/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.GET("/bookings", a.ListBookings)
	g.PATCH("/bookings/:id/status", a.UpdateBookingStatus)
	g.GET("/messages", a.ListMessages)
	g.PATCH("/messages/:id/read", a.MarkMessageRead)
	g.GET("/notifications", a.ListNotifications)
}

// RegisterStatic serves the built marketing page from dir. The
// presentation layer is plain static content; everything dynamic goes
// through the API routes above.
func RegisterStatic(e *echo.Echo, dir string) {
	e.Static("/", dir)
}
