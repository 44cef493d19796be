package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mountainmixology/cocktail-catering/internal/model"
	"github.com/mountainmixology/cocktail-catering/internal/store"
	"github.com/mountainmixology/cocktail-catering/internal/validate"
)

// BookingHandler accepts event booking requests from the site.
type BookingHandler struct {
	Bookings *store.BookingStore
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookings *store.BookingStore) *BookingHandler {
	if bookings == nil {
		panic("nil store passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings}
}

// Create handles POST /api/bookings. The payload is validated in full
// before anything is persisted; a validation failure reports every
// violated field so the booking form can highlight all of them at
// once. On success the persisted record is returned with 201.
func (h *BookingHandler) Create(c echo.Context) error {
	var in model.InsertBooking
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if fe := validate.Booking(in); !fe.Empty() {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Validation error",
			"errors":  fe,
		})
	}
	booking := h.Bookings.Create(in)
	return c.JSON(http.StatusCreated, booking)
}
