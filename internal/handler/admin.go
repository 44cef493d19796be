package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mountainmixology/cocktail-catering/internal/store"
)

// AdminHandler serves the lead-review endpoints behind JWT auth:
// listing bookings and contact messages, moving a booking through its
// status, marking messages read and inspecting the notification audit
// trail.
type AdminHandler struct {
	Bookings      *store.BookingStore
	Messages      *store.ContactStore
	Notifications *store.NotificationStore
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(bookings *store.BookingStore, messages *store.ContactStore, notifications *store.NotificationStore) *AdminHandler {
	if bookings == nil || messages == nil || notifications == nil {
		panic("nil store passed to NewAdminHandler")
	}
	return &AdminHandler{Bookings: bookings, Messages: messages, Notifications: notifications}
}

// ListBookings handles GET /api/admin/bookings.
func (h *AdminHandler) ListBookings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Bookings.GetAll())
}

// UpdateBookingStatus handles PATCH /api/admin/bookings/:id/status.
// The status value is accepted as-is; the workflow deliberately has no
// enforced transition set.
func (h *AdminHandler) UpdateBookingStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	booking, err := h.Bookings.UpdateStatus(id, body.Status)
	if err != nil {
		if errors.Is(err, store.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update booking"})
	}
	return c.JSON(http.StatusOK, booking)
}

// ListMessages handles GET /api/admin/messages.
func (h *AdminHandler) ListMessages(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Messages.GetAll())
}

// MarkMessageRead handles PATCH /api/admin/messages/:id/read. The
// isRead flag only ever moves from false to true.
func (h *AdminHandler) MarkMessageRead(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid message id"})
	}
	msg, err := h.Messages.MarkRead(id)
	if err != nil {
		if errors.Is(err, store.ErrMessageNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "message not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update message"})
	}
	return c.JSON(http.StatusOK, msg)
}

// ListNotifications handles GET /api/admin/notifications and returns
// the audit trail of delivered notifications.
func (h *AdminHandler) ListNotifications(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Notifications.GetAll())
}
