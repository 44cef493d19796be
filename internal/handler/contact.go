package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mountainmixology/cocktail-catering/internal/model"
	"github.com/mountainmixology/cocktail-catering/internal/store"
	"github.com/mountainmixology/cocktail-catering/internal/validate"
)

// ContactHandler accepts contact-form messages from the site.
type ContactHandler struct {
	Messages *store.ContactStore
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(messages *store.ContactStore) *ContactHandler {
	if messages == nil {
		panic("nil store passed to NewContactHandler")
	}
	return &ContactHandler{Messages: messages}
}

// Create handles POST /api/contact. Same contract as booking
// submission: full validation first, then persist and return 201.
func (h *ContactHandler) Create(c echo.Context) error {
	var in model.InsertContactMessage
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if fe := validate.Contact(in); !fe.Empty() {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Validation error",
			"errors":  fe,
		})
	}
	msg := h.Messages.Create(in)
	return c.JSON(http.StatusCreated, msg)
}
