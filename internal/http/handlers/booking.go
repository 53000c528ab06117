package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type bookRequest struct {
	UserID FlexID `json:"user_id"`
}

// POST /cart/book
func (h *Handler) BookCart(c *gin.Context) {
	var req bookRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if _, err := h.booking(c).Book(c.Request.Context(), int64(req.UserID)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.String(http.StatusOK, "Booking successful! Cart cleared.")
}

// GET /bookings/:user_id
func (h *Handler) ListBookings(c *gin.Context) {
	userID, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	out, err := h.booking(c).ListBookings(c.Request.Context(), userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /bookings/:user_id/receipt returns the booking receipt inline.
func (h *Handler) GetBookingReceipt(c *gin.Context) {
	userID, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	pdf, filename, err := h.receipt(c).GenerateReceipt(c.Request.Context(), userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
