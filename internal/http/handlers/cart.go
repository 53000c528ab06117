package handlers

import (
	"net/http"

	"library/internal/services"

	"github.com/gin-gonic/gin"
)

type cartRequest struct {
	UserID   FlexID `json:"user_id"`
	BookID   FlexID `json:"book_id"`
	Quantity FlexID `json:"quantity"`
}

// POST /cart/add
func (h *Handler) AddToCart(c *gin.Context) {
	var req cartRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	err := h.cart(c).AddToCart(c.Request.Context(), services.CartInput{
		UserID:   int64(req.UserID),
		BookID:   int64(req.BookID),
		Quantity: int(req.Quantity),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.String(http.StatusOK, "Book added to cart")
}

// GET /cart/:user_id
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	lines, err := h.cart(c).ListCart(c.Request.Context(), userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

// POST /cart/remove
func (h *Handler) RemoveFromCart(c *gin.Context) {
	var req cartRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := h.cart(c).RemoveFromCart(c.Request.Context(), int64(req.UserID), int64(req.BookID)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.String(http.StatusOK, "Book removed from cart")
}
