package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /profile/:email
func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.catalog(c).GetProfile(c.Request.Context(), c.Param("email"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /books/:category
func (h *Handler) ListBooksByCategory(c *gin.Context) {
	books, err := h.catalog(c).ListBooksByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}
