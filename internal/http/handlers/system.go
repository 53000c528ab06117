package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "library backend running"})
}

func (h *Handler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		respondError(c, http.StatusInternalServerError, "db_unavailable", "database not connected")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	var books int
	if err := h.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&books); err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "db_unavailable", "database query failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "books_in_db": books})
}
