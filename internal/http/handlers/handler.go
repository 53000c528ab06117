package handlers

import (
	"database/sql"
	"time"

	"library/internal/config"
	"library/internal/http/middleware"
	"library/internal/services"

	"github.com/gin-gonic/gin"
)

// Handler carries the dependencies every endpoint builds its services from.
type Handler struct {
	DB  *sql.DB
	Env config.Env
	Now func() time.Time
}

func New(db *sql.DB, env config.Env) *Handler {
	return &Handler{DB: db, Env: env}
}

func (h *Handler) auth(c *gin.Context) services.AuthService {
	return services.AuthService{DB: h.DB, BcryptCost: h.Env.BcryptCost, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) catalog(c *gin.Context) services.CatalogService {
	return services.CatalogService{DB: h.DB, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) cart(c *gin.Context) services.CartService {
	return services.CartService{DB: h.DB, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) booking(c *gin.Context) services.BookingService {
	return services.BookingService{DB: h.DB, Now: h.Now, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) receipt(c *gin.Context) services.ReceiptService {
	return services.ReceiptService{DB: h.DB, Now: h.Now, RequestID: middleware.GetRequestID(c)}
}
