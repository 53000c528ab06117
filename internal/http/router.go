package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	intconfig "library/internal/config"
	h "library/internal/http/handlers"
	"library/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, db *sql.DB) *gin.Engine {
	return newRouter(env, h.New(db, env))
}

func newRouter(env intconfig.Env, hd *h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/health", hd.Health)
	r.GET("/db-check", hd.DBCheck)

	// Auth
	r.POST("/signup", hd.Signup)
	r.POST("/login", hd.Login)

	// Catalog
	r.GET("/profile/:email", hd.GetProfile)
	r.GET("/books/:category", hd.ListBooksByCategory)

	// Cart
	cart := r.Group("/cart")
	cart.POST("/add", hd.AddToCart)
	cart.POST("/remove", hd.RemoveFromCart)
	cart.POST("/book", hd.BookCart)
	cart.GET("/:user_id", hd.GetCart)

	// Bookings
	bookings := r.Group("/bookings")
	bookings.GET("/:user_id", hd.ListBookings)
	bookings.GET("/:user_id/receipt", hd.GetBookingReceipt)

	return r
}
