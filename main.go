package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "library/internal/config"
	intdb "library/internal/db"
	router "library/internal/http"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := prepareDB(schemaCtx, func() (*sql.DB, error) { return intconfig.OpenDB(env.DB) })
	cancelSchema()
	if err != nil {
		log.Fatalf("Gagal menyiapkan database: %v", err)
	}
	defer db.Close()

	r := router.NewRouter(env, db)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server running on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Gagal menjalankan server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Mematikan server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown server gagal: %v", err)
	}

	log.Println("Server berhenti dengan aman.")
}

// prepareDB opens the pool and ensures the schema; the pool is closed if the schema step fails.
func prepareDB(ctx context.Context, open func() (*sql.DB, error)) (*sql.DB, error) {
	db, err := open()
	if err != nil {
		return nil, fmt.Errorf("konek database: %w", err)
	}
	if err := intdb.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("schema: %w", err)
	}
	return db, nil
}
