package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/scafflow-dev/scafflow/db"
	"github.com/scafflow-dev/scafflow/internal/auth"
	"github.com/scafflow-dev/scafflow/internal/logging"
	"github.com/scafflow-dev/scafflow/internal/router"
	"github.com/shopspring/decimal"
)

func main() {
	log := logging.GetLogger()

	if err := godotenv.Load(); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	// Money fields render as JSON numbers, matching the shape clients
	// already consume.
	decimal.MarshalJSONWithoutQuotes = true

	gdb, err := db.Connect(db.DSNFromEnv())

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(gdb); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.NewRouter(gdb)

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		log.Info("PORT not set, defaulting to 3000")
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server shutdown: %v", err)
	}

	if err := db.Close(gdb); err != nil {
		log.Errorf("Closing database pool: %v", err)
	}
}
