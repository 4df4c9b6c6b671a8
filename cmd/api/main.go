package main

import (
	"log"
	"net/http"
	"time"

	"bookcatalog/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg := app.ConfigFromEnv()
	container := app.NewContainer(cfg)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      container.Router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
