package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"wegotboard/internal/config"
	"wegotboard/internal/server"
	"wegotboard/internal/services"
	"wegotboard/internal/store"
	"wegotboard/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Document store ---
	st, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.DatabaseDriver, err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}()

	// --- Events (optional) ---
	// Left as a nil interface when RabbitMQ is not configured.
	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQURL,
			Exchange: cfg.RabbitMQExchange,
		})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		events = mqClient
	} else {
		log.Println("RABBITMQ_URL not set, domain events are disabled")
	}

	app := server.New(cfg, st, events)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
