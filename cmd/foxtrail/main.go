// Package main is the entry point for Foxtrail.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/foxtrail/internal/game"
	"github.com/samdwyer/foxtrail/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_FOXTRAIL_API_KEY and FOXTRAIL_* available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, closeLog, err := telemetry.SetupLogging(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLog()

	ctx := context.Background()

	// Initialize telemetry when a Honeycomb key is configured
	if telemetry.ConfigureHoneycomb() {
		shutdown, err := telemetry.Setup(ctx,
			attribute.Int64("foxtrail.seed", cfg.Seed),
			attribute.String("foxtrail.map", cfg.MapName),
		)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
			// Continue without telemetry - game still works
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error("telemetry shutdown failed", "err", err)
				}
			}()
		}
	} else {
		log.Printf("Note: %s not set, tracing disabled", telemetry.EnvHoneycombKey)
	}

	// Create and run game
	g, err := game.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}
