package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/morerealm/vrlens-api/internal/config"
	"github.com/morerealm/vrlens-api/internal/database"
	"github.com/morerealm/vrlens-api/internal/repository"
)

// sampleProducts are the launch catalog entries, inserted once into an
// empty database.
var sampleProducts = []repository.CreateProductParams{
	{
		Name:        "VR Prescription Lenses - Meta Quest 2",
		Description: strPtr("High-quality prescription lenses specifically designed for Meta Quest 2. Features anti-reflective coating and scratch-resistant surface. Easy installation with detailed instructions included."),
		BasePrice:   89.99,
		Images: []string{
			"https://example.com/quest2-lenses-1.jpg",
			"https://example.com/quest2-lenses-2.jpg",
		},
		Active: true,
	},
	{
		Name:        "VR Prescription Lenses - Meta Quest 3",
		Description: strPtr("Latest generation prescription lenses for Meta Quest 3. Enhanced optical clarity with blue light filtering. Perfect fit guaranteed with our precision manufacturing."),
		BasePrice:   99.99,
		Images: []string{
			"https://example.com/quest3-lenses-1.jpg",
			"https://example.com/quest3-lenses-2.jpg",
		},
		Active: true,
	},
	{
		Name:        "VR Prescription Lenses - PICO 4",
		Description: strPtr("Custom prescription lenses for PICO 4 VR headset. Premium optical materials with ultra-thin design. Includes cleaning cloth and storage case."),
		BasePrice:   79.99,
		Images: []string{
			"https://example.com/pico4-lenses-1.jpg",
		},
		Active: true,
	},
}

// main seeds the product catalog. Safe to run repeatedly: it does nothing
// when products already exist.
func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	productRepo := repository.NewProductRepository(db)

	existing, err := productRepo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("seed failed")
		os.Exit(1)
	}
	if existing > 0 {
		log.Info().Int("count", existing).Msg("products already exist, skipping seed")
		return
	}

	log.Info().Msg("starting database seed")
	for _, params := range sampleProducts {
		product, err := productRepo.Create(ctx, params)
		if err != nil {
			log.Error().Err(err).Str("name", params.Name).Msg("seed failed")
			os.Exit(1)
		}
		log.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("sample product created")
	}
	log.Info().Msg("database seed completed")
}

func strPtr(s string) *string {
	return &s
}
