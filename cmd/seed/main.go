package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"ecobin-portal/internal/config"
	"ecobin-portal/internal/models"
	"ecobin-portal/internal/repository"
)

// seedBins are created on the backend when no bin with the same code exists.
var seedBins = []models.Bin{
	{BinCode: "lib-01", Location: "Library entrance", Availability: models.AvailabilityAvailable, Capacity: 2000},
	{BinCode: "lib-02", Location: "Library basement", Availability: models.AvailabilityAvailable, Capacity: 1500, CurrentWeight: 300},
	{BinCode: "caf-01", Location: "Cafeteria north door", Availability: models.AvailabilityYes, Capacity: 2000, CurrentWeight: 1200},
	{BinCode: "gym-01", Location: "Sports centre", Availability: models.AvailabilityAvailable, Capacity: 1000},
	{BinCode: "res-01", Location: "Residence block A", Availability: models.AvailabilityNo, Capacity: 2000, CurrentWeight: 2000},
}

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	email, password := os.Getenv("SEED_ADMIN_EMAIL"), os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set")
	}

	client := repository.NewClient(cfg.BackendURL, cfg.BackendTimeout)
	authRepo := repository.NewAuthRepository(client)
	binRepo := repository.NewBinRepository(client)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	token, err := authRepo.Login(ctx, email, password)
	if err != nil {
		log.Fatalf("Failed to log in as %s: %v", email, err)
	}
	ctx = repository.WithToken(ctx, token)

	seedBinCatalog(ctx, binRepo)

	log.Println("Seed completed successfully!")
}

func seedBinCatalog(ctx context.Context, binRepo repository.BinRepository) {
	existing, err := binRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list bins: %v", err)
	}

	codes := make(map[string]struct{}, len(existing))
	for _, b := range existing {
		codes[strings.ToLower(b.BinCode)] = struct{}{}
	}

	created := 0
	for _, b := range seedBins {
		if _, ok := codes[strings.ToLower(b.BinCode)]; ok {
			log.Printf("Skipping bin %s, already present", b.BinCode)
			continue
		}
		bin, err := binRepo.Create(ctx, b)
		if err != nil {
			log.Printf("Warning: Failed to create bin %s: %v", b.BinCode, err)
			continue
		}
		log.Printf("Created bin %d (%s) at %s", bin.ID, bin.BinCode, bin.Location)
		created++
	}

	log.Printf("Seeded %d bins", created)
}
