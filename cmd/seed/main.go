// Command seed populates the database with a demo account.
package main

import (
	"context"
	"flag"
	"log"

	"smartlife/internal/auth"
	"smartlife/internal/config"
	"smartlife/internal/database"
	"smartlife/internal/seed"
)

func main() {
	defaults := seed.DefaultOptions()
	email := flag.String("email", defaults.Email, "Demo account email")
	password := flag.String("password", defaults.Password, "Demo account password")
	days := flag.Int("days", defaults.Days, "Days of history to generate")
	clean := flag.Bool("clean", defaults.Clean, "Remove an existing demo account first")
	randSeed := flag.Int64("seed", 0, "Random seed for reproducible data (0 = random)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	creds, err := auth.NewService(auth.Config{
		Secret:     cfg.JWTSecret,
		Issuer:     cfg.JWTIssuer,
		Audience:   cfg.JWTAudience,
		TokenTTL:   cfg.TokenTTL(),
		BcryptCost: cfg.BcryptCost,
	})
	if err != nil {
		log.Fatalf("Failed to set up credentials: %v", err)
	}

	res, err := seed.NewSeeder(db, creds).Seed(context.Background(), seed.Options{
		Email:    *email,
		Password: *password,
		Days:     *days,
		Clean:    *clean,
		RandSeed: *randSeed,
	})
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Printf("✨ Seeded user %d with %d workouts and %d progress entries", res.UserID, res.Workouts, res.Progress)
	log.Printf("📧 Log in as %s / %s", *email, *password)
}
