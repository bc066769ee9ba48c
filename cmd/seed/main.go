package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/1Markish/Superheroes/internal/config"
	"github.com/1Markish/Superheroes/internal/database"
	"github.com/1Markish/Superheroes/internal/repository"
	"github.com/1Markish/Superheroes/internal/service"
)

func main() {
	reset := flag.Bool("reset", false, "Delete all heroes, powers and hero powers first")
	outputJSON := flag.Bool("json", false, "Output as JSON")
	timeout := flag.Duration("timeout", time.Minute, "Give up after this long")

	flag.Parse()

	// Logs go to stderr so -json output stays parseable
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db := database.NewSQLDB(database.Config{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN(),
	})
	if err := db.Connect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := db.ApplySchema(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error applying schema: %v\n", err)
		os.Exit(1)
	}

	seeder := service.NewSeederService(service.SeederServiceConfig{
		Transactor:    database.NewTransactor(db),
		HeroRepo:      repository.NewHeroRepository(db),
		PowerRepo:     repository.NewPowerRepository(db),
		HeroPowerRepo: repository.NewHeroPowerRepository(db),
	})

	result, err := seeder.Seed(ctx, service.SeedOptions{Reset: *reset})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
		return
	}

	fmt.Println("Seeding Complete")
	fmt.Println("================")
	if *reset {
		fmt.Printf("Deleted:      %d rows\n", result.Deleted)
	}
	fmt.Printf("Powers:       %d\n", result.Powers)
	fmt.Printf("Heroes:       %d\n", result.Heroes)
	fmt.Printf("Hero powers:  %d\n", result.HeroPowers)
	fmt.Printf("Took:         %dms\n", result.Duration)
}
