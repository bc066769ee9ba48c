package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/1Markish/Superheroes/internal/config"
	"github.com/1Markish/Superheroes/internal/database"
	"github.com/1Markish/Superheroes/internal/handler"
	"github.com/1Markish/Superheroes/internal/repository"
	"github.com/1Markish/Superheroes/internal/service"
	"github.com/1Markish/Superheroes/internal/tracing"
)

func main() {
	// Initialize structured logging at info until the config says otherwise
	logLevel := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	level, _ := cfg.Server.SlogLevel()
	logLevel.Set(level)

	ctx := context.Background()

	// Initialize tracing
	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		ServiceName: cfg.Tracing.ServiceName,
		Timeout:     cfg.Tracing.Timeout,
	})
	if err != nil {
		slog.Error("failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			slog.Error("failed to flush traces", slog.String("error", err.Error()))
		}
	}()

	// Initialize database connection
	db := database.NewSQLDB(database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})

	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := db.ApplySchema(ctx); err != nil {
		slog.Error("failed to apply schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("connected to database",
		slog.String("driver", cfg.Database.Driver),
	)

	// Initialize repositories
	heroRepo := repository.NewHeroRepository(db)
	powerRepo := repository.NewPowerRepository(db)
	heroPowerRepo := repository.NewHeroPowerRepository(db)
	transactor := database.NewTransactor(db)

	// Initialize services
	heroService := service.NewHeroService(service.HeroServiceConfig{
		Transactor:    transactor,
		HeroRepo:      heroRepo,
		HeroPowerRepo: heroPowerRepo,
	})
	powerService := service.NewPowerService(service.PowerServiceConfig{
		Transactor: transactor,
		PowerRepo:  powerRepo,
	})
	heroPowerService := service.NewHeroPowerService(service.HeroPowerServiceConfig{
		Transactor:    transactor,
		HeroRepo:      heroRepo,
		PowerRepo:     powerRepo,
		HeroPowerRepo: heroPowerRepo,
	})

	// Routes and global middleware
	router := handler.NewRouter(handler.RouterConfig{
		WelcomeMessage:   cfg.Server.WelcomeMessage,
		HeroService:      heroService,
		PowerService:     powerService,
		HeroPowerService: heroPowerService,
		DB:               db,
		MetricsEnabled:   cfg.Metrics.Enabled,
		MetricsPath:      cfg.Metrics.Path,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
