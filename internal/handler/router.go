package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/1Markish/Superheroes/internal/middleware"
	"github.com/1Markish/Superheroes/internal/service"
)

// RouterConfig holds everything NewRouter wires into the route table
type RouterConfig struct {
	WelcomeMessage   string
	HeroService      *service.HeroService
	PowerService     *service.PowerService
	HeroPowerService *service.HeroPowerService
	DB               Pinger
	MetricsEnabled   bool
	MetricsPath      string
}

// NewRouter builds the route table and wraps it in the global middleware chain
func NewRouter(cfg RouterConfig) http.Handler {
	homeHandler := NewHomeHandler(cfg.WelcomeMessage)
	heroHandler := NewHeroHandler(cfg.HeroService)
	powerHandler := NewPowerHandler(cfg.PowerService)
	heroPowerHandler := NewHeroPowerHandler(cfg.HeroPowerService)
	healthHandler := NewHealthHandler(cfg.DB)

	mux := http.NewServeMux()

	// "{$}" keeps the root from matching every unknown path
	mux.HandleFunc("GET /{$}", homeHandler.Index)
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Heroes
	mux.HandleFunc("GET /heroes", heroHandler.ListHeroes)
	mux.HandleFunc("GET /heroes/{id}", heroHandler.GetHero)

	// Powers
	mux.HandleFunc("GET /powers", powerHandler.ListPowers)
	mux.HandleFunc("GET /powers/{id}", powerHandler.GetPower)
	mux.HandleFunc("PATCH /powers/{id}", powerHandler.UpdatePower)

	// Hero powers
	mux.HandleFunc("POST /hero_powers", heroPowerHandler.CreateHeroPower)

	if cfg.MetricsEnabled {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, promhttp.Handler())
	}

	return middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Tracing,
		middleware.Logger,
		middleware.Recovery,
		middleware.Compress,
		middleware.Metrics,
	)
}
