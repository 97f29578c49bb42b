package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jkoster/portfolio-performance-backend/internal/api/handlers"
	custommiddleware "github.com/jkoster/portfolio-performance-backend/internal/api/middleware"
	"github.com/jkoster/portfolio-performance-backend/internal/config"
	"github.com/jkoster/portfolio-performance-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	positionService *service.PositionService,
	chartService *service.ChartService,
	quoteService *service.QuoteService,
	importService *service.ImportService,
	settingsService *service.SettingsService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/position", func(r chi.Router) {
			positionHandler := handlers.NewPositionHandler(positionService, importService)
			r.Get("/", positionHandler.Positions)
			r.Post("/", positionHandler.CreatePosition)
			r.Post("/import", positionHandler.ImportPositions)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", positionHandler.UpdatePosition)
				r.Delete("/", positionHandler.DeletePosition)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(positionService, chartService)
			r.Get("/summary", portfolioHandler.Summary)
			r.Get("/chart", portfolioHandler.Chart)
		})

		r.Route("/quotes", func(r chi.Router) {
			quoteHandler := handlers.NewQuoteHandler(quoteService)
			r.Post("/refresh", quoteHandler.Refresh)
		})

		// Settings mutate shared credentials; guard them with the
		// internal API key when one is configured.
		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(settingsService)
			r.Get("/provider-key", settingsHandler.GetProviderKey)
			r.With(custommiddleware.APIKeyMiddleware).Put("/provider-key", settingsHandler.SetProviderKey)
		})
	})

	return r
}
