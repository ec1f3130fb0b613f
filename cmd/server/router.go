package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/saju-api/internal/api"
	apiMiddleware "github.com/phrazzld/saju-api/internal/api/middleware"
	"github.com/phrazzld/saju-api/internal/batch"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	sajuHandler := api.NewSajuHandler(app.readingService, app.config.API.MaxBodyBytes)

	pool := batch.NewPool(app.readingService, batch.Config{Workers: app.config.API.BatchWorkers}, app.logger)
	batchHandler := api.NewBatchHandler(pool, app.config.API.MaxBatchRecords, app.config.API.MaxBodyBytes)

	r.Route("/api", func(r chi.Router) {
		r.Post("/pillars", sajuHandler.Pillars)
		r.Post("/elements", sajuHandler.Elements)
		r.Post("/stars", sajuHandler.Stars)
		r.Post("/reading", sajuHandler.Reading)
		r.Post("/readings/batch", batchHandler.Readings)
	})

	// Health check endpoint
	r.Get("/health", api.Health)

	return r
}
