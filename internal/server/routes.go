package server

import (
	"github.com/Lutefd/currency-widget/internal/commons"
	"github.com/Lutefd/currency-widget/internal/handler"
	api_middleware "github.com/Lutefd/currency-widget/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes(gatherer prometheus.Gatherer) {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(api_middleware.RequestLogger)

	router.Get("/healthz", handler.HandlerReadiness)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	router.Get("/currencies", handler.HandlerCurrencies)

	widgetHandler := handler.NewWidgetHandler(s.widgetService)
	router.Route("/widgets", func(r chi.Router) {
		r.With(api_middleware.RateLimit(s.config.RateLimitRPS, commons.RateLimitBurst)).Post("/", widgetHandler.CreateWidget)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", widgetHandler.GetWidget)
			r.Delete("/", widgetHandler.CloseWidget)
			r.Put("/amount", widgetHandler.SetAmount)
			r.Put("/source", widgetHandler.SetSource)
			r.Put("/target", widgetHandler.SetTarget)
			r.Post("/swap", widgetHandler.Swap)
			r.Post("/convert", widgetHandler.Convert)
		})
	})
	s.router = router
}
