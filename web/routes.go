package web

import (
	"net/http"
	"strings"

	"github.com/rohanthewiz/rweb"

	"photosearch/config"
	"photosearch/search"
	"photosearch/web/api"
	"photosearch/web/pages"
)

// setupRoutes configures all application routes
func setupRoutes(s *rweb.Server, cfg *config.Config, svc search.Service) {
	searchHandler := api.NewSearchHandler(svc, cfg.DefaultPerPage, cfg.MaxPerPage)

	// Page routes - HTML responses
	s.Get("/", func(ctx rweb.Context) error {
		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.WriteHTML(pages.NewSearchPage().Render())
	})

	// Search endpoint - HTML partial for HTMX requests, JSON otherwise
	s.Get("/api/search", searchHandler.Search)

	// Health check endpoint
	s.Get("/health", api.HealthCheck)

	// Fallthrough 404
	s.Get("/*", func(ctx rweb.Context) error {
		// Accept can carry a list ("application/json, text/plain"), so a
		// substring match decides the representation
		if strings.Contains(ctx.Request().Header("Accept"), "application/json") {
			ctx.SetStatus(http.StatusNotFound)
			return ctx.WriteJSON(map[string]string{"error": "Resource not found"})
		}
		ctx.SetStatus(http.StatusNotFound)
		return ctx.WriteHTML("<h1>404 - Page Not Found</h1>")
	})
}
