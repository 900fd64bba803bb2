package web

import (
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"

	"photosearch/config"
	"photosearch/search"
)

// NewServer creates and configures the RWeb server
func NewServer(cfg *config.Config, svc search.Service) *rweb.Server {
	// Create server instance with options
	s := rweb.NewServer(rweb.ServerOptions{
		Address: cfg.ServerAddress,
		Verbose: true,
	})

	// Apply middleware
	s.Use(rweb.RequestInfo)          // Logs request info
	s.Use(CorsMiddleware)            // Custom CORS middleware
	s.Use(SecurityHeadersMiddleware) // Security headers
	s.Use(RequestIDMiddleware)       // Request correlation ids
	s.Use(LoggingMiddleware)         // Request logging
	if cfg.RateLimitPerMin > 0 {
		s.Use(RateLimitMiddleware(cfg.RateLimitPerMin)) // Protect the upstream quota
	}

	// Setup routes
	setupRoutes(s, cfg, svc)

	// Serve static files using embedded FS
	SetupStaticFiles(s)

	return s
}

// Run starts the server
func Run(s *rweb.Server) error {
	logger.Info("PhotoSearch web server starting")
	return s.Run()
}
