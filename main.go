package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rohanthewiz/logger"

	"photosearch/config"
	"photosearch/pexels"
	"photosearch/search"
	"photosearch/store"
	"photosearch/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger.SetLogLevel(cfg.LogLevel)
	logger.Info("Configuration loaded",
		"address", cfg.ServerAddress,
		"upstream", cfg.PexelsBaseURL,
		"cache", cfg.CacheDB,
		"loglevel", cfg.LogLevel,
	)

	shutdownCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Response cache is optional - an empty CACHE_DB runs without one
	var cache *store.Store
	if cfg.CacheDB != "" {
		if err = os.MkdirAll(filepath.Dir(cfg.CacheDB), 0o755); err != nil {
			log.Fatal("Failed to create cache directory: ", err)
		}
		cache, err = store.Open(shutdownCtx, cfg.CacheDB, cfg.CacheTTL)
		if err != nil {
			log.Fatal("Failed to open cache store: ", err)
		}
		defer cache.Close()
	} else {
		logger.Info("Response caching disabled")
	}

	client := pexels.NewClient(cfg.PexelsAPIKey, cfg.PexelsBaseURL, cfg.RequestTimeout)
	svc := search.NewService(client, cache)

	srv := web.NewServer(cfg, svc)

	go func() {
		logger.Info("Starting PhotoSearch on", "address", cfg.ServerAddress)
		if err := web.Run(srv); err != nil {
			logger.LogErr(err, "server stopped with error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	// cancel stops the cache purge worker, then the deferred cache.Close runs
	// on the way out. The listener has no graceful stop, so a request arriving
	// in that window can see a closed store; store.Get/Put treat that as a
	// miss or a logged no-op, and the process exits right after.
	cancel()
}
