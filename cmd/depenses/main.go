package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"depenses/internal/cli"
	apphttp "depenses/internal/http"
	"depenses/internal/i18n"
	"depenses/internal/log"
)

func main() {
	cli.LoadEnvFile()
	cfg, err := cli.LoadConfig()
	if err != nil {
		cli.Exit(nil, "Configuration validation failed", err)
	}
	logger := cli.SetupLogger(cfg, os.Stdout)

	srv := apphttp.NewServer(":"+cfg.Port, apphttp.Options{
		DataDir:        cfg.DataDir,
		Pipeline:       cli.NewPipeline(cfg, logger),
		Translator:     i18n.New(cfg.Language),
		Logger:         logger,
		CacheTTL:       cfg.CacheTTL,
		CacheSize:      cfg.CacheSize,
		RateLimit:      cfg.RateLimit,
		TrustedProxies: cfg.TrustedProxyList(),
	})

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	done := cli.GracefulShutdown(logger, 30*time.Second, func(ctx context.Context) {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", log.FieldError, err)
		}
	})

	logger.Info("Starting depenses server",
		log.FieldOperation, log.OpStartup,
		"port", cfg.Port,
		log.FieldDataDir, cfg.DataDir,
		"language", cfg.Language,
		"cache_ttl", cfg.CacheTTL.String())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		cli.Exit(logger, "Server error", err)
	}

	<-done
	logger.Info("Server stopped gracefully")
}
