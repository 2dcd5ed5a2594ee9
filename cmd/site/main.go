package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"termfolio/internal/adapters/web"
	"termfolio/internal/config"
	"termfolio/internal/infrastructure/content"
	"termfolio/internal/infrastructure/i18n"
	"termfolio/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Logging, cfg.Environment)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}

	projectRepo, socialRepo, err := content.Load()
	if err != nil {
		logger.Error("content_load_failed", slog.Any("error", err))
		os.Exit(1)
	}

	translator, err := i18n.NewTranslator(cfg.Locale, logger)
	if err != nil {
		logger.Error("translations_load_failed", slog.Any("error", err))
		os.Exit(1)
	}

	server, err := web.NewServer(cfg, logger, projectRepo, socialRepo, translator)
	if err != nil {
		logger.Error("server_init_failed", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SiteURL == "" {
		logger.Warn("site_url_missing", "effect", "sitemap.xml answers 500")
	}
	if err := server.Start(ctx); err != nil {
		logger.Error("server_failed", slog.Any("error", err))
		os.Exit(1)
	}
}
