// Command generate renders the portfolio as static files.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"termfolio/internal/adapters/web"
	"termfolio/internal/application"
	"termfolio/internal/config"
	"termfolio/internal/infrastructure/content"
	"termfolio/internal/infrastructure/i18n"
	"termfolio/internal/logging"
)

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "dist", "output directory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Logging, cfg.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	projectRepo, socialRepo, err := content.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load content: %v\n", err)
		os.Exit(1)
	}

	translator, err := i18n.NewTranslator(cfg.Locale, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load translations: %v\n", err)
		os.Exit(1)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse templates: %v\n", err)
		os.Exit(1)
	}

	site := application.NewSite(projectRepo, socialRepo, translator, cfg.SiteURL, cfg.Location)
	public := web.OpenPublic(cfg.PublicDir)
	if public == nil {
		fmt.Printf("No public directory at %q, project media not copied\n", cfg.PublicDir)
	}
	exporter := web.NewExporter(site, renderer, public, logger, cfg.Locale, cfg.SiteURL)

	fmt.Printf("Generating site into %s...\n", outDir)
	if err := exporter.Export(outDir, time.Now().In(cfg.Location)); err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Done!")
}
