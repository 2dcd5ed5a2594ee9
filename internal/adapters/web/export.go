package web

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"termfolio/internal/application"
	"termfolio/internal/domain"
	"termfolio/internal/ports/input"
)

// Exporter writes the whole site as static files, mirroring the server routes.
type Exporter struct {
	pages         input.PageUseCase
	sitemap       input.SitemapUseCase
	renderer      *Renderer
	public        fs.FS
	logger        *slog.Logger
	defaultLocale domain.Locale
	siteURL       string
}

// NewExporter builds an Exporter; public may be nil when there is no project media.
func NewExporter(site *application.Site, renderer *Renderer, public fs.FS, logger *slog.Logger, defaultLocale domain.Locale, siteURL string) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultLocale == "" {
		defaultLocale = domain.DefaultLocale
	}
	return &Exporter{
		pages:         site.Pages,
		sitemap:       site.Sitemap,
		renderer:      renderer,
		public:        public,
		logger:        logger,
		defaultLocale: defaultLocale,
		siteURL:       siteURL,
	}
}

// Export renders every page into outDir. A missing site URL only skips sitemap.xml.
func (e *Exporter) Export(outDir string, now time.Time) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := e.writePage(outDir, "index.html", e.defaultLocale, now); err != nil {
		return err
	}
	for _, l := range domain.Locales {
		if err := e.writePage(outDir, filepath.Join(l.String(), "index.html"), l, now); err != nil {
			return err
		}
	}

	sitemap, err := e.sitemap.Sitemap(now)
	switch {
	case errors.Is(err, domain.ErrSiteURLMissing):
		e.logger.Warn("sitemap_skipped", "reason", "site url not configured")
	case err != nil:
		return err
	default:
		if err := writeFile(outDir, "sitemap.xml", sitemap); err != nil {
			return err
		}
	}

	if err := writeFile(outDir, "robots.txt", []byte(application.RobotsTxt(e.siteURL))); err != nil {
		return err
	}
	if err := copyTree(StaticFS(), filepath.Join(outDir, "static")); err != nil {
		return err
	}
	if e.public != nil {
		// Media paths are rooted at /, so the public tree lands at the top of outDir.
		if err := copyTree(e.public, outDir); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writePage(outDir, name string, locale domain.Locale, now time.Time) error {
	body, err := e.renderer.Render(e.pages.Page(locale, now))
	if err != nil {
		return err
	}
	return writeFile(outDir, name, body)
}

func copyTree(src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", path, err)
		}
		return writeFile(dst, filepath.FromSlash(path), data)
	})
}

func writeFile(dir, name string, data []byte) error {
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
