package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"termfolio/internal/application"
	"termfolio/internal/config"
	"termfolio/internal/domain"
	"termfolio/internal/ports/output"
)

const (
	apiPrefix       = "/api"
	shutdownTimeout = 10 * time.Second
)

// Server is the HTTP adapter.
type Server struct {
	engine  *gin.Engine
	http    *http.Server
	handler *Handler
	logger  *slog.Logger
}

// NewServer creates a Server and wires ports: output adapters -> application (use cases) -> handler.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	projectRepo output.ProjectRepository,
	socialRepo output.SocialRepository,
	catalog output.TranslationCatalog,
) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	public := OpenPublic(cfg.PublicDir)
	if public == nil && cfg.PublicDir != "" {
		logger.Warn("public_dir_unavailable", slog.String("dir", cfg.PublicDir))
	}

	site := application.NewSite(projectRepo, socialRepo, catalog, cfg.SiteURL, cfg.Location)
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	handler := NewHandler(HandlerDeps{
		Projects:      site.Projects,
		Socials:       site.Socials,
		Pages:         site.Pages,
		Sitemap:       site.Sitemap,
		Localization:  site.Localization,
		Translator:    catalog,
		Renderer:      renderer,
		Public:        public,
		Logger:        logger,
		DefaultLocale: cfg.Locale,
		SiteURL:       cfg.SiteURL,
		Now:           func() time.Time { return time.Now().In(loc) },
	})

	engine := NewEngine(handler, logger, cfg.CORSOrigins)
	s := &Server{
		engine:  engine,
		handler: handler,
		logger:  logger,
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
	return s, nil
}

// NewEngine builds the gin router for handler.
func NewEngine(h *Handler, logger *slog.Logger, corsOrigins []string) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestLogger(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.GET("/", h.Page)
	for _, l := range domain.Locales {
		engine.GET(application.LocalePath(l), h.LocalePage(l))
	}
	engine.GET("/sitemap.xml", h.Sitemap)
	engine.GET("/robots.txt", h.Robots)

	static := engine.Group("/static", CacheStatic())
	static.StaticFS("/", http.FS(StaticFS()))

	api := engine.Group(apiPrefix, cors.New(corsConfig(corsOrigins)))
	api.GET("/health", h.Health)
	api.GET("/projects", h.ListProjects)
	api.GET("/projects/:title", h.GetProject)
	api.GET("/socials", h.ListSocials)
	api.GET("/translations/:locale", h.GetTranslations)

	engine.NoRoute(h.NotFound)
	return engine
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Accept", "Accept-Language"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http_server_listening", slog.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("http_server_stopping")
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
