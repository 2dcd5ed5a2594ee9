package web

import (
	"io/fs"
	"log/slog"
	"time"

	"termfolio/internal/domain"
	"termfolio/internal/ports/input"
	"termfolio/internal/ports/output"
)

// Handler serves HTTP requests using use cases.
type Handler struct {
	projects      input.ProjectUseCase
	socials       input.SocialUseCase
	pages         input.PageUseCase
	sitemap       input.SitemapUseCase
	localization  input.LocalizationUseCase
	translator    output.T
	renderer      *Renderer
	public        fs.FS
	logger        *slog.Logger
	defaultLocale domain.Locale
	siteURL       string
	now           func() time.Time
}

// HandlerDeps groups what a Handler needs. A nil Public disables project media.
type HandlerDeps struct {
	Projects      input.ProjectUseCase
	Socials       input.SocialUseCase
	Pages         input.PageUseCase
	Sitemap       input.SitemapUseCase
	Localization  input.LocalizationUseCase
	Translator    output.T
	Renderer      *Renderer
	Public        fs.FS
	Logger        *slog.Logger
	DefaultLocale domain.Locale
	SiteURL       string
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewHandler creates a Handler.
func NewHandler(deps HandlerDeps) *Handler {
	h := &Handler{
		projects:      deps.Projects,
		socials:       deps.Socials,
		pages:         deps.Pages,
		sitemap:       deps.Sitemap,
		localization:  deps.Localization,
		translator:    deps.Translator,
		renderer:      deps.Renderer,
		public:        deps.Public,
		logger:        deps.Logger,
		defaultLocale: deps.DefaultLocale,
		siteURL:       deps.SiteURL,
		now:           deps.Now,
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	if h.now == nil {
		h.now = time.Now
	}
	if h.defaultLocale == "" {
		h.defaultLocale = domain.DefaultLocale
	}
	return h
}
