package input

import (
	"time"

	"termfolio/internal/domain"
	"termfolio/internal/ports/input/view"
)

// PageUseCase builds the single-page view of the portfolio.
type PageUseCase interface {
	Page(locale domain.Locale, now time.Time) view.Page
}

// SitemapUseCase renders sitemap.xml.
type SitemapUseCase interface {
	Sitemap(now time.Time) ([]byte, error)
}

// LocalizationUseCase serves interface strings by locale code.
type LocalizationUseCase interface {
	Use(lang string) view.I18n
}
