package application

import (
	"time"

	"termfolio/internal/ports/output"
)

// Site bundles the use cases of the portfolio, wired to its content and translations.
type Site struct {
	Projects     *ProjectService
	Socials      *SocialService
	Pages        *PageService
	Sitemap      *SitemapService
	Localization *LocalizationService
}

// NewSite wires ports: output adapters -> application services.
// siteURL may be empty; loc is the zone for dates shown or published.
func NewSite(
	projectRepo output.ProjectRepository,
	socialRepo output.SocialRepository,
	catalog output.TranslationCatalog,
	siteURL string,
	loc *time.Location,
) *Site {
	if loc == nil {
		loc = time.UTC
	}
	projects := NewProjectService(projectRepo)
	socials := NewSocialService(socialRepo)
	return &Site{
		Projects:     projects,
		Socials:      socials,
		Pages:        NewPageService(projects, socials, catalog, siteURL),
		Sitemap:      NewSitemapService(siteURL, loc),
		Localization: NewLocalizationService(catalog, func() time.Time { return time.Now().In(loc) }),
	}
}

// RobotsTxt allows every crawler and points at the sitemap when the site URL is known.
func RobotsTxt(siteURL string) string {
	out := "User-agent: *\nAllow: /\n"
	if siteURL != "" {
		out += "\nSitemap: " + siteURL + "/sitemap.xml\n"
	}
	return out
}
