package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"termfolio/internal/application"
	"termfolio/internal/domain"
)

const sitemapCacheControl = "public, max-age=3600, s-maxage=86400"

// Sitemap handles GET /sitemap.xml.
func (h *Handler) Sitemap(c *gin.Context) {
	body, err := h.sitemap.Sitemap(h.now())
	if errors.Is(err, domain.ErrSiteURLMissing) {
		c.String(http.StatusInternalServerError, "Site configuration missing")
		return
	}
	if err != nil {
		h.logger.Error("sitemap_failed", "error", err)
		c.String(http.StatusInternalServerError, h.translator.T(h.defaultLocale.String(), "errorInternal", nil))
		return
	}
	c.Header("Cache-Control", sitemapCacheControl)
	c.Data(http.StatusOK, "application/xml", body)
}

// Robots handles GET /robots.txt.
func (h *Handler) Robots(c *gin.Context) {
	c.String(http.StatusOK, application.RobotsTxt(h.siteURL))
}
