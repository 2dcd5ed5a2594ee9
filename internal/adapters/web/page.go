package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"termfolio/internal/domain"
)

// Page handles GET / in the locale resolved from the request.
func (h *Handler) Page(c *gin.Context) {
	locale, persist := ResolveLocale(c.Request, h.defaultLocale)
	if persist {
		SetLocaleCookie(c.Writer, locale)
	}
	// Add, not Set: gzip already registered Accept-Encoding.
	c.Writer.Header().Add("Vary", "Accept-Language")
	c.Writer.Header().Add("Vary", "Cookie")
	h.renderPage(c, locale)
}

// LocalePage handles GET /es/ and /en/, which pin the locale.
func (h *Handler) LocalePage(locale domain.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.renderPage(c, locale)
	}
}

func (h *Handler) renderPage(c *gin.Context, locale domain.Locale) {
	page := h.pages.Page(locale, h.now())
	body, err := h.renderer.Render(page)
	if err != nil {
		h.logger.Error("page_render_failed", "locale", locale.String(), "error", err)
		c.String(http.StatusInternalServerError, h.translator.T(locale.String(), "errorInternal", nil))
		return
	}
	c.Header("Content-Language", locale.String())
	respondHTML(c, http.StatusOK, body)
}

// NotFound answers unknown routes: project media from the public directory
// when a file matches, then JSON under /api, plain text elsewhere.
func (h *Handler) NotFound(c *gin.Context) {
	if h.servePublic(c) {
		return
	}
	locale, _ := ResolveLocale(c.Request, h.defaultLocale)
	msg := h.translator.T(locale.String(), "errorNotFound", nil)
	if isAPIRequest(c) {
		respondError(c, http.StatusNotFound, "not_found", msg)
		return
	}
	c.String(http.StatusNotFound, msg+": "+c.Request.URL.Path)
}
