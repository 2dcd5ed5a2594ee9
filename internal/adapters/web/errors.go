package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"termfolio/internal/domain"
)

// messageKey maps a domain error code to the message ID of its user-facing text.
func messageKey(code string) string {
	switch code {
	case "project_not_found":
		return "errorProjectNotFound"
	case "site_url_missing":
		return "errorSiteURLMissing"
	default:
		return "errorInternal"
	}
}

func statusFor(code string) int {
	switch code {
	case "project_not_found":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// DomainErrorMessage resolves err to a translated message for locale.
func (h *Handler) DomainErrorMessage(locale domain.Locale, err error) string {
	if err == nil {
		return ""
	}
	return h.translator.T(locale.String(), messageKey(domain.Code(err)), nil)
}

// respondDomainError writes err as a JSON error in the request locale.
func (h *Handler) respondDomainError(c *gin.Context, err error) {
	locale, _ := ResolveLocale(c.Request, h.defaultLocale)
	code := domain.Code(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request_failed", "path", c.Request.URL.Path, "error", err)
	}
	if code == "" {
		code = "internal"
	}
	respondError(c, status, code, h.DomainErrorMessage(locale, err))
}
