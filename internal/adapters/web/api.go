package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"termfolio/internal/domain/entities"
)

// ListProjects handles GET /api/projects.
// One filter applies, first match wins: category, featured, images, explained, ordered.
func (h *Handler) ListProjects(c *gin.Context) {
	var projects []entities.Project
	switch {
	case c.Query("category") != "":
		projects = h.projects.ByCategory(c.Query("category"))
	case queryFlag(c, "featured"):
		projects = h.projects.Featured()
	case queryFlag(c, "images"):
		projects = h.projects.WithImages()
	case queryFlag(c, "explained"):
		projects = h.projects.WithExplanation()
	case queryFlag(c, "ordered"):
		projects = h.projects.Ordered()
	default:
		projects = h.projects.All()
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /api/projects/:title.
func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.projects.ByTitle(c.Param("title"))
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// ListSocials handles GET /api/socials.
func (h *Handler) ListSocials(c *gin.Context) {
	c.JSON(http.StatusOK, h.socials.All())
}

// GetTranslations handles GET /api/translations/:locale; unknown locales get Spanish.
func (h *Handler) GetTranslations(c *gin.Context) {
	c.JSON(http.StatusOK, h.localization.Use(c.Param("locale")))
}

// Health handles GET /api/health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func queryFlag(c *gin.Context, name string) bool {
	v, err := strconv.ParseBool(c.Query(name))
	return err == nil && v
}
