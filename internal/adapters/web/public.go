package web

import (
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

const publicCacheControl = "public, max-age=86400"

// OpenPublic opens the directory holding project media (screenshots,
// thumbnails, CSV files). It returns nil when dir is empty or absent.
func OpenPublic(dir string) fs.FS {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}
	return os.DirFS(dir)
}

// servePublic writes the public file matching the request path, if any.
// Media paths are rooted at / ("/screenshots/x/01.png", "/thumbnails/..."),
// so they are resolved after routing instead of through a catch-all route.
func (h *Handler) servePublic(c *gin.Context) bool {
	if h.public == nil || isAPIRequest(c) {
		return false
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		return false
	}
	name := strings.TrimPrefix(path.Clean(c.Request.URL.Path), "/")
	if name == "" || !fs.ValidPath(name) {
		return false
	}
	info, err := fs.Stat(h.public, name)
	if err != nil || info.IsDir() {
		return false
	}
	c.Header("Cache-Control", publicCacheControl)
	c.FileFromFS(name, http.FS(h.public))
	return true
}
