package web

import (
	"strings"

	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorBody{Error: message, Code: code})
}

func respondHTML(c *gin.Context, status int, body []byte) {
	c.Data(status, "text/html; charset=utf-8", body)
}

func isAPIRequest(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, apiPrefix+"/") || c.Request.URL.Path == apiPrefix
}
