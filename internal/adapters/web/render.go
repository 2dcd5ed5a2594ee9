package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"termfolio/internal/ports/input/view"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer turns a view.Page into the HTML document.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		// Content and translations are compiled in and may carry markup.
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the page template into a buffer so a failure never sends half a page.
func (r *Renderer) Render(page view.Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", page); err != nil {
		return nil, fmt.Errorf("render page %s: %w", page.Lang, err)
	}
	return buf.Bytes(), nil
}

// StaticFS returns the embedded assets served under /static.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("web: static assets missing: " + err.Error())
	}
	return sub
}
