package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"termfolio/internal/config"
	"termfolio/internal/domain"
	"termfolio/internal/infrastructure/content"
	"termfolio/internal/infrastructure/i18n"
)

func newTestExporter(t *testing.T, siteURL string) *Exporter {
	t.Helper()
	return newTestExporterWith(t, routerOptions{siteURL: siteURL})
}

func newTestExporterWith(t *testing.T, opts routerOptions) *Exporter {
	t.Helper()
	site, _ := newTestSiteFrom(t, opts)
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return NewExporter(site, renderer, opts.public, testLogger(), domain.LocaleES, opts.siteURL)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestExportWritesSite(t *testing.T) {
	out := t.TempDir()
	if err := newTestExporter(t, "https://victor.dev").Export(out, fixedNow); err != nil {
		t.Fatalf("Export: %v", err)
	}

	if got := readFile(t, filepath.Join(out, "index.html")); !strings.Contains(got, `<html lang="es">`) {
		t.Fatal("index.html must be the default locale")
	}
	if got := readFile(t, filepath.Join(out, "en", "index.html")); !strings.Contains(got, `<html lang="en">`) || !strings.Contains(got, "PINNED") {
		t.Fatal("en/index.html must be english")
	}
	if got := readFile(t, filepath.Join(out, "es", "index.html")); !strings.Contains(got, `rel="canonical" href="https://victor.dev/es/"`) {
		t.Fatal("es/index.html lacks canonical link")
	}
	if got := readFile(t, filepath.Join(out, "sitemap.xml")); !strings.Contains(got, "<lastmod>2026-10-18</lastmod>") {
		t.Fatalf("sitemap.xml = %s", got)
	}
	if got := readFile(t, filepath.Join(out, "robots.txt")); !strings.Contains(got, "Sitemap:") {
		t.Fatalf("robots.txt = %s", got)
	}
	if got := readFile(t, filepath.Join(out, "static", "terminal.css")); got == "" {
		t.Fatal("static assets not copied")
	}
}

func TestExportCopiesPublicMedia(t *testing.T) {
	out := t.TempDir()
	exporter := newTestExporterWith(t, routerOptions{content: fixtureContent(), public: fixturePublic()})
	if err := exporter.Export(out, fixedNow); err != nil {
		t.Fatalf("Export: %v", err)
	}

	page := readFile(t, filepath.Join(out, "en", "index.html"))
	for name, data := range fixturePublic() {
		if got := readFile(t, filepath.Join(out, filepath.FromSlash(name))); got != string(data.Data) {
			t.Fatalf("%s = %q", name, got)
		}
		if !strings.Contains(page, `"/`+name+`"`) {
			t.Fatalf("page does not link /%s", name)
		}
	}
}

func TestExportWithoutSiteURLSkipsSitemap(t *testing.T) {
	out := t.TempDir()
	if err := newTestExporter(t, "").Export(out, fixedNow); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "sitemap.xml")); !os.IsNotExist(err) {
		t.Fatalf("sitemap.xml must not exist, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "index.html")); err != nil {
		t.Fatalf("index.html missing: %v", err)
	}
}

func TestNewServerServesRoutes(t *testing.T) {
	projectRepo, socialRepo, err := content.Load()
	if err != nil {
		t.Fatalf("content.Load: %v", err)
	}
	translator, err := i18n.NewTranslator(domain.LocaleES, testLogger())
	if err != nil {
		t.Fatalf("NewTranslator: %v", err)
	}
	publicDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(publicDir, "thumbnails"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(publicDir, "thumbnails", "shot.png"), []byte("png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := &config.Config{
		Addr:        "127.0.0.1:0",
		Environment: "test",
		Locale:      domain.LocaleEN,
		Location:    time.UTC,
		CORSOrigins: []string{"https://victor.dev"},
		PublicDir:   publicDir,
	}

	server, err := NewServer(cfg, testLogger(), projectRepo, socialRepo, translator)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Language") != "en" {
		t.Fatalf("GET / = %d lang=%q, want configured default en", rec.Code, rec.Header().Get("Content-Language"))
	}

	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/thumbnails/shot.png", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "png" {
		t.Fatalf("GET /thumbnails/shot.png = %d %q", rec.Code, rec.Body.String())
	}
}

func TestOpenPublic(t *testing.T) {
	t.Parallel()

	if OpenPublic("") != nil {
		t.Fatal("empty dir must disable public media")
	}
	if OpenPublic(filepath.Join(t.TempDir(), "missing")) != nil {
		t.Fatal("missing dir must disable public media")
	}
	if OpenPublic(t.TempDir()) == nil {
		t.Fatal("existing dir must be opened")
	}
}

func TestServerStartStopsOnCancel(t *testing.T) {
	projectRepo, socialRepo, err := content.Load()
	if err != nil {
		t.Fatalf("content.Load: %v", err)
	}
	translator, err := i18n.NewTranslator(domain.LocaleES, testLogger())
	if err != nil {
		t.Fatalf("NewTranslator: %v", err)
	}
	cfg := &config.Config{Addr: "127.0.0.1:0", Environment: "test", Locale: domain.LocaleES, Location: time.UTC}
	server, err := NewServer(cfg, testLogger(), projectRepo, socialRepo, translator)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Start(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
