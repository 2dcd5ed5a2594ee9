package i18n

import (
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"
	"testing/fstest"

	"termfolio/internal/domain"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := NewTranslator(domain.LocaleES, quietLogger())
	if err != nil {
		t.Fatalf("NewTranslator: %v", err)
	}
	return tr
}

func TestEmbeddedLocalesHaveParity(t *testing.T) {
	t.Parallel()

	newTestTranslator(t)
}

func TestTranslationsPerLocale(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)
	es := tr.Translations(domain.LocaleES, map[string]any{"Year": 2026})
	en := tr.Translations(domain.LocaleEN, map[string]any{"Year": 2026})

	if es.ProjectsFeatured != "DESTACADO" {
		t.Fatalf("es ProjectsFeatured = %q", es.ProjectsFeatured)
	}
	if en.ProjectsFeatured != "PINNED" {
		t.Fatalf("en ProjectsFeatured = %q", en.ProjectsFeatured)
	}
	if en.FooterCopyright != "© 2026 Víctor Jesús Rea Valencia" {
		t.Fatalf("en FooterCopyright = %q", en.FooterCopyright)
	}

	v := reflect.ValueOf(en)
	for i := 0; i < v.NumField(); i++ {
		if v.Field(i).String() == "" {
			t.Fatalf("en field %s is empty", v.Type().Field(i).Name)
		}
	}
}

func TestTranslationsUnknownLocaleFallsBackToSpanish(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)
	got := tr.Translations(domain.Locale("fr"), map[string]any{"Year": 2026})
	want := tr.Translations(domain.LocaleES, map[string]any{"Year": 2026})
	if got != want {
		t.Fatalf("fr translations = %+v, want spanish", got)
	}
}

func TestTFallsBackToKey(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)
	if got := tr.T("en", "doesNotExist", nil); got != "doesNotExist" {
		t.Fatalf("T(missing) = %q", got)
	}
	if got := tr.T("en", "", nil); got != "" {
		t.Fatalf("T(empty) = %q", got)
	}
	if got := tr.T("en", "errorProjectNotFound", nil); got != "Project not found." {
		t.Fatalf("T(en, errorProjectNotFound) = %q", got)
	}
}

func TestNewTranslatorFSRejectsMissingKeys(t *testing.T) {
	t.Parallel()

	es, err := localeFS.ReadFile("active.es.toml")
	if err != nil {
		t.Fatalf("read es: %v", err)
	}
	fsys := fstest.MapFS{
		"active.es.toml": {Data: es},
		"active.en.toml": {Data: []byte(`siteTitle = "Only one"`)},
	}

	_, err = NewTranslatorFS(fsys, domain.LocaleES, quietLogger(), "active.es.toml", "active.en.toml")
	if !errors.Is(err, domain.ErrMissingTranslation) {
		t.Fatalf("error = %v, want ErrMissingTranslation", err)
	}
}

func TestNewTranslatorFSRejectsExtraKeys(t *testing.T) {
	t.Parallel()

	es, err := localeFS.ReadFile("active.es.toml")
	if err != nil {
		t.Fatalf("read es: %v", err)
	}
	en := append(append([]byte{}, es...), []byte("\nonlyEnglish = \"x\"\n")...)
	fsys := fstest.MapFS{
		"active.es.toml": {Data: es},
		"active.en.toml": {Data: en},
	}

	_, err = NewTranslatorFS(fsys, domain.LocaleES, quietLogger(), "active.es.toml", "active.en.toml")
	if !errors.Is(err, domain.ErrMissingTranslation) {
		t.Fatalf("error = %v, want ErrMissingTranslation", err)
	}
}

func TestNewTranslatorFSRequiresPageStrings(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"active.es.toml": {Data: []byte(`siteTitle = "x"`)}}
	_, err := NewTranslatorFS(fsys, domain.LocaleES, quietLogger(), "active.es.toml")
	if !errors.Is(err, domain.ErrMissingTranslation) {
		t.Fatalf("error = %v, want ErrMissingTranslation", err)
	}
}
