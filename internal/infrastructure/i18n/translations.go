package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"termfolio/internal/domain"
	"termfolio/internal/domain/entities"
	"termfolio/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output ports.
var (
	_ output.T                  = (*Translator)(nil)
	_ output.TranslationCatalog = (*Translator)(nil)
)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	logger          *slog.Logger
}

// NewTranslator builds a Translator backed by go-i18n using the given default
// locale (e.g. "es") from the embedded active.*.toml files.
func NewTranslator(defaultLocale domain.Locale, logger *slog.Logger) (*Translator, error) {
	files := make([]string, 0, len(domain.Locales))
	for _, l := range domain.Locales {
		files = append(files, "active."+l.String()+".toml")
	}
	return NewTranslatorFS(localeFS, defaultLocale, logger, files...)
}

// NewTranslatorFS loads the message files from fsys. The first file is the
// reference: every other file must define exactly the same message IDs, and
// the reference must define every page string.
func NewTranslatorFS(fsys fs.FS, defaultLocale domain.Locale, logger *slog.Logger, files ...string) (*Translator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no message files", domain.ErrMissingTranslation)
	}
	bundle := i18n.NewBundle(defaultLocale.Tag())
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	var reference []string
	for i, file := range files {
		mf, err := bundle.LoadMessageFileFS(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", file, err)
		}
		ids := messageIDs(mf)
		if i == 0 {
			reference = ids
			if missing := difference(entities.TranslationKeys, ids); len(missing) > 0 {
				return nil, fmt.Errorf("%w: %s lacks %v", domain.ErrMissingTranslation, file, missing)
			}
			continue
		}
		if missing := difference(reference, ids); len(missing) > 0 {
			return nil, fmt.Errorf("%w: %s lacks %v defined in %s", domain.ErrMissingTranslation, file, missing, files[0])
		}
		if extra := difference(ids, reference); len(extra) > 0 {
			return nil, fmt.Errorf("%w: %s lacks %v defined in %s", domain.ErrMissingTranslation, files[0], extra, file)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: defaultLocale.Tag(),
		logger:          logger,
	}, nil
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	return t.localize(t.localizer(locale), locale, key, data)
}

// Translations renders every page string for locale in one pass.
func (t *Translator) Translations(locale domain.Locale, data map[string]any) entities.Translations {
	localizer := t.localizer(locale.String())
	return entities.TranslationsFrom(func(key string) string {
		return t.localize(localizer, locale.String(), key, data)
	})
}

func (t *Translator) localizer(locale string) *i18n.Localizer {
	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())
	return i18n.NewLocalizer(t.bundle, languages...)
}

func (t *Translator) localize(localizer *i18n.Localizer, locale, key string, data map[string]any) string {
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Warn("i18n_localize_failed", slog.String("key", key), slog.String("locale", locale), slog.Any("error", err))
		return key
	}
	return msg
}

func messageIDs(mf *i18n.MessageFile) []string {
	ids := make([]string, 0, len(mf.Messages))
	for _, m := range mf.Messages {
		ids = append(ids, m.ID)
	}
	slices.Sort(ids)
	return ids
}

// difference returns the entries of want missing from have.
func difference(want, have []string) []string {
	var out []string
	for _, id := range want {
		if !slices.Contains(have, id) {
			out = append(out, id)
		}
	}
	return out
}
