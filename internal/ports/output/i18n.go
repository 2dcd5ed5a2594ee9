package output

import (
	"termfolio/internal/domain"
	"termfolio/internal/domain/entities"
)

// Translator exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + templating for a given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}

// TranslationCatalog serves the typed page strings of a locale.
type TranslationCatalog interface {
	T
	// Translations renders every page string for locale; unknown locales
	// get the default locale. data feeds template placeholders such as Year.
	Translations(locale domain.Locale, data map[string]any) entities.Translations
}
