package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported site language.
type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"

	// DefaultLocale is served whenever no usable locale is requested.
	DefaultLocale = LocaleES
)

// Locales lists the supported locales, default first.
var Locales = []Locale{LocaleES, LocaleEN}

// ParseLocale accepts any BCP 47 tag whose base language is supported
// ("en", "en-US", "ES", "es-419").
func ParseLocale(value string) (Locale, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: empty", ErrUnknownLocale)
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnknownLocale, value, err)
	}
	base, _ := tag.Base()
	for _, l := range Locales {
		if base.String() == string(l) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLocale, value)
}

// NormalizeLocale is ParseLocale with DefaultLocale as fallback.
func NormalizeLocale(value string) Locale {
	l, err := ParseLocale(value)
	if err != nil {
		return DefaultLocale
	}
	return l
}

// Tag returns the language tag of l.
func (l Locale) Tag() language.Tag {
	return language.Make(string(l))
}

func (l Locale) String() string { return string(l) }

// Other returns the alternate locale of a bilingual site.
func (l Locale) Other() Locale {
	if l == LocaleEN {
		return LocaleES
	}
	return LocaleEN
}
