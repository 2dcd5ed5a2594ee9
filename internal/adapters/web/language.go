package web

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"termfolio/internal/domain"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "lang"
)

var localeMatcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, 0, len(domain.Locales))
	for _, l := range domain.Locales {
		tags = append(tags, l.Tag())
	}
	return tags
}

// ResolveLocale determines the locale for the request: lang query parameter,
// then lang cookie, then Accept-Language, then fallback.
// The bool reports whether the query parameter picked it and should be persisted.
func ResolveLocale(r *http.Request, fallback domain.Locale) (domain.Locale, bool) {
	if r == nil {
		return fallback, false
	}

	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if l, err := domain.ParseLocale(value); err == nil {
			return l, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if l, err := domain.ParseLocale(cookie.Value); err == nil {
			return l, false
		}
	}

	if l, ok := browserLocale(r.Header.Get("Accept-Language")); ok {
		return l, false
	}

	return fallback, false
}

// browserLocale picks the best supported locale from an Accept-Language header.
func browserLocale(header string) (domain.Locale, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, confidence := localeMatcher.Match(tags...)
	if confidence < language.High {
		return "", false
	}
	return domain.Locales[idx], true
}

// SetLocaleCookie persists the selected locale on the response.
func SetLocaleCookie(w http.ResponseWriter, locale domain.Locale) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    locale.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
