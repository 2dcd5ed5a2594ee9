package application

import (
	"time"

	"termfolio/internal/domain"
	"termfolio/internal/domain/entities"
	"termfolio/internal/ports/input/view"
	"termfolio/internal/ports/output"
)

type LocalizationService struct {
	catalog output.TranslationCatalog
	now     func() time.Time
}

func NewLocalizationService(catalog output.TranslationCatalog, now func() time.Time) *LocalizationService {
	if now == nil {
		now = time.Now
	}
	return &LocalizationService{catalog: catalog, now: now}
}

// Translations returns the strings of lang, Spanish when lang is unknown.
func (s *LocalizationService) Translations(lang string) entities.Translations {
	return s.catalog.Translations(domain.NormalizeLocale(lang), map[string]any{"Year": s.now().Year()})
}

// Use resolves lang (default Spanish) and returns its translations with locale flags.
func (s *LocalizationService) Use(lang string) view.I18n {
	locale := domain.NormalizeLocale(lang)
	return view.I18n{
		T:         s.Translations(locale.String()),
		Lang:      locale,
		IsEnglish: locale == domain.LocaleEN,
		IsSpanish: locale == domain.LocaleES,
	}
}
