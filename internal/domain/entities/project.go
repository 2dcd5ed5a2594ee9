package entities

import (
	"slices"

	"termfolio/internal/domain"
)

// Localized is a text available in every supported locale.
type Localized struct {
	ES string `json:"es"`
	EN string `json:"en"`
}

// In returns the text for locale, Spanish for anything else.
func (l Localized) In(locale domain.Locale) string {
	if locale == domain.LocaleEN {
		return l.EN
	}
	return l.ES
}

// Complete reports whether both locales carry a non-blank text.
func (l Localized) Complete() bool {
	return !blank(l.ES) && !blank(l.EN)
}

// Project is one portfolio entry. Empty URL fields mean "not available".
type Project struct {
	Title       Localized  `json:"title"`
	Description Localized  `json:"description"`
	Explanation *Localized `json:"explanation,omitempty"`
	Tech        []string   `json:"tech"`
	Link        string     `json:"link,omitempty"`
	Demo        string     `json:"demo,omitempty"`
	Web         string     `json:"web,omitempty"`
	CSV         string     `json:"csv,omitempty"`
	Featured    bool       `json:"featured"`
	Images      []string   `json:"images,omitempty"`
}

func (p Project) HasImages() bool { return len(p.Images) > 0 }

func (p Project) HasExplanation() bool { return p.Explanation != nil }

// Clone returns a deep copy so the content tables stay immutable.
func (p Project) Clone() Project {
	out := p
	out.Tech = slices.Clone(p.Tech)
	out.Images = slices.Clone(p.Images)
	if p.Explanation != nil {
		e := *p.Explanation
		out.Explanation = &e
	}
	return out
}
