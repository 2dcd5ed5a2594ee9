// Package view holds the render-ready shape of the portfolio page.
package view

import (
	"termfolio/internal/domain"
	"termfolio/internal/domain/entities"
)

// Action kinds, in the order buttons appear under a project.
const (
	ActionDemo        = "demo"
	ActionCode        = "code"
	ActionWeb         = "web"
	ActionImages      = "images"
	ActionExplanation = "explanation"
	ActionCSV         = "csv"
)

type Page struct {
	Lang    domain.Locale
	AltLang domain.Locale
	T       entities.Translations

	Projects []ProjectCard
	Socials  []entities.Social
	// EmailURL backs the contact email button; empty hides it.
	EmailURL string
	// GitHubURL backs the hero clone button; empty hides it.
	GitHubURL string

	// CanonicalURL is empty when no site URL is configured.
	CanonicalURL string
	Alternates   []Alternate
	Year         int
}

type ProjectCard struct {
	Anchor      string
	Title       string
	Description string
	Explanation string
	Tech        []string
	Featured    bool
	Actions     []Action
	Images      []Image
}

type Action struct {
	Kind  string
	Label string
	URL   string
	// External links open in a new tab; in-page actions toggle a panel.
	External bool
}

type Image struct {
	Full  string
	Thumb string
}

type Alternate struct {
	Lang domain.Locale
	Href string
}

// I18n is the translation bundle of one locale with its locale flags.
type I18n struct {
	T         entities.Translations `json:"t"`
	Lang      domain.Locale         `json:"lang"`
	IsEnglish bool                  `json:"isEnglish"`
	IsSpanish bool                  `json:"isSpanish"`
}
