package application

import (
	"fmt"

	"termfolio/internal/domain"
	"termfolio/internal/domain/entities"
)

type fakeProjectRepo struct{ projects []entities.Project }

func (r *fakeProjectRepo) All() []entities.Project { return r.projects }

type fakeSocialRepo struct{ socials []entities.Social }

func (r *fakeSocialRepo) All() []entities.Social { return r.socials }

// fakeCatalog answers "<locale>:<key>", with the year appended to footerCopyright.
type fakeCatalog struct{}

func (fakeCatalog) T(locale, key string, _ map[string]any) string {
	return locale + ":" + key
}

func (c fakeCatalog) Translations(locale domain.Locale, data map[string]any) entities.Translations {
	if locale != domain.LocaleEN {
		locale = domain.LocaleES
	}
	return entities.TranslationsFrom(func(key string) string {
		if key == "footerCopyright" {
			return fmt.Sprintf("%s:%s:%v", locale, key, data["Year"])
		}
		return c.T(locale.String(), key, nil)
	})
}

func sampleProjects() []entities.Project {
	return []entities.Project{
		{
			Title:       entities.Localized{ES: "Analizador", EN: "Parser"},
			Description: entities.Localized{ES: "d", EN: "d"},
			Tech:        []string{"Python", "NLP"},
			Link:        "https://github.com/x/parser",
		},
		{
			Title:       entities.Localized{ES: "Centro de la Vista", EN: "Centro de la Vista"},
			Description: entities.Localized{ES: "<strong>web</strong>", EN: "<strong>site</strong>"},
			Tech:        []string{"Astro", "Tailwind CSS"},
			Demo:        "https://centrodelavista.com/",
			Link:        "https://github.com/x",
			Featured:    true,
		},
		{
			Title:       entities.Localized{ES: "Datos abiertos", EN: "Open data"},
			Description: entities.Localized{ES: "d", EN: "d"},
			Explanation: &entities.Localized{ES: "larga", EN: "long"},
			Tech:        []string{"pandas", "Python"},
			CSV:         "/assets/data.csv",
			Web:         "https://data.example",
			Images:      []string{"/screenshots/data/01", "/screenshots/data/02"},
		},
		{
			Title:       entities.Localized{ES: "Sin etiquetas", EN: "Untagged"},
			Description: entities.Localized{ES: "d", EN: "d"},
			Featured:    true,
		},
	}
}

func sampleSocials() []entities.Social {
	return []entities.Social{
		{Name: "GitHub", URL: "https://github.com/someone", Icon: "mdi:github"},
		{Name: "Email", URL: "mailto:someone@example.com", Icon: "mdi:email"},
	}
}
