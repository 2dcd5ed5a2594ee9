package entities

// Translations is every interface string of the page for one locale.
// Field order follows the page sections.
type Translations struct {
	SiteTitle       string `json:"siteTitle"`
	SiteDescription string `json:"siteDescription"`

	HeroGreeting       string `json:"heroGreeting"`
	HeroTitle          string `json:"heroTitle"`
	HeroSubtitle       string `json:"heroSubtitle"`
	HeroDescription    string `json:"heroDescription"`
	HeroCta            string `json:"heroCta"`
	HeroTemplateButton string `json:"heroTemplateButton"`

	ProjectsTitle       string `json:"projectsTitle"`
	ProjectsFeatured    string `json:"projectsFeatured"`
	ProjectsDemo        string `json:"projectsDemo"`
	ProjectsCode        string `json:"projectsCode"`
	ProjectsImages      string `json:"projectsImages"`
	ProjectsExplanation string `json:"projectsExplanation"`
	ProjectsCsv         string `json:"projectsCsv"`
	ProjectsWeb         string `json:"projectsWeb"`

	ContactTitle       string `json:"contactTitle"`
	ContactEmailButton string `json:"contactEmailButton"`
	ContactLinks       string `json:"contactLinks"`

	FooterCopyright string `json:"footerCopyright"`
	FooterStatus    string `json:"footerStatus"`
}

// TranslationKeys are the message IDs backing Translations, in field order.
var TranslationKeys = []string{
	"siteTitle",
	"siteDescription",
	"heroGreeting",
	"heroTitle",
	"heroSubtitle",
	"heroDescription",
	"heroCta",
	"heroTemplateButton",
	"projectsTitle",
	"projectsFeatured",
	"projectsDemo",
	"projectsCode",
	"projectsImages",
	"projectsExplanation",
	"projectsCsv",
	"projectsWeb",
	"contactTitle",
	"contactEmailButton",
	"contactLinks",
	"footerCopyright",
	"footerStatus",
}

// TranslationsFrom fills a Translations using lookup for every key.
func TranslationsFrom(lookup func(key string) string) Translations {
	return Translations{
		SiteTitle:           lookup("siteTitle"),
		SiteDescription:     lookup("siteDescription"),
		HeroGreeting:        lookup("heroGreeting"),
		HeroTitle:           lookup("heroTitle"),
		HeroSubtitle:        lookup("heroSubtitle"),
		HeroDescription:     lookup("heroDescription"),
		HeroCta:             lookup("heroCta"),
		HeroTemplateButton:  lookup("heroTemplateButton"),
		ProjectsTitle:       lookup("projectsTitle"),
		ProjectsFeatured:    lookup("projectsFeatured"),
		ProjectsDemo:        lookup("projectsDemo"),
		ProjectsCode:        lookup("projectsCode"),
		ProjectsImages:      lookup("projectsImages"),
		ProjectsExplanation: lookup("projectsExplanation"),
		ProjectsCsv:         lookup("projectsCsv"),
		ProjectsWeb:         lookup("projectsWeb"),
		ContactTitle:        lookup("contactTitle"),
		ContactEmailButton:  lookup("contactEmailButton"),
		ContactLinks:        lookup("contactLinks"),
		FooterCopyright:     lookup("footerCopyright"),
		FooterStatus:        lookup("footerStatus"),
	}
}
