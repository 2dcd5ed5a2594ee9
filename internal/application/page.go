package application

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"termfolio/internal/domain"
	"termfolio/internal/domain/entities"
	"termfolio/internal/ports/input/view"
	"termfolio/internal/ports/output"
)

const (
	imageExt        = ".png"
	thumbnailPrefix = "/thumbnails"
)

// PageService assembles the single-page portfolio for a locale.
type PageService struct {
	projects *ProjectService
	socials  *SocialService
	catalog  output.TranslationCatalog
	siteURL  string
}

func NewPageService(
	projects *ProjectService,
	socials *SocialService,
	catalog output.TranslationCatalog,
	siteURL string,
) *PageService {
	return &PageService{
		projects: projects,
		socials:  socials,
		catalog:  catalog,
		siteURL:  strings.TrimSuffix(siteURL, "/"),
	}
}

func (s *PageService) Page(locale domain.Locale, now time.Time) view.Page {
	if locale != domain.LocaleEN {
		locale = domain.LocaleES
	}
	t := s.catalog.Translations(locale, map[string]any{"Year": now.Year()})

	ordered := s.projects.Ordered()
	cards := make([]view.ProjectCard, 0, len(ordered))
	used := map[string]int{}
	for _, p := range ordered {
		cards = append(cards, buildCard(p, locale, t, uniqueAnchor(used, p.Title.EN)))
	}

	page := view.Page{
		Lang:     locale,
		AltLang:  locale.Other(),
		T:        t,
		Projects: cards,
		Socials:  s.socials.All(),
		Year:     now.Year(),
	}
	if email, ok := s.socials.Email(); ok {
		page.EmailURL = email.URL
	}
	for _, social := range page.Socials {
		if strings.Contains(strings.ToLower(social.URL), "://github.com/") {
			page.GitHubURL = social.URL
			break
		}
	}
	for _, l := range domain.Locales {
		page.Alternates = append(page.Alternates, view.Alternate{Lang: l, Href: s.siteURL + LocalePath(l)})
	}
	if s.siteURL != "" {
		page.CanonicalURL = s.siteURL + LocalePath(locale)
	}
	return page
}

// LocalePath is the page path that pins locale.
func LocalePath(locale domain.Locale) string {
	return "/" + locale.String() + "/"
}

func buildCard(p entities.Project, locale domain.Locale, t entities.Translations, anchor string) view.ProjectCard {
	card := view.ProjectCard{
		Anchor:      anchor,
		Title:       p.Title.In(locale),
		Description: p.Description.In(locale),
		Tech:        p.Tech,
		Featured:    p.Featured,
	}
	if p.Demo != "" {
		card.Actions = append(card.Actions, view.Action{Kind: view.ActionDemo, Label: t.ProjectsDemo, URL: p.Demo, External: true})
	}
	if p.Link != "" {
		card.Actions = append(card.Actions, view.Action{Kind: view.ActionCode, Label: t.ProjectsCode, URL: p.Link, External: true})
	}
	if p.Web != "" {
		card.Actions = append(card.Actions, view.Action{Kind: view.ActionWeb, Label: t.ProjectsWeb, URL: p.Web, External: true})
	}
	if p.HasImages() {
		card.Actions = append(card.Actions, view.Action{Kind: view.ActionImages, Label: t.ProjectsImages, URL: "#" + anchor + "-images"})
		for _, stem := range p.Images {
			card.Images = append(card.Images, view.Image{
				Full:  stem + imageExt,
				Thumb: thumbnailPrefix + stem + imageExt,
			})
		}
	}
	if p.HasExplanation() {
		card.Explanation = p.Explanation.In(locale)
		card.Actions = append(card.Actions, view.Action{Kind: view.ActionExplanation, Label: t.ProjectsExplanation, URL: "#" + anchor + "-explanation"})
	}
	if p.CSV != "" {
		card.Actions = append(card.Actions, view.Action{Kind: view.ActionCSV, Label: t.ProjectsCsv, URL: p.CSV})
	}
	return card
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug turns a title into an ASCII anchor: "Centro de la Visión" -> "centro-de-la-vision".
func Slug(title string) string {
	folded, _, err := transform.String(stripMarks, title)
	if err != nil {
		folded = title
	}
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "project"
	}
	return out
}

func uniqueAnchor(used map[string]int, title string) string {
	base := Slug(title)
	used[base]++
	if n := used[base]; n > 1 {
		return base + "-" + strconv.Itoa(n)
	}
	return base
}
