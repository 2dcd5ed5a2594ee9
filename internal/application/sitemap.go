package application

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"termfolio/internal/domain"
	"termfolio/pkg/tz"
)

const (
	sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xhtmlNS   = "http://www.w3.org/1999/xhtml"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	NS      string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string          `xml:"loc"`
	LastMod    string          `xml:"lastmod"`
	ChangeFreq string          `xml:"changefreq"`
	Priority   string          `xml:"priority"`
	Alternates []alternateLink `xml:"xhtml:link"`
}

type alternateLink struct {
	Rel      string `xml:"rel,attr"`
	HrefLang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// sitemapPage is one indexed page; the site is a single page today.
type sitemapPage struct {
	path       string
	changeFreq string
	priority   string
}

var sitemapPages = []sitemapPage{
	{path: "", changeFreq: "weekly", priority: "1.0"},
}

type SitemapService struct {
	siteURL string
	loc     *time.Location
}

// NewSitemapService serves a sitemap for siteURL; lastmod dates are taken in loc (UTC when nil).
func NewSitemapService(siteURL string, loc *time.Location) *SitemapService {
	if loc == nil {
		loc = time.UTC
	}
	return &SitemapService{siteURL: strings.TrimSuffix(siteURL, "/"), loc: loc}
}

func (s *SitemapService) Sitemap(now time.Time) ([]byte, error) {
	if s.siteURL == "" {
		return nil, domain.ErrSiteURLMissing
	}
	lastMod := tz.Date(now, s.loc)

	set := urlSet{NS: sitemapNS, XHTML: xhtmlNS}
	for _, page := range sitemapPages {
		u := sitemapURL{
			Loc:        s.siteURL + page.path,
			LastMod:    lastMod,
			ChangeFreq: page.changeFreq,
			Priority:   page.priority,
		}
		for _, l := range domain.Locales {
			u.Alternates = append(u.Alternates, alternateLink{Rel: "alternate", HrefLang: l.String(), Href: s.siteURL + LocalePath(l)})
		}
		u.Alternates = append(u.Alternates, alternateLink{Rel: "alternate", HrefLang: "x-default", Href: s.siteURL + page.path})
		set.URLs = append(set.URLs, u)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
