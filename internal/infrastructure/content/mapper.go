package content

import (
	"fmt"
	"strings"

	"termfolio/internal/domain"
	"termfolio/internal/domain/entities"
)

type localizedRow struct {
	ES string `toml:"es"`
	EN string `toml:"en"`
}

type projectRow struct {
	Title       localizedRow  `toml:"title"`
	Description localizedRow  `toml:"description"`
	Explanation *localizedRow `toml:"explanation"`
	Tech        []string      `toml:"tech"`
	Link        string        `toml:"link"`
	Demo        string        `toml:"demo"`
	Web         string        `toml:"web"`
	CSV         string        `toml:"csv"`
	Featured    bool          `toml:"featured"`
	Images      []string      `toml:"images"`
}

type projectFile struct {
	Projects []projectRow `toml:"projects"`
}

type socialRow struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
	Icon string `toml:"icon"`
}

type socialFile struct {
	Socials []socialRow `toml:"socials"`
}

func localizedToDomain(l localizedRow) entities.Localized {
	return entities.Localized{ES: strings.TrimSpace(l.ES), EN: strings.TrimSpace(l.EN)}
}

// projectToDomain validates a row and converts it. i is the row position, for messages.
func projectToDomain(i int, row projectRow) (entities.Project, error) {
	p := entities.Project{
		Title:       localizedToDomain(row.Title),
		Description: localizedToDomain(row.Description),
		Link:        strings.TrimSpace(row.Link),
		Demo:        strings.TrimSpace(row.Demo),
		Web:         strings.TrimSpace(row.Web),
		CSV:         strings.TrimSpace(row.CSV),
		Featured:    row.Featured,
	}
	if !p.Title.Complete() {
		return entities.Project{}, fmt.Errorf("%w: project %d: title needs es and en", domain.ErrInvalidContent, i)
	}
	if !p.Description.Complete() {
		return entities.Project{}, fmt.Errorf("%w: project %d (%s): description needs es and en", domain.ErrInvalidContent, i, p.Title.ES)
	}
	if row.Explanation != nil {
		e := localizedToDomain(*row.Explanation)
		if !e.Complete() {
			return entities.Project{}, fmt.Errorf("%w: project %d (%s): explanation needs es and en", domain.ErrInvalidContent, i, p.Title.ES)
		}
		p.Explanation = &e
	}
	for _, tech := range row.Tech {
		if tech = strings.TrimSpace(tech); tech != "" {
			p.Tech = append(p.Tech, tech)
		}
	}
	for _, img := range row.Images {
		if img = strings.TrimSpace(img); img != "" {
			p.Images = append(p.Images, img)
		}
	}
	return p, nil
}

func socialToDomain(i int, row socialRow) (entities.Social, error) {
	s := entities.Social{
		Name: strings.TrimSpace(row.Name),
		URL:  strings.TrimSpace(row.URL),
		Icon: strings.TrimSpace(row.Icon),
	}
	if s.Name == "" || s.URL == "" {
		return entities.Social{}, fmt.Errorf("%w: social %d: name and url are required", domain.ErrInvalidContent, i)
	}
	return s, nil
}
