package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"

	"termfolio/internal/domain"
	"termfolio/internal/domain/entities"
	"termfolio/internal/ports/output"
)

//go:embed data/*.toml
var dataFS embed.FS

const (
	projectsFile = "data/projects.toml"
	socialsFile  = "data/socials.toml"
)

var (
	_ output.ProjectRepository = (*ProjectRepository)(nil)
	_ output.SocialRepository  = (*SocialRepository)(nil)
)

// ProjectRepository is the immutable project table.
type ProjectRepository struct {
	projects []entities.Project
}

// SocialRepository is the immutable social links table.
type SocialRepository struct {
	socials []entities.Social
}

func (r *ProjectRepository) All() []entities.Project { return r.projects }

func (r *SocialRepository) All() []entities.Social { return r.socials }

// Load decodes the embedded tables.
func Load() (*ProjectRepository, *SocialRepository, error) {
	return LoadFS(dataFS, projectsFile, socialsFile)
}

// LoadFS decodes and validates the project and social tables found in fsys.
func LoadFS(fsys fs.FS, projectsPath, socialsPath string) (*ProjectRepository, *SocialRepository, error) {
	var pf projectFile
	if err := decode(fsys, projectsPath, &pf); err != nil {
		return nil, nil, err
	}
	projects := make([]entities.Project, 0, len(pf.Projects))
	for i, row := range pf.Projects {
		p, err := projectToDomain(i, row)
		if err != nil {
			return nil, nil, err
		}
		projects = append(projects, p)
	}

	var sf socialFile
	if err := decode(fsys, socialsPath, &sf); err != nil {
		return nil, nil, err
	}
	socials := make([]entities.Social, 0, len(sf.Socials))
	for i, row := range sf.Socials {
		s, err := socialToDomain(i, row)
		if err != nil {
			return nil, nil, err
		}
		socials = append(socials, s)
	}

	return &ProjectRepository{projects: projects}, &SocialRepository{socials: socials}, nil
}

func decode(fsys fs.FS, path string, v any) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrInvalidContent, path, err)
	}
	return nil
}
